package store

import "sync"

// FavoriteStore keeps each user's favorite supplier ids in the order they
// were added. Add and Remove are idempotent.
type FavoriteStore struct {
	mu        sync.RWMutex
	favorites map[string][]int // user id -> supplier ids
}

func NewFavoriteStore() *FavoriteStore {
	return &FavoriteStore{
		favorites: make(map[string][]int),
	}
}

func (st *FavoriteStore) Add(userID string, supplierID int) {
	st.mu.Lock()
	defer st.mu.Unlock()

	for _, id := range st.favorites[userID] {
		if id == supplierID {
			return
		}
	}
	st.favorites[userID] = append(st.favorites[userID], supplierID)
}

func (st *FavoriteStore) Remove(userID string, supplierID int) {
	st.mu.Lock()
	defer st.mu.Unlock()

	ids := st.favorites[userID]
	for i, id := range ids {
		if id == supplierID {
			st.favorites[userID] = append(ids[:i], ids[i+1:]...)
			return
		}
	}
}

func (st *FavoriteStore) List(userID string) []int {
	st.mu.RLock()
	defer st.mu.RUnlock()

	ids := st.favorites[userID]
	out := make([]int, len(ids))
	copy(out, ids)
	return out
}

// RemoveSupplier drops the supplier from every user's favorites. Called when
// a supplier is deleted so no dangling references are left behind.
func (st *FavoriteStore) RemoveSupplier(supplierID int) {
	st.mu.Lock()
	defer st.mu.Unlock()

	for user, ids := range st.favorites {
		for i, id := range ids {
			if id == supplierID {
				st.favorites[user] = append(ids[:i], ids[i+1:]...)
				break
			}
		}
	}
}
