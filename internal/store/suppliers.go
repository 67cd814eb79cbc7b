package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"supplierhub-backend/internal/models"
)

// SupplierFilter is the set of optional predicates combined with logical AND.
// Zero values mean "not supplied".
type SupplierFilter struct {
	Search           string   // substring over name, category, products
	Category         string   // exact match, case-insensitive
	Location         string   // substring over location or region
	MinRating        *float64 // keep rating >= MinRating
	VerifiedOnly     bool
	FixturesHardware bool
	Skip             int
	Limit            int // 0 means no limit
}

// SupplierUpdate carries partial updates; nil fields are left untouched.
type SupplierUpdate struct {
	Name              *string
	Category          *string
	Location          *string
	Region            *string
	Rating            *float64
	AIScore           *int
	Products          *[]string
	Certifications    *[]string
	WalmartVerified   *bool
	YearsInBusiness   *int
	ProjectsCompleted *int
}

type SupplierStats struct {
	Total          int
	Verified       int
	AverageRating  float64
	AverageAIScore float64
	Categories     map[string]int
}

// SupplierStore holds the supplier collection behind a single lock. Query
// results are produced in insertion order; there is no index, a sequential
// scan is fine at the intended scale (low thousands of records).
type SupplierStore struct {
	mu        sync.RWMutex
	suppliers map[int]models.Supplier
	order     []int // ids in insertion order
	maxID     int
}

func NewSupplierStore() *SupplierStore {
	return &SupplierStore{
		suppliers: make(map[int]models.Supplier),
	}
}

// Create inserts a new supplier. A zero id means "assign the next one".
// An explicit id that already exists is rejected.
func (st *SupplierStore) Create(s models.Supplier, createdBy string) (models.Supplier, error) {
	if err := validateSupplier(&s); err != nil {
		return models.Supplier{}, err
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if s.ID == 0 {
		s.ID = st.maxID + 1
	} else if _, exists := st.suppliers[s.ID]; exists {
		return models.Supplier{}, fmt.Errorf("%w: supplier %d", ErrDuplicateID, s.ID)
	}

	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now
	s.CreatedBy = createdBy

	st.insertLocked(s)
	return s, nil
}

// Put upserts by id (bulk import path). A new id is appended in insertion
// order; an existing id is replaced in place, keeping its position.
func (st *SupplierStore) Put(s models.Supplier) (replaced bool, err error) {
	if s.ID <= 0 {
		return false, fmt.Errorf("%w: supplier id must be positive", ErrValidation)
	}
	if err := validateSupplier(&s); err != nil {
		return false, err
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	now := time.Now()
	if old, exists := st.suppliers[s.ID]; exists {
		s.CreatedAt = old.CreatedAt
		s.CreatedBy = old.CreatedBy
		s.UpdatedAt = now
		st.suppliers[s.ID] = s
		return true, nil
	}

	s.CreatedAt = now
	s.UpdatedAt = now
	st.insertLocked(s)
	return false, nil
}

func (st *SupplierStore) insertLocked(s models.Supplier) {
	st.suppliers[s.ID] = s
	st.order = append(st.order, s.ID)
	if s.ID > st.maxID {
		st.maxID = s.ID
	}
}

func (st *SupplierStore) Get(id int) (models.Supplier, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	s, ok := st.suppliers[id]
	if !ok {
		return models.Supplier{}, fmt.Errorf("%w: supplier %d", ErrNotFound, id)
	}
	return s, nil
}

func (st *SupplierStore) Update(id int, upd SupplierUpdate, updatedBy string) (models.Supplier, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.suppliers[id]
	if !ok {
		return models.Supplier{}, fmt.Errorf("%w: supplier %d", ErrNotFound, id)
	}

	if upd.Name != nil {
		s.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Category != nil {
		s.Category = strings.TrimSpace(*upd.Category)
	}
	if upd.Location != nil {
		s.Location = *upd.Location
	}
	if upd.Region != nil {
		s.Region = *upd.Region
	}
	if upd.Rating != nil {
		s.Rating = *upd.Rating
	}
	if upd.AIScore != nil {
		s.AIScore = *upd.AIScore
	}
	if upd.Products != nil {
		s.Products = *upd.Products
	}
	if upd.Certifications != nil {
		s.Certifications = *upd.Certifications
	}
	if upd.WalmartVerified != nil {
		s.WalmartVerified = *upd.WalmartVerified
	}
	if upd.YearsInBusiness != nil {
		s.YearsInBusiness = *upd.YearsInBusiness
	}
	if upd.ProjectsCompleted != nil {
		s.ProjectsCompleted = *upd.ProjectsCompleted
	}

	if err := validateSupplier(&s); err != nil {
		return models.Supplier{}, err
	}

	s.UpdatedAt = time.Now()
	s.UpdatedBy = updatedBy
	st.suppliers[id] = s
	return s, nil
}

func (st *SupplierStore) Delete(id int) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.suppliers[id]; !ok {
		return fmt.Errorf("%w: supplier %d", ErrNotFound, id)
	}
	delete(st.suppliers, id)
	for i, oid := range st.order {
		if oid == id {
			st.order = append(st.order[:i], st.order[i+1:]...)
			break
		}
	}
	return nil
}

// Query applies every supplied predicate (logical AND, short-circuit) over
// the collection in insertion order, then windows the result with skip/limit.
// Returns the page and the total match count before pagination.
func (st *SupplierStore) Query(f SupplierFilter) ([]models.Supplier, int, error) {
	if f.Skip < 0 || f.Limit < 0 {
		return nil, 0, fmt.Errorf("%w: skip and limit must not be negative", ErrInvalidArgument)
	}

	st.mu.RLock()
	defer st.mu.RUnlock()

	matched := make([]models.Supplier, 0, len(st.order))
	for _, id := range st.order {
		s := st.suppliers[id]
		if f.matches(&s) {
			matched = append(matched, s)
		}
	}

	total := len(matched)
	if f.Skip >= total {
		return []models.Supplier{}, total, nil
	}
	page := matched[f.Skip:]
	if f.Limit > 0 && f.Limit < len(page) {
		page = page[:f.Limit]
	}
	return page, total, nil
}

func (f *SupplierFilter) matches(s *models.Supplier) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(s.Name), q) &&
			!strings.Contains(strings.ToLower(s.Category), q) &&
			!anyContains(s.Products, q) {
			return false
		}
	}
	if f.Category != "" && !strings.EqualFold(s.Category, f.Category) {
		return false
	}
	if f.Location != "" {
		q := strings.ToLower(f.Location)
		if !strings.Contains(strings.ToLower(s.Location), q) &&
			!strings.Contains(strings.ToLower(s.Region), q) {
			return false
		}
	}
	if f.MinRating != nil && s.Rating < *f.MinRating {
		return false
	}
	if f.VerifiedOnly && !s.WalmartVerified {
		return false
	}
	if f.FixturesHardware {
		if !strings.Contains(s.Category, "Hardware") &&
			!strings.Contains(s.Category, "Fixtures") &&
			!anyContains(s.Products, "fixture") &&
			!anyContains(s.Products, "hardware") {
			return false
		}
	}
	return true
}

func anyContains(values []string, lowered string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), lowered) {
			return true
		}
	}
	return false
}

// Categories returns the distinct category labels with supplier counts.
func (st *SupplierStore) Categories() map[string]int {
	st.mu.RLock()
	defer st.mu.RUnlock()

	categories := make(map[string]int)
	for _, s := range st.suppliers {
		cat := s.Category
		if cat == "" {
			cat = "Unknown"
		}
		categories[cat]++
	}
	return categories
}

func (st *SupplierStore) Stats() SupplierStats {
	st.mu.RLock()
	defer st.mu.RUnlock()

	stats := SupplierStats{Categories: make(map[string]int)}
	stats.Total = len(st.suppliers)
	if stats.Total == 0 {
		return stats
	}

	var ratingSum, scoreSum float64
	for _, s := range st.suppliers {
		if s.WalmartVerified {
			stats.Verified++
		}
		ratingSum += s.Rating
		scoreSum += float64(s.AIScore)

		cat := s.Category
		if cat == "" {
			cat = "Unknown"
		}
		stats.Categories[cat]++
	}
	stats.AverageRating = ratingSum / float64(stats.Total)
	stats.AverageAIScore = scoreSum / float64(stats.Total)
	return stats
}

func (st *SupplierStore) Count() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.suppliers)
}

// Exists reports whether the id resolves to a live supplier. Used by the
// favorites/notes reads to skip dangling references.
func (st *SupplierStore) Exists(id int) bool {
	st.mu.RLock()
	defer st.mu.RUnlock()
	_, ok := st.suppliers[id]
	return ok
}

func validateSupplier(s *models.Supplier) error {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrValidation)
	}
	if s.Rating < 0 || s.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 0 and 5", ErrValidation)
	}
	if s.AIScore < 0 || s.AIScore > 100 {
		return fmt.Errorf("%w: aiScore must be between 0 and 100", ErrValidation)
	}
	if s.YearsInBusiness < 0 {
		return fmt.Errorf("%w: yearsInBusiness must not be negative", ErrValidation)
	}
	if s.ProjectsCompleted < 0 {
		return fmt.Errorf("%w: projectsCompleted must not be negative", ErrValidation)
	}
	return nil
}
