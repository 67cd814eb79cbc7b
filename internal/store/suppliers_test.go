package store

import (
	"testing"

	"supplierhub-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSuppliers(t *testing.T) *SupplierStore {
	t.Helper()
	st := NewSupplierStore()

	fixtures := []models.Supplier{
		{ID: 1, Name: "Premier Steel Inc", Category: "Steel & Metal", Location: "Houston, TX", Region: "South", Rating: 4.8, AIScore: 92, Products: []string{"Steel Beams", "Rebar"}, WalmartVerified: true, YearsInBusiness: 20, ProjectsCompleted: 340},
		{ID: 2, Name: "Acme Lumber", Category: "Lumber & Wood", Location: "Portland, OR", Region: "West", Rating: 3.9, AIScore: 75, Products: []string{"Plywood", "2x4 Studs"}, WalmartVerified: false, YearsInBusiness: 8, ProjectsCompleted: 120},
		{ID: 3, Name: "Sunrise Fixtures", Category: "Fixtures & Hardware", Location: "Atlanta, GA", Region: "South", Rating: 4.2, AIScore: 81, Products: []string{"Shelving", "Display Fixtures"}, WalmartVerified: true, YearsInBusiness: 12, ProjectsCompleted: 205},
	}
	for _, s := range fixtures {
		_, err := st.Create(s, "tester")
		require.NoError(t, err)
	}
	return st
}

func TestCreateAssignsSequentialID(t *testing.T) {
	st := seedSuppliers(t)

	s, err := st.Create(models.Supplier{Name: "New Vendor", Rating: 4.0}, "tester")
	require.NoError(t, err)
	assert.Equal(t, 4, s.ID)
	assert.False(t, s.CreatedAt.IsZero())
}

func TestCreateDuplicateID(t *testing.T) {
	st := seedSuppliers(t)

	_, err := st.Create(models.Supplier{ID: 1, Name: "Clone"}, "tester")
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestCreateValidation(t *testing.T) {
	st := NewSupplierStore()

	_, err := st.Create(models.Supplier{Name: "   "}, "tester")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = st.Create(models.Supplier{Name: "X", Rating: 5.5}, "tester")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = st.Create(models.Supplier{Name: "X", AIScore: 120}, "tester")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = st.Create(models.Supplier{Name: "X", YearsInBusiness: -1}, "tester")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateGetRoundTrip(t *testing.T) {
	st := NewSupplierStore()

	created, err := st.Create(models.Supplier{
		Name:     "Round Trip Co",
		Category: "Equipment",
		Rating:   4.4,
		Products: []string{"Forklifts"},
	}, "tester")
	require.NoError(t, err)

	got, err := st.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestDeleteThenGetIsNotFound(t *testing.T) {
	st := seedSuppliers(t)

	require.NoError(t, st.Delete(2))

	_, err := st.Get(2)
	assert.ErrorIs(t, err, ErrNotFound)

	// second delete is NotFound too, never a panic
	assert.ErrorIs(t, st.Delete(2), ErrNotFound)
}

func TestQuerySearchMatchesNameCategoryProducts(t *testing.T) {
	st := seedSuppliers(t)

	results, total, err := st.Query(SupplierFilter{Search: "steel"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].ID)

	// "plywood" only appears in Acme Lumber's product list
	results, _, err = st.Query(SupplierFilter{Search: "plywood"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 2, results[0].ID)
}

func TestQueryMinRating(t *testing.T) {
	st := seedSuppliers(t)

	minRating := 4.0
	results, total, err := st.Query(SupplierFilter{MinRating: &minRating})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	for _, s := range results {
		assert.GreaterOrEqual(t, s.Rating, 4.0)
	}
}

func TestQueryVerifiedOnly(t *testing.T) {
	st := seedSuppliers(t)

	results, total, err := st.Query(SupplierFilter{VerifiedOnly: true})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	for _, s := range results {
		assert.True(t, s.WalmartVerified)
	}
}

func TestQueryCategoryExactCaseInsensitive(t *testing.T) {
	st := seedSuppliers(t)

	results, _, err := st.Query(SupplierFilter{Category: "steel & metal"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].ID)

	// partial category labels do not match the exact filter
	_, total, err := st.Query(SupplierFilter{Category: "steel"})
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestQueryLocationMatchesLocationOrRegion(t *testing.T) {
	st := seedSuppliers(t)

	_, total, err := st.Query(SupplierFilter{Location: "south"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	results, _, err := st.Query(SupplierFilter{Location: "portland"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 2, results[0].ID)
}

func TestQueryFixturesHardware(t *testing.T) {
	st := seedSuppliers(t)

	results, total, err := st.Query(SupplierFilter{FixturesHardware: true})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, 3, results[0].ID)
}

// Applying two filters together must equal the intersection of applying them
// separately.
func TestQueryFilterComposition(t *testing.T) {
	st := seedSuppliers(t)

	minRating := 4.0
	bySouth, _, err := st.Query(SupplierFilter{Location: "south"})
	require.NoError(t, err)
	byRating, _, err := st.Query(SupplierFilter{MinRating: &minRating})
	require.NoError(t, err)
	combined, _, err := st.Query(SupplierFilter{Location: "south", MinRating: &minRating})
	require.NoError(t, err)

	inBoth := func(id int) bool {
		var a, b bool
		for _, s := range bySouth {
			if s.ID == id {
				a = true
			}
		}
		for _, s := range byRating {
			if s.ID == id {
				b = true
			}
		}
		return a && b
	}
	for _, s := range combined {
		assert.True(t, inBoth(s.ID))
	}
	count := 0
	for _, s := range bySouth {
		for _, r := range byRating {
			if s.ID == r.ID {
				count++
			}
		}
	}
	assert.Len(t, combined, count)
}

// Two consecutive pages over an unchanged store are disjoint and their union
// in order equals the double-size page.
func TestQueryPaginationStability(t *testing.T) {
	st := NewSupplierStore()
	for i := 1; i <= 10; i++ {
		_, err := st.Create(models.Supplier{Name: "Vendor", Rating: 3}, "tester")
		require.NoError(t, err)
	}

	first, total, err := st.Query(SupplierFilter{Skip: 0, Limit: 4})
	require.NoError(t, err)
	assert.Equal(t, 10, total)
	second, _, err := st.Query(SupplierFilter{Skip: 4, Limit: 4})
	require.NoError(t, err)
	both, _, err := st.Query(SupplierFilter{Skip: 0, Limit: 8})
	require.NoError(t, err)

	require.Len(t, both, 8)
	union := append(append([]models.Supplier{}, first...), second...)
	assert.Equal(t, both, union)
}

func TestQueryPaginationEdges(t *testing.T) {
	st := seedSuppliers(t)

	// out-of-range skip yields an empty page, not an error
	results, total, err := st.Query(SupplierFilter{Skip: 50})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Empty(t, results)

	_, _, err = st.Query(SupplierFilter{Skip: -1})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, _, err = st.Query(SupplierFilter{Limit: -5})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestQueryInsertionOrder(t *testing.T) {
	st := seedSuppliers(t)
	require.NoError(t, st.Delete(2))
	_, err := st.Create(models.Supplier{Name: "Latecomer", Rating: 3}, "tester")
	require.NoError(t, err)

	results, _, err := st.Query(SupplierFilter{})
	require.NoError(t, err)
	ids := make([]int, len(results))
	for i, s := range results {
		ids[i] = s.ID
	}
	assert.Equal(t, []int{1, 3, 4}, ids)
}

func TestUpdatePartialFields(t *testing.T) {
	st := seedSuppliers(t)

	rating := 2.5
	updated, err := st.Update(2, SupplierUpdate{Rating: &rating}, "editor")
	require.NoError(t, err)
	assert.Equal(t, 2.5, updated.Rating)
	assert.Equal(t, "Acme Lumber", updated.Name)
	assert.Equal(t, "editor", updated.UpdatedBy)

	badRating := 9.0
	_, err = st.Update(2, SupplierUpdate{Rating: &badRating}, "editor")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = st.Update(99, SupplierUpdate{}, "editor")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPutUpsert(t *testing.T) {
	st := seedSuppliers(t)

	replaced, err := st.Put(models.Supplier{ID: 1, Name: "Premier Steel LLC", Rating: 4.9})
	require.NoError(t, err)
	assert.True(t, replaced)

	got, err := st.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Premier Steel LLC", got.Name)

	replaced, err = st.Put(models.Supplier{ID: 42, Name: "Brand New", Rating: 3.0})
	require.NoError(t, err)
	assert.False(t, replaced)
	assert.Equal(t, 4, st.Count())

	_, err = st.Put(models.Supplier{ID: 0, Name: "No ID"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestStats(t *testing.T) {
	st := seedSuppliers(t)

	stats := st.Stats()
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Verified)
	assert.InDelta(t, (4.8+3.9+4.2)/3, stats.AverageRating, 1e-9)
	assert.Equal(t, 1, stats.Categories["Steel & Metal"])

	empty := NewSupplierStore().Stats()
	assert.Zero(t, empty.Total)
	assert.NotNil(t, empty.Categories)
}

func TestCategories(t *testing.T) {
	st := seedSuppliers(t)
	_, err := st.Create(models.Supplier{Name: "Uncategorized Co"}, "tester")
	require.NoError(t, err)

	categories := st.Categories()
	assert.Equal(t, 1, categories["Lumber & Wood"])
	assert.Equal(t, 1, categories["Unknown"])
}
