package store

import (
	"testing"

	"github.com/google/uuid"

	"gazete/internal/models"
)

// TestBucketCategories exercises the single-level tree construction
// without a database.
func TestBucketCategories(t *testing.T) {
	ptr := func(v int64) *int64 { return &v }

	flat := []models.Category{
		{ID: 1, Name: "Gündem"},
		{ID: 2, Name: "Spor"},
		{ID: 3, Name: "Futbol", ParentID: ptr(2)},
		{ID: 4, Name: "Basketbol", ParentID: ptr(2)},
		{ID: 5, Name: "Yetim", ParentID: ptr(99)}, // parent does not resolve
	}

	roots := bucketCategories(flat)

	if len(roots) != 2 {
		t.Fatalf("roots: got %d, want 2", len(roots))
	}

	var spor *models.Category
	for i := range roots {
		if roots[i].Name == "Spor" {
			spor = &roots[i]
		}
		if roots[i].Name == "Gündem" && len(roots[i].Children) != 0 {
			t.Errorf("Gündem children: got %d, want 0", len(roots[i].Children))
		}
	}
	if spor == nil {
		t.Fatal("Spor root missing")
	}
	if len(spor.Children) != 2 {
		t.Fatalf("Spor children: got %d, want 2", len(spor.Children))
	}

	// The child with an unresolvable parent must not surface anywhere.
	total := 0
	for _, r := range roots {
		total += len(r.Children)
	}
	if total != 2 {
		t.Errorf("attached children: got %d, want 2", total)
	}
}

// TestBucketCategoriesSingleLevel verifies grandchildren stay detached.
func TestBucketCategoriesSingleLevel(t *testing.T) {
	ptr := func(v int64) *int64 { return &v }

	flat := []models.Category{
		{ID: 1, Name: "Root"},
		{ID: 2, Name: "Child", ParentID: ptr(1)},
		{ID: 3, Name: "Grandchild", ParentID: ptr(2)},
	}

	roots := bucketCategories(flat)
	if len(roots) != 1 {
		t.Fatalf("roots: got %d, want 1", len(roots))
	}
	if len(roots[0].Children) != 1 {
		t.Fatalf("children: got %d, want 1", len(roots[0].Children))
	}
	if len(roots[0].Children[0].Children) != 0 {
		t.Error("grandchildren must not be attached in the same call")
	}
}

func TestCategoryStoreNewsCount(t *testing.T) {
	db := testDB(t)
	cats := NewCategoryStore(db)
	news := NewNewsStore(db)

	authorID := seedUser(t, db, "writer-"+uuid.NewString()[:8], models.RoleWriter)
	catID := seedCategory(t, db, "Sayım", "cat-count-"+uuid.NewString()[:8])
	emptyID := seedCategory(t, db, "Boş", "cat-empty-"+uuid.NewString()[:8])

	for i := 0; i < 3; i++ {
		slug := "test-count-" + uuid.NewString()[:8]
		t.Cleanup(func() { cleanNews(t, db, slug) })
		if _, err := news.Create(testNews(authorID, catID, slug, models.StatusDraft)); err != nil {
			t.Fatalf("Create news: %v", err)
		}
	}

	roots, err := cats.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	counts := make(map[int64]int)
	for _, c := range roots {
		counts[c.ID] = c.NewsCount
		for _, ch := range c.Children {
			counts[ch.ID] = ch.NewsCount
		}
	}

	if counts[catID] != 3 {
		t.Errorf("news count for seeded category: got %d, want 3", counts[catID])
	}
	if counts[emptyID] != 0 {
		t.Errorf("news count for empty category: got %d, want 0", counts[emptyID])
	}
}
