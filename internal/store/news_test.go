package store

import (
	"sync"
	"testing"

	"github.com/google/uuid"

	"gazete/internal/models"
)

func testNews(authorID, categoryID int64, slug string, status models.ContentStatus) *models.News {
	return &models.News{
		Title:      "Test News",
		Slug:       slug,
		Content:    "<p>body</p>",
		Status:     status,
		AuthorID:   authorID,
		CategoryID: categoryID,
	}
}

func TestNewsStoreCreateAndFind(t *testing.T) {
	db := testDB(t)
	s := NewNewsStore(db)

	authorID := seedUser(t, db, "writer-"+uuid.NewString()[:8], models.RoleWriter)
	categoryID := seedCategory(t, db, "Politika", "cat-"+uuid.NewString()[:8])

	slug := "test-news-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanNews(t, db, slug) })

	created, err := s.Create(testNews(authorID, categoryID, slug, models.StatusDraft))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected non-zero id")
	}
	if created.PublishedAt != nil {
		t.Error("expected nil published_at for draft")
	}

	found, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found == nil {
		t.Fatal("expected news, got nil")
	}
	if found.Slug != slug {
		t.Errorf("slug: got %q, want %q", found.Slug, slug)
	}
	if found.Author.ID != authorID {
		t.Errorf("author id: got %d, want %d", found.Author.ID, authorID)
	}
	if found.Author.Username == "" {
		t.Error("expected projected author username")
	}
	if found.Category.ID != categoryID {
		t.Errorf("category id: got %d, want %d", found.Category.ID, categoryID)
	}
	if found.Category.Name != "Politika" {
		t.Errorf("category name: got %q", found.Category.Name)
	}
}

func TestNewsStoreCreatePublishedSetsTimestamp(t *testing.T) {
	db := testDB(t)
	s := NewNewsStore(db)

	authorID := seedUser(t, db, "writer-"+uuid.NewString()[:8], models.RoleWriter)
	categoryID := seedCategory(t, db, "Spor", "cat-"+uuid.NewString()[:8])

	slug := "test-pub-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanNews(t, db, slug) })

	created, err := s.Create(testNews(authorID, categoryID, slug, models.StatusPublished))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.PublishedAt == nil {
		t.Error("expected non-nil published_at for published news")
	}
}

// Rows whose author has been deleted must disappear from enriched reads
// while the base row remains reachable.
func TestNewsStoreDanglingAuthorDropped(t *testing.T) {
	db := testDB(t)
	s := NewNewsStore(db)

	authorID := seedUser(t, db, "ghost-"+uuid.NewString()[:8], models.RoleWriter)
	categoryID := seedCategory(t, db, "Ekonomi", "cat-"+uuid.NewString()[:8])

	slug := "test-dangling-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanNews(t, db, slug) })

	created, err := s.Create(testNews(authorID, categoryID, slug, models.StatusDraft))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := db.Exec("DELETE FROM users WHERE id = $1", authorID); err != nil {
		t.Fatalf("delete author: %v", err)
	}

	found, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found != nil {
		t.Error("expected nil for news with dangling author")
	}

	row, err := s.FindRowByID(created.ID)
	if err != nil {
		t.Fatalf("FindRowByID: %v", err)
	}
	if row == nil {
		t.Fatal("expected base row to survive author deletion")
	}

	list, err := s.List(models.NewsFilters{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for _, n := range list {
		if n.ID == created.ID {
			t.Error("expected dangling news excluded from list")
		}
	}
}

func TestNewsStoreFilterConjunction(t *testing.T) {
	db := testDB(t)
	s := NewNewsStore(db)

	authorID := seedUser(t, db, "writer-"+uuid.NewString()[:8], models.RoleWriter)
	catA := seedCategory(t, db, "A", "cat-a-"+uuid.NewString()[:8])
	catB := seedCategory(t, db, "B", "cat-b-"+uuid.NewString()[:8])

	// Five rows: 2 published in catA, 1 published in catB, 1 draft in
	// catA, 1 draft in catB.
	seeds := []struct {
		cat    int64
		status models.ContentStatus
	}{
		{catA, models.StatusPublished},
		{catA, models.StatusPublished},
		{catB, models.StatusPublished},
		{catA, models.StatusDraft},
		{catB, models.StatusDraft},
	}
	ids := make(map[int64]bool)
	for _, sd := range seeds {
		slug := "test-filter-" + uuid.NewString()[:8]
		t.Cleanup(func() { cleanNews(t, db, slug) })
		created, err := s.Create(testNews(authorID, sd.cat, slug, sd.status))
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		ids[created.ID] = true
	}

	published := models.StatusPublished
	both, err := s.List(models.NewsFilters{Status: &published, CategoryID: &catA})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	var got int
	for _, n := range both {
		if ids[n.ID] {
			got++
			if n.Status != models.StatusPublished || n.CategoryID != catA {
				t.Errorf("row %d fails conjunction: status=%s category=%d", n.ID, n.Status, n.CategoryID)
			}
		}
	}
	if got != 2 {
		t.Errorf("status+category filter: got %d seeded rows, want 2", got)
	}

	// Omitting the category filter must drop that predicate entirely.
	onlyStatus, err := s.List(models.NewsFilters{Status: &published, AuthorID: &authorID})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	got = 0
	for _, n := range onlyStatus {
		if ids[n.ID] {
			got++
		}
	}
	if got != 3 {
		t.Errorf("status-only filter: got %d seeded rows, want 3", got)
	}
}

// Two concurrent increments on the same row must both land.
func TestNewsStoreIncrementViewsAtomic(t *testing.T) {
	db := testDB(t)
	s := NewNewsStore(db)

	authorID := seedUser(t, db, "writer-"+uuid.NewString()[:8], models.RoleWriter)
	categoryID := seedCategory(t, db, "C", "cat-"+uuid.NewString()[:8])

	slug := "test-incr-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanNews(t, db, slug) })

	created, err := s.Create(testNews(authorID, categoryID, slug, models.StatusPublished))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	const workers = 10
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.IncrementViews(created.ID); err != nil {
				t.Errorf("IncrementViews: %v", err)
			}
		}()
	}
	wg.Wait()

	row, err := s.FindRowByID(created.ID)
	if err != nil {
		t.Fatalf("FindRowByID: %v", err)
	}
	if row.ViewCount != workers {
		t.Errorf("view count: got %d, want %d", row.ViewCount, workers)
	}
}

func TestNewsStoreDuplicateSlugConflict(t *testing.T) {
	db := testDB(t)
	s := NewNewsStore(db)

	authorID := seedUser(t, db, "writer-"+uuid.NewString()[:8], models.RoleWriter)
	categoryID := seedCategory(t, db, "D", "cat-"+uuid.NewString()[:8])

	slug := "test-dup-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanNews(t, db, slug) })

	if _, err := s.Create(testNews(authorID, categoryID, slug, models.StatusDraft)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err := s.Create(testNews(authorID, categoryID, slug, models.StatusDraft))
	if err == nil {
		t.Fatal("expected duplicate slug error")
	}
	if !IsConflict(err) {
		t.Errorf("expected IsConflict for duplicate slug, got %v", err)
	}
}
