package memstore

import (
	"errors"
	"testing"
	"time"

	"gazete/internal/models"
	"gazete/internal/store"
)

func TestNewerFirstTieBreak(t *testing.T) {
	now := time.Now()
	items := []models.City{
		{ID: 1, Name: "a"},
		{ID: 3, Name: "c"},
		{ID: 2, Name: "b"},
	}
	// Identical timestamps fall back to descending id.
	newerFirst(items,
		func(models.City) time.Time { return now },
		func(c models.City) int64 { return c.ID },
	)
	if items[0].ID != 3 || items[1].ID != 2 || items[2].ID != 1 {
		t.Errorf("order: got %d, %d, %d", items[0].ID, items[1].ID, items[2].ID)
	}
}

func TestAdsPriorityOrdering(t *testing.T) {
	s := New()
	ads := s.Ads()

	low, err := ads.Create(&models.Advertisement{Title: "low", Position: models.AdFooter, Priority: 1})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	high, err := ads.Create(&models.Advertisement{Title: "high", Position: models.AdHeader, Priority: 9})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	items, err := ads.List(models.AdFilters{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 || items[0].ID != high.ID || items[1].ID != low.ID {
		t.Errorf("priority order wrong: %+v", items)
	}
}

func TestSlugConflictIsDetectable(t *testing.T) {
	s := New()
	mags := s.Magazines()

	if _, err := mags.Create(&models.DigitalMagazine{Title: "Dergi", Slug: "dergi", IssueNumber: 1}); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := mags.Create(&models.DigitalMagazine{Title: "Dergi 2", Slug: "dergi", IssueNumber: 2})
	if err == nil {
		t.Fatal("duplicate slug accepted")
	}
	if !store.IsConflict(err) {
		t.Errorf("error not a conflict: %v", err)
	}
	if !errors.Is(err, store.ErrConflict) {
		t.Errorf("error does not wrap ErrConflict: %v", err)
	}
}

func TestSequencesAreIndependent(t *testing.T) {
	s := New()

	city, err := s.Cities().Create(&models.City{Name: "Ankara", Slug: "ankara"})
	if err != nil {
		t.Fatalf("create city: %v", err)
	}
	src, err := s.Sources().Create(&models.Source{Name: "Ajans", Slug: "ajans", Type: models.SourceAgency})
	if err != nil {
		t.Fatalf("create source: %v", err)
	}
	if city.ID != 1 || src.ID != 1 {
		t.Errorf("ids: city=%d source=%d, want 1/1", city.ID, src.ID)
	}
}
