package services

import (
	"context"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/openedu/institution-backend/internal/apierr"
)

func TestCategoryCacheLoadAndLookup(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	programming := h.seedCategory(t, "Programming")
	h.seedCategory(t, "Mathematics")
	h.loadCache(t)

	category, ok := h.cache.FindByID(programming.ID)
	if !ok {
		t.Fatalf("category %d not in cache", programming.ID)
	}
	if category.Name != "Programming" {
		t.Fatalf("name = %q", category.Name)
	}
	if _, ok := h.cache.FindByID(999); ok {
		t.Fatal("missing id resolved from cache")
	}

	all := h.cache.All()
	if len(all) != 2 {
		t.Fatalf("cache size = %d, want 2", len(all))
	}

	got, err := h.categories.GetByID(ctx, programming.ID)
	if err != nil {
		t.Fatalf("service get: %v", err)
	}
	if got.Name != "Programming" {
		t.Fatalf("service name = %q", got.Name)
	}
	if _, err := h.categories.GetByID(ctx, 999); !apierr.IsNotFound(err) {
		t.Fatalf("missing category = %v, want not found", err)
	}
}

func TestCategoryCacheRefreshPicksUpNewRows(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.seedCategory(t, "Science")
	h.loadCache(t)

	added := h.seedCategory(t, "Languages")
	if _, ok := h.cache.FindByID(added.ID); ok {
		t.Fatal("new row visible before refresh")
	}

	if err := h.cache.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if _, ok := h.cache.FindByID(added.ID); !ok {
		t.Fatal("new row not visible after refresh")
	}
}

// Readers racing a refresh must always observe a complete snapshot:
// every id of either the old generation or the new one, never a
// half-built map.
func TestCategoryCacheRefreshIsAtomic(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	first := make([]uint, 0, 4)
	for _, name := range []string{"Business", "Design", "Music", "Health"} {
		first = append(first, h.seedCategory(t, name).ID)
	}
	h.loadCache(t)

	second := make([]uint, 0, 4)
	for _, name := range []string{"History", "Art", "Writing", "Law"} {
		second = append(second, h.seedCategory(t, name).ID)
	}

	var g errgroup.Group
	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		g.Go(func() error {
			for {
				select {
				case <-done:
					return nil
				default:
				}
				all := h.cache.All()
				if len(all) != 4 && len(all) != 8 {
					t.Errorf("snapshot size = %d, want 4 or 8", len(all))
					return nil
				}
				// The first generation is present in every snapshot.
				seen := make(map[uint]bool, len(all))
				for _, category := range all {
					seen[category.ID] = true
				}
				for _, id := range first {
					if !seen[id] {
						t.Errorf("id %d missing from snapshot", id)
						return nil
					}
				}
			}
		})
	}
	g.Go(func() error {
		defer close(done)
		for i := 0; i < 50; i++ {
			if err := h.cache.Refresh(ctx); err != nil {
				return err
			}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		t.Fatalf("refresh loop: %v", err)
	}

	for _, id := range second {
		if _, ok := h.cache.FindByID(id); !ok {
			t.Fatalf("id %d missing after final refresh", id)
		}
	}
}
