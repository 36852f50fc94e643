package services

import (
	"context"
	"sync/atomic"

	"github.com/openedu/institution-backend/internal/apierr"
	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/repos"
	"github.com/openedu/institution-backend/internal/types"
)

// CategoryCache serves the category reference table from an in-process
// snapshot. The snapshot is immutable once published; Refresh builds a
// full replacement and swaps the pointer, so readers observe either the
// old snapshot or the new one, never a partially built map.
type CategoryCache struct {
	log          *logger.Logger
	categoryRepo repos.CategoryRepo
	snapshot     atomic.Pointer[categorySnapshot]
}

type categorySnapshot struct {
	byID    map[uint]types.Category
	ordered []types.Category
}

func NewCategoryCache(baseLog *logger.Logger, categoryRepo repos.CategoryRepo) *CategoryCache {
	return &CategoryCache{
		log:          baseLog.With("service", "CategoryCache"),
		categoryRepo: categoryRepo,
	}
}

// Load populates the snapshot. It must succeed once at boot; callers
// treat a failed initial load as fatal.
func (c *CategoryCache) Load(ctx context.Context) error {
	categories, err := c.categoryRepo.GetAll(ctx, nil)
	if err != nil {
		c.log.Error("load categories failed", "error", err)
		return apierr.Unavailable("category cache load failed", err)
	}
	snap := &categorySnapshot{
		byID:    make(map[uint]types.Category, len(categories)),
		ordered: make([]types.Category, 0, len(categories)),
	}
	for _, category := range categories {
		snap.byID[category.ID] = category
		snap.ordered = append(snap.ordered, category)
	}
	c.snapshot.Store(snap)
	c.log.Info("category cache loaded", "count", len(categories))
	return nil
}

// Refresh rebuilds the snapshot from the store. On failure the previous
// snapshot stays in place.
func (c *CategoryCache) Refresh(ctx context.Context) error {
	return c.Load(ctx)
}

func (c *CategoryCache) FindByID(id uint) (types.Category, bool) {
	snap := c.snapshot.Load()
	if snap == nil {
		return types.Category{}, false
	}
	category, ok := snap.byID[id]
	return category, ok
}

// All returns the cached categories in id order.
func (c *CategoryCache) All() []types.Category {
	snap := c.snapshot.Load()
	if snap == nil {
		return nil
	}
	out := make([]types.Category, len(snap.ordered))
	copy(out, snap.ordered)
	return out
}
