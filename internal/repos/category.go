package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/types"
)

type CategoryRepo interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]types.Category, error)
}

type categoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCategoryRepo(db *gorm.DB, baseLog *logger.Logger) CategoryRepo {
	return &categoryRepo{db: db, log: baseLog.With("repo", "CategoryRepo")}
}

func (r *categoryRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]types.Category, error) {
	var categories []types.Category
	if err := conn(r.db, tx).WithContext(ctx).
		Order("id").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
