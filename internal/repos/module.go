package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/types"
)

type ModuleRepo interface {
	Create(ctx context.Context, tx *gorm.DB, module *types.Module) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Module, error)
	Save(ctx context.Context, tx *gorm.DB, module *types.Module) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	GetByCourseID(ctx context.Context, tx *gorm.DB, courseID uint) ([]*types.Module, error)
	DeleteByCourseID(ctx context.Context, tx *gorm.DB, courseID uint) error
}

type moduleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewModuleRepo(db *gorm.DB, baseLog *logger.Logger) ModuleRepo {
	return &moduleRepo{db: db, log: baseLog.With("repo", "ModuleRepo")}
}

func (r *moduleRepo) Create(ctx context.Context, tx *gorm.DB, module *types.Module) error {
	return conn(r.db, tx).WithContext(ctx).Create(module).Error
}

func (r *moduleRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Module, error) {
	var module types.Module
	err := conn(r.db, tx).WithContext(ctx).
		Preload("Course").
		First(&module, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &module, nil
}

func (r *moduleRepo) Save(ctx context.Context, tx *gorm.DB, module *types.Module) error {
	return conn(r.db, tx).WithContext(ctx).Omit("Course").Save(module).Error
}

func (r *moduleRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return conn(r.db, tx).WithContext(ctx).Delete(&types.Module{}, id).Error
}

// GetByCourseID returns modules in their caller-assigned order.
func (r *moduleRepo) GetByCourseID(ctx context.Context, tx *gorm.DB, courseID uint) ([]*types.Module, error) {
	var modules []*types.Module
	if err := conn(r.db, tx).WithContext(ctx).
		Preload("Course").
		Where("course_id = ?", courseID).
		Order("order_index").
		Find(&modules).Error; err != nil {
		return nil, err
	}
	return modules, nil
}

func (r *moduleRepo) DeleteByCourseID(ctx context.Context, tx *gorm.DB, courseID uint) error {
	return conn(r.db, tx).WithContext(ctx).
		Where("course_id = ?", courseID).
		Delete(&types.Module{}).Error
}
