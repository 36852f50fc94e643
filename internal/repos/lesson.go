package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/types"
)

type LessonRepo interface {
	Create(ctx context.Context, tx *gorm.DB, lesson *types.Lesson) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Lesson, error)
	Save(ctx context.Context, tx *gorm.DB, lesson *types.Lesson) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	GetByModuleID(ctx context.Context, tx *gorm.DB, moduleID uint) ([]*types.Lesson, error)
	GetByModuleIDs(ctx context.Context, tx *gorm.DB, moduleIDs []uint) ([]*types.Lesson, error)
	DeleteByModuleIDs(ctx context.Context, tx *gorm.DB, moduleIDs []uint) error
}

type lessonRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLessonRepo(db *gorm.DB, baseLog *logger.Logger) LessonRepo {
	return &lessonRepo{db: db, log: baseLog.With("repo", "LessonRepo")}
}

func (r *lessonRepo) Create(ctx context.Context, tx *gorm.DB, lesson *types.Lesson) error {
	return conn(r.db, tx).WithContext(ctx).Create(lesson).Error
}

func (r *lessonRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Lesson, error) {
	var lesson types.Lesson
	err := conn(r.db, tx).WithContext(ctx).
		Preload("Module").
		First(&lesson, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (r *lessonRepo) Save(ctx context.Context, tx *gorm.DB, lesson *types.Lesson) error {
	return conn(r.db, tx).WithContext(ctx).Omit("Module").Save(lesson).Error
}

func (r *lessonRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return conn(r.db, tx).WithContext(ctx).Delete(&types.Lesson{}, id).Error
}

func (r *lessonRepo) GetByModuleID(ctx context.Context, tx *gorm.DB, moduleID uint) ([]*types.Lesson, error) {
	var lessons []*types.Lesson
	if err := conn(r.db, tx).WithContext(ctx).
		Preload("Module").
		Where("module_id = ?", moduleID).
		Order("id").
		Find(&lessons).Error; err != nil {
		return nil, err
	}
	return lessons, nil
}

func (r *lessonRepo) GetByModuleIDs(ctx context.Context, tx *gorm.DB, moduleIDs []uint) ([]*types.Lesson, error) {
	var lessons []*types.Lesson
	if len(moduleIDs) == 0 {
		return lessons, nil
	}
	if err := conn(r.db, tx).WithContext(ctx).
		Where("module_id IN ?", moduleIDs).
		Find(&lessons).Error; err != nil {
		return nil, err
	}
	return lessons, nil
}

func (r *lessonRepo) DeleteByModuleIDs(ctx context.Context, tx *gorm.DB, moduleIDs []uint) error {
	if len(moduleIDs) == 0 {
		return nil
	}
	return conn(r.db, tx).WithContext(ctx).
		Where("module_id IN ?", moduleIDs).
		Delete(&types.Lesson{}).Error
}
