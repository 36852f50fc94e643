package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/types"
)

type AssignmentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, assignment *types.Assignment) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Assignment, error)
	Save(ctx context.Context, tx *gorm.DB, assignment *types.Assignment) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	GetByLessonID(ctx context.Context, tx *gorm.DB, lessonID uint) ([]*types.Assignment, error)
	GetByLessonIDs(ctx context.Context, tx *gorm.DB, lessonIDs []uint) ([]*types.Assignment, error)
	DeleteByLessonIDs(ctx context.Context, tx *gorm.DB, lessonIDs []uint) error
}

type assignmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAssignmentRepo(db *gorm.DB, baseLog *logger.Logger) AssignmentRepo {
	return &assignmentRepo{db: db, log: baseLog.With("repo", "AssignmentRepo")}
}

func (r *assignmentRepo) Create(ctx context.Context, tx *gorm.DB, assignment *types.Assignment) error {
	return conn(r.db, tx).WithContext(ctx).Create(assignment).Error
}

func (r *assignmentRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Assignment, error) {
	var assignment types.Assignment
	err := conn(r.db, tx).WithContext(ctx).
		Preload("Lesson").
		First(&assignment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepo) Save(ctx context.Context, tx *gorm.DB, assignment *types.Assignment) error {
	return conn(r.db, tx).WithContext(ctx).Omit("Lesson").Save(assignment).Error
}

func (r *assignmentRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return conn(r.db, tx).WithContext(ctx).Delete(&types.Assignment{}, id).Error
}

func (r *assignmentRepo) GetByLessonID(ctx context.Context, tx *gorm.DB, lessonID uint) ([]*types.Assignment, error) {
	var assignments []*types.Assignment
	if err := conn(r.db, tx).WithContext(ctx).
		Preload("Lesson").
		Where("lesson_id = ?", lessonID).
		Order("id").
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *assignmentRepo) GetByLessonIDs(ctx context.Context, tx *gorm.DB, lessonIDs []uint) ([]*types.Assignment, error) {
	var assignments []*types.Assignment
	if len(lessonIDs) == 0 {
		return assignments, nil
	}
	if err := conn(r.db, tx).WithContext(ctx).
		Where("lesson_id IN ?", lessonIDs).
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *assignmentRepo) DeleteByLessonIDs(ctx context.Context, tx *gorm.DB, lessonIDs []uint) error {
	if len(lessonIDs) == 0 {
		return nil
	}
	return conn(r.db, tx).WithContext(ctx).
		Where("lesson_id IN ?", lessonIDs).
		Delete(&types.Assignment{}).Error
}
