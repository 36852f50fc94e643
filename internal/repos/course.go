package repos

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/types"
)

type CourseRepo interface {
	Create(ctx context.Context, tx *gorm.DB, course *types.Course) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Course, error)
	Save(ctx context.Context, tx *gorm.DB, course *types.Course) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	List(ctx context.Context, tx *gorm.DB) ([]*types.Course, error)
	GetByTeacherID(ctx context.Context, tx *gorm.DB, teacherID uint) ([]*types.Course, error)
	GetByCategoryID(ctx context.Context, tx *gorm.DB, categoryID uint) ([]*types.Course, error)
	SearchByTitle(ctx context.Context, tx *gorm.DB, keyword string) ([]*types.Course, error)
	GetByTagName(ctx context.Context, tx *gorm.DB, tagName string) ([]*types.Course, error)
	GetTags(ctx context.Context, tx *gorm.DB, course *types.Course) ([]types.Tag, error)
	AddTags(ctx context.Context, tx *gorm.DB, course *types.Course, tags []types.Tag) error
	RemoveTags(ctx context.Context, tx *gorm.DB, course *types.Course, tags []types.Tag) error
	ClearTags(ctx context.Context, tx *gorm.DB, course *types.Course) error
}

type courseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCourseRepo(db *gorm.DB, baseLog *logger.Logger) CourseRepo {
	return &courseRepo{db: db, log: baseLog.With("repo", "CourseRepo")}
}

func (r *courseRepo) Create(ctx context.Context, tx *gorm.DB, course *types.Course) error {
	return conn(r.db, tx).WithContext(ctx).Create(course).Error
}

func (r *courseRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Course, error) {
	var course types.Course
	err := conn(r.db, tx).WithContext(ctx).
		Preload("Teacher").
		Preload("Category").
		First(&course, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepo) Save(ctx context.Context, tx *gorm.DB, course *types.Course) error {
	return conn(r.db, tx).WithContext(ctx).
		Omit("Tags", "Teacher", "Category").
		Save(course).Error
}

func (r *courseRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return conn(r.db, tx).WithContext(ctx).Delete(&types.Course{}, id).Error
}

func (r *courseRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Course, error) {
	var courses []*types.Course
	if err := conn(r.db, tx).WithContext(ctx).
		Preload("Teacher").
		Preload("Category").
		Order("id").
		Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepo) GetByTeacherID(ctx context.Context, tx *gorm.DB, teacherID uint) ([]*types.Course, error) {
	var courses []*types.Course
	if err := conn(r.db, tx).WithContext(ctx).
		Preload("Teacher").
		Preload("Category").
		Where("teacher_id = ?", teacherID).
		Order("id").
		Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepo) GetByCategoryID(ctx context.Context, tx *gorm.DB, categoryID uint) ([]*types.Course, error) {
	var courses []*types.Course
	if err := conn(r.db, tx).WithContext(ctx).
		Preload("Teacher").
		Preload("Category").
		Where("category_id = ?", categoryID).
		Order("id").
		Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepo) SearchByTitle(ctx context.Context, tx *gorm.DB, keyword string) ([]*types.Course, error) {
	var courses []*types.Course
	if err := conn(r.db, tx).WithContext(ctx).
		Preload("Teacher").
		Preload("Category").
		Where("LOWER(title) LIKE ?", "%"+strings.ToLower(keyword)+"%").
		Order("id").
		Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepo) GetByTagName(ctx context.Context, tx *gorm.DB, tagName string) ([]*types.Course, error) {
	var courses []*types.Course
	if err := conn(r.db, tx).WithContext(ctx).
		Preload("Teacher").
		Preload("Category").
		Joins("JOIN course_tag ON course_tag.course_id = courses.id").
		Joins("JOIN tags ON tags.id = course_tag.tag_id").
		Where("tags.name = ?", tagName).
		Order("courses.id").
		Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepo) GetTags(ctx context.Context, tx *gorm.DB, course *types.Course) ([]types.Tag, error) {
	var tags []types.Tag
	if err := conn(r.db, tx).WithContext(ctx).
		Model(course).
		Association("Tags").
		Find(&tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *courseRepo) AddTags(ctx context.Context, tx *gorm.DB, course *types.Course, tags []types.Tag) error {
	return conn(r.db, tx).WithContext(ctx).
		Model(course).
		Omit("Tags.*").
		Association("Tags").
		Append(&tags)
}

func (r *courseRepo) RemoveTags(ctx context.Context, tx *gorm.DB, course *types.Course, tags []types.Tag) error {
	return conn(r.db, tx).WithContext(ctx).
		Model(course).
		Association("Tags").
		Delete(&tags)
}

func (r *courseRepo) ClearTags(ctx context.Context, tx *gorm.DB, course *types.Course) error {
	return conn(r.db, tx).WithContext(ctx).
		Model(course).
		Association("Tags").
		Clear()
}
