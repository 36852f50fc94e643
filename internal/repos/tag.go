package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/types"
)

type TagRepo interface {
	Create(ctx context.Context, tx *gorm.DB, tag *types.Tag) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Tag, error)
	GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Tag, error)
	All(ctx context.Context, tx *gorm.DB) ([]*types.Tag, error)
	Save(ctx context.Context, tx *gorm.DB, tag *types.Tag) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	DeleteCourseLinks(ctx context.Context, tx *gorm.DB, tagID uint) error
}

type tagRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTagRepo(db *gorm.DB, baseLog *logger.Logger) TagRepo {
	return &tagRepo{db: db, log: baseLog.With("repo", "TagRepo")}
}

func (r *tagRepo) Create(ctx context.Context, tx *gorm.DB, tag *types.Tag) error {
	return conn(r.db, tx).WithContext(ctx).Create(tag).Error
}

func (r *tagRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Tag, error) {
	var tag types.Tag
	err := conn(r.db, tx).WithContext(ctx).First(&tag, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Tag, error) {
	var tag types.Tag
	err := conn(r.db, tx).WithContext(ctx).Where("name = ?", name).First(&tag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepo) All(ctx context.Context, tx *gorm.DB) ([]*types.Tag, error) {
	var tags []*types.Tag
	if err := conn(r.db, tx).WithContext(ctx).Order("id").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *tagRepo) Save(ctx context.Context, tx *gorm.DB, tag *types.Tag) error {
	return conn(r.db, tx).WithContext(ctx).Save(tag).Error
}

func (r *tagRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return conn(r.db, tx).WithContext(ctx).Delete(&types.Tag{}, id).Error
}

// DeleteCourseLinks clears the join rows for a tag ahead of deleting it.
func (r *tagRepo) DeleteCourseLinks(ctx context.Context, tx *gorm.DB, tagID uint) error {
	return conn(r.db, tx).WithContext(ctx).
		Exec("DELETE FROM course_tag WHERE tag_id = ?", tagID).Error
}
