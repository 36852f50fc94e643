package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/openedu/institution-backend/internal/apierr"
	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/repos"
	"github.com/openedu/institution-backend/internal/types"
)

type TagService interface {
	Create(ctx context.Context, name string) (*types.TagResponse, error)
	GetByID(ctx context.Context, id uint) (*types.TagResponse, error)
	GetByName(ctx context.Context, name string) (*types.TagResponse, error)
	Update(ctx context.Context, id uint, name string) (*types.TagResponse, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]types.TagResponse, error)
	AddToCourse(ctx context.Context, courseID, tagID uint) ([]types.TagResponse, error)
	RemoveFromCourse(ctx context.Context, courseID, tagID uint) ([]types.TagResponse, error)
	AddBatch(ctx context.Context, courseID uint, tagIDs []uint) ([]types.TagResponse, error)
	RemoveBatch(ctx context.Context, courseID uint, tagIDs []uint) ([]types.TagResponse, error)
	ListForCourse(ctx context.Context, courseID uint) ([]types.TagResponse, error)
}

type tagService struct {
	db         *gorm.DB
	log        *logger.Logger
	courseRepo repos.CourseRepo
	tagRepo    repos.TagRepo
}

func NewTagService(
	db *gorm.DB,
	baseLog *logger.Logger,
	courseRepo repos.CourseRepo,
	tagRepo repos.TagRepo,
) TagService {
	return &tagService{
		db:         db,
		log:        baseLog.With("service", "TagService"),
		courseRepo: courseRepo,
		tagRepo:    tagRepo,
	}
}

func (s *tagService) Create(ctx context.Context, name string) (*types.TagResponse, error) {
	var created *types.Tag
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.tagRepo.GetByName(ctx, tx, name)
		if err != nil {
			return err
		}
		if existing != nil {
			return apierr.Conflictf("Tag", "tag with name '%s' already exists", name)
		}
		tag := &types.Tag{Name: name}
		if err := s.tagRepo.Create(ctx, tx, tag); err != nil {
			return err
		}
		created = tag
		return nil
	})
	if err != nil {
		s.log.Warn("create tag failed", "error", err, "name", name)
		return nil, err
	}
	out := toTagResponse(created)
	return &out, nil
}

func (s *tagService) GetByID(ctx context.Context, id uint) (*types.TagResponse, error) {
	tag, err := s.tagRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, apierr.NotFound("Tag", id)
	}
	out := toTagResponse(tag)
	return &out, nil
}

func (s *tagService) GetByName(ctx context.Context, name string) (*types.TagResponse, error) {
	tag, err := s.tagRepo.GetByName(ctx, nil, name)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, apierr.NotFoundf("Tag", "tag with name '%s' not found", name)
	}
	out := toTagResponse(tag)
	return &out, nil
}

// Update renames the tag. The new name must not collide with another tag.
func (s *tagService) Update(ctx context.Context, id uint, name string) (*types.TagResponse, error) {
	var updated *types.Tag
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tag, err := s.tagRepo.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if tag == nil {
			return apierr.NotFound("Tag", id)
		}
		existing, err := s.tagRepo.GetByName(ctx, tx, name)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != id {
			return apierr.Conflictf("Tag", "tag with name '%s' already exists", name)
		}
		tag.Name = name
		if err := s.tagRepo.Save(ctx, tx, tag); err != nil {
			return err
		}
		updated = tag
		return nil
	})
	if err != nil {
		s.log.Warn("update tag failed", "error", err, "tag_id", id)
		return nil, err
	}
	out := toTagResponse(updated)
	return &out, nil
}

// Delete removes the tag and its course links. Courses themselves are
// untouched.
func (s *tagService) Delete(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tag, err := s.tagRepo.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if tag == nil {
			return apierr.NotFound("Tag", id)
		}
		if err := s.tagRepo.DeleteCourseLinks(ctx, tx, id); err != nil {
			return err
		}
		return s.tagRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		s.log.Warn("delete tag failed", "error", err, "tag_id", id)
		return err
	}
	return nil
}

func (s *tagService) List(ctx context.Context) ([]types.TagResponse, error) {
	tags, err := s.tagRepo.All(ctx, nil)
	if err != nil {
		return nil, err
	}
	return toTagResponses(tags), nil
}

func (s *tagService) AddToCourse(ctx context.Context, courseID, tagID uint) ([]types.TagResponse, error) {
	return s.AddBatch(ctx, courseID, []uint{tagID})
}

func (s *tagService) RemoveFromCourse(ctx context.Context, courseID, tagID uint) ([]types.TagResponse, error) {
	return s.RemoveBatch(ctx, courseID, []uint{tagID})
}

// AddBatch attaches tags to a course as a set operation: duplicate ids
// in the batch and tags already on the course are no-ops. All tag ids
// are resolved before anything is written.
func (s *tagService) AddBatch(ctx context.Context, courseID uint, tagIDs []uint) ([]types.TagResponse, error) {
	var out []types.TagResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		course, tags, err := s.resolve(ctx, tx, courseID, tagIDs)
		if err != nil {
			return err
		}
		current, err := s.courseRepo.GetTags(ctx, tx, course)
		if err != nil {
			return err
		}
		attached := make(map[uint]bool, len(current))
		for _, tag := range current {
			attached[tag.ID] = true
		}
		var toAdd []types.Tag
		for _, tag := range tags {
			if attached[tag.ID] {
				continue
			}
			attached[tag.ID] = true
			toAdd = append(toAdd, tag)
		}
		if len(toAdd) > 0 {
			if err := s.courseRepo.AddTags(ctx, tx, course, toAdd); err != nil {
				return err
			}
		}
		final, err := s.courseRepo.GetTags(ctx, tx, course)
		if err != nil {
			return err
		}
		out = tagSetResponses(final)
		return nil
	})
	if err != nil {
		s.log.Warn("add tags failed", "error", err, "course_id", courseID)
		return nil, err
	}
	return out, nil
}

// RemoveBatch detaches tags from a course; tags not currently attached
// are no-ops. All tag ids are resolved before anything is written.
func (s *tagService) RemoveBatch(ctx context.Context, courseID uint, tagIDs []uint) ([]types.TagResponse, error) {
	var out []types.TagResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		course, tags, err := s.resolve(ctx, tx, courseID, tagIDs)
		if err != nil {
			return err
		}
		if len(tags) > 0 {
			if err := s.courseRepo.RemoveTags(ctx, tx, course, tags); err != nil {
				return err
			}
		}
		final, err := s.courseRepo.GetTags(ctx, tx, course)
		if err != nil {
			return err
		}
		out = tagSetResponses(final)
		return nil
	})
	if err != nil {
		s.log.Warn("remove tags failed", "error", err, "course_id", courseID)
		return nil, err
	}
	return out, nil
}

func (s *tagService) ListForCourse(ctx context.Context, courseID uint) ([]types.TagResponse, error) {
	course, err := s.courseRepo.GetByID(ctx, nil, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apierr.NotFound("Course", courseID)
	}
	tags, err := s.courseRepo.GetTags(ctx, nil, course)
	if err != nil {
		return nil, err
	}
	return tagSetResponses(tags), nil
}

// resolve loads the course and every distinct tag id, failing fast on
// the first missing reference.
func (s *tagService) resolve(ctx context.Context, tx *gorm.DB, courseID uint, tagIDs []uint) (*types.Course, []types.Tag, error) {
	course, err := s.courseRepo.GetByID(ctx, tx, courseID)
	if err != nil {
		return nil, nil, err
	}
	if course == nil {
		return nil, nil, apierr.NotFound("Course", courseID)
	}
	seen := make(map[uint]bool, len(tagIDs))
	tags := make([]types.Tag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		if seen[tagID] {
			continue
		}
		seen[tagID] = true
		tag, err := s.tagRepo.GetByID(ctx, tx, tagID)
		if err != nil {
			return nil, nil, err
		}
		if tag == nil {
			return nil, nil, apierr.NotFound("Tag", tagID)
		}
		tags = append(tags, *tag)
	}
	return course, tags, nil
}

func tagSetResponses(tags []types.Tag) []types.TagResponse {
	out := make([]types.TagResponse, 0, len(tags))
	for _, tag := range tags {
		out = append(out, types.TagResponse{ID: tag.ID, Name: tag.Name})
	}
	return out
}
