package repository

import (
	"github.com/lshigami/atcprep/config"
	"github.com/lshigami/atcprep/internal/document"
	"github.com/lshigami/atcprep/internal/metrics"
	"github.com/lshigami/atcprep/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// DefaultCourseFileBudget is the largest base64 payload, in characters,
// stored for a course attachment.
const DefaultCourseFileBudget = 500000

type CourseRepository interface {
	Create(course *model.Course) error
	FindByID(id string) (*model.Course, error)
	FindAll(category *model.ContentCategory) ([]model.Course, error)
	Update(course *model.Course) error
	Delete(id string) error
}

// courseRepository degrades oversized or malformed attachments instead of
// failing the write, and re-checks stored attachments on every read.
type courseRepository struct {
	db     *gorm.DB
	budget int
}

func NewCourseRepository(db *gorm.DB, cfg *config.Config) CourseRepository {
	budget := cfg.Storage.CourseFileBudget
	if budget <= 0 {
		budget = DefaultCourseFileBudget
	}
	return &courseRepository{db: db, budget: budget}
}

func (r *courseRepository) Create(course *model.Course) error {
	applyAttachmentBudget(course, r.budget)
	return storageError("create course", r.db.Create(course).Error)
}

func (r *courseRepository) FindByID(id string) (*model.Course, error) {
	var course model.Course
	err := r.db.First(&course, "id = ?", id).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	revalidateAttachment(&course)
	return &course, nil
}

func (r *courseRepository) FindAll(category *model.ContentCategory) ([]model.Course, error) {
	var courses []model.Course
	query := r.db.Order("created_at DESC")
	if category != nil {
		query = query.Where("category = ?", *category)
	}
	if err := query.Find(&courses).Error; err != nil {
		return nil, err
	}
	for i := range courses {
		revalidateAttachment(&courses[i])
	}
	return courses, nil
}

func (r *courseRepository) Update(course *model.Course) error {
	applyAttachmentBudget(course, r.budget)
	return storageError("update course", r.db.Save(course).Error)
}

func (r *courseRepository) Delete(id string) error {
	return r.db.Delete(&model.Course{}, "id = ?", id).Error
}

// applyAttachmentBudget runs before every write. It only ever raises
// FileStorageError; clearing it is up to whoever replaces the attachment.
func applyAttachmentBudget(course *model.Course, budget int) {
	if course.FileData == nil {
		return
	}
	if *course.FileData == "" {
		course.FileData = nil
		return
	}

	limited, outcome := document.LimitAttachment(*course.FileData, budget)
	switch outcome {
	case document.LimitTruncated:
		log.Warn().Str("courseID", course.ID).Int("budget", budget).Int("originalLength", len(*course.FileData)).
			Msg("Course attachment exceeds storage budget, storing truncated payload")
		course.FileData = &limited
		course.FileStorageError = true
		metrics.CourseAttachmentDegraded.WithLabelValues("truncated").Inc()
	case document.LimitDropped:
		log.Warn().Str("courseID", course.ID).Msg("Course attachment is not a base64 data URI, dropping it")
		course.FileData = nil
		course.FileStorageError = true
		metrics.CourseAttachmentDegraded.WithLabelValues("dropped").Inc()
	}
}

// revalidateAttachment clears a stored attachment that no longer parses.
// It reports whether the record was changed.
func revalidateAttachment(course *model.Course) bool {
	if course.FileData == nil || *course.FileData == "" {
		return false
	}
	if _, ok := document.ParseDataURI(*course.FileData); ok {
		return false
	}
	log.Warn().Str("courseID", course.ID).Msg("Stored course attachment is corrupted, discarding it")
	course.FileData = nil
	course.FileStorageError = true
	metrics.CourseAttachmentDegraded.WithLabelValues("corrupted").Inc()
	return true
}
