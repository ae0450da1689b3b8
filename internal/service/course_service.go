package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/atcprep/internal/document"
	"github.com/lshigami/atcprep/internal/dto"
	"github.com/lshigami/atcprep/internal/metrics"
	"github.com/lshigami/atcprep/internal/model"
	"github.com/lshigami/atcprep/internal/repository"
	"github.com/rs/zerolog/log"
)

const (
	truncatedWarning = "The stored file was truncated because it exceeded the storage limit; the download may be incomplete or corrupted."
	droppedWarning   = "The attached file could not be stored and was discarded."
)

type CourseService interface {
	ListCourses(category *model.ContentCategory) ([]dto.CourseSummaryDTO, error)
	GetCourse(id string) (*model.Course, error)
	CreateCourse(form dto.CourseForm, file *FileUpload) (*dto.CourseWriteResponse, error)
	UpdateCourse(id string, form dto.CourseForm, file *FileUpload) (*dto.CourseWriteResponse, error)
	DeleteCourse(id string) error
	DownloadCourseFile(id string) (*CourseDownload, error)
}

// CourseDownload is a reconstructed attachment. Warning is set when the
// stored copy is known to be partial.
type CourseDownload struct {
	Document *document.Document
	Warning  string
}

type courseService struct {
	courseRepo repository.CourseRepository
	pipeline   *document.Pipeline
}

func NewCourseService(courseRepo repository.CourseRepository, pipeline *document.Pipeline) CourseService {
	return &courseService{courseRepo: courseRepo, pipeline: pipeline}
}

func (s *courseService) ListCourses(category *model.ContentCategory) ([]dto.CourseSummaryDTO, error) {
	if category != nil && !category.Valid() {
		return nil, fmt.Errorf("%w: unknown course category %q", ErrInvalidInput, *category)
	}
	courses, err := s.courseRepo.FindAll(category)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list courses from repository")
		return nil, fmt.Errorf("error fetching courses: %w", err)
	}

	dtos := make([]dto.CourseSummaryDTO, 0, len(courses))
	for i := range courses {
		var summary dto.CourseSummaryDTO
		if err := copier.Copy(&summary, &courses[i]); err != nil {
			log.Error().Err(err).Msg("Failed to copy Course model to CourseSummaryDTO")
			return nil, fmt.Errorf("error preparing course list: %w", err)
		}
		summary.HasFile = courses[i].FileData != nil
		dtos = append(dtos, summary)
	}
	return dtos, nil
}

func (s *courseService) GetCourse(id string) (*model.Course, error) {
	course, err := s.courseRepo.FindByID(id)
	if err != nil {
		log.Error().Err(err).Str("courseID", id).Msg("Failed to get course from repository")
		return nil, fmt.Errorf("error fetching course: %w", err)
	}
	if course == nil {
		return nil, fmt.Errorf("%w: course %s", ErrNotFound, id)
	}
	return course, nil
}

func (s *courseService) CreateCourse(form dto.CourseForm, file *FileUpload) (*dto.CourseWriteResponse, error) {
	if !form.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown course category %q", ErrInvalidInput, form.Category)
	}
	course := model.Course{
		ID:          uuid.NewString(),
		Title:       form.Title,
		Description: form.Description,
		Content:     form.Content,
		Category:    form.Category,
	}
	if file != nil {
		if err := s.attach(&course, file); err != nil {
			return nil, err
		}
	}

	if err := s.courseRepo.Create(&course); err != nil {
		log.Error().Err(err).Msg("Failed to create course in database")
		return nil, fmt.Errorf("database error creating course: %w", err)
	}
	log.Info().Str("courseID", course.ID).Bool("fileStorageError", course.FileStorageError).Msg("Course created")
	return &dto.CourseWriteResponse{Course: course, Warning: storageWarning(&course)}, nil
}

func (s *courseService) UpdateCourse(id string, form dto.CourseForm, file *FileUpload) (*dto.CourseWriteResponse, error) {
	if !form.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown course category %q", ErrInvalidInput, form.Category)
	}
	course, err := s.GetCourse(id)
	if err != nil {
		return nil, err
	}

	course.Title = form.Title
	course.Description = form.Description
	course.Content = form.Content
	course.Category = form.Category
	switch {
	case file != nil:
		if err := s.attach(course, file); err != nil {
			return nil, err
		}
	case form.RemoveFile:
		course.FileData, course.FileType, course.FileName = nil, nil, nil
		course.FileStorageError = false
	}

	if err := s.courseRepo.Update(course); err != nil {
		log.Error().Err(err).Str("courseID", id).Msg("Failed to update course")
		return nil, fmt.Errorf("database error updating course: %w", err)
	}
	return &dto.CourseWriteResponse{Course: *course, Warning: storageWarning(course)}, nil
}

func (s *courseService) DeleteCourse(id string) error {
	if _, err := s.GetCourse(id); err != nil {
		return err
	}
	if err := s.courseRepo.Delete(id); err != nil {
		log.Error().Err(err).Str("courseID", id).Msg("Failed to delete course")
		return fmt.Errorf("database error deleting course: %w", err)
	}
	return nil
}

// DownloadCourseFile decodes the stored attachment. A course flagged with a
// storage error is still decoded, as far as possible, and carries a warning.
func (s *courseService) DownloadCourseFile(id string) (*CourseDownload, error) {
	course, err := s.GetCourse(id)
	if err != nil {
		return nil, err
	}
	if course.FileData == nil || *course.FileData == "" {
		if course.FileStorageError {
			return nil, fmt.Errorf("%w: %s", document.ErrDecodeCorrupted, droppedWarning)
		}
		return nil, fmt.Errorf("%w: course %s has no attachment", ErrNotFound, id)
	}

	fileName := ""
	if course.FileName != nil {
		fileName = *course.FileName
	}
	doc, err := s.pipeline.Decode(*course.FileData, fileName, course.FileStorageError)
	if err != nil {
		log.Error().Err(err).Str("courseID", id).Msg("Failed to decode course attachment")
		return nil, err
	}

	download := &CourseDownload{Document: doc}
	if doc.Partial {
		download.Warning = truncatedWarning
		log.Warn().Str("courseID", id).Int("bytes", len(doc.Data)).Msg("Serving partial course attachment")
	}
	return download, nil
}

// attach replaces the course attachment. Plain text goes into the content.
func (s *courseService) attach(course *model.Course, file *FileUpload) error {
	upload, err := s.pipeline.Encode(file.Name, file.Data, document.CourseExtensions)
	if err != nil {
		metrics.UploadsRejected.WithLabelValues(rejectReason(err)).Inc()
		return err
	}
	if upload.MIMEType == document.TextPlain {
		course.Content = upload.Text
		course.FileData, course.FileType, course.FileName = nil, nil, nil
		course.FileStorageError = false
		return nil
	}
	course.FileData = &upload.FileData
	course.FileType = &upload.MIMEType
	course.FileName = &upload.FileName
	course.FileStorageError = false
	return nil
}

func storageWarning(course *model.Course) string {
	if !course.FileStorageError {
		return ""
	}
	if course.FileData == nil {
		return droppedWarning
	}
	return truncatedWarning
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, document.ErrUploadTooLarge):
		return "too_large"
	case errors.Is(err, document.ErrUnsupportedFileType):
		return "unsupported_type"
	case errors.Is(err, document.ErrEmptyFile):
		return "empty"
	default:
		return "other"
	}
}
