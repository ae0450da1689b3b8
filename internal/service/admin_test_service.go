package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lshigami/atcprep/internal/document"
	"github.com/lshigami/atcprep/internal/dto"
	"github.com/lshigami/atcprep/internal/metrics"
	"github.com/lshigami/atcprep/internal/model"
	"github.com/lshigami/atcprep/internal/questionbank"
	"github.com/lshigami/atcprep/internal/repository"
	"github.com/rs/zerolog/log"
)

type AdminTestService interface {
	CreateTest(req dto.TestCreateDTO) (*model.Test, error)
	GenerateTest(form dto.TestGenerateForm, file FileUpload) (*model.Test, error)
	GetTest(id string) (*model.Test, error)
	UpdateTest(id string, req dto.TestUpdateDTO) (*model.Test, error)
	DeleteTest(id string) error
}

type adminTestService struct {
	testRepo   repository.TestRepository
	courseRepo repository.CourseRepository
	generator  *questionbank.Generator
	pipeline   *document.Pipeline
	validate   *validator.Validate
}

func NewAdminTestService(
	testRepo repository.TestRepository,
	courseRepo repository.CourseRepository,
	generator *questionbank.Generator,
	pipeline *document.Pipeline,
) AdminTestService {
	return &adminTestService{
		testRepo:   testRepo,
		courseRepo: courseRepo,
		generator:  generator,
		pipeline:   pipeline,
		validate:   validator.New(),
	}
}

func (s *adminTestService) CreateTest(req dto.TestCreateDTO) (*model.Test, error) {
	if !req.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown test category %q", ErrInvalidInput, req.Category)
	}
	if req.Duration < 1 {
		return nil, fmt.Errorf("%w: duration must be at least one minute", ErrInvalidInput)
	}
	if err := s.checkCourse(req.CourseID); err != nil {
		return nil, err
	}

	questions := make([]model.Question, 0, len(req.Questions))
	for i, q := range req.Questions {
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			return nil, fmt.Errorf("%w: question %d: correct index %d out of range", ErrInvalidInput, i+1, q.CorrectIndex)
		}
		entry := questionbank.Entry{Prompt: q.Text, Options: q.Options, CorrectIndex: q.CorrectIndex}
		questions = append(questions, entry.Question(i))
	}
	if err := validateQuestions(s.validate, questions); err != nil {
		return nil, err
	}

	test := model.Test{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		Category:    req.Category,
		Questions:   questions,
		CourseID:    req.CourseID,
	}
	if err := s.testRepo.Create(&test); err != nil {
		log.Error().Err(err).Msg("Failed to create test in database")
		return nil, fmt.Errorf("database error creating test: %w", err)
	}
	log.Info().Str("testID", test.ID).Int("questions", len(questions)).Msg("Test created")
	return &test, nil
}

// GenerateTest stores the uploaded document with the test and fills it with
// questions drawn from the selected bank.
func (s *adminTestService) GenerateTest(form dto.TestGenerateForm, file FileUpload) (*model.Test, error) {
	if !form.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown test category %q", ErrInvalidInput, form.Category)
	}
	if !form.Bank.Valid() {
		return nil, fmt.Errorf("%w: unknown question bank %q", ErrInvalidInput, form.Bank)
	}
	if err := s.checkCourse(form.CourseID); err != nil {
		return nil, err
	}

	upload, err := s.pipeline.Encode(file.Name, file.Data, document.TestGenerationExtensions)
	if err != nil {
		metrics.UploadsRejected.WithLabelValues(rejectReason(err)).Inc()
		return nil, err
	}

	questions, err := s.generator.Generate(form.Bank, questionbank.TestQuestionCount)
	if err != nil {
		log.Warn().Err(err).Str("bank", string(form.Bank)).Msg("No questions available for test generation")
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	test := model.Test{
		ID:          uuid.NewString(),
		Title:       form.Title,
		Description: form.Description,
		Duration:    form.Duration,
		Category:    form.Category,
		Questions:   questions,
		CourseID:    form.CourseID,
		FileData:    &upload.FileData,
	}
	if err := s.testRepo.Create(&test); err != nil {
		log.Error().Err(err).Msg("Failed to create generated test in database")
		return nil, fmt.Errorf("database error creating test: %w", err)
	}
	log.Info().Str("testID", test.ID).Str("bank", string(form.Bank)).Str("file", file.Name).Msg("Test generated from document")
	return &test, nil
}

func (s *adminTestService) GetTest(id string) (*model.Test, error) {
	test, err := s.testRepo.FindByID(id)
	if err != nil {
		log.Error().Err(err).Str("testID", id).Msg("Failed to get test from repository")
		return nil, fmt.Errorf("error fetching test: %w", err)
	}
	if test == nil {
		return nil, fmt.Errorf("%w: test %s", ErrNotFound, id)
	}
	return test, nil
}

// UpdateTest changes metadata only. Questions are immutable once created.
func (s *adminTestService) UpdateTest(id string, req dto.TestUpdateDTO) (*model.Test, error) {
	if !req.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown test category %q", ErrInvalidInput, req.Category)
	}
	if req.Duration < 1 {
		return nil, fmt.Errorf("%w: duration must be at least one minute", ErrInvalidInput)
	}
	test, err := s.GetTest(id)
	if err != nil {
		return nil, err
	}
	if err := s.checkCourse(req.CourseID); err != nil {
		return nil, err
	}

	test.Title = req.Title
	test.Description = req.Description
	test.Duration = req.Duration
	test.Category = req.Category
	test.CourseID = req.CourseID
	if err := s.testRepo.Update(test); err != nil {
		log.Error().Err(err).Str("testID", id).Msg("Failed to update test")
		return nil, fmt.Errorf("database error updating test: %w", err)
	}
	return test, nil
}

func (s *adminTestService) DeleteTest(id string) error {
	if _, err := s.GetTest(id); err != nil {
		return err
	}
	if err := s.testRepo.Delete(id); err != nil {
		log.Error().Err(err).Str("testID", id).Msg("Failed to delete test")
		return fmt.Errorf("database error deleting test: %w", err)
	}
	return nil
}

func (s *adminTestService) checkCourse(courseID *string) error {
	if courseID == nil || *courseID == "" {
		return nil
	}
	course, err := s.courseRepo.FindByID(*courseID)
	if err != nil {
		return fmt.Errorf("error fetching course: %w", err)
	}
	if course == nil {
		return fmt.Errorf("%w: course %s does not exist", ErrInvalidInput, *courseID)
	}
	return nil
}
