package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/atcprep/internal/dto"
	"github.com/lshigami/atcprep/internal/model"
	"github.com/lshigami/atcprep/internal/questionbank"
	"github.com/lshigami/atcprep/internal/repository"
	"github.com/rs/zerolog/log"
)

type ExerciseService interface {
	GenerateExercise(req dto.ExerciseGenerateDTO) (*model.Exercise, error)
	ListExercises(category *model.ContentCategory) ([]dto.ExerciseSummaryDTO, error)
	GetExercise(id string) (*dto.ExerciseDetailDTO, error)
	DeleteExercise(id string) error
}

type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
	generator    *questionbank.Generator
}

func NewExerciseService(exerciseRepo repository.ExerciseRepository, generator *questionbank.Generator) ExerciseService {
	return &exerciseService{exerciseRepo: exerciseRepo, generator: generator}
}

func (s *exerciseService) GenerateExercise(req dto.ExerciseGenerateDTO) (*model.Exercise, error) {
	if !req.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown exercise category %q", ErrInvalidInput, req.Category)
	}
	questions, err := s.generator.Generate(req.Category, questionbank.ExerciseQuestionCount)
	if err != nil {
		log.Warn().Err(err).Str("category", string(req.Category)).Msg("No questions available for exercise")
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	exercise := model.Exercise{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Questions:   questions,
		CourseID:    req.CourseID,
	}
	if err := s.exerciseRepo.Create(&exercise); err != nil {
		log.Error().Err(err).Msg("Failed to create exercise in database")
		return nil, fmt.Errorf("database error creating exercise: %w", err)
	}
	log.Info().Str("exerciseID", exercise.ID).Str("category", string(req.Category)).Msg("Exercise generated")
	return &exercise, nil
}

func (s *exerciseService) ListExercises(category *model.ContentCategory) ([]dto.ExerciseSummaryDTO, error) {
	if category != nil && !category.Valid() {
		return nil, fmt.Errorf("%w: unknown exercise category %q", ErrInvalidInput, *category)
	}
	exercises, err := s.exerciseRepo.FindAll(category)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list exercises from repository")
		return nil, fmt.Errorf("error fetching exercises: %w", err)
	}

	dtos := make([]dto.ExerciseSummaryDTO, 0, len(exercises))
	for i := range exercises {
		var summary dto.ExerciseSummaryDTO
		if err := copier.Copy(&summary, &exercises[i]); err != nil {
			log.Error().Err(err).Msg("Failed to copy Exercise model to ExerciseSummaryDTO")
			return nil, fmt.Errorf("error preparing exercise list: %w", err)
		}
		summary.QuestionCount = len(exercises[i].Questions)
		dtos = append(dtos, summary)
	}
	return dtos, nil
}

func (s *exerciseService) GetExercise(id string) (*dto.ExerciseDetailDTO, error) {
	exercise, err := s.exerciseRepo.FindByID(id)
	if err != nil {
		log.Error().Err(err).Str("exerciseID", id).Msg("Failed to get exercise from repository")
		return nil, fmt.Errorf("error fetching exercise: %w", err)
	}
	if exercise == nil {
		return nil, fmt.Errorf("%w: exercise %s", ErrNotFound, id)
	}

	var resp dto.ExerciseDetailDTO
	if err := copier.Copy(&resp.ExerciseSummaryDTO, exercise); err != nil {
		log.Error().Err(err).Msg("Failed to copy Exercise model to ExerciseDetailDTO")
		return nil, fmt.Errorf("error preparing exercise response: %w", err)
	}
	resp.QuestionCount = len(exercise.Questions)
	resp.Questions = dto.ToQuestionViews(exercise.Questions)
	return &resp, nil
}

func (s *exerciseService) DeleteExercise(id string) error {
	exercise, err := s.exerciseRepo.FindByID(id)
	if err != nil {
		return fmt.Errorf("error fetching exercise: %w", err)
	}
	if exercise == nil {
		return fmt.Errorf("%w: exercise %s", ErrNotFound, id)
	}
	if err := s.exerciseRepo.Delete(id); err != nil {
		log.Error().Err(err).Str("exerciseID", id).Msg("Failed to delete exercise")
		return fmt.Errorf("database error deleting exercise: %w", err)
	}
	return nil
}
