package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/atcprep/internal/dto"
	"github.com/lshigami/atcprep/internal/repository"
	"github.com/rs/zerolog/log"
)

type UserTestService interface {
	GetAllTests() ([]dto.TestSummaryDTO, error)
	GetTestDetails(testID string) (*dto.TestDetailDTO, error)
}

type userTestService struct {
	testRepo repository.TestRepository
}

func NewUserTestService(testRepo repository.TestRepository) UserTestService {
	return &userTestService{testRepo: testRepo}
}

func (s *userTestService) GetAllTests() ([]dto.TestSummaryDTO, error) {
	tests, err := s.testRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get all tests from repository")
		return nil, fmt.Errorf("error fetching tests: %w", err)
	}

	dtos := make([]dto.TestSummaryDTO, 0, len(tests))
	for _, t := range tests {
		dtos = append(dtos, dto.TestSummaryDTO{
			ID:            t.ID,
			Title:         t.Title,
			Description:   t.Description,
			Duration:      t.Duration,
			Category:      t.Category,
			CourseID:      t.CourseID,
			QuestionCount: len(t.Questions),
			CreatedAt:     t.CreatedAt,
		})
	}
	return dtos, nil
}

// GetTestDetails returns the test without its answer keys.
func (s *userTestService) GetTestDetails(testID string) (*dto.TestDetailDTO, error) {
	test, err := s.testRepo.FindByID(testID)
	if err != nil {
		log.Error().Err(err).Str("testID", testID).Msg("Failed to get test details from repository")
		return nil, fmt.Errorf("error fetching test: %w", err)
	}
	if test == nil {
		return nil, fmt.Errorf("%w: test %s", ErrNotFound, testID)
	}

	var resp dto.TestDetailDTO
	if err := copier.Copy(&resp.TestSummaryDTO, test); err != nil {
		log.Error().Err(err).Msg("Failed to copy Test model to TestDetailDTO")
		return nil, fmt.Errorf("error preparing test details response: %w", err)
	}
	resp.QuestionCount = len(test.Questions)
	resp.Questions = dto.ToQuestionViews(test.Questions)
	return &resp, nil
}
