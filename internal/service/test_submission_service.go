package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/atcprep/internal/assessment"
	"github.com/lshigami/atcprep/internal/dto"
	"github.com/lshigami/atcprep/internal/event"
	"github.com/lshigami/atcprep/internal/metrics"
	"github.com/lshigami/atcprep/internal/model"
	"github.com/lshigami/atcprep/internal/repository"
	"github.com/lshigami/atcprep/internal/session"
	"github.com/rs/zerolog/log"
)

const publishTimeout = 5 * time.Second

// SubmissionService persists finished sessions and lists what was persisted.
// It is the session.Recorder used for every test and exercise session, and
// publishes an event for each stored attempt once the session is unlocked.
type SubmissionService interface {
	session.Recorder
	session.Notifier
	GetUserHistory(userID string) (*dto.SubmissionHistoryDTO, error)
	GetTestSubmissions(testID string) ([]model.TestSubmission, error)
}

type submissionService struct {
	testRepo               repository.TestRepository
	testSubmissionRepo     repository.TestSubmissionRepository
	exerciseSubmissionRepo repository.ExerciseSubmissionRepository
	publisher              event.Publisher
}

func NewSubmissionService(
	testRepo repository.TestRepository,
	testSubmissionRepo repository.TestSubmissionRepository,
	exerciseSubmissionRepo repository.ExerciseSubmissionRepository,
	publisher event.Publisher,
) SubmissionService {
	return &submissionService{
		testRepo:               testRepo,
		testSubmissionRepo:     testSubmissionRepo,
		exerciseSubmissionRepo: exerciseSubmissionRepo,
		publisher:              publisher,
	}
}

// Record stores the attempt. Test attempts are appended; an exercise attempt
// replaces the user's previous one for that exercise.
func (s *submissionService) Record(attempt session.Attempt) (string, error) {
	var (
		id  string
		err error
	)
	switch attempt.Kind {
	case session.KindTest:
		id, err = s.recordTest(attempt)
	case session.KindExercise:
		id, err = s.recordExercise(attempt)
	default:
		return "", fmt.Errorf("%w: unknown session kind %q", ErrInvalidInput, attempt.Kind)
	}
	if err != nil {
		log.Error().Err(err).Str("kind", string(attempt.Kind)).Str("sourceID", attempt.SourceID).
			Str("userID", attempt.UserID).Msg("Failed to persist submission")
		return "", err
	}

	trigger := "manual"
	if attempt.TimedOut {
		trigger = "timeout"
	}
	metrics.SubmissionsTotal.WithLabelValues(string(attempt.Kind), trigger).Inc()
	metrics.SubmissionScore.WithLabelValues(string(attempt.Kind)).Observe(attempt.Result.Score)
	log.Info().Str("submissionID", id).Str("kind", string(attempt.Kind)).Int("correct", attempt.Result.CorrectCount).
		Int("total", attempt.Result.Total).Bool("timedOut", attempt.TimedOut).Msg("Submission recorded")
	return id, nil
}

// Submitted publishes the event for an attempt Record already stored.
func (s *submissionService) Submitted(attempt session.Attempt, submissionID string) {
	e := event.SubmissionEvent{
		SubmissionID: submissionID,
		SourceID:     attempt.SourceID,
		UserID:       attempt.UserID,
		Score:        storedScore(attempt),
		CorrectCount: attempt.Result.CorrectCount,
		Total:        attempt.Result.Total,
		Level:        assessment.Classify(attempt.Result.OutOfTwenty()).Level,
		TimedOut:     attempt.TimedOut,
		SubmittedAt:  attempt.SubmittedAt,
	}
	switch attempt.Kind {
	case session.KindTest:
		e.Type = event.TestSubmitted
	case session.KindExercise:
		e.Type = event.ExerciseSubmitted
	default:
		return
	}
	s.publish(e)
}

// storedScore is the percentage for tests and the correct count for exercises.
func storedScore(attempt session.Attempt) float64 {
	if attempt.Kind == session.KindExercise {
		return float64(attempt.Result.CorrectCount)
	}
	return attempt.Result.Score
}

// recordTest stores the percentage score.
// TODO: confirm with product whether retakes should keep history or replace
// the previous attempt like exercises do.
func (s *submissionService) recordTest(attempt session.Attempt) (string, error) {
	score := storedScore(attempt)
	total := attempt.Result.Total
	submission := model.TestSubmission{
		ID:             uuid.NewString(),
		TestID:         attempt.SourceID,
		UserID:         attempt.UserID,
		Answers:        attempt.Answers,
		Score:          &score,
		TotalQuestions: &total,
		SubmittedAt:    attempt.SubmittedAt,
	}
	if err := s.testSubmissionRepo.Create(&submission); err != nil {
		return "", fmt.Errorf("database error creating test submission: %w", err)
	}
	return submission.ID, nil
}

// recordExercise stores the correct count as the score.
func (s *submissionService) recordExercise(attempt session.Attempt) (string, error) {
	score := storedScore(attempt)
	total := attempt.Result.Total
	submission := model.ExerciseSubmission{
		ID:             uuid.NewString(),
		ExerciseID:     attempt.SourceID,
		UserID:         attempt.UserID,
		Answers:        attempt.Answers,
		Score:          &score,
		TotalQuestions: &total,
		SubmittedAt:    attempt.SubmittedAt,
	}
	existing, err := s.exerciseSubmissionRepo.FindByExerciseAndUser(attempt.SourceID, attempt.UserID)
	if err != nil {
		return "", fmt.Errorf("error fetching previous exercise submission: %w", err)
	}
	if existing != nil {
		submission.ID = existing.ID
	}
	if err := s.exerciseSubmissionRepo.Upsert(&submission); err != nil {
		return "", fmt.Errorf("database error saving exercise submission: %w", err)
	}
	return submission.ID, nil
}

func (s *submissionService) publish(e event.SubmissionEvent) {
	if s.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	if err := s.publisher.PublishSubmission(ctx, e); err != nil {
		log.Warn().Err(err).Str("submissionID", e.SubmissionID).Msg("Failed to publish submission event")
	}
}

func (s *submissionService) GetUserHistory(userID string) (*dto.SubmissionHistoryDTO, error) {
	tests, err := s.testSubmissionRepo.FindByUser(userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Failed to get test submissions for user")
		return nil, fmt.Errorf("error fetching test submissions: %w", err)
	}
	exercises, err := s.exerciseSubmissionRepo.FindByUser(userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Failed to get exercise submissions for user")
		return nil, fmt.Errorf("error fetching exercise submissions: %w", err)
	}
	if tests == nil {
		tests = []model.TestSubmission{}
	}
	if exercises == nil {
		exercises = []model.ExerciseSubmission{}
	}
	return &dto.SubmissionHistoryDTO{Tests: tests, Exercises: exercises}, nil
}

func (s *submissionService) GetTestSubmissions(testID string) ([]model.TestSubmission, error) {
	test, err := s.testRepo.FindByID(testID)
	if err != nil {
		return nil, fmt.Errorf("error fetching test: %w", err)
	}
	if test == nil {
		return nil, fmt.Errorf("%w: test %s", ErrNotFound, testID)
	}
	submissions, err := s.testSubmissionRepo.FindByTest(testID)
	if err != nil {
		log.Error().Err(err).Str("testID", testID).Msg("Failed to get submissions for test")
		return nil, fmt.Errorf("error fetching test submissions: %w", err)
	}
	if submissions == nil {
		submissions = []model.TestSubmission{}
	}
	return submissions, nil
}
