package service

import (
	"fmt"

	"github.com/lshigami/atcprep/internal/auth"
	"github.com/lshigami/atcprep/internal/dto"
	"github.com/lshigami/atcprep/internal/repository"
	"github.com/lshigami/atcprep/internal/session"
	"github.com/rs/zerolog/log"
)

type SessionService interface {
	StartTest(testID string, identity *auth.Identity) (*dto.SessionDTO, error)
	StartExercise(exerciseID string, identity *auth.Identity) (*dto.SessionDTO, error)
	GetSession(sessionID string, identity *auth.Identity) (*dto.SessionDTO, error)
	SelectAnswer(sessionID string, identity *auth.Identity, req dto.SelectAnswerDTO) (*dto.SessionDTO, error)
	Next(sessionID string, identity *auth.Identity) (*dto.SessionDTO, error)
	Previous(sessionID string, identity *auth.Identity) (*dto.SessionDTO, error)
	Jump(sessionID string, identity *auth.Identity, index int) (*dto.SessionDTO, error)
	Submit(sessionID string, identity *auth.Identity) (*dto.SessionDTO, error)
	Abandon(sessionID string, identity *auth.Identity) error
}

type sessionService struct {
	testRepo     repository.TestRepository
	exerciseRepo repository.ExerciseRepository
	manager      *session.Manager
	recorder     session.Recorder
}

func NewSessionService(
	testRepo repository.TestRepository,
	exerciseRepo repository.ExerciseRepository,
	manager *session.Manager,
	submissions SubmissionService,
) SessionService {
	return &sessionService{
		testRepo:     testRepo,
		exerciseRepo: exerciseRepo,
		manager:      manager,
		recorder:     submissions,
	}
}

func (s *sessionService) StartTest(testID string, identity *auth.Identity) (*dto.SessionDTO, error) {
	test, err := s.testRepo.FindByID(testID)
	if err != nil {
		log.Error().Err(err).Str("testID", testID).Msg("Failed to load test for session")
		return nil, fmt.Errorf("error fetching test: %w", err)
	}
	if test == nil {
		return nil, fmt.Errorf("%w: test %s", ErrNotFound, testID)
	}
	if len(test.Questions) == 0 {
		return nil, fmt.Errorf("%w: test %s has no questions", ErrInvalidInput, testID)
	}

	sess := s.manager.Start(session.Config{
		Kind:            session.KindTest,
		SourceID:        test.ID,
		Title:           test.Title,
		UserID:          userID(identity),
		Questions:       test.Questions,
		DurationMinutes: test.Duration,
		Recorder:        s.recorder,
	})
	return snapshot(sess), nil
}

func (s *sessionService) StartExercise(exerciseID string, identity *auth.Identity) (*dto.SessionDTO, error) {
	exercise, err := s.exerciseRepo.FindByID(exerciseID)
	if err != nil {
		log.Error().Err(err).Str("exerciseID", exerciseID).Msg("Failed to load exercise for session")
		return nil, fmt.Errorf("error fetching exercise: %w", err)
	}
	if exercise == nil {
		return nil, fmt.Errorf("%w: exercise %s", ErrNotFound, exerciseID)
	}
	if len(exercise.Questions) == 0 {
		return nil, fmt.Errorf("%w: exercise %s has no questions", ErrInvalidInput, exerciseID)
	}

	sess := s.manager.Start(session.Config{
		Kind:      session.KindExercise,
		SourceID:  exercise.ID,
		Title:     exercise.Title,
		UserID:    userID(identity),
		Questions: exercise.Questions,
		Recorder:  s.recorder,
	})
	return snapshot(sess), nil
}

func (s *sessionService) GetSession(sessionID string, identity *auth.Identity) (*dto.SessionDTO, error) {
	sess, err := s.owned(sessionID, identity)
	if err != nil {
		return nil, err
	}
	return snapshot(sess), nil
}

func (s *sessionService) SelectAnswer(sessionID string, identity *auth.Identity, req dto.SelectAnswerDTO) (*dto.SessionDTO, error) {
	sess, err := s.owned(sessionID, identity)
	if err != nil {
		return nil, err
	}
	if err := sess.Select(req.QuestionID, req.OptionID); err != nil {
		return nil, err
	}
	return snapshot(sess), nil
}

func (s *sessionService) Next(sessionID string, identity *auth.Identity) (*dto.SessionDTO, error) {
	sess, err := s.owned(sessionID, identity)
	if err != nil {
		return nil, err
	}
	sess.Next()
	return snapshot(sess), nil
}

func (s *sessionService) Previous(sessionID string, identity *auth.Identity) (*dto.SessionDTO, error) {
	sess, err := s.owned(sessionID, identity)
	if err != nil {
		return nil, err
	}
	sess.Previous()
	return snapshot(sess), nil
}

func (s *sessionService) Jump(sessionID string, identity *auth.Identity, index int) (*dto.SessionDTO, error) {
	sess, err := s.owned(sessionID, identity)
	if err != nil {
		return nil, err
	}
	if err := sess.Jump(index); err != nil {
		return nil, err
	}
	return snapshot(sess), nil
}

func (s *sessionService) Submit(sessionID string, identity *auth.Identity) (*dto.SessionDTO, error) {
	if identity == nil {
		return nil, session.ErrUnauthenticated
	}
	sess, err := s.owned(sessionID, identity)
	if err != nil {
		return nil, err
	}
	if _, err := sess.Submit(); err != nil {
		log.Warn().Err(err).Str("sessionID", sessionID).Msg("Session submission rejected")
		return nil, err
	}
	return snapshot(sess), nil
}

func (s *sessionService) Abandon(sessionID string, identity *auth.Identity) error {
	if _, err := s.owned(sessionID, identity); err != nil {
		return err
	}
	return s.manager.Abandon(sessionID)
}

// owned resolves a session the caller may act on. Sessions started without a
// user are reachable by id alone; others only by their user or an admin.
func (s *sessionService) owned(sessionID string, identity *auth.Identity) (*session.Session, error) {
	sess, err := s.manager.Get(sessionID)
	if err != nil {
		return nil, err
	}
	owner := sess.UserID()
	if owner == "" || identity.IsAdmin() || userID(identity) == owner {
		return sess, nil
	}
	return nil, fmt.Errorf("%w: session belongs to another user", ErrForbidden)
}

func snapshot(sess *session.Session) *dto.SessionDTO {
	view := dto.ToSessionDTO(sess.Snapshot())
	return &view
}

func userID(identity *auth.Identity) string {
	if identity == nil {
		return ""
	}
	return identity.UserID
}
