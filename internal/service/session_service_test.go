package service

import (
	"errors"
	"testing"

	"github.com/lshigami/atcprep/internal/auth"
	"github.com/lshigami/atcprep/internal/dto"
	"github.com/lshigami/atcprep/internal/model"
	"github.com/lshigami/atcprep/internal/session"
)

type sessionFixture struct {
	svc      SessionService
	testSubs *fakeTestSubmissionRepo
}

func newSessionFixture(t *testing.T) sessionFixture {
	t.Helper()
	tests := newFakeTestRepo(
		model.Test{ID: "t1", Title: "Airspace", Duration: 30, Category: model.TestAirspace, Questions: sampleQuestions()},
		model.Test{ID: "empty", Title: "Empty", Duration: 30, Category: model.TestAirspace},
	)
	exercises := newFakeExerciseRepo(model.Exercise{ID: "e1", Title: "Approach drill", Category: model.ContentApproach, Questions: sampleQuestions()})
	testSubs := &fakeTestSubmissionRepo{}
	submissions := NewSubmissionService(tests, testSubs, newFakeExerciseSubmissionRepo(), &fakePublisher{})

	manager := newIdleManager()
	t.Cleanup(manager.Close)
	return sessionFixture{
		svc:      NewSessionService(tests, exercises, manager, submissions),
		testSubs: testSubs,
	}
}

var (
	alice = &auth.Identity{UserID: "alice", Role: model.RoleUser}
	bob   = &auth.Identity{UserID: "bob", Role: model.RoleUser}
	admin = &auth.Identity{UserID: "root", Role: model.RoleAdmin}
)

func TestSessionSubmitFlow(t *testing.T) {
	f := newSessionFixture(t)

	view, err := f.svc.StartTest("t1", alice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.RemainingSeconds == nil || *view.RemainingSeconds != 30*60 {
		t.Fatalf("expected a 30 minute countdown, got %v", view.RemainingSeconds)
	}
	if view.CurrentQuestion == nil || view.CurrentQuestion.ID != "q1" {
		t.Fatalf("unexpected current question %+v", view.CurrentQuestion)
	}

	if _, err := f.svc.SelectAnswer(view.ID, alice, dto.SelectAnswerDTO{QuestionID: "q1", OptionID: "q1o1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	view, err = f.svc.Next(view.ID, alice)
	if err != nil || view.CurrentIndex != 1 {
		t.Fatalf("next failed: %v %+v", err, view)
	}
	if _, err := f.svc.Jump(view.ID, alice, 5); !errors.Is(err, session.ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}

	view, err = f.svc.Submit(view.ID, alice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.State != session.StateSubmitted || view.Outcome == nil || view.Outcome.Result.CorrectCount != 1 {
		t.Fatalf("unexpected outcome %+v", view)
	}
	if _, err := f.svc.Submit(view.ID, alice); err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if f.testSubs.count() != 1 {
		t.Errorf("expected exactly one persisted submission, got %d", f.testSubs.count())
	}
}

func TestSessionOwnership(t *testing.T) {
	f := newSessionFixture(t)
	view, err := f.svc.StartExercise("e1", alice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.RemainingSeconds != nil {
		t.Errorf("exercises are untimed")
	}

	if _, err := f.svc.GetSession(view.ID, bob); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
	if _, err := f.svc.GetSession(view.ID, nil); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden for anonymous caller, got %v", err)
	}
	if _, err := f.svc.GetSession(view.ID, admin); err != nil {
		t.Errorf("admin should read any session: %v", err)
	}

	if err := f.svc.Abandon(view.ID, alice); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := f.svc.GetSession(view.ID, alice); !errors.Is(err, session.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestAnonymousSessionCannotSubmit(t *testing.T) {
	f := newSessionFixture(t)
	view, err := f.svc.StartTest("t1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := f.svc.Submit(view.ID, nil); !errors.Is(err, session.ErrUnauthenticated) {
		t.Errorf("expected ErrUnauthenticated, got %v", err)
	}
	if _, err := f.svc.Submit(view.ID, alice); !errors.Is(err, session.ErrUnauthenticated) {
		t.Errorf("a session started without a user cannot be submitted, got %v", err)
	}
	if f.testSubs.count() != 0 {
		t.Errorf("nothing should be persisted")
	}
}

func TestStartSessionErrors(t *testing.T) {
	f := newSessionFixture(t)
	if _, err := f.svc.StartTest("missing", alice); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := f.svc.StartTest("empty", alice); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := f.svc.StartExercise("missing", alice); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
