package service

import (
	"errors"
	"testing"
	"time"

	"github.com/lshigami/atcprep/internal/assessment"
	"github.com/lshigami/atcprep/internal/event"
	"github.com/lshigami/atcprep/internal/model"
	"github.com/lshigami/atcprep/internal/session"
)

func attemptFor(kind session.Kind, sourceID, userID string, selections map[string]string) session.Attempt {
	questions := sampleQuestions()
	return session.Attempt{
		Kind:        kind,
		SourceID:    sourceID,
		UserID:      userID,
		Answers:     assessment.Answers(questions, selections),
		Result:      assessment.Score(questions, selections),
		SubmittedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

// store records the attempt and, like a session does after unlocking,
// announces it.
func store(t *testing.T, svc SubmissionService, attempt session.Attempt) string {
	t.Helper()
	id, err := svc.Record(attempt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	svc.Submitted(attempt, id)
	return id
}

func TestRecordTestAppendsEveryAttempt(t *testing.T) {
	tests := newFakeTestRepo(model.Test{ID: "t1", Questions: sampleQuestions()})
	testSubs := &fakeTestSubmissionRepo{}
	publisher := &fakePublisher{}
	svc := NewSubmissionService(tests, testSubs, newFakeExerciseSubmissionRepo(), publisher)

	first := store(t, svc, attemptFor(session.KindTest, "t1", "u1", map[string]string{"q1": "q1o1"}))
	second := store(t, svc, attemptFor(session.KindTest, "t1", "u1", map[string]string{"q1": "q1o1", "q2": "q2o2"}))
	if first == second {
		t.Fatalf("test attempts must get distinct ids")
	}

	rows, _ := svc.GetTestSubmissions("t1")
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if *rows[0].Score != 50 || *rows[1].Score != 100 || *rows[0].TotalQuestions != 2 {
		t.Errorf("unexpected scores %v %v", *rows[0].Score, *rows[1].Score)
	}

	events := publisher.published()
	if len(events) != 2 || events[0].Type != event.TestSubmitted || events[1].Level != 4 {
		t.Errorf("unexpected events %+v", events)
	}

	if _, err := svc.GetTestSubmissions("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRecordExerciseReplacesPreviousAttempt(t *testing.T) {
	exerciseSubs := newFakeExerciseSubmissionRepo()
	publisher := &fakePublisher{}
	svc := NewSubmissionService(newFakeTestRepo(), &fakeTestSubmissionRepo{}, exerciseSubs, publisher)

	first := store(t, svc, attemptFor(session.KindExercise, "e1", "u1", nil))
	second := store(t, svc, attemptFor(session.KindExercise, "e1", "u1", map[string]string{"q1": "q1o1", "q2": "q2o2"}))
	if first != second {
		t.Errorf("expected the same submission id, got %s and %s", first, second)
	}

	row, _ := exerciseSubs.FindByExerciseAndUser("e1", "u1")
	if row == nil || *row.Score != 2 || *row.TotalQuestions != 2 {
		t.Fatalf("exercise score must be the correct count, got %+v", row)
	}
	if exerciseSubs.upserts != 2 {
		t.Errorf("expected 2 upserts, got %d", exerciseSubs.upserts)
	}

	history, err := svc.GetUserHistory("u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history.Exercises) != 1 || len(history.Tests) != 0 {
		t.Errorf("unexpected history %+v", history)
	}
	if events := publisher.published(); events[1].Type != event.ExerciseSubmitted || events[1].Score != 2 {
		t.Errorf("unexpected events %+v", events)
	}
}

func TestRecordFailureIsReturned(t *testing.T) {
	testSubs := &fakeTestSubmissionRepo{failing: true}
	publisher := &fakePublisher{}
	svc := NewSubmissionService(newFakeTestRepo(), testSubs, newFakeExerciseSubmissionRepo(), publisher)

	if _, err := svc.Record(attemptFor(session.KindTest, "t1", "u1", nil)); !errors.Is(err, errFakeStorage) {
		t.Fatalf("expected storage error, got %v", err)
	}
	if len(publisher.published()) != 0 {
		t.Errorf("failed submissions must not be published")
	}
}

func TestRecordLeavesPublishingToSubmitted(t *testing.T) {
	publisher := &fakePublisher{}
	svc := NewSubmissionService(newFakeTestRepo(), &fakeTestSubmissionRepo{}, newFakeExerciseSubmissionRepo(), publisher)

	attempt := attemptFor(session.KindTest, "t1", "u1", map[string]string{"q1": "q1o1"})
	attempt.TimedOut = true
	id, err := svc.Record(attempt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(publisher.published()) != 0 {
		t.Fatalf("Record must not publish")
	}

	svc.Submitted(attempt, id)
	events := publisher.published()
	if len(events) != 1 {
		t.Fatalf("expected one event, got %d", len(events))
	}
	if e := events[0]; e.SubmissionID != id || e.Type != event.TestSubmitted || e.Score != 50 || !e.TimedOut {
		t.Errorf("unexpected event %+v", e)
	}
}
