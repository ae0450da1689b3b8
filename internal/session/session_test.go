package session

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/lshigami/atcprep/internal/model"
)

type fakeTicker struct {
	ch       chan time.Time
	stopped  chan struct{}
	stopOnce sync.Once
}

func newFakeTicker() *fakeTicker {
	return &fakeTicker{ch: make(chan time.Time), stopped: make(chan struct{})}
}

func (f *fakeTicker) C() <-chan time.Time { return f.ch }
func (f *fakeTicker) Stop()               { f.stopOnce.Do(func() { close(f.stopped) }) }

type recordingRecorder struct {
	mu       sync.Mutex
	attempts []Attempt
	err      error
}

func (r *recordingRecorder) Record(a Attempt) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return "", r.err
	}
	r.attempts = append(r.attempts, a)
	return fmt.Sprintf("sub-%d", len(r.attempts)), nil
}

func (r *recordingRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.attempts)
}

func testQuestions(n int) []model.Question {
	questions := make([]model.Question, n)
	for i := range questions {
		id := fmt.Sprintf("q%d", i+1)
		questions[i] = model.Question{
			ID:              id,
			Text:            "question " + id,
			Options:         []model.Option{{ID: id + "o1", Text: "a"}, {ID: id + "o2", Text: "b"}},
			CorrectOptionID: id + "o1",
		}
	}
	return questions
}

func newTestSession(rec Recorder, durationMinutes int, questions int, ticker *fakeTicker) *Session {
	return New(Config{
		ID:              "s1",
		Kind:            KindTest,
		SourceID:        "t1",
		UserID:          "u1",
		Questions:       testQuestions(questions),
		DurationMinutes: durationMinutes,
		Recorder:        rec,
		NewTicker:       func(time.Duration) Ticker { return ticker },
	})
}

func TestTimeoutSubmitsExactlyOnce(t *testing.T) {
	rec := &recordingRecorder{}
	ticker := newFakeTicker()
	s := newTestSession(rec, 1, 5, ticker)

	// Drive the countdown directly so the test controls every tick.
	s.mu.Lock()
	s.startedAt = time.Now()
	s.evaluateWarningsLocked()
	s.mu.Unlock()

	for i := 0; i < 59; i++ {
		if finished := s.tick(); finished {
			t.Fatalf("countdown finished early at tick %d", i+1)
		}
	}
	if !s.tick() {
		t.Fatalf("expected countdown to finish on tick 60")
	}
	// Extra ticks after expiry must not push the countdown below zero.
	s.tick()
	s.tick()

	if rec.count() != 1 {
		t.Fatalf("expected exactly one submission, got %d", rec.count())
	}
	attempt := rec.attempts[0]
	if !attempt.TimedOut {
		t.Errorf("expected submission to be marked as timed out")
	}
	if attempt.Result.CorrectCount != 0 || attempt.Result.Total != 5 {
		t.Errorf("expected 0/5, got %d/%d", attempt.Result.CorrectCount, attempt.Result.Total)
	}
	for _, a := range attempt.Answers {
		if a.SelectedOptionID != "" || a.IsCorrect == nil || *a.IsCorrect {
			t.Errorf("expected unanswered incorrect answer, got %+v", a)
		}
	}

	snap := s.Snapshot()
	if snap.State != StateSubmitted {
		t.Errorf("expected submitted state, got %s", snap.State)
	}
	if snap.RemainingSeconds == nil || *snap.RemainingSeconds != 0 {
		t.Errorf("expected remaining 0, got %v", snap.RemainingSeconds)
	}
}

func TestCountdownGoroutineTimesOut(t *testing.T) {
	rec := &recordingRecorder{}
	ticker := newFakeTicker()
	s := newTestSession(rec, 1, 3, ticker)
	s.Start()

	for i := 0; i < 60; i++ {
		select {
		case ticker.ch <- time.Now():
		case <-time.After(2 * time.Second):
			t.Fatalf("countdown goroutine stopped receiving at tick %d", i+1)
		}
	}

	select {
	case <-s.Done():
	case <-time.After(2 * time.Second):
		t.Fatalf("session was not submitted after the countdown expired")
	}
	select {
	case <-ticker.stopped:
	case <-time.After(2 * time.Second):
		t.Fatalf("ticker was not stopped")
	}
	if rec.count() != 1 {
		t.Fatalf("expected one submission, got %d", rec.count())
	}
}

func TestWarningsFireOnce(t *testing.T) {
	rec := &recordingRecorder{}
	var mu sync.Mutex
	var fired []Warning
	s := New(Config{
		ID:              "s2",
		Kind:            KindTest,
		UserID:          "u1",
		Questions:       testQuestions(2),
		DurationMinutes: 6,
		Recorder:        rec,
		NewTicker:       func(time.Duration) Ticker { return newFakeTicker() },
		OnWarning: func(_ string, w Warning) {
			mu.Lock()
			fired = append(fired, w)
			mu.Unlock()
		},
	})

	for i := 0; i < 59; i++ {
		s.tick()
	}
	if len(s.Snapshot().Warnings) != 0 {
		t.Fatalf("expected no warning above 300 seconds, got %v", s.Snapshot().Warnings)
	}
	s.tick() // 300 left
	s.tick()
	if got := s.Snapshot().Warnings; len(got) != 1 || got[0] != WarningFiveMinutes {
		t.Fatalf("expected five minute warning, got %v", got)
	}

	for i := 0; i < 239; i++ {
		s.tick()
	}
	if got := *s.Snapshot().RemainingSeconds; got != 60 {
		t.Fatalf("expected 60 seconds left, got %d", got)
	}
	s.tick()
	s.tick()
	mu.Lock()
	defer mu.Unlock()
	if len(fired) != 2 || fired[0] != WarningFiveMinutes || fired[1] != WarningOneMinute {
		t.Fatalf("expected five minute then one minute warnings, got %v", fired)
	}
}

func TestShortTestWarnsAtStart(t *testing.T) {
	ticker := newFakeTicker()
	s := newTestSession(&recordingRecorder{}, 1, 2, ticker)
	s.Start()
	defer s.Abandon()

	got := s.Snapshot().Warnings
	if len(got) != 2 || got[0] != WarningFiveMinutes || got[1] != WarningOneMinute {
		t.Fatalf("expected both warnings at start of a one minute test, got %v", got)
	}
}

func TestNavigation(t *testing.T) {
	s := newTestSession(&recordingRecorder{}, 0, 3, newFakeTicker())

	s.Previous()
	if s.Snapshot().CurrentIndex != 0 {
		t.Fatalf("previous must clamp at 0")
	}
	s.Next()
	s.Next()
	s.Next()
	if s.Snapshot().CurrentIndex != 2 {
		t.Fatalf("next must clamp at last index, got %d", s.Snapshot().CurrentIndex)
	}
	if err := s.Jump(0); err != nil {
		t.Fatalf("unexpected jump error: %v", err)
	}
	if s.Snapshot().CurrentIndex != 0 {
		t.Fatalf("expected jump to index 0")
	}
	if err := s.Jump(3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if err := s.Jump(-1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestSelectOverwrites(t *testing.T) {
	s := newTestSession(&recordingRecorder{}, 0, 2, newFakeTicker())

	if err := s.Select("q1", "q1o2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Select("q1", "q1o1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snap := s.Snapshot()
	if snap.AnsweredCount != 1 || snap.Selections["q1"] != "q1o1" {
		t.Fatalf("expected single latest selection, got %v", snap.Selections)
	}

	if err := s.Select("q1", "q2o1"); !errors.Is(err, ErrInvalidSelection) {
		t.Errorf("expected ErrInvalidSelection for foreign option, got %v", err)
	}
	if err := s.Select("q9", "q9o1"); !errors.Is(err, ErrInvalidSelection) {
		t.Errorf("expected ErrInvalidSelection for unknown question, got %v", err)
	}
}

func TestSubmitIsIdempotent(t *testing.T) {
	rec := &recordingRecorder{}
	s := newTestSession(rec, 0, 4, newFakeTicker())
	s.Select("q1", "q1o1")
	s.Select("q2", "q2o2")

	first, err := s.Submit()
	if err != nil {
		t.Fatalf("unexpected submit error: %v", err)
	}
	second, err := s.Submit()
	if err != nil {
		t.Fatalf("unexpected second submit error: %v", err)
	}
	if rec.count() != 1 {
		t.Fatalf("expected one persistence write, got %d", rec.count())
	}
	if first != second {
		t.Errorf("expected the same outcome to be returned")
	}
	if first.Result.CorrectCount != 1 || first.Result.Score != 25 {
		t.Errorf("expected 1 correct (25%%), got %+v", first.Result)
	}
	if first.ScoreOutOf20 != 5 || first.Level.Level != 1 {
		t.Errorf("expected 5/20 at level 1, got %d level %d", first.ScoreOutOf20, first.Level.Level)
	}

	// Calls after submission are ignored.
	s.Next()
	if err := s.Select("q3", "q3o1"); err != nil {
		t.Errorf("expected select after submit to be a silent no-op, got %v", err)
	}
	snap := s.Snapshot()
	if snap.CurrentIndex != 0 || snap.AnsweredCount != 2 {
		t.Errorf("expected state frozen after submit, got index %d answered %d", snap.CurrentIndex, snap.AnsweredCount)
	}
}

func TestSubmitRequiresUser(t *testing.T) {
	rec := &recordingRecorder{}
	s := New(Config{ID: "anon", Kind: KindExercise, Questions: testQuestions(2), Recorder: rec})

	if _, err := s.Submit(); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if rec.count() != 0 {
		t.Fatalf("expected no persistence, got %d writes", rec.count())
	}
	if s.Snapshot().State != StateInProgress {
		t.Fatalf("expected session to stay in progress")
	}
}

func TestSubmitFailureCanBeRetried(t *testing.T) {
	rec := &recordingRecorder{err: errors.New("storage limit reached")}
	s := newTestSession(rec, 0, 2, newFakeTicker())

	if _, err := s.Submit(); !errors.Is(err, ErrSubmissionFailed) {
		t.Fatalf("expected ErrSubmissionFailed, got %v", err)
	}
	if s.Snapshot().State != StateInProgress {
		t.Fatalf("expected session to stay in progress after a failed write")
	}

	rec.mu.Lock()
	rec.err = nil
	rec.mu.Unlock()
	if _, err := s.Submit(); err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if rec.count() != 1 {
		t.Fatalf("expected one stored submission, got %d", rec.count())
	}
}

func TestAbandonReleasesTimer(t *testing.T) {
	ticker := newFakeTicker()
	rec := &recordingRecorder{}
	s := newTestSession(rec, 10, 2, ticker)
	s.Start()
	s.Abandon()

	select {
	case <-ticker.stopped:
	case <-time.After(2 * time.Second):
		t.Fatalf("ticker not stopped after abandon")
	}
	if _, err := s.Submit(); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed, got %v", err)
	}
	if rec.count() != 0 {
		t.Fatalf("abandoned session must not persist")
	}
}

func TestManualSubmitReleasesTimer(t *testing.T) {
	ticker := newFakeTicker()
	s := newTestSession(&recordingRecorder{}, 10, 2, ticker)
	s.Start()
	if _, err := s.Submit(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	select {
	case <-ticker.stopped:
	case <-time.After(2 * time.Second):
		t.Fatalf("ticker not stopped after manual submit")
	}
}

func TestExerciseIsUntimed(t *testing.T) {
	created := false
	s := New(Config{
		ID:        "e1",
		Kind:      KindExercise,
		UserID:    "u1",
		Questions: testQuestions(10),
		Recorder:  &recordingRecorder{},
		NewTicker: func(time.Duration) Ticker { created = true; return newFakeTicker() },
	})
	s.Start()

	if created {
		t.Errorf("exercise must not start a countdown")
	}
	if s.Snapshot().RemainingSeconds != nil {
		t.Errorf("exercise snapshot must not report remaining time")
	}
}

func TestExpiredSessionFreezesAnswersUntilSaved(t *testing.T) {
	rec := &recordingRecorder{err: errors.New("db down")}
	s := newTestSession(rec, 1, 3, newFakeTicker())

	for i := 0; i < 60; i++ {
		s.tick()
	}
	snap := s.Snapshot()
	if snap.State != StateInProgress || !snap.Expired || snap.LastError == "" {
		t.Fatalf("expected expired in-progress session with an error, got %+v", snap)
	}

	if err := s.Select("q1", "q1o1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Next()
	if err := s.Jump(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snap = s.Snapshot()
	if snap.AnsweredCount != 0 || snap.CurrentIndex != 0 {
		t.Fatalf("expected answers and position frozen at expiry, got answered %d index %d", snap.AnsweredCount, snap.CurrentIndex)
	}

	rec.mu.Lock()
	rec.err = nil
	rec.mu.Unlock()
	outcome, err := s.Submit()
	if err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if !outcome.TimedOut || outcome.Result.CorrectCount != 0 {
		t.Errorf("expected timed-out 0/3 outcome, got %+v", outcome)
	}
	if rec.count() != 1 || !rec.attempts[0].TimedOut {
		t.Errorf("expected one timed-out attempt, got %+v", rec.attempts)
	}
}

func TestAnonymousTimedSessionEndsAtExpiry(t *testing.T) {
	rec := &recordingRecorder{}
	s := New(Config{
		ID:              "anon-test",
		Kind:            KindTest,
		Questions:       testQuestions(2),
		DurationMinutes: 1,
		Recorder:        rec,
		NewTicker:       func(time.Duration) Ticker { return newFakeTicker() },
	})

	for i := 0; i < 60; i++ {
		s.tick()
	}

	select {
	case <-s.Done():
	default:
		t.Fatalf("expected anonymous session to end at expiry")
	}
	snap := s.Snapshot()
	if snap.State != StateAbandoned || snap.LastError != ErrUnauthenticated.Error() {
		t.Errorf("unexpected snapshot %+v", snap)
	}
	if rec.count() != 0 {
		t.Errorf("anonymous session must not persist")
	}
}

type notifyingRecorder struct {
	recordingRecorder
	session  *Session
	notified chan Snapshot
}

func (r *notifyingRecorder) Submitted(_ Attempt, _ string) {
	r.notified <- r.session.Snapshot()
}

func TestNotifierRunsOutsideSessionLock(t *testing.T) {
	rec := &notifyingRecorder{notified: make(chan Snapshot, 1)}
	s := newTestSession(rec, 0, 2, newFakeTicker())
	rec.session = s

	submitted := make(chan error, 1)
	go func() {
		_, err := s.Submit()
		submitted <- err
	}()

	select {
	case err := <-submitted:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("submit blocked while notifying")
	}
	snap := <-rec.notified
	if snap.State != StateSubmitted || snap.Outcome == nil || snap.Outcome.SubmissionID != "sub-1" {
		t.Errorf("expected notifier to observe the stored submission, got %+v", snap)
	}
}
