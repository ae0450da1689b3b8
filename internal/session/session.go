package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/lshigami/atcprep/internal/assessment"
	"github.com/lshigami/atcprep/internal/model"
	"github.com/rs/zerolog/log"
)

type Kind string

const (
	KindTest     Kind = "test"
	KindExercise Kind = "exercise"
)

type State string

const (
	StateInProgress State = "in_progress"
	StateSubmitted  State = "submitted"
	StateAbandoned  State = "abandoned"
)

type Warning string

const (
	WarningFiveMinutes Warning = "five_minutes"
	WarningOneMinute   Warning = "one_minute"
)

const (
	FiveMinuteThreshold = 300
	OneMinuteMark       = 60
)

var (
	ErrUnauthenticated  = errors.New("submission requires an authenticated user")
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionClosed    = errors.New("session was abandoned")
	ErrSubmissionFailed = errors.New("submission could not be saved")
	ErrIndexOutOfRange  = errors.New("question index out of range")
	ErrInvalidSelection = errors.New("option does not belong to question")
)

// Attempt is what gets persisted when a session is submitted.
type Attempt struct {
	Kind        Kind
	SourceID    string
	UserID      string
	Answers     []model.SubmissionAnswer
	Result      assessment.Result
	TimedOut    bool
	SubmittedAt time.Time
}

// Recorder persists a submitted attempt and returns the submission id.
type Recorder interface {
	Record(attempt Attempt) (string, error)
}

type RecorderFunc func(attempt Attempt) (string, error)

func (f RecorderFunc) Record(attempt Attempt) (string, error) { return f(attempt) }

// Notifier is implemented by recorders that announce stored attempts. It is
// called after the session lock is released.
type Notifier interface {
	Submitted(attempt Attempt, submissionID string)
}

type Outcome struct {
	SubmissionID string                   `json:"submissionId"`
	Answers      []model.SubmissionAnswer `json:"answers"`
	Result       assessment.Result        `json:"result"`
	ScoreOutOf20 int                      `json:"scoreOutOf20"`
	Level        assessment.Level         `json:"level"`
	TimedOut     bool                     `json:"timedOut"`
	SubmittedAt  time.Time                `json:"submittedAt"`
}

type Config struct {
	ID        string
	Kind      Kind
	SourceID  string
	Title     string
	UserID    string
	Questions []model.Question
	// DurationMinutes drives the countdown of tests; zero means untimed.
	DurationMinutes int
	Recorder        Recorder
	NewTicker       TickerFactory
	Now             func() time.Time
	OnWarning       func(sessionID string, w Warning)
	// OnEnd runs once when the session is submitted or abandoned.
	OnEnd func(s *Session)
}

// Session drives one user's pass through a test or exercise. Its countdown
// goroutine is acquired by Start and released on submit, timeout or abandon.
type Session struct {
	mu sync.Mutex

	cfg        Config
	state      State
	current    int
	selections map[string]string
	remaining  int
	timed      bool
	fired      map[Warning]bool
	warnings   []Warning
	outcome    *Outcome
	lastErr    error
	expired    bool
	startedAt  time.Time
	endedAt    time.Time
	lastActive time.Time
	// after holds callbacks queued under mu that run once it is released.
	after []func()

	stop        chan struct{}
	stopOnce    sync.Once
	done        chan struct{}
	doneOnce    sync.Once
	timerActive bool
}

func New(cfg Config) *Session {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.NewTicker == nil {
		cfg.NewTicker = NewRealTicker
	}
	s := &Session{
		cfg:        cfg,
		state:      StateInProgress,
		selections: make(map[string]string),
		fired:      make(map[Warning]bool),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
	if cfg.Kind == KindTest && cfg.DurationMinutes > 0 {
		s.timed = true
		s.remaining = cfg.DurationMinutes * 60
	}
	return s
}

// Start records the start time and, for timed sessions, launches the countdown.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.startedAt.IsZero() || s.state != StateInProgress {
		return
	}
	s.startedAt = s.cfg.Now()
	s.lastActive = s.startedAt
	if !s.timed {
		return
	}
	s.evaluateWarningsLocked()
	s.timerActive = true
	go s.run(s.cfg.NewTicker(time.Second))
}

func (s *Session) run(t Ticker) {
	defer t.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-t.C():
			if finished := s.tick(); finished {
				return
			}
		}
	}
}

// unlock releases mu and then runs the callbacks queued while it was held.
func (s *Session) unlock() {
	after := s.after
	s.after = nil
	s.mu.Unlock()
	for _, fn := range after {
		fn()
	}
}

// tick advances the countdown by one second and reports whether the timer
// should stop.
func (s *Session) tick() bool {
	s.mu.Lock()
	defer s.unlock()

	if s.state != StateInProgress || !s.timed || s.expired {
		return true
	}
	if s.remaining > 0 {
		s.remaining--
	}
	s.evaluateWarningsLocked()
	if s.remaining > 0 {
		return false
	}

	// Answers are frozen from here on; a failed save can only be retried.
	s.expired = true
	if s.cfg.UserID == "" {
		log.Info().Str("sessionID", s.cfg.ID).Msg("Anonymous session expired, nothing to submit")
		s.lastErr = ErrUnauthenticated
		s.endLocked(StateAbandoned)
		return true
	}

	log.Info().Str("sessionID", s.cfg.ID).Str("sourceID", s.cfg.SourceID).Msg("Session countdown reached zero, submitting")
	if _, err := s.submitLocked(); err != nil {
		s.lastErr = err
		log.Error().Err(err).Str("sessionID", s.cfg.ID).Msg("Automatic submission on timeout failed")
	}
	s.releaseTimer()
	return true
}

func (s *Session) evaluateWarningsLocked() {
	if s.remaining <= FiveMinuteThreshold {
		s.fireLocked(WarningFiveMinutes)
	}
	if s.remaining == OneMinuteMark {
		s.fireLocked(WarningOneMinute)
	}
}

func (s *Session) fireLocked(w Warning) {
	if s.fired[w] {
		return
	}
	s.fired[w] = true
	s.warnings = append(s.warnings, w)
	if s.cfg.OnWarning != nil {
		s.cfg.OnWarning(s.cfg.ID, w)
	}
}

func (s *Session) releaseTimer() {
	s.stopOnce.Do(func() {
		s.timerActive = false
		close(s.stop)
	})
}

func (s *Session) endLocked(state State) {
	s.state = state
	s.endedAt = s.cfg.Now()
	s.releaseTimer()
	s.doneOnce.Do(func() {
		close(s.done)
		if s.cfg.OnEnd != nil {
			s.after = append(s.after, func() { s.cfg.OnEnd(s) })
		}
	})
}

// acceptsInputLocked reports whether navigation and answers may still change.
func (s *Session) acceptsInputLocked() bool {
	if s.state != StateInProgress || s.expired {
		return false
	}
	s.lastActive = s.cfg.Now()
	return true
}

// Next moves forward one question, stopping at the last one.
func (s *Session) Next() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.acceptsInputLocked() {
		return
	}
	if s.current < len(s.cfg.Questions)-1 {
		s.current++
	}
}

// Previous moves back one question, stopping at the first one.
func (s *Session) Previous() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.acceptsInputLocked() {
		return
	}
	if s.current > 0 {
		s.current--
	}
}

// Jump moves to any question regardless of what has been answered.
func (s *Session) Jump(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.acceptsInputLocked() {
		return nil
	}
	if index < 0 || index >= len(s.cfg.Questions) {
		return fmt.Errorf("%w: %d (question count %d)", ErrIndexOutOfRange, index, len(s.cfg.Questions))
	}
	s.current = index
	return nil
}

// Select records optionID for questionID, replacing any earlier choice.
func (s *Session) Select(questionID, optionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.acceptsInputLocked() {
		return nil
	}
	for _, q := range s.cfg.Questions {
		if q.ID != questionID {
			continue
		}
		if !q.HasOption(optionID) {
			return fmt.Errorf("%w: %s/%s", ErrInvalidSelection, questionID, optionID)
		}
		s.selections[questionID] = optionID
		return nil
	}
	return fmt.Errorf("%w: unknown question %s", ErrInvalidSelection, questionID)
}

// Submit scores every question and persists the attempt. Calling it again
// after success returns the same outcome without persisting anything. After
// the countdown expired it retries the timed-out submission.
func (s *Session) Submit() (*Outcome, error) {
	s.mu.Lock()
	defer s.unlock()
	return s.submitLocked()
}

func (s *Session) submitLocked() (*Outcome, error) {
	switch s.state {
	case StateSubmitted:
		return s.outcome, nil
	case StateAbandoned:
		return nil, ErrSessionClosed
	}
	s.lastActive = s.cfg.Now()
	if s.cfg.UserID == "" {
		return nil, ErrUnauthenticated
	}
	timedOut := s.expired

	answers := assessment.Answers(s.cfg.Questions, s.selections)
	result := assessment.Score(s.cfg.Questions, s.selections)
	attempt := Attempt{
		Kind:        s.cfg.Kind,
		SourceID:    s.cfg.SourceID,
		UserID:      s.cfg.UserID,
		Answers:     answers,
		Result:      result,
		TimedOut:    timedOut,
		SubmittedAt: s.cfg.Now(),
	}

	submissionID, err := s.cfg.Recorder.Record(attempt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}

	outOf20 := result.OutOfTwenty()
	s.outcome = &Outcome{
		SubmissionID: submissionID,
		Answers:      answers,
		Result:       result,
		ScoreOutOf20: outOf20,
		Level:        assessment.Classify(outOf20),
		TimedOut:     timedOut,
		SubmittedAt:  attempt.SubmittedAt,
	}
	s.lastErr = nil
	s.endLocked(StateSubmitted)
	if n, ok := s.cfg.Recorder.(Notifier); ok {
		s.after = append(s.after, func() { n.Submitted(attempt, submissionID) })
	}
	return s.outcome, nil
}

// Abandon ends the session without persisting and stops its countdown.
func (s *Session) Abandon() {
	s.mu.Lock()
	defer s.unlock()
	if s.state != StateInProgress {
		return
	}
	s.endLocked(StateAbandoned)
}

// Done is closed once the session is submitted or abandoned.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

func (s *Session) ID() string       { return s.cfg.ID }
func (s *Session) UserID() string   { return s.cfg.UserID }
func (s *Session) Kind() Kind       { return s.cfg.Kind }
func (s *Session) SourceID() string { return s.cfg.SourceID }

type Snapshot struct {
	ID               string            `json:"id"`
	Kind             Kind              `json:"kind"`
	SourceID         string            `json:"sourceId"`
	Title            string            `json:"title"`
	State            State             `json:"state"`
	CurrentIndex     int               `json:"currentIndex"`
	QuestionCount    int               `json:"questionCount"`
	Current          *model.Question   `json:"currentQuestion,omitempty"`
	Selections       map[string]string `json:"selections"`
	AnsweredCount    int               `json:"answeredCount"`
	RemainingSeconds *int              `json:"remainingSeconds,omitempty"`
	Expired          bool              `json:"expired"`
	Warnings         []Warning         `json:"warnings"`
	Outcome          *Outcome          `json:"outcome,omitempty"`
	LastError        string            `json:"lastError,omitempty"`
	StartedAt        time.Time         `json:"startedAt"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:            s.cfg.ID,
		Kind:          s.cfg.Kind,
		SourceID:      s.cfg.SourceID,
		Title:         s.cfg.Title,
		State:         s.state,
		CurrentIndex:  s.current,
		QuestionCount: len(s.cfg.Questions),
		Selections:    make(map[string]string, len(s.selections)),
		AnsweredCount: len(s.selections),
		Warnings:      append([]Warning{}, s.warnings...),
		Outcome:       s.outcome,
		Expired:       s.expired,
		StartedAt:     s.startedAt,
	}
	for k, v := range s.selections {
		snap.Selections[k] = v
	}
	if s.current < len(s.cfg.Questions) {
		q := s.cfg.Questions[s.current]
		snap.Current = &q
	}
	if s.timed {
		remaining := s.remaining
		snap.RemainingSeconds = &remaining
	}
	if s.lastErr != nil {
		snap.LastError = s.lastErr.Error()
	}
	return snap
}

func (s *Session) endedBefore(t time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state != StateInProgress && !s.endedAt.IsZero() && s.endedAt.Before(t)
}

// idleBefore reports whether an unfinished session has seen no activity since
// t. Sessions whose countdown is still running end on their own.
func (s *Session) idleBefore(t time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateInProgress || (s.timerActive && !s.expired) {
		return false
	}
	return s.lastActive.Before(t)
}

func (s *Session) timerRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timerActive
}
