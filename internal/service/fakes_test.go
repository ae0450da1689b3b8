package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/lshigami/atcprep/internal/event"
	"github.com/lshigami/atcprep/internal/model"
	"github.com/lshigami/atcprep/internal/session"
)

var errFakeStorage = errors.New("fake storage failure")

type fakeTestRepo struct {
	tests   map[string]*model.Test
	creates int
}

func newFakeTestRepo(tests ...model.Test) *fakeTestRepo {
	r := &fakeTestRepo{tests: map[string]*model.Test{}}
	for i := range tests {
		r.tests[tests[i].ID] = &tests[i]
	}
	return r
}

func (r *fakeTestRepo) Create(t *model.Test) error {
	r.creates++
	r.tests[t.ID] = t
	return nil
}

func (r *fakeTestRepo) FindByID(id string) (*model.Test, error) { return r.tests[id], nil }

func (r *fakeTestRepo) FindAll() ([]model.Test, error) {
	out := make([]model.Test, 0, len(r.tests))
	for _, t := range r.tests {
		out = append(out, *t)
	}
	return out, nil
}

func (r *fakeTestRepo) Update(t *model.Test) error { r.tests[t.ID] = t; return nil }
func (r *fakeTestRepo) Delete(id string) error     { delete(r.tests, id); return nil }

type fakeExerciseRepo struct {
	exercises map[string]*model.Exercise
}

func newFakeExerciseRepo(exercises ...model.Exercise) *fakeExerciseRepo {
	r := &fakeExerciseRepo{exercises: map[string]*model.Exercise{}}
	for i := range exercises {
		r.exercises[exercises[i].ID] = &exercises[i]
	}
	return r
}

func (r *fakeExerciseRepo) Create(e *model.Exercise) error { r.exercises[e.ID] = e; return nil }
func (r *fakeExerciseRepo) FindByID(id string) (*model.Exercise, error) {
	return r.exercises[id], nil
}
func (r *fakeExerciseRepo) FindAll(category *model.ContentCategory) ([]model.Exercise, error) {
	var out []model.Exercise
	for _, e := range r.exercises {
		if category == nil || e.Category == *category {
			out = append(out, *e)
		}
	}
	return out, nil
}
func (r *fakeExerciseRepo) Update(e *model.Exercise) error { r.exercises[e.ID] = e; return nil }
func (r *fakeExerciseRepo) Delete(id string) error         { delete(r.exercises, id); return nil }

type fakeCourseRepo struct {
	courses map[string]*model.Course
	failing bool
}

func newFakeCourseRepo(courses ...model.Course) *fakeCourseRepo {
	r := &fakeCourseRepo{courses: map[string]*model.Course{}}
	for i := range courses {
		r.courses[courses[i].ID] = &courses[i]
	}
	return r
}

func (r *fakeCourseRepo) Create(c *model.Course) error {
	if r.failing {
		return errFakeStorage
	}
	r.courses[c.ID] = c
	return nil
}
func (r *fakeCourseRepo) FindByID(id string) (*model.Course, error) { return r.courses[id], nil }
func (r *fakeCourseRepo) FindAll(category *model.ContentCategory) ([]model.Course, error) {
	var out []model.Course
	for _, c := range r.courses {
		if category == nil || c.Category == *category {
			out = append(out, *c)
		}
	}
	return out, nil
}
func (r *fakeCourseRepo) Update(c *model.Course) error {
	if r.failing {
		return errFakeStorage
	}
	r.courses[c.ID] = c
	return nil
}
func (r *fakeCourseRepo) Delete(id string) error { delete(r.courses, id); return nil }

type fakeTestSubmissionRepo struct {
	mu      sync.Mutex
	rows    []model.TestSubmission
	failing bool
}

func (r *fakeTestSubmissionRepo) Create(s *model.TestSubmission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failing {
		return errFakeStorage
	}
	r.rows = append(r.rows, *s)
	return nil
}

func (r *fakeTestSubmissionRepo) FindByID(id string) (*model.TestSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].ID == id {
			row := r.rows[i]
			return &row, nil
		}
	}
	return nil, nil
}

func (r *fakeTestSubmissionRepo) FindByTest(testID string) ([]model.TestSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.TestSubmission
	for _, row := range r.rows {
		if row.TestID == testID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeTestSubmissionRepo) FindByUser(userID string) ([]model.TestSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.TestSubmission
	for _, row := range r.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeTestSubmissionRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

type fakeExerciseSubmissionRepo struct {
	mu      sync.Mutex
	rows    map[string]model.ExerciseSubmission
	upserts int
}

func newFakeExerciseSubmissionRepo() *fakeExerciseSubmissionRepo {
	return &fakeExerciseSubmissionRepo{rows: map[string]model.ExerciseSubmission{}}
}

func (r *fakeExerciseSubmissionRepo) Upsert(s *model.ExerciseSubmission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.upserts++
	key := s.ExerciseID + "/" + s.UserID
	if existing, ok := r.rows[key]; ok {
		s.ID = existing.ID
	}
	r.rows[key] = *s
	return nil
}

func (r *fakeExerciseSubmissionRepo) FindByExerciseAndUser(exerciseID, userID string) (*model.ExerciseSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[exerciseID+"/"+userID]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *fakeExerciseSubmissionRepo) FindByUser(userID string) ([]model.ExerciseSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.ExerciseSubmission
	for _, row := range r.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo(users ...model.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*model.User{}}
	for i := range users {
		r.users[users[i].ID] = &users[i]
	}
	return r
}

func (r *fakeUserRepo) Create(u *model.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) FindByID(id string) (*model.User, error) {
	return r.users[id], nil
}
func (r *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) FindAll() ([]model.User, error) {
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}
func (r *fakeUserRepo) Update(u *model.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) Delete(id string) error     { delete(r.users, id); return nil }

type fakePublisher struct {
	mu     sync.Mutex
	events []event.SubmissionEvent
}

func (p *fakePublisher) PublishSubmission(_ context.Context, e event.SubmissionEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *fakePublisher) Close() error { return nil }

func (p *fakePublisher) published() []event.SubmissionEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]event.SubmissionEvent(nil), p.events...)
}

// idleTicker never fires, so countdowns stay put during service tests.
type idleTicker struct{ c chan time.Time }

func (t idleTicker) C() <-chan time.Time { return t.c }
func (t idleTicker) Stop()               {}

func newIdleManager() *session.Manager {
	return session.NewManagerWithClock(func(time.Duration) session.Ticker {
		return idleTicker{c: make(chan time.Time)}
	}, time.Now)
}

func sampleQuestions() []model.Question {
	return []model.Question{
		{ID: "q1", Text: "QNH stands for?", Options: []model.Option{{ID: "q1o1", Text: "Altimeter sub-scale setting to obtain elevation"}, {ID: "q1o2", Text: "Height above threshold"}}, CorrectOptionID: "q1o1"},
		{ID: "q2", Text: "Emergency squawk?", Options: []model.Option{{ID: "q2o1", Text: "7600"}, {ID: "q2o2", Text: "7700"}}, CorrectOptionID: "q2o2"},
	}
}
