package repository

import (
	"github.com/lshigami/atcprep/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TestSubmissionRepository appends: every completed attempt is a new row, so
// repeat attempts on a test are all kept.
// TODO: confirm with product whether test retakes should replace the previous
// submission the way exercise submissions do.
type TestSubmissionRepository interface {
	Create(submission *model.TestSubmission) error
	FindByID(id string) (*model.TestSubmission, error)
	FindByTest(testID string) ([]model.TestSubmission, error)
	FindByUser(userID string) ([]model.TestSubmission, error)
}

type testSubmissionRepository struct {
	db *gorm.DB
}

func NewTestSubmissionRepository(db *gorm.DB) TestSubmissionRepository {
	return &testSubmissionRepository{db: db}
}

func (r *testSubmissionRepository) Create(submission *model.TestSubmission) error {
	return storageError("create test submission", r.db.Create(submission).Error)
}

func (r *testSubmissionRepository) FindByID(id string) (*model.TestSubmission, error) {
	var submission model.TestSubmission
	err := r.db.First(&submission, "id = ?", id).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *testSubmissionRepository) FindByTest(testID string) ([]model.TestSubmission, error) {
	var submissions []model.TestSubmission
	err := r.db.Where("test_id = ?", testID).Order("submitted_at DESC").Find(&submissions).Error
	return submissions, err
}

func (r *testSubmissionRepository) FindByUser(userID string) ([]model.TestSubmission, error) {
	var submissions []model.TestSubmission
	err := r.db.Where("user_id = ?", userID).Order("submitted_at DESC").Find(&submissions).Error
	return submissions, err
}

// ExerciseSubmissionRepository upserts on (exercise, user).
type ExerciseSubmissionRepository interface {
	Upsert(submission *model.ExerciseSubmission) error
	FindByExerciseAndUser(exerciseID, userID string) (*model.ExerciseSubmission, error)
	FindByUser(userID string) ([]model.ExerciseSubmission, error)
}

type exerciseSubmissionRepository struct {
	db *gorm.DB
}

func NewExerciseSubmissionRepository(db *gorm.DB) ExerciseSubmissionRepository {
	return &exerciseSubmissionRepository{db: db}
}

func (r *exerciseSubmissionRepository) Upsert(submission *model.ExerciseSubmission) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "exercise_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"answers", "score", "total_questions", "submitted_at"}),
	}).Create(submission).Error
	return storageError("upsert exercise submission", err)
}

func (r *exerciseSubmissionRepository) FindByExerciseAndUser(exerciseID, userID string) (*model.ExerciseSubmission, error) {
	var submission model.ExerciseSubmission
	err := r.db.Where("exercise_id = ? AND user_id = ?", exerciseID, userID).First(&submission).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *exerciseSubmissionRepository) FindByUser(userID string) ([]model.ExerciseSubmission, error) {
	var submissions []model.ExerciseSubmission
	err := r.db.Where("user_id = ?", userID).Order("submitted_at DESC").Find(&submissions).Error
	return submissions, err
}
