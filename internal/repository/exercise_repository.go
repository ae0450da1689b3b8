package repository

import (
	"github.com/lshigami/atcprep/internal/model"
	"gorm.io/gorm"
)

type ExerciseRepository interface {
	Create(exercise *model.Exercise) error
	FindByID(id string) (*model.Exercise, error)
	FindAll(category *model.ContentCategory) ([]model.Exercise, error)
	Update(exercise *model.Exercise) error
	Delete(id string) error
}

type exerciseRepository struct {
	db *gorm.DB
}

func NewExerciseRepository(db *gorm.DB) ExerciseRepository {
	return &exerciseRepository{db: db}
}

func (r *exerciseRepository) Create(exercise *model.Exercise) error {
	return storageError("create exercise", r.db.Create(exercise).Error)
}

func (r *exerciseRepository) FindByID(id string) (*model.Exercise, error) {
	var exercise model.Exercise
	err := r.db.First(&exercise, "id = ?", id).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &exercise, nil
}

func (r *exerciseRepository) FindAll(category *model.ContentCategory) ([]model.Exercise, error) {
	var exercises []model.Exercise
	query := r.db.Order("created_at DESC")
	if category != nil {
		query = query.Where("category = ?", *category)
	}
	err := query.Find(&exercises).Error
	return exercises, err
}

func (r *exerciseRepository) Update(exercise *model.Exercise) error {
	return storageError("update exercise", r.db.Save(exercise).Error)
}

func (r *exerciseRepository) Delete(id string) error {
	return r.db.Delete(&model.Exercise{}, "id = ?", id).Error
}
