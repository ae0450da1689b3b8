package repository

import (
	"github.com/lshigami/atcprep/internal/model"
	"gorm.io/gorm"
)

type TestRepository interface {
	Create(test *model.Test) error
	FindByID(id string) (*model.Test, error)
	FindAll() ([]model.Test, error)
	Update(test *model.Test) error
	Delete(id string) error
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) Create(test *model.Test) error {
	return storageError("create test", r.db.Create(test).Error)
}

// FindByID returns nil, nil when no test has this id.
func (r *testRepository) FindByID(id string) (*model.Test, error) {
	var test model.Test
	err := r.db.First(&test, "id = ?", id).Error
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) FindAll() ([]model.Test, error) {
	var tests []model.Test
	err := r.db.Order("created_at DESC").Find(&tests).Error
	return tests, err
}

func (r *testRepository) Update(test *model.Test) error {
	return storageError("update test", r.db.Save(test).Error)
}

func (r *testRepository) Delete(id string) error {
	return r.db.Delete(&model.Test{}, "id = ?", id).Error
}
