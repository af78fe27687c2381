package repository

import (
	"errors"

	"exam_ingest_backend/internal/model"

	"gorm.io/gorm"
)

type ModuleRepository struct {
	DB *gorm.DB
}

func NewModuleRepository(db *gorm.DB) *ModuleRepository {
	return &ModuleRepository{DB: db}
}

// GetOrCreateModule is idempotent and name-keyed.
func (r *ModuleRepository) GetOrCreateModule(name, description string, order int) (*model.Module, error) {
	var m model.Module
	err := r.DB.Where("name = ?", name).First(&m).Error
	if err == nil {
		return &m, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	m = model.Module{Name: name, Description: description, Order: order}
	if err := r.DB.Create(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *ModuleRepository) GetOrCreateTopic(moduleID uint, name, description string, order int) (*model.Topic, error) {
	var t model.Topic
	err := r.DB.Where("module_id = ? AND name = ?", moduleID, name).First(&t).Error
	if err == nil {
		return &t, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	t = model.Topic{ModuleID: moduleID, Name: name, Description: description, Order: order}
	if err := r.DB.Create(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}
