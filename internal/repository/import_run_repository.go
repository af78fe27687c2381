package repository

import (
	"exam_ingest_backend/internal/model"

	"gorm.io/gorm"
)

type ImportRunRepository struct {
	DB *gorm.DB
}

func NewImportRunRepository(db *gorm.DB) *ImportRunRepository {
	return &ImportRunRepository{DB: db}
}

func (r *ImportRunRepository) Create(run *model.ImportRun) error {
	return r.DB.Create(run).Error
}

func (r *ImportRunRepository) List(page, limit int) ([]model.ImportRun, int64, error) {
	var runs []model.ImportRun
	var total int64

	query := r.DB.Model(&model.ImportRun{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&runs).Error
	return runs, total, err
}
