package repository

import (
	"github.com/m06522052-gif/AqeelApp/internal/entity"
	"gorm.io/gorm"
)

type ProductionRepository struct {
	db *gorm.DB
}

func NewProductionRepository(db *gorm.DB) *ProductionRepository {
	return &ProductionRepository{db: db}
}

func (r *ProductionRepository) GetByID(id int64) (*entity.Production, error) {
	var p entity.Production
	err := r.db.
		Select("production.*, distributions.distribution_number AS distribution_number, workers.name AS worker_name").
		Joins("LEFT JOIN distributions ON distributions.id = production.distribution_id").
		Joins("LEFT JOIN workers ON workers.id = distributions.worker_id").
		First(&p, "production.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

type ProductionListParams struct {
	DistributionID int64
	Quality        string
}

func (r *ProductionRepository) List(params ProductionListParams) ([]entity.Production, error) {
	query := r.db.Model(&entity.Production{}).
		Select("production.*, distributions.distribution_number AS distribution_number, workers.name AS worker_name").
		Joins("LEFT JOIN distributions ON distributions.id = production.distribution_id").
		Joins("LEFT JOIN workers ON workers.id = distributions.worker_id")
	if params.DistributionID != 0 {
		query = query.Where("production.distribution_id = ?", params.DistributionID)
	}
	if params.Quality != "" {
		query = query.Where("production.quality = ?", params.Quality)
	}
	var items []entity.Production
	err := query.Order("production.created_at DESC").Find(&items).Error
	return items, err
}
