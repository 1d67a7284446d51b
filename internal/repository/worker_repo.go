package repository

import (
	"github.com/m06522052-gif/AqeelApp/internal/entity"
	"gorm.io/gorm"
)

type WorkerRepository struct {
	db *gorm.DB
}

func NewWorkerRepository(db *gorm.DB) *WorkerRepository {
	return &WorkerRepository{db: db}
}

func (r *WorkerRepository) Create(w *entity.Worker) error {
	return r.db.Create(w).Error
}

func (r *WorkerRepository) GetByID(id int64) (*entity.Worker, error) {
	var w entity.Worker
	if err := r.db.First(&w, id).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WorkerRepository) List(onlyActive bool) ([]entity.Worker, error) {
	query := r.db.Model(&entity.Worker{})
	if onlyActive {
		query = query.Where("status = ?", entity.WorkerStatusActive)
	}
	var items []entity.Worker
	err := query.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *WorkerRepository) Update(w *entity.Worker) error {
	return r.db.Save(w).Error
}

func (r *WorkerRepository) Delete(id int64) error {
	res := r.db.Delete(&entity.Worker{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// WorkerStats backs the worker detail screen.
type WorkerStats struct {
	DistributionCount int64   `json:"distribution_count"`
	ProductionCount   int64   `json:"production_count"`
	PaidTotal         float64 `json:"paid_total"`
}

func (r *WorkerRepository) Stats(workerID int64) (*WorkerStats, error) {
	var stats WorkerStats
	err := r.db.Model(&entity.Distribution{}).
		Where("worker_id = ?", workerID).
		Count(&stats.DistributionCount).Error
	if err != nil {
		return nil, err
	}
	err = r.db.Model(&entity.Production{}).
		Joins("JOIN distributions ON distributions.id = production.distribution_id").
		Where("distributions.worker_id = ?", workerID).
		Count(&stats.ProductionCount).Error
	if err != nil {
		return nil, err
	}
	var paid struct{ Total float64 }
	err = r.db.Raw(`
		SELECT COALESCE(SUM(amount), 0) AS total
		FROM payments
		WHERE worker_id = ?
	`, workerID).Scan(&paid).Error
	if err != nil {
		return nil, err
	}
	stats.PaidTotal = paid.Total
	return &stats, nil
}
