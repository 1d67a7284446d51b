package repository

import (
	"github.com/m06522052-gif/AqeelApp/internal/entity"
	"gorm.io/gorm"
)

type DistributionRepository struct {
	db *gorm.DB
}

func NewDistributionRepository(db *gorm.DB) *DistributionRepository {
	return &DistributionRepository{db: db}
}

func (r *DistributionRepository) Create(d *entity.Distribution) error {
	return r.db.Create(d).Error
}

func (r *DistributionRepository) GetByID(id int64) (*entity.Distribution, error) {
	var d entity.Distribution
	err := r.db.
		Select("distributions.*, workers.name AS worker_name, batches.batch_number AS batch_number").
		Joins("LEFT JOIN workers ON workers.id = distributions.worker_id").
		Joins("LEFT JOIN batches ON batches.id = distributions.batch_id").
		First(&d, "distributions.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

type DistributionListParams struct {
	Status   string
	WorkerID int64
	BatchID  int64
}

func (r *DistributionRepository) List(params DistributionListParams) ([]entity.Distribution, error) {
	query := r.db.Model(&entity.Distribution{}).
		Select("distributions.*, workers.name AS worker_name, batches.batch_number AS batch_number").
		Joins("LEFT JOIN workers ON workers.id = distributions.worker_id").
		Joins("LEFT JOIN batches ON batches.id = distributions.batch_id")
	if params.Status != "" {
		query = query.Where("distributions.status = ?", params.Status)
	}
	if params.WorkerID != 0 {
		query = query.Where("distributions.worker_id = ?", params.WorkerID)
	}
	if params.BatchID != 0 {
		query = query.Where("distributions.batch_id = ?", params.BatchID)
	}
	var items []entity.Distribution
	err := query.Order("distributions.created_at DESC").Find(&items).Error
	return items, err
}

func (r *DistributionRepository) Update(d *entity.Distribution) error {
	return r.db.Save(d).Error
}

func (r *DistributionRepository) Delete(id int64) error {
	res := r.db.Delete(&entity.Distribution{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// QualityBreakdown sums produced quantity per quality grade for one
// distribution (the distribution detail screen).
type QualityBreakdown struct {
	Quality string `json:"quality"`
	Total   int64  `json:"total"`
}

func (r *DistributionRepository) ProductionByQuality(distributionID int64) ([]QualityBreakdown, error) {
	var rows []QualityBreakdown
	err := r.db.Raw(`
		SELECT quality, COALESCE(SUM(quantity), 0) AS total
		FROM production
		WHERE distribution_id = ?
		GROUP BY quality
	`, distributionID).Scan(&rows).Error
	return rows, err
}
