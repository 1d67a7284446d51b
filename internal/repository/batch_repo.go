package repository

import (
	"github.com/m06522052-gif/AqeelApp/internal/entity"
	"gorm.io/gorm"
)

// remainingSelect augments batch rows with the derived remaining quantity.
const remainingSelect = "batches.*, batches.quantity - COALESCE((SELECT SUM(d.quantity) FROM distributions d WHERE d.batch_id = batches.id), 0) AS remaining_quantity"

type BatchRepository struct {
	db *gorm.DB
}

func NewBatchRepository(db *gorm.DB) *BatchRepository {
	return &BatchRepository{db: db}
}

func (r *BatchRepository) Create(b *entity.Batch) error {
	return r.db.Create(b).Error
}

func (r *BatchRepository) GetByID(id int64) (*entity.Batch, error) {
	var b entity.Batch
	err := r.db.Select(remainingSelect).
		Preload("Warehouse").
		First(&b, "batches.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

type BatchListParams struct {
	Status      string
	WarehouseID int64
	Supplier    string
}

func (r *BatchRepository) List(params BatchListParams) ([]entity.Batch, error) {
	query := r.db.Model(&entity.Batch{}).Select(remainingSelect).Preload("Warehouse")
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.WarehouseID != 0 {
		query = query.Where("warehouse_id = ?", params.WarehouseID)
	}
	if params.Supplier != "" {
		query = query.Where("supplier = ?", params.Supplier)
	}
	var items []entity.Batch
	err := query.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *BatchRepository) Update(b *entity.Batch) error {
	return r.db.Save(b).Error
}

func (r *BatchRepository) Delete(id int64) error {
	res := r.db.Delete(&entity.Batch{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DistributedQuantity sums distribution quantities recorded against a batch.
func (r *BatchRepository) DistributedQuantity(batchID int64) (int64, error) {
	return distributedQuantity(r.db, batchID)
}

func distributedQuantity(tx *gorm.DB, batchID int64) (int64, error) {
	var result struct{ Total int64 }
	err := tx.Raw(`
		SELECT COALESCE(SUM(quantity), 0) AS total
		FROM distributions
		WHERE batch_id = ?
	`, batchID).Scan(&result).Error
	return result.Total, err
}
