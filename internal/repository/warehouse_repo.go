package repository

import (
	"github.com/m06522052-gif/AqeelApp/internal/entity"
	"gorm.io/gorm"
)

type WarehouseRepository struct {
	db *gorm.DB
}

func NewWarehouseRepository(db *gorm.DB) *WarehouseRepository {
	return &WarehouseRepository{db: db}
}

func (r *WarehouseRepository) Create(w *entity.Warehouse) error {
	return r.db.Create(w).Error
}

func (r *WarehouseRepository) GetByID(id int64) (*entity.Warehouse, error) {
	var w entity.Warehouse
	if err := r.db.First(&w, id).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

type WarehouseListParams struct {
	Type       string
	OnlyActive bool
}

func (r *WarehouseRepository) List(params WarehouseListParams) ([]entity.Warehouse, error) {
	query := r.db.Model(&entity.Warehouse{})
	if params.Type != "" {
		query = query.Where("type = ?", params.Type)
	}
	if params.OnlyActive {
		query = query.Where("status = ?", entity.WarehouseActive)
	}
	var items []entity.Warehouse
	err := query.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *WarehouseRepository) Update(w *entity.Warehouse) error {
	return r.db.Save(w).Error
}

// Delete fails with gorm.ErrForeignKeyViolated while batches, materials,
// production rows or movements still reference the warehouse.
func (r *WarehouseRepository) Delete(id int64) error {
	res := r.db.Delete(&entity.Warehouse{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
