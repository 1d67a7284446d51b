package repository

import (
	"github.com/m06522052-gif/AqeelApp/internal/entity"
	"gorm.io/gorm"
)

type MaterialRepository struct {
	db *gorm.DB
}

func NewMaterialRepository(db *gorm.DB) *MaterialRepository {
	return &MaterialRepository{db: db}
}

func (r *MaterialRepository) Create(m *entity.Material) error {
	return r.db.Create(m).Error
}

func (r *MaterialRepository) GetByID(id int64) (*entity.Material, error) {
	var m entity.Material
	if err := r.db.Preload("Warehouse").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

type MaterialListParams struct {
	WarehouseID int64
	Status      string
	Keyword     string
	LowStock    bool
}

func (r *MaterialRepository) List(params MaterialListParams) ([]entity.Material, error) {
	query := r.db.Model(&entity.Material{}).Preload("Warehouse")
	if params.WarehouseID != 0 {
		query = query.Where("warehouse_id = ?", params.WarehouseID)
	}
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.Keyword != "" {
		kw := "%" + params.Keyword + "%"
		query = query.Where("name LIKE ? OR material_number LIKE ?", kw, kw)
	}
	if params.LowStock {
		query = query.Where("minimum_stock > 0 AND quantity <= minimum_stock")
	}
	var items []entity.Material
	err := query.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *MaterialRepository) Update(m *entity.Material) error {
	return r.db.Save(m).Error
}

func (r *MaterialRepository) Delete(id int64) error {
	res := r.db.Delete(&entity.Material{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// LowStock lists materials at or below their threshold.
func (r *MaterialRepository) LowStock() ([]entity.Material, error) {
	var alerts []entity.Material
	err := r.db.Preload("Warehouse").
		Where("minimum_stock > 0 AND quantity <= minimum_stock").
		Find(&alerts).Error
	return alerts, err
}
