package repository

import (
	"github.com/m06522052-gif/AqeelApp/internal/entity"
	"gorm.io/gorm"
)

type MovementRepository struct {
	db *gorm.DB
}

func NewMovementRepository(db *gorm.DB) *MovementRepository {
	return &MovementRepository{db: db}
}

func (r *MovementRepository) Create(m *entity.InventoryMovement) error {
	return r.db.Create(m).Error
}

func (r *MovementRepository) GetByID(id int64) (*entity.InventoryMovement, error) {
	var m entity.InventoryMovement
	err := r.db.
		Preload("FromWarehouse").
		Preload("ToWarehouse").
		Preload("Batch").
		First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

type MovementListParams struct {
	MovementType string
	WarehouseID  int64
	BatchID      int64
	Limit        int
}

func (r *MovementRepository) List(params MovementListParams) ([]entity.InventoryMovement, error) {
	query := r.db.Model(&entity.InventoryMovement{})
	if params.MovementType != "" {
		query = query.Where("movement_type = ?", params.MovementType)
	}
	if params.WarehouseID != 0 {
		query = query.Where("(from_warehouse_id = ? OR to_warehouse_id = ?)", params.WarehouseID, params.WarehouseID)
	}
	if params.BatchID != 0 {
		query = query.Where("batch_id = ?", params.BatchID)
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 50 // the movement screen shows the latest 50
	}
	var items []entity.InventoryMovement
	err := query.Order("created_at DESC").Limit(limit).Find(&items).Error
	return items, err
}

func (r *MovementRepository) Delete(id int64) error {
	res := r.db.Delete(&entity.InventoryMovement{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
