package entity

import "time"

// Warehouse status flag (the mobile app stored 0/1, not a string)
const (
	WarehouseInactive = 0
	WarehouseActive   = 1
)

// Warehouse types are free text; these are the categories the app offers.
const (
	WarehouseTypeMain        = "main"
	WarehouseTypeRawMaterial = "raw_material"
	WarehouseTypeFinished    = "finished_goods"
	WarehouseTypeTemporary   = "temporary"
)

type Warehouse struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	Location    string    `json:"location" gorm:"size:255"`
	Type        string    `json:"type" gorm:"size:50;not null"`
	Responsible string    `json:"responsible" gorm:"size:100"`
	Status      int       `json:"status" gorm:"not null;default:1"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Warehouse) TableName() string {
	return "warehouses"
}
