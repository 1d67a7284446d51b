package entity

import "time"

// Movement types
const (
	MovementTransfer   = "transfer"
	MovementInbound    = "inbound"
	MovementOutbound   = "outbound"
	MovementAdjustment = "adjustment"
)

// InventoryMovement is a pure log entry. Recording one does not adjust any
// stock number elsewhere; warehouses and batches keep their own quantities.
type InventoryMovement struct {
	ID              int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	MovementType    string    `json:"movement_type" gorm:"size:20;not null"`
	FromWarehouseID *int64    `json:"from_warehouse_id" gorm:"index"`
	ToWarehouseID   *int64    `json:"to_warehouse_id" gorm:"index"`
	BatchID         *int64    `json:"batch_id" gorm:"index"`
	Quantity        int64     `json:"quantity" gorm:"not null"`
	Responsible     string    `json:"responsible" gorm:"size:100"`
	Notes           string    `json:"notes" gorm:"type:text"`
	MovementDate    time.Time `json:"movement_date" gorm:"not null"`
	CreatedAt       time.Time `json:"created_at"`

	FromWarehouse *Warehouse `json:"from_warehouse,omitempty" gorm:"foreignKey:FromWarehouseID;constraint:OnDelete:RESTRICT"`
	ToWarehouse   *Warehouse `json:"to_warehouse,omitempty" gorm:"foreignKey:ToWarehouseID;constraint:OnDelete:RESTRICT"`
	Batch         *Batch     `json:"batch,omitempty" gorm:"foreignKey:BatchID;constraint:OnDelete:RESTRICT"`
}

func (InventoryMovement) TableName() string {
	return "inventory_movements"
}
