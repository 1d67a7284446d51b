package entity

import "time"

// Batch status
const (
	BatchStatusActive   = "active"
	BatchStatusInactive = "inactive"
)

// Bag types carried by the receiving form.
const (
	BagType4 = "4"
	BagType5 = "5"
	BagType6 = "6"
)

// Batch is a received lot of raw bag material.
type Batch struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	BatchNumber string    `json:"batch_number" gorm:"size:50;not null;uniqueIndex"`
	Supplier    string    `json:"supplier" gorm:"size:100;not null"`
	ReceiveDate time.Time `json:"receive_date" gorm:"not null"`
	BagType     string    `json:"bag_type" gorm:"size:10;not null"`
	Quantity    int64     `json:"quantity" gorm:"not null"`
	Price       float64   `json:"price" gorm:"not null"`
	Responsible string    `json:"responsible" gorm:"size:100"`
	WarehouseID *int64    `json:"warehouse_id" gorm:"index"`
	Notes       string    `json:"notes" gorm:"type:text"`
	Status      string    `json:"status" gorm:"size:20;not null;default:active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Warehouse *Warehouse `json:"warehouse,omitempty" gorm:"foreignKey:WarehouseID;constraint:OnDelete:RESTRICT"`

	// RemainingQuantity = Quantity minus the sum of this batch's distributions.
	// Computed by the select, never stored.
	RemainingQuantity int64 `json:"remaining_quantity" gorm:"->;-:migration"`
}

func (Batch) TableName() string {
	return "batches"
}
