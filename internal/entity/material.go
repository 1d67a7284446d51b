package entity

import "time"

// Material status
const (
	MaterialStatusActive   = "active"
	MaterialStatusInactive = "inactive"
)

// Material is a raw-material stock item tracked independently of the
// batch/distribution/production flow.
type Material struct {
	ID             int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	MaterialNumber string    `json:"material_number" gorm:"size:50;not null;uniqueIndex"`
	Name           string    `json:"name" gorm:"size:100;not null"`
	Description    string    `json:"description" gorm:"type:text"`
	Unit           string    `json:"unit" gorm:"size:20;not null"`
	Quantity       float64   `json:"quantity" gorm:"not null;default:0"`
	UnitPrice      float64   `json:"unit_price" gorm:"not null;default:0"`
	Supplier       string    `json:"supplier" gorm:"size:100"`
	WarehouseID    int64     `json:"warehouse_id" gorm:"not null;index"`
	MinimumStock   float64   `json:"minimum_stock" gorm:"not null;default:0"`
	Status         string    `json:"status" gorm:"size:20;not null;default:active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Warehouse *Warehouse `json:"warehouse,omitempty" gorm:"foreignKey:WarehouseID;constraint:OnDelete:RESTRICT"`
}

func (Material) TableName() string {
	return "materials"
}

// IsLowStock reports whether stock fell to or below the threshold.
// Materials with no threshold set never alert.
func (m *Material) IsLowStock() bool {
	return m.MinimumStock > 0 && m.Quantity <= m.MinimumStock
}
