package entity

import "time"

// Production quality grades
const (
	QualityExcellent  = "excellent"
	QualityGood       = "good"
	QualityAcceptable = "acceptable"
	QualityRejected   = "rejected"
)

// Production records the output of a distribution: how many units came back
// and at what quality grade, optionally landed in a finished-goods warehouse.
type Production struct {
	ID             int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	DistributionID int64     `json:"distribution_id" gorm:"not null;index"`
	Quantity       int64     `json:"quantity" gorm:"not null"`
	ProductionDate time.Time `json:"production_date" gorm:"not null"`
	Quality        string    `json:"quality" gorm:"size:20;not null"`
	WarehouseID    *int64    `json:"warehouse_id" gorm:"index"`
	Notes          string    `json:"notes" gorm:"type:text"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Distribution *Distribution `json:"distribution,omitempty" gorm:"foreignKey:DistributionID;constraint:OnDelete:RESTRICT"`
	Warehouse    *Warehouse    `json:"warehouse,omitempty" gorm:"foreignKey:WarehouseID;constraint:OnDelete:RESTRICT"`

	DistributionNumber string `json:"distribution_number,omitempty" gorm:"->;-:migration"`
	WorkerName         string `json:"worker_name,omitempty" gorm:"->;-:migration"`
}

func (Production) TableName() string {
	return "production"
}
