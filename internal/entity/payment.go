package entity

import "time"

// Payment methods
const (
	PaymentMethodCash         = "cash"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodCheck        = "check"
)

// Payment is an independent ledger entry against a worker. It is never
// reconciled automatically with distribution or production quantities.
type Payment struct {
	ID             int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	WorkerID       int64     `json:"worker_id" gorm:"not null;index"`
	DistributionID *int64    `json:"distribution_id" gorm:"index"`
	Amount         float64   `json:"amount" gorm:"not null"`
	PaymentDate    time.Time `json:"payment_date" gorm:"not null"`
	PaymentMethod  string    `json:"payment_method" gorm:"size:20;not null"`
	Notes          string    `json:"notes" gorm:"type:text"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Worker       *Worker       `json:"worker,omitempty" gorm:"foreignKey:WorkerID;constraint:OnDelete:RESTRICT"`
	Distribution *Distribution `json:"distribution,omitempty" gorm:"foreignKey:DistributionID;constraint:OnDelete:RESTRICT"`

	WorkerName string `json:"worker_name,omitempty" gorm:"->;-:migration"`
}

func (Payment) TableName() string {
	return "payments"
}
