package entity

import "time"

// Distribution status
const (
	DistributionStatusPending    = "pending"
	DistributionStatusInProgress = "in_progress"
	DistributionStatusCompleted  = "completed"
	DistributionStatusCancelled  = "cancelled"
)

// Distribution assigns a quantity from a batch to a worker for processing.
// Recording production against it completes it; deleting the last production
// record reverts it to pending.
type Distribution struct {
	ID                     int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	DistributionNumber     string     `json:"distribution_number" gorm:"size:50;not null;uniqueIndex"`
	WorkerID               int64      `json:"worker_id" gorm:"not null;index"`
	BatchID                int64      `json:"batch_id" gorm:"not null;index"`
	Quantity               int64      `json:"quantity" gorm:"not null"`
	DistributionDate       time.Time  `json:"distribution_date" gorm:"not null"`
	ExpectedCompletionDate *time.Time `json:"expected_completion_date"`
	Status                 string     `json:"status" gorm:"size:20;not null;default:pending"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`

	Worker *Worker `json:"worker,omitempty" gorm:"foreignKey:WorkerID;constraint:OnDelete:RESTRICT"`
	Batch  *Batch  `json:"batch,omitempty" gorm:"foreignKey:BatchID;constraint:OnDelete:RESTRICT"`

	// Display fields filled by the list joins.
	WorkerName  string `json:"worker_name,omitempty" gorm:"->;-:migration"`
	BatchNumber string `json:"batch_number,omitempty" gorm:"->;-:migration"`
}

func (Distribution) TableName() string {
	return "distributions"
}
