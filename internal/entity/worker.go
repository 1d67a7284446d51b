package entity

import "time"

// Worker status
const (
	WorkerStatusActive   = "active"
	WorkerStatusInactive = "inactive"
)

type Worker struct {
	ID               int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name             string    `json:"name" gorm:"size:100;not null"`
	Phone            string    `json:"phone" gorm:"size:32"`
	Address          string    `json:"address" gorm:"size:255"`
	RegistrationDate time.Time `json:"registration_date" gorm:"not null"`
	Status           string    `json:"status" gorm:"size:20;not null;default:active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Worker) TableName() string {
	return "workers"
}
