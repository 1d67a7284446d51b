package entity

import "time"

// User roles
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

type User struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Username  string    `json:"username" gorm:"size:64;not null;uniqueIndex"`
	Email     string    `json:"email" gorm:"size:128;not null;uniqueIndex"`
	Phone     string    `json:"phone" gorm:"size:32"`
	Password  string    `json:"-" gorm:"size:128;not null"` // bcrypt hash
	Role      string    `json:"role" gorm:"size:20;not null;default:employee"`
	IsActive  bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
