package model

import "time"

// Account roles.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// User is a local account for the host. Passwords are stored as bcrypt
// hashes and never serialized.
type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	Role      string    `gorm:"type:varchar(20);not null;default:'User'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
