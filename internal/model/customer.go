package model

import "time"

// Customer is a billable party.
type Customer struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Company   string    `gorm:"type:varchar(255)" json:"company"`
	Phone     string    `gorm:"type:varchar(50)" json:"phone"`
	Email     string    `gorm:"type:varchar(255)" json:"email"`
	Address   string    `gorm:"type:text" json:"address"`
	TaxID     string    `gorm:"type:varchar(50)" json:"tax_id"`
	CreatedAt time.Time `json:"created_at"`
}
