package model

import "time"

// CustomTemplate is a user-authored invoice template. JSON field names
// match the boundary contract consumed by the views.
type CustomTemplate struct {
	ID                  int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name                string    `gorm:"type:varchar(255);not null" json:"name"`
	HeaderBgColor       string    `gorm:"type:varchar(20)" json:"header_bg_color"`
	HeaderTextColor     string    `gorm:"type:varchar(20)" json:"header_text_color"`
	AccentColor         string    `gorm:"type:varchar(20)" json:"accent_color"`
	FontFamily          string    `gorm:"type:varchar(100)" json:"font_family"`
	ShowLogo            bool      `gorm:"not null;default:true" json:"show_logo"`
	ShowBusinessAddress bool      `gorm:"not null;default:true" json:"show_business_address"`
	ShowBusinessPhone   bool      `gorm:"not null;default:true" json:"show_business_phone"`
	ShowBusinessEmail   bool      `gorm:"not null;default:true" json:"show_business_email"`
	LayoutStyle         string    `gorm:"type:varchar(20)" json:"layout_style"`
	HeaderPosition      string    `gorm:"type:varchar(20)" json:"header_position"`
	TableStyle          string    `gorm:"type:varchar(20)" json:"table_style"`
	ShowTaxColumn       bool      `gorm:"not null;default:true" json:"show_tax_column"`
	ShowDescriptionCol  bool      `gorm:"not null;default:true;column:show_description_column" json:"show_description_column"`
	FooterText          string    `gorm:"type:text" json:"footer_text"`
	BorderStyle         string    `gorm:"type:varchar(20)" json:"border_style"`
	BorderColor         string    `gorm:"type:varchar(20)" json:"border_color"`
	CreatedAt           time.Time `json:"created_at"`
}
