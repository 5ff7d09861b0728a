package model

// Settings is the single-row business profile. The host creates the row
// with defaults on first access.
type Settings struct {
	ID              int64  `gorm:"primaryKey" json:"-"`
	BusinessName    string `gorm:"type:varchar(255);not null;default:'My Business'" json:"business_name"`
	BusinessAddress string `gorm:"type:text" json:"business_address"`
	BusinessPhone   string `gorm:"type:varchar(50)" json:"business_phone"`
	BusinessEmail   string `gorm:"type:varchar(255)" json:"business_email"`
	BusinessTagline string `gorm:"type:varchar(255)" json:"business_tagline"`
	CurrencySymbol  string `gorm:"type:varchar(10);not null;default:'$'" json:"currency_symbol"`
	TaxLabel        string `gorm:"type:varchar(50);not null;default:'Tax'" json:"tax_label"`
	LogoPath        string `gorm:"type:text" json:"logo_path"`
	SignaturePath   string `gorm:"type:text" json:"signature_path"`
	QRCodePath      string `gorm:"type:text" json:"qr_code_path"`
	DefaultFooter   string `gorm:"type:text" json:"default_footer"`
	TemplateType    string `gorm:"type:varchar(50);not null;default:'Basic'" json:"template_type"`
	BankName        string `gorm:"type:varchar(255)" json:"bank_name"`
	BankAccountName string `gorm:"type:varchar(255)" json:"bank_account_name"`
	BankAccountNo   string `gorm:"type:varchar(100)" json:"bank_account_no"`
	BankBranch      string `gorm:"type:varchar(255)" json:"bank_branch"`
}
