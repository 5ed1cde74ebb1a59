package model

type MenuItem struct {
	ID         string  `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name       string  `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	PriceCents int64   `gorm:"not null" json:"price_cents"`
	Category   string  `gorm:"type:varchar(255)" json:"category"`
	IsActive   bool    `gorm:"not null;default:true" json:"is_active"`
	ImageURL   *string `gorm:"type:varchar(1024)" json:"image_url"`
}
