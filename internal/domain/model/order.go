package model

import "time"

type Order struct {
	ID         string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	TotalCents int64     `gorm:"not null" json:"total_cents"`
	CreatedAt  time.Time `gorm:"type:timestamptz;not null;autoCreateTime" json:"created_at"`
}
