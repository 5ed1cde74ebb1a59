package model

import "github.com/shopspring/decimal"

type Ingredient struct {
	ID           string          `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name         string          `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	Unit         string          `gorm:"type:varchar(32);not null" json:"unit"`
	Stock        decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"stock"`
	ReorderLevel decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"reorder_level"`
}
