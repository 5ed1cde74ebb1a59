package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 在庫増減の履歴（追記のみ、更新・削除しない）
type InventoryTxn struct {
	ID           string          `gorm:"type:varchar(64);primaryKey" json:"id"`
	IngredientID string          `gorm:"type:varchar(64);not null;index" json:"ingredient_id"`
	Delta        decimal.Decimal `gorm:"type:numeric;not null" json:"delta"`
	Reason       string          `gorm:"type:varchar(255);not null" json:"reason"`
	CreatedAt    time.Time       `gorm:"type:timestamptz;not null;autoCreateTime" json:"created_at"`
}

func (InventoryTxn) TableName() string {
	return "inventory_txn"
}
