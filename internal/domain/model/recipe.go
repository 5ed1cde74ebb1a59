package model

import "github.com/shopspring/decimal"

// レシピ（menu_item 1皿あたりの材料消費量）
type Recipe struct {
	MenuItemID   string          `gorm:"type:varchar(64);primaryKey" json:"menu_item_id"`
	IngredientID string          `gorm:"type:varchar(64);primaryKey" json:"ingredient_id"`
	QtyPerDish   decimal.Decimal `gorm:"type:numeric;not null" json:"qty_per_dish"`

	// メニュー・材料の削除時にレシピ行も消す
	MenuItem   MenuItem   `gorm:"foreignKey:MenuItemID;constraint:OnDelete:CASCADE" json:"-"`
	Ingredient Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE" json:"-"`
}
