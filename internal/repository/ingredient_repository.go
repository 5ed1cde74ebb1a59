package repository

import (
	"app/internal/domain/model"
	"context"

	"github.com/shopspring/decimal"
)

type IngredientRepository interface {
	// 消費マップに載った材料をまとめて取得
	FindByIDs(ctx context.Context, ids []string) ([]model.Ingredient, error)

	// 在庫が足りるときだけ減算
	DecreaseStockIfEnough(ctx context.Context, ingredientID string, qty decimal.Decimal) (bool, error)

	// 在庫戻し（補充。コアの外）
	IncreaseStock(ctx context.Context, ingredientID string, qty decimal.Decimal) error

	// 発注点を下回った材料
	ListBelowReorderLevel(ctx context.Context) ([]model.Ingredient, error)
}
