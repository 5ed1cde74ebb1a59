package repository

import (
	"context"

	"app/internal/domain/model"
)

// 在庫履歴は追記のみ。
type InventoryTxnRepository interface {
	Create(ctx context.Context, txn model.InventoryTxn) error
}
