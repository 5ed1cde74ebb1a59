package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// メニューの取得だけを約束（コアからは読み取り専用）。
type MenuRepository interface {
	ListActive(ctx context.Context) ([]model.MenuItem, error)
}
