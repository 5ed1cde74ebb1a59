package repository

import (
	"context"

	"app/internal/domain/model"

	"gorm.io/gorm"
)

type InventoryTxnGormRepository struct {
	db *gorm.DB
}

func NewInventoryTxnGormRepository(db *gorm.DB) *InventoryTxnGormRepository {
	return &InventoryTxnGormRepository{db: db}
}

func (r *InventoryTxnGormRepository) Create(ctx context.Context, txn model.InventoryTxn) error {
	return r.db.WithContext(ctx).Create(&txn).Error
}
