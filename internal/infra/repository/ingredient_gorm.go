package repository

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type IngredientGormRepository struct {
	db *gorm.DB
}

func NewIngredientGormRepository(db *gorm.DB) *IngredientGormRepository {
	return &IngredientGormRepository{db: db}
}

func (r *IngredientGormRepository) FindByIDs(ctx context.Context, ids []string) ([]model.Ingredient, error) {
	if len(ids) == 0 {
		return []model.Ingredient{}, nil
	}
	var ings []model.Ingredient
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&ings).Error
	if err != nil {
		return []model.Ingredient{}, err
	}
	return ings, nil
}

// 在庫が足りるときだけ減らす（affected=0 なら不足か競合負け）
func (r *IngredientGormRepository) DecreaseStockIfEnough(ctx context.Context, ingredientID string, qty decimal.Decimal) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Ingredient{}).
		Where("id = ? AND stock >= ?", ingredientID, qty).
		Update("stock", gorm.Expr("stock - ?", qty))

	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	return true, nil
}

// 在庫戻し（補充）
func (r *IngredientGormRepository) IncreaseStock(ctx context.Context, ingredientID string, qty decimal.Decimal) error {
	res := r.db.WithContext(ctx).
		Model(&model.Ingredient{}).
		Where("id = ?", ingredientID).
		Update("stock", gorm.Expr("stock + ?", qty))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *IngredientGormRepository) ListBelowReorderLevel(ctx context.Context) ([]model.Ingredient, error) {
	var ings []model.Ingredient
	err := r.db.WithContext(ctx).
		Where("stock < reorder_level").
		Order("name asc").
		Find(&ings).Error
	if err != nil {
		return []model.Ingredient{}, err
	}
	return ings, nil
}
