package repository

import (
	"context"

	"app/internal/domain/model"

	"gorm.io/gorm"
)

type RecipeGormRepository struct {
	db *gorm.DB
}

func NewRecipeGormRepository(db *gorm.DB) *RecipeGormRepository {
	return &RecipeGormRepository{db: db}
}

func (r *RecipeGormRepository) ListByMenuItemID(ctx context.Context, menuItemID string) ([]model.Recipe, error) {
	var edges []model.Recipe
	err := r.db.WithContext(ctx).
		Where("menu_item_id = ?", menuItemID).
		Find(&edges).Error
	if err != nil {
		return []model.Recipe{}, err
	}
	return edges, nil
}
