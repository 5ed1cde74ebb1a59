package repository

import (
	"app/internal/domain/model"
	"context"
)

type RecipeRepository interface {
	ListByMenuItemID(ctx context.Context, menuItemID string) ([]model.Recipe, error)
}
