package repository

import (
	"context"

	repo "app/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	menu          repo.MenuRepository
	recipes       repo.RecipeRepository
	ingredients   repo.IngredientRepository
	orders        repo.OrderRepository
	orderItems    repo.OrderItemRepository
	inventoryTxns repo.InventoryTxnRepository
}

func (r *txReposGorm) Menu() repo.MenuRepository                  { return r.menu }
func (r *txReposGorm) Recipes() repo.RecipeRepository             { return r.recipes }
func (r *txReposGorm) Ingredients() repo.IngredientRepository     { return r.ingredients }
func (r *txReposGorm) Orders() repo.OrderRepository               { return r.orders }
func (r *txReposGorm) OrderItems() repo.OrderItemRepository       { return r.orderItems }
func (r *txReposGorm) InventoryTxns() repo.InventoryTxnRepository { return r.inventoryTxns }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			menu:          NewMenuGormRepository(tx),
			recipes:       NewRecipeGormRepository(tx),
			ingredients:   NewIngredientGormRepository(tx),
			orders:        NewOrderGormRepository(tx),
			orderItems:    NewOrderItemGormRepository(tx),
			inventoryTxns: NewInventoryTxnGormRepository(tx),
		}
		return fn(r)
	})
}
