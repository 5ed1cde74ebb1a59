package repository

import "context"

// トランザクション内で使う約束
type TxRepos interface {
	Menu() MenuRepository
	Recipes() RecipeRepository
	Ingredients() IngredientRepository
	Orders() OrderRepository
	OrderItems() OrderItemRepository
	InventoryTxns() InventoryTxnRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
// fnがerrorを返したら全ての書き込みを巻き戻す。
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
