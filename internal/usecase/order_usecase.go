package usecase

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type OrderUsecase struct {
	tx repo.TransactionManager
}

func NewOrderUsecase(tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{tx: tx}
}

type CartLine struct {
	MenuItemID string
	Qty        int64
}

type PlaceOrderOutput struct {
	OrderID    string `json:"order_id"`
	TotalCents int64  `json:"total_cents"`
}

// PlaceOrder はカートを検証し、注文行・明細行・在庫減算・在庫履歴を
// 一つのトランザクションで確定する。途中で失敗したら何も残らない。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, cart []CartLine) (PlaceOrderOutput, error) {
	if len(cart) == 0 {
		return PlaceOrderOutput{}, NewValidationError("cart is empty")
	}
	for _, line := range cart {
		if line.Qty <= 0 {
			return PlaceOrderOutput{}, NewValidationError("invalid qty for menu item '%s'", line.MenuItemID)
		}
	}

	var out PlaceOrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//販売中メニューのスナップショット
		menuRows, err := r.Menu().ListActive(ctx)
		if err != nil {
			return NewTransientError(err)
		}
		menuByID := make(map[string]model.MenuItem, len(menuRows))
		for _, m := range menuRows {
			menuByID[m.ID] = m
		}

		//金額は整数セントのまま積む。消費量はdecimalで材料ごとに合算。
		var totalCents int64
		consume := map[string]decimal.Decimal{}
		orderItems := make([]model.OrderItem, 0, len(cart))

		for _, line := range cart {
			mi, ok := menuByID[line.MenuItemID]
			if !ok {
				return NewValidationError("invalid menu item ID '%s'", line.MenuItemID)
			}

			//int64セントに収まらない注文は受け付けない
			lineTotal := mi.PriceCents * line.Qty
			if mi.PriceCents > 0 && lineTotal/line.Qty != mi.PriceCents {
				return NewValidationError("order total too large")
			}
			if totalCents > math.MaxInt64-lineTotal {
				return NewValidationError("order total too large")
			}
			totalCents += lineTotal

			edges, err := r.Recipes().ListByMenuItemID(ctx, mi.ID)
			if err != nil {
				return NewTransientError(err)
			}
			for _, e := range edges {
				need := e.QtyPerDish.Mul(decimal.NewFromInt(line.Qty))
				cur, ok := consume[e.IngredientID]
				if !ok {
					cur = decimal.Zero
				}
				consume[e.IngredientID] = cur.Add(need)
			}

			//注文時点の価格スナップショット
			orderItems = append(orderItems, model.OrderItem{
				ID:             uuid.NewString(),
				MenuItemID:     mi.ID,
				Qty:            line.Qty,
				LineTotalCents: lineTotal,
			})
		}

		//材料IDをソートして全注文が同じ順で行を触るようにする
		ingIDs := make([]string, 0, len(consume))
		for id := range consume {
			ingIDs = append(ingIDs, id)
		}
		sort.Strings(ingIDs)

		ingByID := make(map[string]model.Ingredient, len(ingIDs))
		if len(ingIDs) > 0 {
			ings, err := r.Ingredients().FindByIDs(ctx, ingIDs)
			if err != nil {
				return NewTransientError(err)
			}
			for _, ing := range ings {
				ingByID[ing.ID] = ing
			}

			//同一スナップショットで充足チェック
			for _, id := range ingIDs {
				ing, ok := ingByID[id]
				if !ok {
					log.WithField("ingredient_id", id).Error("recipe references a missing ingredient")
					return NewIntegrityError("recipe references a missing ingredient")
				}
				if ing.Stock.LessThan(consume[id]) {
					return NewConflictError("insufficient stock for '%s'", ing.Name)
				}
			}
		}

		//検証が全部通ってから書き込みに入る
		orderID := uuid.NewString()
		if err := r.Orders().Create(ctx, model.Order{
			ID:         orderID,
			TotalCents: totalCents,
		}); err != nil {
			return NewTransientError(err)
		}

		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return NewTransientError(err)
		}

		for _, id := range ingIDs {
			need := consume[id]

			//条件付き減算。affected=0なら同時注文に在庫を取られている。
			ok, err := r.Ingredients().DecreaseStockIfEnough(ctx, id, need)
			if err != nil {
				return NewTransientError(err)
			}
			if !ok {
				return NewConflictError("insufficient stock for '%s'", ingByID[id].Name)
			}

			if err := r.InventoryTxns().Create(ctx, model.InventoryTxn{
				ID:           uuid.NewString(),
				IngredientID: id,
				Delta:        need.Neg(),
				Reason:       "order:" + orderID,
			}); err != nil {
				return NewTransientError(err)
			}
		}

		out = PlaceOrderOutput{OrderID: orderID, TotalCents: totalCents}
		return nil
	})

	if err != nil {
		return PlaceOrderOutput{}, err
	}
	return out, nil
}

type OrderItemOutput struct {
	MenuItemID     string `json:"menu_item_id"`
	Qty            int64  `json:"qty"`
	LineTotalCents int64  `json:"line_total_cents"`
}

type OrderDetailOutput struct {
	ID         string            `json:"id"`
	TotalCents int64             `json:"total_cents"`
	CreatedAt  time.Time         `json:"created_at"`
	Items      []OrderItemOutput `json:"items"`
}

// GetOrderDetail は確定済み注文とその明細を返す。
func (u *OrderUsecase) GetOrderDetail(ctx context.Context, orderID string) (OrderDetailOutput, error) {
	if strings.TrimSpace(orderID) == "" {
		return OrderDetailOutput{}, NewValidationError("invalid order id")
	}

	var out OrderDetailOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewValidationError("unknown order id '%s'", orderID)
		}
		if err != nil {
			return NewTransientError(err)
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewTransientError(err)
		}

		outItems := make([]OrderItemOutput, 0, len(items))
		for _, it := range items {
			outItems = append(outItems, OrderItemOutput{
				MenuItemID:     it.MenuItemID,
				Qty:            it.Qty,
				LineTotalCents: it.LineTotalCents,
			})
		}

		out = OrderDetailOutput{
			ID:         o.ID,
			TotalCents: o.TotalCents,
			CreatedAt:  o.CreatedAt,
			Items:      outItems,
		}
		return nil
	})

	if err != nil {
		return OrderDetailOutput{}, err
	}
	return out, nil
}
