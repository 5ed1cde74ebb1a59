package usecase

import (
	"context"

	repo "app/internal/repository"
)

// 売れ筋の上位件数
const mostOrderedLimit = 5

type StatsUsecase struct {
	statsRepo      repo.StatsRepository
	ingredientRepo repo.IngredientRepository
}

func NewStatsUsecase(statsRepo repo.StatsRepository, ingredientRepo repo.IngredientRepository) *StatsUsecase {
	return &StatsUsecase{statsRepo: statsRepo, ingredientRepo: ingredientRepo}
}

type SummaryOutput struct {
	TotalSales  float64 `json:"total_sales"`
	TotalOrders int64   `json:"total_orders"`
}

type MostOrderedOutput struct {
	ItemName  string `json:"item_name"`
	TotalSold int64  `json:"total_sold"`
}

type PeakHourOutput struct {
	HourOfDay  int   `json:"hour_of_day"`
	OrderCount int64 `json:"order_count"`
}

type LowStockOutput struct {
	Name         string  `json:"name"`
	Stock        float64 `json:"stock"`
	ReorderLevel float64 `json:"reorder_level"`
	Unit         string  `json:"unit"`
}

func (u *StatsUsecase) Summary(ctx context.Context) (SummaryOutput, error) {
	s, err := u.statsRepo.Summary(ctx)
	if err != nil {
		return SummaryOutput{}, NewTransientError(err)
	}

	//売上はセントではなく通貨単位で返す（表示専用の変換。金額の計算と保存は常に整数セント）
	return SummaryOutput{
		TotalSales:  float64(s.TotalSalesCents) / 100,
		TotalOrders: s.TotalOrders,
	}, nil
}

func (u *StatsUsecase) MostOrdered(ctx context.Context) ([]MostOrderedOutput, error) {
	rows, err := u.statsRepo.MostOrdered(ctx, mostOrderedLimit)
	if err != nil {
		return []MostOrderedOutput{}, NewTransientError(err)
	}

	outs := make([]MostOrderedOutput, 0, len(rows))
	for _, r := range rows {
		outs = append(outs, MostOrderedOutput{ItemName: r.ItemName, TotalSold: r.TotalSold})
	}
	return outs, nil
}

func (u *StatsUsecase) PeakHours(ctx context.Context) ([]PeakHourOutput, error) {
	rows, err := u.statsRepo.PeakHours(ctx)
	if err != nil {
		return []PeakHourOutput{}, NewTransientError(err)
	}

	outs := make([]PeakHourOutput, 0, len(rows))
	for _, r := range rows {
		outs = append(outs, PeakHourOutput{HourOfDay: r.HourOfDay, OrderCount: r.OrderCount})
	}
	return outs, nil
}

func (u *StatsUsecase) LowStock(ctx context.Context) ([]LowStockOutput, error) {
	ings, err := u.ingredientRepo.ListBelowReorderLevel(ctx)
	if err != nil {
		return []LowStockOutput{}, NewTransientError(err)
	}

	outs := make([]LowStockOutput, 0, len(ings))
	for _, ing := range ings {
		outs = append(outs, LowStockOutput{
			Name:         ing.Name,
			Stock:        ing.Stock.InexactFloat64(),
			ReorderLevel: ing.ReorderLevel.InexactFloat64(),
			Unit:         ing.Unit,
		})
	}
	return outs, nil
}
