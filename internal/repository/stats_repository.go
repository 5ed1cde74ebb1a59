package repository

import "context"

type SalesSummary struct {
	TotalSalesCents int64
	TotalOrders     int64
}

type MostOrderedRow struct {
	ItemName  string
	TotalSold int64
}

type PeakHourRow struct {
	HourOfDay  int
	OrderCount int64
}

// コミット済みの注文・在庫だけを読む集計クエリ。
type StatsRepository interface {
	Summary(ctx context.Context) (SalesSummary, error)
	MostOrdered(ctx context.Context, limit int) ([]MostOrderedRow, error)
	PeakHours(ctx context.Context) ([]PeakHourRow, error)
}
