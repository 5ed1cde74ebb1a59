package repository

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type StatsGormRepository struct {
	db *gorm.DB
}

func NewStatsGormRepository(db *gorm.DB) *StatsGormRepository {
	return &StatsGormRepository{db: db}
}

func (r *StatsGormRepository) Summary(ctx context.Context) (repo.SalesSummary, error) {
	var s repo.SalesSummary

	err := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Select("COALESCE(SUM(total_cents), 0) AS total_sales_cents, COUNT(id) AS total_orders").
		Scan(&s).Error
	if err != nil {
		return repo.SalesSummary{}, err
	}
	return s, nil
}

func (r *StatsGormRepository) MostOrdered(ctx context.Context, limit int) ([]repo.MostOrderedRow, error) {
	if limit <= 0 {
		limit = 5
	}

	var rows []repo.MostOrderedRow
	err := r.db.WithContext(ctx).
		Model(&model.OrderItem{}).
		Select("menu_items.name AS item_name, SUM(order_items.qty) AS total_sold").
		Joins("JOIN menu_items ON menu_items.id = order_items.menu_item_id").
		Group("menu_items.name").
		Order("total_sold DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return []repo.MostOrderedRow{}, err
	}
	return rows, nil
}

// 時間帯はUTC固定で切る（サーバーのタイムゾーンに依存させない）
func (r *StatsGormRepository) PeakHours(ctx context.Context) ([]repo.PeakHourRow, error) {
	var rows []repo.PeakHourRow
	err := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Select("CAST(EXTRACT(HOUR FROM created_at AT TIME ZONE 'UTC') AS INTEGER) AS hour_of_day, COUNT(id) AS order_count").
		Group("hour_of_day").
		Order("order_count DESC").
		Scan(&rows).Error
	if err != nil {
		return []repo.PeakHourRow{}, err
	}
	return rows, nil
}
