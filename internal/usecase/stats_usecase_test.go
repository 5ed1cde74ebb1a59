package usecase_test

import (
	"context"
	"errors"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type StatsRepoMock struct{ mock.Mock }

func (m *StatsRepoMock) Summary(ctx context.Context) (repo.SalesSummary, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(repo.SalesSummary)
	return s, args.Error(1)
}

func (m *StatsRepoMock) MostOrdered(ctx context.Context, limit int) ([]repo.MostOrderedRow, error) {
	args := m.Called(ctx, limit)
	rows, _ := args.Get(0).([]repo.MostOrderedRow)
	return rows, args.Error(1)
}

func (m *StatsRepoMock) PeakHours(ctx context.Context) ([]repo.PeakHourRow, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]repo.PeakHourRow)
	return rows, args.Error(1)
}

// StatsIngredientRepoMock は LowStock だけで使う（OrderUsecase側のmockと衝突回避）
type StatsIngredientRepoMock struct{ mock.Mock }

func (m *StatsIngredientRepoMock) FindByIDs(ctx context.Context, ids []string) ([]model.Ingredient, error) {
	panic("not used in StatsUsecase tests")
}

func (m *StatsIngredientRepoMock) DecreaseStockIfEnough(ctx context.Context, ingredientID string, qty decimal.Decimal) (bool, error) {
	panic("not used in StatsUsecase tests")
}

func (m *StatsIngredientRepoMock) IncreaseStock(ctx context.Context, ingredientID string, qty decimal.Decimal) error {
	panic("not used in StatsUsecase tests")
}

func (m *StatsIngredientRepoMock) ListBelowReorderLevel(ctx context.Context) ([]model.Ingredient, error) {
	args := m.Called(ctx)
	ings, _ := args.Get(0).([]model.Ingredient)
	return ings, args.Error(1)
}

func TestStatsSummary(t *testing.T) {
	stats := new(StatsRepoMock)
	ings := new(StatsIngredientRepoMock)
	uc := usecase.NewStatsUsecase(stats, ings)

	stats.On("Summary", mock.Anything).Return(repo.SalesSummary{
		TotalSalesCents: 12550,
		TotalOrders:     7,
	}, nil)

	out, err := uc.Summary(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 125.50, out.TotalSales)
	assert.Equal(t, int64(7), out.TotalOrders)
}

func TestStatsSummary_StoreDown(t *testing.T) {
	stats := new(StatsRepoMock)
	ings := new(StatsIngredientRepoMock)
	uc := usecase.NewStatsUsecase(stats, ings)

	stats.On("Summary", mock.Anything).Return(repo.SalesSummary{}, errors.New("connection refused"))

	_, err := uc.Summary(context.Background())
	_, ok := usecase.AsTransientError(err)
	assert.True(t, ok)
}

func TestStatsMostOrdered(t *testing.T) {
	stats := new(StatsRepoMock)
	ings := new(StatsIngredientRepoMock)
	uc := usecase.NewStatsUsecase(stats, ings)

	//上位5件固定で問い合わせる
	stats.On("MostOrdered", mock.Anything, 5).Return([]repo.MostOrderedRow{
		{ItemName: "Burger", TotalSold: 42},
		{ItemName: "Pizza", TotalSold: 17},
	}, nil)

	out, err := uc.MostOrdered(context.Background())
	assert.NoError(t, err)
	if assert.Len(t, out, 2) {
		assert.Equal(t, "Burger", out[0].ItemName)
		assert.Equal(t, int64(42), out[0].TotalSold)
	}
}

func TestStatsPeakHours(t *testing.T) {
	stats := new(StatsRepoMock)
	ings := new(StatsIngredientRepoMock)
	uc := usecase.NewStatsUsecase(stats, ings)

	stats.On("PeakHours", mock.Anything).Return([]repo.PeakHourRow{
		{HourOfDay: 12, OrderCount: 30},
		{HourOfDay: 19, OrderCount: 22},
	}, nil)

	out, err := uc.PeakHours(context.Background())
	assert.NoError(t, err)
	if assert.Len(t, out, 2) {
		assert.Equal(t, 12, out[0].HourOfDay)
	}
}

func TestStatsLowStock(t *testing.T) {
	stats := new(StatsRepoMock)
	ings := new(StatsIngredientRepoMock)
	uc := usecase.NewStatsUsecase(stats, ings)

	ings.On("ListBelowReorderLevel", mock.Anything).Return([]model.Ingredient{
		{ID: "ing-bun", Name: "bun", Unit: "pcs", Stock: dec("3"), ReorderLevel: dec("10")},
	}, nil)

	out, err := uc.LowStock(context.Background())
	assert.NoError(t, err)
	if assert.Len(t, out, 1) {
		assert.Equal(t, "bun", out[0].Name)
		assert.Equal(t, 3.0, out[0].Stock)
		assert.Equal(t, 10.0, out[0].ReorderLevel)
		assert.Equal(t, "pcs", out[0].Unit)
	}
}
