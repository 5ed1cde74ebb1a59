package usecase

import (
	"context"

	repo "app/internal/repository"
)

type MenuUsecase struct {
	menuRepo repo.MenuRepository
}

func NewMenuUsecase(menuRepo repo.MenuRepository) *MenuUsecase {
	return &MenuUsecase{menuRepo: menuRepo}
}

type MenuItemOutput struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	PriceCents int64   `json:"price_cents"`
	Category   string  `json:"category"`
	ImageURL   *string `json:"image_url"`
}

func (u *MenuUsecase) ListActiveMenuItems(ctx context.Context) ([]MenuItemOutput, error) {
	items, err := u.menuRepo.ListActive(ctx)
	if err != nil {
		return []MenuItemOutput{}, NewTransientError(err)
	}

	outs := make([]MenuItemOutput, 0, len(items))
	for _, m := range items {
		outs = append(outs, MenuItemOutput{
			ID:         m.ID,
			Name:       m.Name,
			PriceCents: m.PriceCents,
			Category:   m.Category,
			ImageURL:   m.ImageURL,
		})
	}
	return outs, nil
}
