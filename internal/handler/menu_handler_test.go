package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestMenuList(t *testing.T) {
	img := "https://cdn.example.com/burger.png"
	menuRepo := &stubMenuRepo{items: []model.MenuItem{
		{ID: "mi-burger", Name: "Burger", PriceCents: 500, Category: "mains", IsActive: true, ImageURL: &img},
		{ID: "mi-water", Name: "Water", PriceCents: 100, Category: "drinks", IsActive: true},
	}}

	e := echo.New()
	handler.NewMenuHandler(usecase.NewMenuUsecase(menuRepo)).RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodGet, "/menu", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var out []usecase.MenuItemOutput
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	if assert.Len(t, out, 2) {
		assert.Equal(t, "mi-burger", out[0].ID)
		assert.Equal(t, int64(500), out[0].PriceCents)
		if assert.NotNil(t, out[0].ImageURL) {
			assert.Equal(t, img, *out[0].ImageURL)
		}
		assert.Nil(t, out[1].ImageURL)
	}
}
