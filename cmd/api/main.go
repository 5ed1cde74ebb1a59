package main

import (
	"net/http"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/usecase"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"
)

func main() {
	//.envは無くてもよい（本番は環境変数を直接渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if err := gormDB.AutoMigrate(
		&model.MenuItem{},
		&model.Ingredient{},
		&model.Recipe{},
		&model.Order{},
		&model.OrderItem{},
		&model.InventoryTxn{},
	); err != nil {
		log.Fatal(err)
	}

	//Repository（GORM実装）生成
	menuRepo := infraRepo.NewMenuGormRepository(gormDB)
	ingredientRepo := infraRepo.NewIngredientGormRepository(gormDB)
	statsRepo := infraRepo.NewStatsGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//Usecase生成
	menuUC := usecase.NewMenuUsecase(menuRepo)
	orderUC := usecase.NewOrderUsecase(txManager)
	statsUC := usecase.NewStatsUsecase(statsRepo, ingredientRepo)

	//Handler生成
	menuH := handler.NewMenuHandler(menuUC)
	orderH := handler.NewOrderHandler(orderUC)
	statsH := handler.NewStatsHandler(statsUC)

	//Server起動
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	menuH.RegisterRoutes(e)
	orderH.RegisterRoutes(e)
	statsH.RegisterRoutes(e)

	addr := ":8080"
	if v := cfg.Port; v != "" {
		if v[0] != ':' {
			addr = ":" + v
		} else {
			addr = v
		}
	}

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
