package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/cantina-api/internal/application/store"
	"github.com/jhoicas/cantina-api/internal/application/usecase"
	"github.com/jhoicas/cantina-api/internal/infrastructure/jsonfile"
	infrapdf "github.com/jhoicas/cantina-api/internal/infrastructure/pdf"
	"github.com/jhoicas/cantina-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/cantina-api/internal/interfaces/http"
	"github.com/jhoicas/cantina-api/pkg/config"
	"github.com/jhoicas/cantina-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var persister store.Persister
	switch cfg.Store.Driver {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		pg := postgres.New(pool)
		if err := pg.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("crear esquema")
		}
		persister = pg
	case "jsonfile":
		jf, err := jsonfile.New(cfg.Store.DataDir)
		if err != nil {
			log.Fatal().Err(err).Msg("abrir directorio de datos")
		}
		persister = jf
	default:
		log.Fatal().Str("driver", cfg.Store.Driver).Msg("driver de persistencia desconocido")
	}

	st := store.New(persister)
	if err := st.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("cargar estado inicial")
	}

	// Auditoría de commits: cada mutación publicada queda trazada.
	unsubscribe := st.Subscribe(func(s *store.State) {
		log.Debug().
			Int("products", len(s.Products)).
			Int("ingredients", len(s.Ingredients)).
			Int("orders", len(s.Orders)).
			Msg("estado publicado")
	})
	defer unsubscribe()

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	productUC := usecase.NewProductUseCase(st)
	ingredientUC := usecase.NewIngredientUseCase(st)
	foodUC := usecase.NewFoodUseCase(st)
	orderUC := usecase.NewOrderUseCase(st)
	purchaseUC := usecase.NewPurchaseUseCase(st)
	wasteUC := usecase.NewWasteUseCase(st)
	customerUC := usecase.NewCustomerUseCase(st)
	expenseUC := usecase.NewExpenseUseCase(st)
	reportUC := usecase.NewReportUseCase(st, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:    productUC,
		IngredientUC: ingredientUC,
		FoodUC:       foodUC,
		OrderUC:      orderUC,
		PurchaseUC:   purchaseUC,
		WasteUC:      wasteUC,
		CustomerUC:   customerUC,
		ExpenseUC:    expenseUC,
		ReportUC:     reportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
