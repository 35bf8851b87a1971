package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Mrp-api/internal/application/auth"
	"github.com/jhoicas/Mrp-api/internal/application/planning"
	"github.com/jhoicas/Mrp-api/internal/application/usecase"
	infraaudit "github.com/jhoicas/Mrp-api/internal/infrastructure/audit"
	infrapdf "github.com/jhoicas/Mrp-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Mrp-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Mrp-api/internal/interfaces/http"
	"github.com/jhoicas/Mrp-api/pkg/config"
	"github.com/jhoicas/Mrp-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios atados al pool (lecturas y capturas fuera de la corrida)
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	planRepo := postgres.NewPlanRepository(pool)
	forecastRepo := postgres.NewForecastRepository(pool)
	salesOrderRepo := postgres.NewSalesOrderRepository(pool)
	prodOrderRepo := postgres.NewProductionOrderRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	bomRepo := postgres.NewBOMRepository(pool)
	recRepo := postgres.NewRecommendationRepository(pool)
	auditRepo := postgres.NewAuditRepository(pool)

	// Motor de planificación: transacción única + auditoría best-effort fuera de ella
	txRunner := postgres.NewTxRunner(pool)
	auditRecorder := infraaudit.NewRecorder(auditRepo, log)
	runPlanUC := planning.NewRunPlanUseCase(txRunner, auditRecorder)

	// Reporte PDF de la última corrida
	reportGenerator := infrapdf.NewMarotoPlanReport()
	planReportUC := planning.NewPlanReportUseCase(planRepo, recRepo, productRepo, reportGenerator)

	planUC := usecase.NewPlanUseCase(planRepo, recRepo, auditRepo)
	forecastUC := usecase.NewForecastUseCase(forecastRepo, productRepo)
	orderUC := usecase.NewOrderUseCase(salesOrderRepo, prodOrderRepo, stockRepo, productRepo)
	productUC := usecase.NewProductUseCase(productRepo, bomRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "MRP Planner API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		PlanUC:     planUC,
		RunPlan:    runPlanUC,
		PlanReport: planReportUC,
		ForecastUC: forecastUC,
		OrderUC:    orderUC,
		ProductUC:  productUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
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
