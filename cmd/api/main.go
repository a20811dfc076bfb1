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

	"github.com/jhoicas/Activos-api/internal/application/alerts"
	"github.com/jhoicas/Activos-api/internal/application/analytics"
	"github.com/jhoicas/Activos-api/internal/application/auth"
	"github.com/jhoicas/Activos-api/internal/application/guard"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Activos-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Activos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Activos-api/internal/infrastructure/scheduler"
	httpRouter "github.com/jhoicas/Activos-api/internal/interfaces/http"
	"github.com/jhoicas/Activos-api/pkg/config"
	"github.com/jhoicas/Activos-api/pkg/logger"
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
		Msg("iniciando aplicación")

	if cfg.DB.Migrate {
		if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	membershipRepo := postgres.NewMembershipRepository(pool)
	assetRepo := postgres.NewAssetRepository(pool)
	contractRepo := postgres.NewContractRepository(pool)
	licenseRepo := postgres.NewLicenseRepository(pool)
	maintenanceRepo := postgres.NewMaintenanceRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	supportRepo := postgres.NewSupportRepository(pool)
	activityRepo := postgres.NewActivityRepository(pool)
	summaryRepo := postgres.NewSummaryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, txRunner, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo, membershipRepo, userRepo, txRunner)
	assetUC := usecase.NewAssetUseCase(assetRepo, companyRepo, txRunner)
	contractUC := usecase.NewContractUseCase(contractRepo, companyRepo, txRunner)
	licenseUC := usecase.NewLicenseUseCase(licenseRepo, assetRepo, companyRepo, txRunner)
	maintenanceUC := usecase.NewMaintenanceUseCase(maintenanceRepo, assetRepo, txRunner)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo)
	adminUC := usecase.NewAdminUseCase(companyRepo, supportRepo, txRunner)
	summaryUC := analytics.NewSummaryUseCase(summaryRepo, activityRepo)
	expiryUC := alerts.NewExpiryUseCase(assetRepo, membershipRepo, txRunner)
	resolver := guard.NewResolver(membershipRepo, supportRepo)
	reports := infrapdf.NewCostReportGenerator()

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
		Title:    "Activos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		CompanyUC:      companyUC,
		AssetUC:        assetUC,
		ContractUC:     contractUC,
		LicenseUC:      licenseUC,
		MaintenanceUC:  maintenanceUC,
		NotificationUC: notificationUC,
		AdminUC:        adminUC,
		SummaryUC:      summaryUC,
		ExpiryUC:       expiryUC,
		Resolver:       resolver,
		Companies:      companyRepo,
		Reports:        reports,
		JWTSecret:      cfg.JWT.Secret,
	})

	// Scheduler de alertas de vencimiento (opcional, ALERTS_CRON)
	var alertScheduler *scheduler.AlertScheduler
	if cfg.Alerts.Cron != "" {
		alertScheduler = scheduler.NewAlertScheduler(expiryUC, companyRepo, log)
		if err := alertScheduler.Start(cfg.Alerts.Cron); err != nil {
			log.Fatal().Err(err).Str("cron", cfg.Alerts.Cron).Msg("scheduler de alertas")
		}
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	if alertScheduler != nil {
		alertScheduler.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
