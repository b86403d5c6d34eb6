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

	_ "github.com/jhoicas/Inventario-restock/docs"
	apprestock "github.com/jhoicas/Inventario-restock/internal/application/restock"
	"github.com/jhoicas/Inventario-restock/internal/domain/repository"
	"github.com/jhoicas/Inventario-restock/internal/infrastructure/backend"
	"github.com/jhoicas/Inventario-restock/internal/infrastructure/export"
	"github.com/jhoicas/Inventario-restock/internal/infrastructure/memory"
	"github.com/jhoicas/Inventario-restock/internal/infrastructure/mongodb"
	infrapdf "github.com/jhoicas/Inventario-restock/internal/infrastructure/pdf"
	"github.com/jhoicas/Inventario-restock/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Inventario-restock/internal/interfaces/http"
	"github.com/jhoicas/Inventario-restock/internal/scheduler"
	"github.com/jhoicas/Inventario-restock/pkg/config"
	"github.com/jhoicas/Inventario-restock/pkg/logger"
)

// @title          Inventario Restock API
// @version        1.0
// @description    Reporte de bajo stock con prioridad de demanda, exportes y snapshots.
// @BasePath       /
// @securityDefinitions.apikey Bearer
// @in             header
// @name           Authorization
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
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando aplicación")

	ctx := context.Background()
	snapshotRepo, closeStore, err := openSnapshotStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("store", cfg.Snapshot.Store).Msg("store de snapshots")
	}
	defer closeStore()

	feed := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	reportUC := apprestock.NewReportUseCase(feed, log, nil)
	exportUC := apprestock.NewExportUseCase(reportUC, map[string]apprestock.ReportRenderer{
		"csv":  export.NewCSVRenderer(),
		"xlsx": export.NewXLSXRenderer(),
		"pdf":  infrapdf.NewMarotoPDFGenerator(cfg.App.Name),
	})
	snapshotUC := apprestock.NewSnapshotUseCase(reportUC, snapshotRepo, log)
	digestUC := apprestock.NewDigestUseCase(snapshotUC, cfg.Backend.ServiceToken, cfg.Digest.Customers, log)

	cronSpec := ""
	if cfg.Digest.Enabled() {
		cronSpec = cfg.Digest.Cron
	}
	sched, err := scheduler.New(cronSpec, digestUC, log)
	if err != nil {
		log.Fatal().Err(err).Msg("scheduler")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.HTTP.SwaggerFile != "" {
		if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.HTTP.SwaggerFile,
				Path:     "docs",
				Title:    "Inventario Restock API",
			}))
		} else {
			log.Warn().Str("file", cfg.HTTP.SwaggerFile).Msg("swagger.json no encontrado, /docs desactivado")
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Report:    reportUC,
		Export:    exportUC,
		Snapshots: snapshotUC,
		JWTSecret: cfg.JWT.Secret,
		JWTIssuer: cfg.JWT.Issuer,
	})

	sched.Start()
	if sched.Enabled() && cfg.Digest.RunOnStart {
		go sched.RunNow()
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sched.Stop(shutdownCtx)
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openSnapshotStore elige el store según SNAPSHOT_STORE y devuelve su función de cierre.
func openSnapshotStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.SnapshotRepository, func(), error) {
	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	switch cfg.Snapshot.Store {
	case "postgres":
		repo, closePool, err := postgres.Open(connectCtx, cfg.DB, log)
		if err != nil {
			return nil, nil, err
		}
		return repo, closePool, nil
	case "mongo":
		repo, err := mongodb.NewSnapshotRepository(connectCtx, cfg.Mongo.URI, cfg.Mongo.DBName)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("db", cfg.Mongo.DBName).Msg("store de snapshots en MongoDB")
		return repo, func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = repo.Close(closeCtx)
		}, nil
	default:
		log.Warn().Msg("store de snapshots en memoria: se pierden al reiniciar")
		return memory.NewSnapshotRepository(), func() {}, nil
	}
}
