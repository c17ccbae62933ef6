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

	"github.com/drtcpuno/resoluciones-api/internal/application/ingest"
	"github.com/drtcpuno/resoluciones-api/internal/application/usecase"
	infrapdf "github.com/drtcpuno/resoluciones-api/internal/infrastructure/pdf"
	"github.com/drtcpuno/resoluciones-api/internal/infrastructure/postgres"
	httpRouter "github.com/drtcpuno/resoluciones-api/internal/interfaces/http"
	"github.com/drtcpuno/resoluciones-api/pkg/config"
	"github.com/drtcpuno/resoluciones-api/pkg/logger"
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

	resolucionRepo := postgres.NewResolucionRepository(pool)
	empresaRepo := postgres.NewEmpresaRepository(pool)
	auditoriaRepo := postgres.NewAuditoriaRepository(pool)

	reloj := ingest.RelojSistema{}
	orquestador := ingest.NewOrquestador(resolucionRepo, empresaRepo, auditoriaRepo, reloj, log)
	resolucionUC := usecase.NewResolucionUseCase(resolucionRepo, empresaRepo, auditoriaRepo, reloj, log)
	constanciaUC := usecase.NewConstanciaUseCase(
		resolucionRepo, empresaRepo, infrapdf.NewMarotoConstanciaGenerator(), reloj,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.Ingest.MaxFileSize,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Resoluciones DRTC Puno API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ResolucionUC: resolucionUC,
		ConstanciaUC: constanciaUC,
		Orquestador:  orquestador,
		MaxFilas:     cfg.Ingest.MaxRows,
		JWTSecret:    cfg.JWT.Secret,
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
