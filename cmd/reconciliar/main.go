// Reconciliación de vencimientos para cron: pasa a VENCIDA toda resolución
// VIGENTE cuyo fin de vigencia ya quedó atrás. Misma lógica que el endpoint
// POST /api/resoluciones/reconciliar-vencidas, sin levantar el servidor.
package main

import (
	"context"
	"time"

	"github.com/drtcpuno/resoluciones-api/internal/application/ingest"
	"github.com/drtcpuno/resoluciones-api/internal/application/usecase"
	"github.com/drtcpuno/resoluciones-api/internal/infrastructure/postgres"
	"github.com/drtcpuno/resoluciones-api/pkg/config"
	"github.com/drtcpuno/resoluciones-api/pkg/logger"
)

const actorCron = "cron:reconciliar"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	resolucionRepo := postgres.NewResolucionRepository(pool)
	empresaRepo := postgres.NewEmpresaRepository(pool)
	auditoriaRepo := postgres.NewAuditoriaRepository(pool)

	uc := usecase.NewResolucionUseCase(resolucionRepo, empresaRepo, auditoriaRepo, ingest.RelojSistema{}, log)

	resultado, err := uc.ReconciliarVencidas(ctx, actorCron)
	if err != nil {
		log.Fatal().Err(err).Msg("reconciliación de vencimientos")
	}

	log.Info().
		Int("revisadas", resultado.Revisadas).
		Strs("vencidas", resultado.Vencidas).
		Msg("reconciliación de vencimientos completada")
}
