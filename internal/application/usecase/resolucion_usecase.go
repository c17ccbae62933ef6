package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/drtcpuno/resoluciones-api/internal/application/dto"
	"github.com/drtcpuno/resoluciones-api/internal/application/ingest"
	"github.com/drtcpuno/resoluciones-api/internal/domain"
	"github.com/drtcpuno/resoluciones-api/internal/domain/entity"
	"github.com/drtcpuno/resoluciones-api/internal/domain/repository"
	"github.com/drtcpuno/resoluciones-api/internal/domain/resolucion"
	"github.com/drtcpuno/resoluciones-api/pkg/logger"
)

// ResolucionUseCase cubre las operaciones administrativas sobre resoluciones
// fuera de la carga masiva: consultas, transiciones de estado explícitas y la
// reconciliación periódica de vencimientos.
//
// Transiciones permitidas:
//
//	VIGENTE    -> SUSPENDIDA   (requiere motivo)
//	SUSPENDIDA -> VIGENTE      (limpia el motivo)
//	VIGENTE    -> VENCIDA      (solo reconciliación automática)
//	VIGENTE | SUSPENDIDA -> ANULADA  (terminal)
//
// RENOVADA solo la asigna la cascada de la carga masiva y es terminal.
type ResolucionUseCase struct {
	resoluciones repository.ResolucionRepository
	empresas     repository.EmpresaRepository
	auditoria    repository.AuditoriaRepository
	reloj        ingest.Reloj
	log          *logger.Logger
}

// NewResolucionUseCase construye el caso de uso con sus puertos y reloj.
func NewResolucionUseCase(
	resoluciones repository.ResolucionRepository,
	empresas repository.EmpresaRepository,
	auditoria repository.AuditoriaRepository,
	reloj ingest.Reloj,
	log *logger.Logger,
) *ResolucionUseCase {
	return &ResolucionUseCase{
		resoluciones: resoluciones,
		empresas:     empresas,
		auditoria:    auditoria,
		reloj:        reloj,
		log:          log,
	}
}

// GetPorNumero devuelve la resolución con su situación de vigencia evaluada a hoy.
func (uc *ResolucionUseCase) GetPorNumero(ctx context.Context, numero string) (*dto.ResolucionResponse, error) {
	res, err := uc.buscar(ctx, numero)
	if err != nil {
		return nil, err
	}
	return uc.aRespuesta(ctx, res), nil
}

// Listar devuelve resoluciones filtradas por empresa y/o estado.
func (uc *ResolucionUseCase) Listar(ctx context.Context, filtro repository.FiltroResoluciones) (*dto.ResolucionListResponse, error) {
	lista, err := uc.resoluciones.List(ctx, filtro)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ResolucionResponse, 0, len(lista))
	for _, res := range lista {
		items = append(items, *uc.aRespuesta(ctx, res))
	}
	return &dto.ResolucionListResponse{Items: items, Total: len(items)}, nil
}

// Auditoria devuelve el historial de cambios de una resolución.
func (uc *ResolucionUseCase) Auditoria(ctx context.Context, numero string) ([]dto.AuditoriaResponse, error) {
	res, err := uc.buscar(ctx, numero)
	if err != nil {
		return nil, err
	}
	registros, err := uc.auditoria.ListByResolucion(ctx, res.ID)
	if err != nil {
		return nil, err
	}
	salida := make([]dto.AuditoriaResponse, 0, len(registros))
	for _, r := range registros {
		salida = append(salida, dto.AuditoriaResponse{
			Actor:         r.Actor,
			Accion:        r.Accion,
			Campo:         r.Campo,
			ValorAnterior: r.ValorAnterior,
			ValorNuevo:    r.ValorNuevo,
			Contexto:      r.Contexto,
			CreadoEn:      r.CreadoEn,
		})
	}
	return salida, nil
}

// Suspender pasa una resolución VIGENTE a SUSPENDIDA. El motivo es obligatorio.
func (uc *ResolucionUseCase) Suspender(ctx context.Context, numero, motivo, actor string) (*dto.ResolucionResponse, error) {
	if motivo == "" {
		return nil, fmt.Errorf("%w: la suspensión requiere un motivo", domain.ErrInvalidInput)
	}
	res, err := uc.buscar(ctx, numero)
	if err != nil {
		return nil, err
	}
	if res.Estado != entity.EstadoVigente {
		return nil, fmt.Errorf("%w: solo una resolución VIGENTE puede suspenderse (actual: %s)",
			domain.ErrTransicionInvalida, res.Estado)
	}
	res.Estado = entity.EstadoSuspendida
	res.MotivoSuspension = motivo
	if err := uc.guardarTransicion(ctx, res, actor, "suspension", string(entity.EstadoVigente), motivo); err != nil {
		return nil, err
	}
	return uc.aRespuesta(ctx, res), nil
}

// Reactivar devuelve una resolución SUSPENDIDA a VIGENTE y limpia el motivo.
func (uc *ResolucionUseCase) Reactivar(ctx context.Context, numero, actor string) (*dto.ResolucionResponse, error) {
	res, err := uc.buscar(ctx, numero)
	if err != nil {
		return nil, err
	}
	if res.Estado != entity.EstadoSuspendida {
		return nil, fmt.Errorf("%w: solo una resolución SUSPENDIDA puede reactivarse (actual: %s)",
			domain.ErrTransicionInvalida, res.Estado)
	}
	res.Estado = entity.EstadoVigente
	res.MotivoSuspension = ""
	if err := uc.guardarTransicion(ctx, res, actor, "reactivacion", string(entity.EstadoSuspendida), ""); err != nil {
		return nil, err
	}
	return uc.aRespuesta(ctx, res), nil
}

// Anular pasa la resolución a ANULADA. Es terminal: no puede deshacerse.
func (uc *ResolucionUseCase) Anular(ctx context.Context, numero, motivo, actor string) (*dto.ResolucionResponse, error) {
	res, err := uc.buscar(ctx, numero)
	if err != nil {
		return nil, err
	}
	if res.Estado != entity.EstadoVigente && res.Estado != entity.EstadoSuspendida {
		return nil, fmt.Errorf("%w: no puede anularse una resolución %s",
			domain.ErrTransicionInvalida, res.Estado)
	}
	anterior := res.Estado
	res.Estado = entity.EstadoAnulada
	if err := uc.guardarTransicion(ctx, res, actor, "anulacion", string(anterior), motivo); err != nil {
		return nil, err
	}
	return uc.aRespuesta(ctx, res), nil
}

// ReconciliarVencidas pasa a VENCIDA toda resolución VIGENTE cuyo fin de
// vigencia quedó atrás. Pensada para ejecución periódica (cron) o a demanda.
func (uc *ResolucionUseCase) ReconciliarVencidas(ctx context.Context, actor string) (*dto.ReconciliacionResponse, error) {
	hoy := uc.reloj.Hoy()
	pendientes, err := uc.resoluciones.ListVigentesVencidas(ctx, hoy)
	if err != nil {
		return nil, fmt.Errorf("listar resoluciones por vencer: %w", err)
	}
	salida := &dto.ReconciliacionResponse{Revisadas: len(pendientes), Vencidas: []string{}}
	for _, res := range pendientes {
		res.Estado = entity.EstadoVencida
		if err := uc.guardarTransicion(ctx, res, actor, "vencimiento", string(entity.EstadoVigente), "reconciliación periódica"); err != nil {
			return salida, err
		}
		salida.Vencidas = append(salida.Vencidas, res.NumeroCanonico)
	}
	return salida, nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func (uc *ResolucionUseCase) buscar(ctx context.Context, numero string) (*entity.Resolucion, error) {
	res, err := uc.resoluciones.GetByNumeroCanonico(ctx, numero)
	if err != nil {
		return nil, err
	}
	if res == nil || !res.Activo {
		return nil, domain.ErrResolucionNotFound
	}
	return res, nil
}

func (uc *ResolucionUseCase) guardarTransicion(ctx context.Context, res *entity.Resolucion, actor, accion, estadoAnterior, motivo string) error {
	ahora := uc.reloj.Hoy()
	res.FechaActualizacion = &ahora
	if err := uc.resoluciones.Update(ctx, res); err != nil {
		return fmt.Errorf("actualizar resolución %s: %w", res.NumeroCanonico, err)
	}
	err := uc.auditoria.Append(ctx, &entity.RegistroAuditoria{
		ID:             uuid.New().String(),
		ResolucionID:   res.ID,
		NumeroCanonico: res.NumeroCanonico,
		Actor:          actor,
		Accion:         accion,
		Campo:          "estado",
		ValorAnterior:  estadoAnterior,
		ValorNuevo:     string(res.Estado),
		Contexto:       motivo,
		CreadoEn:       ahora,
	})
	if err != nil {
		uc.log.Warn().Err(err).
			Str("numero", res.NumeroCanonico).
			Str("accion", accion).
			Msg("registro de auditoría perdido")
	}
	return nil
}

func (uc *ResolucionUseCase) aRespuesta(ctx context.Context, res *entity.Resolucion) *dto.ResolucionResponse {
	salida := &dto.ResolucionResponse{
		ID:                   res.ID,
		NumeroCanonico:       res.NumeroCanonico,
		EmpresaID:            res.EmpresaID,
		Naturaleza:           string(res.Naturaleza),
		TipoTramite:          string(res.TipoTramite),
		FechaEmision:         res.FechaEmision,
		VigenciaInicio:       res.VigenciaInicio,
		VigenciaFin:          res.VigenciaFin,
		AniosVigencia:        res.AniosVigencia,
		Estado:               string(res.Estado),
		NumeroAsociado:       res.NumeroAsociado,
		RenovadaPor:          res.RenovadaPor,
		ModificadaPor:        res.ModificadaPor,
		MotivoSuspension:     res.MotivoSuspension,
		Descripcion:          res.Descripcion,
		VehiculosHabilitados: res.VehiculosHabilitados,
		RutasAutorizadas:     res.RutasAutorizadas,
		Activo:               res.Activo,
		FechaRegistro:        res.FechaRegistro,
		FechaActualizacion:   res.FechaActualizacion,
		UsuarioEmision:       res.UsuarioEmision,
	}

	v := resolucion.EvaluarVigencia(res.VigenciaInicio, res.VigenciaFin, uc.reloj.Hoy())
	salida.SituacionVigencia = string(v.Situacion)
	salida.PorVencer = v.PorVencer
	salida.DiasRestantes = v.DiasRestantes

	if empresa, err := uc.empresas.GetByID(ctx, res.EmpresaID); err == nil && empresa != nil {
		salida.EmpresaRazonSocial = empresa.RazonSocial
	}
	return salida
}
