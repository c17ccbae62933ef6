package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/drtcpuno/resoluciones-api/internal/domain/entity"
	"github.com/drtcpuno/resoluciones-api/internal/domain/repository"
	"github.com/drtcpuno/resoluciones-api/internal/domain/resolucion"
	"github.com/drtcpuno/resoluciones-api/pkg/logger"
)

// Acciones y contextos de auditoría que emite la carga masiva.
const (
	ContextoCargaMasiva = "carga masiva"

	AccionCreacion       = "creacion"
	AccionActualizacion  = "actualizacion"
	AccionCascada        = "cascada"
	AccionCascadaOmitida = "cascada_omitida"
)

// Mapeador traduce filas normalizadas a registros canónicos y hace el upsert
// por número canónico contra el repositorio.
type Mapeador struct {
	resoluciones repository.ResolucionRepository
	empresas     repository.EmpresaRepository
	auditoria    repository.AuditoriaRepository
	log          *logger.Logger
}

// NewMapeador construye el mapeador con sus puertos de persistencia.
func NewMapeador(
	resoluciones repository.ResolucionRepository,
	empresas repository.EmpresaRepository,
	auditoria repository.AuditoriaRepository,
	log *logger.Logger,
) *Mapeador {
	return &Mapeador{resoluciones: resoluciones, empresas: empresas, auditoria: auditoria, log: log}
}

// ResultadoFila describe el efecto de persistir una fila.
type ResultadoFila struct {
	Creada     bool
	Resolucion *entity.Resolucion
	Empresa    *entity.Empresa
}

// Persistir resuelve la empresa, canoniza el número y hace upsert.
//
// Si ya existe una resolución (activa o con borrado lógico) con ese número
// canónico se actualizan sus campos mutables; si no, se inserta una resolución
// PADRE nueva. El error se devuelve para que el orquestador lo registre en el
// reporte; nunca aborta el lote.
func (m *Mapeador) Persistir(ctx context.Context, fn FilaNormalizada, usuario string, hoy time.Time) (*ResultadoFila, error) {
	empresa, err := m.empresas.GetByRUC(ctx, fn.RUC)
	if err != nil {
		return nil, fmt.Errorf("consultar empresa por RUC %s: %w", fn.RUC, err)
	}
	if empresa == nil {
		return nil, fmt.Errorf("empresa con RUC %s no encontrada", fn.RUC)
	}

	canonico := resolucion.CanonizarNumero(fn.NumeroCrudo, fn.AnioEmision(hoy))

	existente, err := m.resoluciones.GetByNumeroCanonico(ctx, canonico)
	if err != nil {
		return nil, fmt.Errorf("buscar resolución %s: %w", canonico, err)
	}

	if existente != nil {
		return m.actualizar(ctx, existente, fn, empresa, usuario, hoy)
	}
	return m.crear(ctx, canonico, fn, empresa, usuario, hoy)
}

func (m *Mapeador) crear(ctx context.Context, canonico string, fn FilaNormalizada, empresa *entity.Empresa, usuario string, ahora time.Time) (*ResultadoFila, error) {
	res := &entity.Resolucion{
		ID:                   uuid.New().String(),
		NumeroCanonico:       canonico,
		EmpresaID:            empresa.ID,
		Naturaleza:           entity.NaturalezaPadre,
		TipoTramite:          fn.TipoTramite,
		FechaEmision:         fn.FechaEmision,
		VigenciaInicio:       fn.VigenciaInicio,
		VigenciaFin:          fn.VigenciaFin,
		AniosVigencia:        fn.AniosVigencia,
		Estado:               fn.Estado,
		NumeroAsociado:       fn.NumeroAsociado,
		HijasIDs:             []string{},
		VehiculosHabilitados: []string{},
		RutasAutorizadas:     []string{},
		Activo:               true,
		FechaRegistro:        ahora,
		UsuarioEmision:       usuario,
	}
	if err := m.resoluciones.Create(ctx, res); err != nil {
		return nil, fmt.Errorf("insertar resolución %s: %w", canonico, err)
	}

	m.auditar(ctx, res, usuario, AccionCreacion, "", "", string(res.Estado), ahora)
	return &ResultadoFila{Creada: true, Resolucion: res, Empresa: empresa}, nil
}

func (m *Mapeador) actualizar(ctx context.Context, res *entity.Resolucion, fn FilaNormalizada, empresa *entity.Empresa, usuario string, ahora time.Time) (*ResultadoFila, error) {
	estadoAnterior := res.Estado

	res.EmpresaID = empresa.ID
	res.TipoTramite = fn.TipoTramite
	res.FechaEmision = fn.FechaEmision
	res.VigenciaInicio = fn.VigenciaInicio
	res.VigenciaFin = fn.VigenciaFin
	res.AniosVigencia = fn.AniosVigencia
	res.Estado = fn.Estado
	res.NumeroAsociado = fn.NumeroAsociado
	res.FechaActualizacion = &ahora

	if err := m.resoluciones.Update(ctx, res); err != nil {
		return nil, fmt.Errorf("actualizar resolución %s: %w", res.NumeroCanonico, err)
	}

	campo, anterior, nuevo := "", "", ""
	if estadoAnterior != res.Estado {
		campo, anterior, nuevo = "estado", string(estadoAnterior), string(res.Estado)
	}
	m.auditar(ctx, res, usuario, AccionActualizacion, campo, anterior, nuevo, ahora)
	return &ResultadoFila{Creada: false, Resolucion: res, Empresa: empresa}, nil
}

// auditar registra el evento; un fallo de auditoría no invalida la fila ya
// persistida, pero la anotación perdida queda advertida en el log.
func (m *Mapeador) auditar(ctx context.Context, res *entity.Resolucion, actor, accion, campo, anterior, nuevo string, ahora time.Time) {
	err := m.auditoria.Append(ctx, &entity.RegistroAuditoria{
		ID:             uuid.New().String(),
		ResolucionID:   res.ID,
		NumeroCanonico: res.NumeroCanonico,
		Actor:          actor,
		Accion:         accion,
		Campo:          campo,
		ValorAnterior:  anterior,
		ValorNuevo:     nuevo,
		Contexto:       ContextoCargaMasiva,
		CreadoEn:       ahora,
	})
	if err != nil {
		m.log.Warn().Err(err).
			Str("numero", res.NumeroCanonico).
			Str("accion", accion).
			Msg("registro de auditoría perdido")
	}
}
