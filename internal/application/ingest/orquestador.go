package ingest

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/drtcpuno/resoluciones-api/internal/application/dto"
	"github.com/drtcpuno/resoluciones-api/internal/domain/entity"
	"github.com/drtcpuno/resoluciones-api/internal/domain/repository"
	"github.com/drtcpuno/resoluciones-api/internal/domain/resolucion"
	"github.com/drtcpuno/resoluciones-api/pkg/logger"
)

// Orquestador dirige el lote completo de carga masiva: compuerta de validación
// previa, procesamiento fila a fila en orden de entrada, y cascada de
// renovación/modificación sobre las resoluciones previas.
//
// No guarda estado entre lotes: es una función de (filas, repositorios, reloj).
type Orquestador struct {
	mapeador     *Mapeador
	resoluciones repository.ResolucionRepository
	auditoria    repository.AuditoriaRepository
	reloj        Reloj
	log          *logger.Logger
}

// NewOrquestador construye el orquestador con sus puertos y el reloj inyectado.
func NewOrquestador(
	resoluciones repository.ResolucionRepository,
	empresas repository.EmpresaRepository,
	auditoria repository.AuditoriaRepository,
	reloj Reloj,
	log *logger.Logger,
) *Orquestador {
	return &Orquestador{
		mapeador:     NewMapeador(resoluciones, empresas, auditoria, log),
		resoluciones: resoluciones,
		auditoria:    auditoria,
		reloj:        reloj,
		log:          log,
	}
}

// ProcesarLote ejecuta el lote completo.
//
// Primero valida todas las filas sin tocar almacenamiento; si alguna tiene
// errores, el lote entero se rechaza y se devuelve solo el reporte de
// validación. Superada la compuerta, las filas se procesan en orden estricto
// de entrada y la cascada de la fila k corre antes de empezar la fila k+1.
// Los fallos de persistencia se anotan por fila y el lote continúa.
//
// Solo retorna error por cancelación de contexto; todo lo demás es reporte.
func (o *Orquestador) ProcesarLote(ctx context.Context, filas []Fila, usuario string) (*dto.ReporteCarga, error) {
	hoy := o.reloj.Hoy()
	reporte := &dto.ReporteCarga{
		Creadas:      []dto.ItemCarga{},
		Actualizadas: []dto.ItemCarga{},
		Errores:      []string{},
		Advertencias: []string{},
	}
	reporte.Estadisticas.Procesadas = len(filas)

	// ── Compuerta de validación previa: nada se persiste si hay errores ──────
	var validacion ResultadoValidacion
	for _, f := range filas {
		res := ValidarFila(f)
		if !res.TieneErrores() {
			if fn, err := NormalizarFila(f); err == nil {
				res.Agregar(VerificarCoherencia(fn.Indice, fn.VigenciaInicio, fn.VigenciaFin, fn.AniosVigencia))
			}
		}
		validacion.Agregar(res)
	}
	for _, a := range validacion.Advertencias {
		reporte.Advertencias = append(reporte.Advertencias, a.String())
	}
	if validacion.TieneErrores() {
		for _, e := range validacion.Errores {
			reporte.Errores = append(reporte.Errores, e.String())
		}
		reporte.Exito = false
		reporte.Estadisticas.Errores = len(validacion.Errores)
		reporte.Mensaje = fmt.Sprintf(
			"lote rechazado: %d errores de validación; no se persistió ninguna fila",
			len(validacion.Errores))
		o.log.Warn().
			Int("filas", len(filas)).
			Int("errores", len(validacion.Errores)).
			Str("usuario", usuario).
			Msg("carga masiva rechazada en validación previa")
		return reporte, nil
	}

	// ── Procesamiento por fila, en orden de entrada ──────────────────────────
	for _, f := range filas {
		if err := ctx.Err(); err != nil {
			// Las filas ya persistidas quedan confirmadas; reenviar el lote es
			// idempotente porque el mapeo hace upsert por número canónico.
			return nil, err
		}

		fn, err := NormalizarFila(f)
		if err != nil {
			reporte.Errores = append(reporte.Errores, Hallazgo{Fila: f.Indice, Mensaje: err.Error()}.String())
			continue
		}

		resultado, err := o.mapeador.Persistir(ctx, fn, usuario, hoy)
		if err != nil {
			reporte.Errores = append(reporte.Errores, Hallazgo{Fila: f.Indice, Mensaje: err.Error()}.String())
			continue
		}

		item := dto.ItemCarga{
			NumeroCanonico: resultado.Resolucion.NumeroCanonico,
			Empresa:        resultado.Empresa.RazonSocial,
			Tramite:        EtiquetaDeTipo(resultado.Resolucion.TipoTramite),
			Estado:         string(resultado.Resolucion.Estado),
		}
		if resultado.Creada {
			reporte.Creadas = append(reporte.Creadas, item)
		} else {
			reporte.Actualizadas = append(reporte.Actualizadas, item)
		}

		o.cascada(ctx, fn, resultado.Resolucion, usuario, reporte)
	}

	reporte.Exito = true
	reporte.Estadisticas.Creadas = len(reporte.Creadas)
	reporte.Estadisticas.Actualizadas = len(reporte.Actualizadas)
	reporte.Estadisticas.Errores = len(reporte.Errores)
	reporte.Mensaje = fmt.Sprintf("lote procesado: %d creadas, %d actualizadas, %d con error",
		reporte.Estadisticas.Creadas, reporte.Estadisticas.Actualizadas, reporte.Estadisticas.Errores)

	o.log.Info().
		Int("procesadas", reporte.Estadisticas.Procesadas).
		Int("creadas", reporte.Estadisticas.Creadas).
		Int("actualizadas", reporte.Estadisticas.Actualizadas).
		Int("errores", reporte.Estadisticas.Errores).
		Str("usuario", usuario).
		Msg("carga masiva completada")
	return reporte, nil
}

// cascada aplica el efecto de una renovación o modificación sobre la
// resolución previa referida por RESOLUCION_ASOCIADA.
//
// El número asociado se canoniza con su propio año embebido: refiere a una
// resolución anterior, así que usar el año de emisión de la nueva enlazaría la
// resolución equivocada. Sin año embebido se advierte y se omite el enlace.
// Nada de lo que ocurra aquí bloquea la fila ya persistida.
func (o *Orquestador) cascada(ctx context.Context, fn FilaNormalizada, nueva *entity.Resolucion, usuario string, reporte *dto.ReporteCarga) {
	if !fn.EsRenovacion() && !fn.EsModificacion() {
		return
	}
	if fn.NumeroAsociado == "" {
		return // ya advertido en la validación para renovaciones
	}

	advertir := func(formato string, args ...any) {
		h := Hallazgo{Fila: fn.Indice, Columna: ColNumeroAsociado, Mensaje: fmt.Sprintf(formato, args...)}
		reporte.Advertencias = append(reporte.Advertencias, h.String())
	}

	anio, ok := resolucion.AnioEmbebido(fn.NumeroAsociado)
	if !ok {
		advertir("la resolución asociada %q no trae año; se omite la cascada", fn.NumeroAsociado)
		return
	}
	canonico := resolucion.CanonizarNumero(fn.NumeroAsociado, anio)

	previa, err := o.resoluciones.GetByNumeroCanonico(ctx, canonico)
	if err != nil {
		advertir("no se pudo consultar la resolución asociada %s: %v", canonico, err)
		return
	}
	if previa == nil {
		advertir("resolución asociada %s no encontrada; la nueva quedó registrada sin enlace", canonico)
		return
	}

	contexto := fmt.Sprintf("cascada desde carga masiva de %s", nueva.NumeroCanonico)
	ahora := o.reloj.Hoy()

	if previa.Estado != entity.EstadoVigente {
		// Ya renovada, anulada o suspendida: solo nota informativa, sin cambio.
		advertir("resolución asociada %s ya está %s; no se modifica su estado", canonico, previa.Estado)
		o.auditarCascada(ctx, previa, usuario, AccionCascadaOmitida, "", string(previa.Estado), string(previa.Estado), contexto)
		return
	}

	if fn.EsRenovacion() {
		estadoAnterior := previa.Estado
		previa.Estado = entity.EstadoRenovada
		previa.RenovadaPor = nueva.NumeroCanonico
		previa.HijasIDs = append(previa.HijasIDs, nueva.ID)
		previa.FechaActualizacion = &ahora
		if err := o.resoluciones.Update(ctx, previa); err != nil {
			advertir("no se pudo actualizar la resolución previa %s: %v", canonico, err)
			return
		}
		o.auditarCascada(ctx, previa, usuario, AccionCascada, "estado", string(estadoAnterior), string(previa.Estado), contexto)

		nueva.PadreID = previa.ID
		nueva.FechaActualizacion = &ahora
		if err := o.resoluciones.Update(ctx, nueva); err != nil {
			advertir("no se pudo enlazar %s con su previa %s: %v", nueva.NumeroCanonico, canonico, err)
			return
		}
		o.auditarCascada(ctx, nueva, usuario, AccionCascada, "padre", "", canonico, contexto)
		return
	}

	// Modificación: la previa sigue VIGENTE, solo se registra el enlace.
	previa.ModificadaPor = nueva.NumeroCanonico
	previa.FechaActualizacion = &ahora
	if err := o.resoluciones.Update(ctx, previa); err != nil {
		advertir("no se pudo anotar la modificación sobre %s: %v", canonico, err)
		return
	}
	o.auditarCascada(ctx, previa, usuario, AccionCascada, "modificada_por", "", nueva.NumeroCanonico, contexto)
}

func (o *Orquestador) auditarCascada(ctx context.Context, res *entity.Resolucion, actor, accion, campo, anterior, nuevo, contexto string) {
	err := o.auditoria.Append(ctx, &entity.RegistroAuditoria{
		ID:             uuid.New().String(),
		ResolucionID:   res.ID,
		NumeroCanonico: res.NumeroCanonico,
		Actor:          actor,
		Accion:         accion,
		Campo:          campo,
		ValorAnterior:  anterior,
		ValorNuevo:     nuevo,
		Contexto:       contexto,
		CreadoEn:       o.reloj.Hoy(),
	})
	if err != nil {
		o.log.Warn().Err(err).
			Str("numero", res.NumeroCanonico).
			Str("accion", accion).
			Msg("registro de auditoría perdido")
	}
}
