package ingest

import (
	"fmt"
	"strconv"
	"time"

	"github.com/drtcpuno/resoluciones-api/internal/domain/entity"
	"github.com/drtcpuno/resoluciones-api/internal/domain/resolucion"
)

// FilaNormalizada es la fila lógica ya parseada y traducida a tipos internos.
// Se construye solo sobre filas que pasaron la validación estructural.
type FilaNormalizada struct {
	Indice int

	RUC            string
	NumeroCrudo    string
	NumeroAsociado string

	EtiquetaTipo string // etiqueta externa; decide si hay cascada
	TipoTramite  entity.TipoTramite
	Estado       entity.EstadoResolucion

	FechaEmision   *time.Time
	VigenciaInicio time.Time
	VigenciaFin    time.Time
	AniosVigencia  int
}

// NormalizarFila parsea una fila validada. Los errores aquí indican que la fila
// no pasó por ValidarFila; se devuelven por robustez, no como flujo esperado.
func NormalizarFila(f Fila) (FilaNormalizada, error) {
	fn := FilaNormalizada{
		Indice:         f.Indice,
		RUC:            f.Texto(ColRUC),
		NumeroCrudo:    f.Texto(ColNumero),
		NumeroAsociado: f.Texto(ColNumeroAsociado),
		EtiquetaTipo:   normalizarEtiqueta(f.Texto(ColTipo)),
	}

	var ok bool
	if fn.TipoTramite, ok = TipoDesdeEtiqueta(fn.EtiquetaTipo); !ok {
		return fn, fmt.Errorf("fila %d: tipo no reconocido %q", f.Indice, fn.EtiquetaTipo)
	}
	if fn.Estado, ok = EstadoDesdeEtiqueta(f.Texto(ColEstado)); !ok {
		return fn, fmt.Errorf("fila %d: estado no reconocido %q", f.Indice, f.Texto(ColEstado))
	}

	anios, err := strconv.Atoi(f.Texto(ColAniosVigencia))
	if err != nil {
		return fn, fmt.Errorf("fila %d: años de vigencia: %w", f.Indice, err)
	}
	fn.AniosVigencia = anios

	inicio, ok, err := resolucion.ParseFecha(f.Crudo(ColInicioVigencia), ColInicioVigencia)
	if err != nil || !ok {
		return fn, fmt.Errorf("fila %d: inicio de vigencia inválido", f.Indice)
	}
	fn.VigenciaInicio = inicio

	fin, ok, err := resolucion.ParseFecha(f.Crudo(ColFinVigencia), ColFinVigencia)
	if err != nil || !ok {
		return fn, fmt.Errorf("fila %d: fin de vigencia inválido", f.Indice)
	}
	fn.VigenciaFin = fin

	// La fecha de emisión es opcional y su fallo de parseo ya fue advertido:
	// aquí simplemente se descarta.
	if emision, ok, err := resolucion.ParseFecha(f.Crudo(ColFechaEmision), ColFechaEmision); err == nil && ok {
		fn.FechaEmision = &emision
	}

	return fn, nil
}

// AnioEmision devuelve el año con el que se canoniza el número: el de la fecha
// de emisión si existe, si no el año de procesamiento.
func (fn FilaNormalizada) AnioEmision(hoy time.Time) int {
	if fn.FechaEmision != nil {
		return fn.FechaEmision.Year()
	}
	return hoy.Year()
}

// EsRenovacion y EsModificacion deciden la cascada sobre la resolución previa.
// Se resuelven por la etiqueta externa porque MODIFICACION se almacena como
// trámite OTRO y el enum interno ya no distingue.
func (fn FilaNormalizada) EsRenovacion() bool   { return fn.EtiquetaTipo == EtiquetaTipoRenovacion }
func (fn FilaNormalizada) EsModificacion() bool { return fn.EtiquetaTipo == EtiquetaTipoModificacion }
