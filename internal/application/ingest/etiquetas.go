package ingest

import (
	"strings"

	"github.com/drtcpuno/resoluciones-api/internal/domain/entity"
)

// Etiquetas externas de los archivos de carga (vocabulario de los usuarios).
// Se mantienen en mapas bidireccionales separados de los enums internos para
// que el vocabulario de la UI pueda evolucionar sin tocar el almacenamiento.
const (
	EtiquetaTipoNueva        = "NUEVA"
	EtiquetaTipoRenovacion   = "RENOVACION"
	EtiquetaTipoModificacion = "MODIFICACION"

	EtiquetaEstadoActiva   = "ACTIVA"
	EtiquetaEstadoVencida  = "VENCIDA"
	EtiquetaEstadoRenovada = "RENOVADA"
	EtiquetaEstadoAnulada  = "ANULADA"
)

// etiqueta de archivo -> trámite interno. MODIFICACION se registra como OTRO;
// su efecto sobre la resolución previa lo decide la cascada, no el enum.
var tipoPorEtiqueta = map[string]entity.TipoTramite{
	EtiquetaTipoNueva:        entity.TramiteAutorizacionNueva,
	EtiquetaTipoRenovacion:   entity.TramiteRenovacion,
	EtiquetaTipoModificacion: entity.TramiteOtro,
}

// trámite interno -> etiqueta de presentación.
var etiquetaPorTipo = map[entity.TipoTramite]string{
	entity.TramiteAutorizacionNueva: EtiquetaTipoNueva,
	entity.TramiteRenovacion:        EtiquetaTipoRenovacion,
	entity.TramiteOtro:              EtiquetaTipoModificacion,
}

// etiqueta de archivo -> estado interno. RENOVADA entra como VIGENTE: el estado
// RENOVADA solo lo asigna la cascada cuando llega la resolución que renueva.
var estadoPorEtiqueta = map[string]entity.EstadoResolucion{
	EtiquetaEstadoActiva:   entity.EstadoVigente,
	EtiquetaEstadoVencida:  entity.EstadoVencida,
	EtiquetaEstadoRenovada: entity.EstadoVigente,
	EtiquetaEstadoAnulada:  entity.EstadoAnulada,
}

// estado interno -> etiqueta de presentación.
var etiquetaPorEstado = map[entity.EstadoResolucion]string{
	entity.EstadoVigente:    EtiquetaEstadoActiva,
	entity.EstadoVencida:    EtiquetaEstadoVencida,
	entity.EstadoSuspendida: "SUSPENDIDA",
	entity.EstadoRenovada:   EtiquetaEstadoRenovada,
	entity.EstadoAnulada:    EtiquetaEstadoAnulada,
}

// TipoDesdeEtiqueta traduce la etiqueta externa de tipo de trámite.
func TipoDesdeEtiqueta(etiqueta string) (entity.TipoTramite, bool) {
	t, ok := tipoPorEtiqueta[normalizarEtiqueta(etiqueta)]
	return t, ok
}

// EstadoDesdeEtiqueta traduce la etiqueta externa de estado.
func EstadoDesdeEtiqueta(etiqueta string) (entity.EstadoResolucion, bool) {
	e, ok := estadoPorEtiqueta[normalizarEtiqueta(etiqueta)]
	return e, ok
}

// EtiquetaDeTipo devuelve la etiqueta de presentación del trámite interno.
func EtiquetaDeTipo(t entity.TipoTramite) string { return etiquetaPorTipo[t] }

// EtiquetaDeEstado devuelve la etiqueta de presentación del estado interno.
func EtiquetaDeEstado(e entity.EstadoResolucion) string { return etiquetaPorEstado[e] }

// EtiquetasTipoValidas lista las etiquetas admitidas, para mensajes de error.
func EtiquetasTipoValidas() []string {
	return []string{EtiquetaTipoNueva, EtiquetaTipoRenovacion, EtiquetaTipoModificacion}
}

// EtiquetasEstadoValidas lista las etiquetas admitidas, para mensajes de error.
func EtiquetasEstadoValidas() []string {
	return []string{EtiquetaEstadoActiva, EtiquetaEstadoVencida, EtiquetaEstadoRenovada, EtiquetaEstadoAnulada}
}

func normalizarEtiqueta(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
