package entity

import "time"

// Estados internos de una resolución. Difieren de las etiquetas de las hojas
// de cálculo de carga masiva (ver application/ingest, mapas de etiquetas).
type EstadoResolucion string

const (
	EstadoVigente    EstadoResolucion = "VIGENTE"
	EstadoVencida    EstadoResolucion = "VENCIDA"
	EstadoSuspendida EstadoResolucion = "SUSPENDIDA"
	EstadoRenovada   EstadoResolucion = "RENOVADA"
	EstadoAnulada    EstadoResolucion = "ANULADA"
)

// EsTerminal informa si el estado no admite más transiciones.
// RENOVADA se trata como terminal: ninguna operación del sistema sale de ella.
func (e EstadoResolucion) EsTerminal() bool {
	return e == EstadoRenovada || e == EstadoAnulada
}

// Tipo de trámite que originó la resolución.
type TipoTramite string

const (
	TramiteAutorizacionNueva TipoTramite = "AUTORIZACION_NUEVA"
	TramiteRenovacion        TipoTramite = "RENOVACION"
	TramiteOtro              TipoTramite = "OTRO" // incluye modificaciones
)

// Naturaleza estructural de la resolución dentro de la cadena de autorización.
type NaturalezaResolucion string

const (
	NaturalezaPadre NaturalezaResolucion = "PADRE"
	NaturalezaHija  NaturalezaResolucion = "HIJA"
)

// Resolucion es el acto administrativo que otorga, renueva o modifica una
// autorización de transporte. Entidad central del motor de ciclo de vida.
//
// El número canónico tiene la forma R-NNNN-AAAA y es inmutable una vez
// asignado. El año del número se toma de la fecha de emisión (o del número tal
// como fue escrito), nunca de las fechas de vigencia: una resolución emitida en
// el año A puede otorgar vigencia retroactiva desde A-k (eficacia anticipada).
type Resolucion struct {
	ID             string
	NumeroCanonico string
	EmpresaID      string

	Naturaleza  NaturalezaResolucion
	TipoTramite TipoTramite

	FechaEmision   *time.Time // opcional; la resolución puede registrarse sin ella
	VigenciaInicio time.Time
	VigenciaFin    time.Time
	AniosVigencia  int // declarados, 1..20

	Estado           EstadoResolucion
	NumeroAsociado   string // referencia libre a la resolución que renueva/modifica
	RenovadaPor      string // número canónico de la resolución que la renovó
	ModificadaPor    string // número canónico de la última resolución que la modificó
	MotivoSuspension string

	PadreID  string
	HijasIDs []string

	Descripcion          string
	VehiculosHabilitados []string // poblado por el módulo de flota
	RutasAutorizadas     []string // poblado por el módulo de rutas

	Activo             bool // borrado lógico
	FechaRegistro      time.Time
	FechaActualizacion *time.Time
	UsuarioEmision     string
}
