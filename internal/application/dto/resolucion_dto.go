package dto

import "time"

// ResolucionResponse representación HTTP de una resolución.
type ResolucionResponse struct {
	ID                   string     `json:"id"`
	NumeroCanonico       string     `json:"numero_canonico"`
	EmpresaID            string     `json:"empresa_id"`
	EmpresaRazonSocial   string     `json:"empresa_razon_social,omitempty"`
	Naturaleza           string     `json:"naturaleza"`
	TipoTramite          string     `json:"tipo_tramite"`
	FechaEmision         *time.Time `json:"fecha_emision,omitempty"`
	VigenciaInicio       time.Time  `json:"vigencia_inicio"`
	VigenciaFin          time.Time  `json:"vigencia_fin"`
	AniosVigencia        int        `json:"anios_vigencia"`
	Estado               string     `json:"estado"`
	SituacionVigencia    string     `json:"situacion_vigencia,omitempty"`
	PorVencer            bool       `json:"por_vencer,omitempty"`
	DiasRestantes        int        `json:"dias_restantes,omitempty"`
	NumeroAsociado       string     `json:"numero_asociado,omitempty"`
	RenovadaPor          string     `json:"renovada_por,omitempty"`
	ModificadaPor        string     `json:"modificada_por,omitempty"`
	MotivoSuspension     string     `json:"motivo_suspension,omitempty"`
	Descripcion          string     `json:"descripcion,omitempty"`
	VehiculosHabilitados []string   `json:"vehiculos_habilitados,omitempty"`
	RutasAutorizadas     []string   `json:"rutas_autorizadas,omitempty"`
	Activo               bool       `json:"activo"`
	FechaRegistro        time.Time  `json:"fecha_registro"`
	FechaActualizacion   *time.Time `json:"fecha_actualizacion,omitempty"`
	UsuarioEmision       string     `json:"usuario_emision,omitempty"`
}

// ResolucionListResponse listado paginado.
type ResolucionListResponse struct {
	Items []ResolucionResponse `json:"items"`
	Total int                  `json:"total"`
}

// CambioEstadoRequest cuerpo de suspensión/anulación.
type CambioEstadoRequest struct {
	Motivo string `json:"motivo"`
}

// AuditoriaResponse un evento del historial de una resolución.
type AuditoriaResponse struct {
	Actor         string    `json:"actor"`
	Accion        string    `json:"accion"`
	Campo         string    `json:"campo,omitempty"`
	ValorAnterior string    `json:"valor_anterior,omitempty"`
	ValorNuevo    string    `json:"valor_nuevo,omitempty"`
	Contexto      string    `json:"contexto,omitempty"`
	CreadoEn      time.Time `json:"creado_en"`
}

// ReconciliacionResponse resultado del barrido de vencimientos.
type ReconciliacionResponse struct {
	Revisadas int      `json:"revisadas"`
	Vencidas  []string `json:"vencidas"`
}
