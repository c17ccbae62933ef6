package entity

import "time"

// Empresa representa una empresa de transporte inscrita ante la DRTC Puno.
// El registro de empresas lo administra otro módulo del back-office; el motor
// de resoluciones solo la consulta por RUC para enlazar la autorización.
type Empresa struct {
	ID            string
	RUC           string // 11 dígitos (SUNAT)
	RazonSocial   string
	Direccion     string
	Estado        string // "HABILITADA" | "INHABILITADA"
	Activo        bool
	CreadoEn      time.Time
	ActualizadoEn time.Time
}
