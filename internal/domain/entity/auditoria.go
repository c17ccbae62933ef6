package entity

import "time"

// RegistroAuditoria es un evento inmutable del historial de cambios de una
// resolución: quién, cuándo, qué campo, valor anterior y nuevo, y el contexto
// de la operación (p. ej. "carga masiva", "cascada de renovación").
type RegistroAuditoria struct {
	ID             string
	ResolucionID   string
	NumeroCanonico string
	Actor          string
	Accion         string
	Campo          string
	ValorAnterior  string
	ValorNuevo     string
	Contexto       string
	CreadoEn       time.Time
}
