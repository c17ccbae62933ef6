package resolucion

import (
	"fmt"
	"time"
)

// Duración declarada admisible de una resolución, en años calendario.
const (
	AniosVigenciaMin = 1
	AniosVigenciaMax = 20
)

// Ventana de aviso: a 30 días o menos del fin de vigencia la resolución se
// marca POR_VENCER para que mesa de partes inicie la renovación.
const DiasAvisoVencimiento = 30

// SituacionVigencia es el estado temporal de una resolución respecto de "hoy".
type SituacionVigencia string

const (
	SituacionPendiente SituacionVigencia = "PENDIENTE" // aún no entra en vigencia
	SituacionVigente   SituacionVigencia = "VIGENTE"
	SituacionVencida   SituacionVigencia = "VENCIDA"
)

// Vigencia resume la evaluación temporal de una resolución.
type Vigencia struct {
	Situacion     SituacionVigencia
	PorVencer     bool // solo con Situacion == VIGENTE
	DiasRestantes int  // negativo si ya venció
}

// FinDeVigencia calcula el último día de vigencia: inicio + anios años
// calendario − 1 día. Usa aritmética de calendario (no 365·N), de modo que los
// años bisiestos quedan bien resueltos; p. ej. 01/01/2025 + 4 años termina el
// 31/12/2028 aunque 2028 sea bisiesto.
func FinDeVigencia(inicio time.Time, anios int) (time.Time, error) {
	if anios < AniosVigenciaMin || anios > AniosVigenciaMax {
		return time.Time{}, fmt.Errorf(
			"años de vigencia %d fuera del rango [%d, %d]", anios, AniosVigenciaMin, AniosVigenciaMax)
	}
	return inicio.AddDate(anios, 0, 0).AddDate(0, 0, -1), nil
}

// EvaluarVigencia clasifica la resolución respecto de hoy.
// PENDIENTE si hoy < inicio; VENCIDA si hoy > fin; VIGENTE en otro caso,
// con la marca POR_VENCER cuando quedan DiasAvisoVencimiento días o menos.
func EvaluarVigencia(inicio, fin, hoy time.Time) Vigencia {
	inicio, fin, hoy = soloFecha(inicio), soloFecha(fin), soloFecha(hoy)
	dias := int(fin.Sub(hoy).Hours() / 24)

	switch {
	case hoy.Before(inicio):
		return Vigencia{Situacion: SituacionPendiente, DiasRestantes: dias}
	case hoy.After(fin):
		return Vigencia{Situacion: SituacionVencida, DiasRestantes: dias}
	default:
		return Vigencia{
			Situacion:     SituacionVigente,
			PorVencer:     dias <= DiasAvisoVencimiento,
			DiasRestantes: dias,
		}
	}
}
