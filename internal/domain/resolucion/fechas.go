// Package resolucion contiene las reglas puras del dominio de resoluciones
// directorales: normalización de fechas y números, y aritmética de vigencia.
// No depende de persistencia ni de transporte; todo recibe el "hoy" como
// parámetro para que los cálculos sean deterministas en tests.
package resolucion

import (
	"fmt"
	"strings"
	"time"
)

// Años admisibles en cualquier fecha del registro.
const (
	AnioMinimo = 1900
	AnioMaximo = 2100
)

// Formatos de fecha textual aceptados, en orden de prioridad.
// Los dos últimos usan año de dos dígitos, que siempre se interpreta como 20AA.
var formatosFecha = []string{
	"02/01/2006", // DD/MM/YYYY
	"2006-01-02", // YYYY-MM-DD
	"02-01-2006", // DD-MM-YYYY
	"01/02/2006", // MM/DD/YYYY
	"02/01/06",   // DD/MM/YY
	"02-01-06",   // DD-MM-YY
}

// ParseFecha normaliza un valor heterogéneo a fecha (sin hora).
//
// Acepta time.Time (se descarta la hora) o texto en los formatos admitidos.
// Un valor vacío o nil devuelve ok=false sin error: la ausencia es legal y la
// decide el validador según la columna. Texto no vacío que no parsea es error
// duro citando el valor y la columna.
func ParseFecha(valor any, columna string) (fecha time.Time, ok bool, err error) {
	switch v := valor.(type) {
	case nil:
		return time.Time{}, false, nil
	case time.Time:
		if v.IsZero() {
			return time.Time{}, false, nil
		}
		return soloFecha(v), true, nil
	case *time.Time:
		if v == nil || v.IsZero() {
			return time.Time{}, false, nil
		}
		return soloFecha(*v), true, nil
	case string:
		return parseFechaTexto(v, columna)
	default:
		return time.Time{}, false, fmt.Errorf("columna %s: tipo de fecha no soportado %T", columna, valor)
	}
}

func parseFechaTexto(s, columna string) (time.Time, bool, error) {
	texto := strings.TrimSpace(s)
	if texto == "" {
		return time.Time{}, false, nil
	}
	for i, layout := range formatosFecha {
		t, err := time.Parse(layout, texto)
		if err != nil {
			continue
		}
		// Los formatos de año corto (índices 4 y 5) siempre mapean a 20AA.
		if i >= 4 {
			t = time.Date(2000+t.Year()%100, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		}
		if t.Year() < AnioMinimo || t.Year() > AnioMaximo {
			return time.Time{}, false, fmt.Errorf(
				"columna %s: año %d fuera del rango [%d, %d] en %q",
				columna, t.Year(), AnioMinimo, AnioMaximo, texto)
		}
		return soloFecha(t), true, nil
	}
	return time.Time{}, false, fmt.Errorf("columna %s: fecha no reconocida %q", columna, texto)
}

// soloFecha descarta hora y zona, quedándose con la fecha civil en UTC.
func soloFecha(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Fecha construye una fecha civil UTC. Atajo para tests y fixtures.
func Fecha(anio int, mes time.Month, dia int) time.Time {
	return time.Date(anio, mes, dia, 0, 0, 0, 0, time.UTC)
}
