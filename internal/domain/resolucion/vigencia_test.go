package resolucion_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drtcpuno/resoluciones-api/internal/domain/resolucion"
)

// ──────────────────────────────────────────────────────────────────────────────
// FinDeVigencia: aritmética de calendario, inicio + N años − 1 día.
// ──────────────────────────────────────────────────────────────────────────────

func TestFinDeVigencia_Calendario(t *testing.T) {
	casos := []struct {
		nombre   string
		inicio   time.Time
		anios    int
		esperado time.Time
	}{
		{"cuatro años desde enero", resolucion.Fecha(2025, time.January, 15), 4, resolucion.Fecha(2029, time.January, 14)},
		{"un año", resolucion.Fecha(2025, time.January, 1), 1, resolucion.Fecha(2025, time.December, 31)},
		{"atraviesa bisiesto", resolucion.Fecha(2023, time.March, 1), 2, resolucion.Fecha(2025, time.February, 28)},
		{"inicio 29 de febrero", resolucion.Fecha(2024, time.February, 29), 1, resolucion.Fecha(2025, time.February, 28)},
		{"máximo veinte años", resolucion.Fecha(2020, time.June, 10), 20, resolucion.Fecha(2040, time.June, 9)},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			fin, err := resolucion.FinDeVigencia(c.inicio, c.anios)
			require.NoError(t, err)
			assert.Equal(t, c.esperado, fin)
		})
	}
}

// fin + 1 día cae en el mismo mes/día que el inicio (el borde bisiesto puede
// correrlo un día).
func TestFinDeVigencia_RetornaAlAniversario(t *testing.T) {
	inicio := resolucion.Fecha(2025, time.September, 16)
	for anios := 1; anios <= 20; anios++ {
		fin, err := resolucion.FinDeVigencia(inicio, anios)
		require.NoError(t, err)
		siguiente := fin.AddDate(0, 0, 1)
		assert.Equal(t, inicio.Month(), siguiente.Month(), "anios=%d", anios)
		assert.Equal(t, inicio.Day(), siguiente.Day(), "anios=%d", anios)
	}
}

func TestFinDeVigencia_RangoDeAnios(t *testing.T) {
	inicio := resolucion.Fecha(2025, time.January, 1)
	for _, anios := range []int{0, -1, 21, 100} {
		_, err := resolucion.FinDeVigencia(inicio, anios)
		assert.Error(t, err, "anios=%d debe rechazarse", anios)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// EvaluarVigencia: clasificación temporal respecto de "hoy".
// ──────────────────────────────────────────────────────────────────────────────

func TestEvaluarVigencia(t *testing.T) {
	inicio := resolucion.Fecha(2025, time.January, 1)
	fin := resolucion.Fecha(2028, time.December, 31)

	casos := []struct {
		nombre    string
		hoy       time.Time
		situacion resolucion.SituacionVigencia
		porVencer bool
	}{
		{"antes del inicio", resolucion.Fecha(2024, time.June, 1), resolucion.SituacionPendiente, false},
		{"primer día", inicio, resolucion.SituacionVigente, false},
		{"en pleno período", resolucion.Fecha(2026, time.June, 1), resolucion.SituacionVigente, false},
		{"a 30 días del fin", resolucion.Fecha(2028, time.December, 1), resolucion.SituacionVigente, true},
		{"último día", fin, resolucion.SituacionVigente, true},
		{"día siguiente al fin", resolucion.Fecha(2029, time.January, 1), resolucion.SituacionVencida, false},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			v := resolucion.EvaluarVigencia(inicio, fin, c.hoy)
			assert.Equal(t, c.situacion, v.Situacion)
			assert.Equal(t, c.porVencer, v.PorVencer)
		})
	}
}

func TestEvaluarVigencia_DiasRestantesPuedeSerNegativo(t *testing.T) {
	inicio := resolucion.Fecha(2020, time.January, 1)
	fin := resolucion.Fecha(2020, time.December, 31)
	v := resolucion.EvaluarVigencia(inicio, fin, resolucion.Fecha(2021, time.January, 10))
	assert.Equal(t, resolucion.SituacionVencida, v.Situacion)
	assert.Equal(t, -10, v.DiasRestantes)
}
