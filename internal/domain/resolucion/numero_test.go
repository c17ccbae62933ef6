package resolucion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drtcpuno/resoluciones-api/internal/domain/resolucion"
)

// ──────────────────────────────────────────────────────────────────────────────
// CanonizarNumero: las cuatro reglas de prioridad, y la regla crítica de
// eficacia anticipada (el año escrito en el número siempre prevalece).
// ──────────────────────────────────────────────────────────────────────────────

func TestCanonizarNumero_Reglas(t *testing.T) {
	const anioEmision = 2025

	casos := []struct {
		nombre   string
		entrada  string
		esperado string
	}{
		{"ya canónico se rellena", "R-290-2023", "R-0290-2023"},
		{"canónico completo queda igual", "R-0290-2023", "R-0290-2023"},
		{"sin prefijo se antepone R-", "0290-2023", "R-0290-2023"},
		{"sin prefijo ni relleno", "290-2023", "R-0290-2023"},
		{"solo dígitos usa año de emisión", "290", "R-0290-2025"},
		{"dígitos con ruido", "Nº 290", "R-0290-2025"},
		{"sin dígitos usa el fallback", "S/N", "R-0001-2025"},
		{"vacío usa el fallback", "", "R-0001-2025"},
		{"minúsculas se normalizan", "r-15-2024", "R-0015-2024"},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.esperado, resolucion.CanonizarNumero(c.entrada, anioEmision))
		})
	}
}

// El año embebido en el número nunca se sobreescribe con el año de emisión ni
// con las fechas de vigencia. Resolución 0290-2024 con vigencia desde 2023
// canoniza a R-0290-2024, jamás a R-0290-2023 (eficacia anticipada).
func TestCanonizarNumero_AnioEmbebidoPrevalece(t *testing.T) {
	assert.Equal(t, "R-0290-2024", resolucion.CanonizarNumero("0290-2024", 2023))
	assert.Equal(t, "R-0290-2024", resolucion.CanonizarNumero("R-290-2024", 1999))
}

// Canonizar es idempotente: aplicar dos veces da lo mismo que una.
func TestCanonizarNumero_Idempotente(t *testing.T) {
	entradas := []string{"R-290-2023", "0290-2023", "290", "Nº 12/2022", "S/N", "r-1-2020"}
	for _, raw := range entradas {
		for _, anio := range []int{2020, 2025} {
			una := resolucion.CanonizarNumero(raw, anio)
			dos := resolucion.CanonizarNumero(una, anio)
			assert.Equal(t, una, dos, "canonizar(%q, %d) debe ser idempotente", raw, anio)
			assert.Regexp(t, resolucion.PatronCanonico, una,
				"la salida siempre debe ser canónica")
		}
	}
}

func TestAnioEmbebido(t *testing.T) {
	casos := []struct {
		entrada string
		anio    int
		ok      bool
	}{
		{"0551-2021", 2021, true},
		{"R-551-2021", 2021, true},
		{"R-0551-2021", 2021, true},
		{"551", 0, false},
		{"S/N", 0, false},
		{"", 0, false},
	}
	for _, c := range casos {
		anio, ok := resolucion.AnioEmbebido(c.entrada)
		assert.Equal(t, c.ok, ok, "entrada %q", c.entrada)
		assert.Equal(t, c.anio, anio, "entrada %q", c.entrada)
	}
}
