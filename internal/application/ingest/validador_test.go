package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// filaValida devuelve una fila completa y correcta; los tests la mutan.
func filaValida() Fila {
	return Fila{
		Indice: 2,
		Valores: map[string]any{
			ColRUC:            "20123456789",
			ColNumero:         "0123-2024",
			ColNumeroAsociado: "",
			ColTipo:           "NUEVA",
			ColFechaEmision:   "15/03/2024",
			ColInicioVigencia: "15/03/2024",
			ColAniosVigencia:  "4",
			ColFinVigencia:    "14/03/2028",
			ColEstado:         "ACTIVA",
		},
	}
}

func TestValidarFila_FilaCorrectaSinHallazgos(t *testing.T) {
	res := ValidarFila(filaValida())
	assert.Empty(t, res.Errores, "una fila correcta no debe producir errores")
	assert.Empty(t, res.Advertencias)
}

func TestValidarFila_RUC(t *testing.T) {
	casos := []struct {
		nombre  string
		ruc     string
		mensaje string
	}{
		{"vacío", "", "obligatorio"},
		{"con letras", "2012345678X", "solo dígitos"},
		{"corto", "2012345678", "11 dígitos"},
		{"largo", "201234567890", "11 dígitos"},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			f := filaValida()
			f.Valores[ColRUC] = c.ruc
			res := ValidarFila(f)
			require.Len(t, res.Errores, 1)
			assert.Equal(t, ColRUC, res.Errores[0].Columna)
			assert.Contains(t, res.Errores[0].Mensaje, c.mensaje)
		})
	}
}

func TestValidarFila_NumeroObligatorio(t *testing.T) {
	f := filaValida()
	f.Valores[ColNumero] = "  "
	res := ValidarFila(f)
	require.Len(t, res.Errores, 1)
	assert.Equal(t, ColNumero, res.Errores[0].Columna)
}

func TestValidarFila_TipoFueraDeVocabulario(t *testing.T) {
	f := filaValida()
	f.Valores[ColTipo] = "AMPLIACION"
	res := ValidarFila(f)
	require.Len(t, res.Errores, 1)
	assert.Contains(t, res.Errores[0].Mensaje, "AMPLIACION")
	assert.Contains(t, res.Errores[0].Mensaje, "RENOVACION", "el mensaje debe listar los valores admitidos")
}

func TestValidarFila_TipoCaseInsensitive(t *testing.T) {
	f := filaValida()
	f.Valores[ColTipo] = " renovacion "
	f.Valores[ColNumeroAsociado] = "0100-2020"
	res := ValidarFila(f)
	assert.Empty(t, res.Errores, "las etiquetas se normalizan a mayúsculas")
}

func TestValidarFila_EstadoFueraDeVocabulario(t *testing.T) {
	f := filaValida()
	f.Valores[ColEstado] = "EN_TRAMITE"
	res := ValidarFila(f)
	require.Len(t, res.Errores, 1)
	assert.Equal(t, ColEstado, res.Errores[0].Columna)
}

func TestValidarFila_AniosVigencia(t *testing.T) {
	casos := []struct {
		nombre string
		anios  string
	}{
		{"vacío", ""},
		{"no numérico", "cuatro"},
		{"cero", "0"},
		{"negativo", "-3"},
		{"excesivo", "21"},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			f := filaValida()
			f.Valores[ColAniosVigencia] = c.anios
			res := ValidarFila(f)
			require.Len(t, res.Errores, 1)
			assert.Equal(t, ColAniosVigencia, res.Errores[0].Columna)
		})
	}
}

func TestValidarFila_FechasDeVigenciaObligatorias(t *testing.T) {
	f := filaValida()
	f.Valores[ColInicioVigencia] = ""
	f.Valores[ColFinVigencia] = "no-es-fecha"
	res := ValidarFila(f)
	require.Len(t, res.Errores, 2)

	columnas := []string{res.Errores[0].Columna, res.Errores[1].Columna}
	assert.Contains(t, columnas, ColInicioVigencia)
	assert.Contains(t, columnas, ColFinVigencia)
}

// La fecha de emisión es opcional: si no parsea se descarta con advertencia,
// nunca bloquea la fila.
func TestValidarFila_FechaEmisionInvalidaSoloAdvierte(t *testing.T) {
	f := filaValida()
	f.Valores[ColFechaEmision] = "ayer"
	res := ValidarFila(f)
	assert.Empty(t, res.Errores)
	require.Len(t, res.Advertencias, 1)
	assert.Equal(t, ColFechaEmision, res.Advertencias[0].Columna)
	assert.Contains(t, res.Advertencias[0].Mensaje, "descartará")
}

func TestValidarFila_RenovacionSinAsociadaAdvierte(t *testing.T) {
	f := filaValida()
	f.Valores[ColTipo] = "RENOVACION"
	f.Valores[ColNumeroAsociado] = ""
	res := ValidarFila(f)
	assert.Empty(t, res.Errores)
	require.Len(t, res.Advertencias, 1)
	assert.Equal(t, ColNumeroAsociado, res.Advertencias[0].Columna)
}

func TestValidarFila_AcumulaVariosErrores(t *testing.T) {
	f := Fila{Indice: 5, Valores: map[string]any{}}
	res := ValidarFila(f)
	assert.GreaterOrEqual(t, len(res.Errores), 5, "una fila vacía falla en todas las columnas obligatorias")
	for _, e := range res.Errores {
		assert.Equal(t, 5, e.Fila)
	}
}

func TestHallazgo_String(t *testing.T) {
	conColumna := Hallazgo{Fila: 3, Columna: ColRUC, Mensaje: "el RUC es obligatorio"}
	assert.Equal(t, "fila 3, columna RUC_EMPRESA_ASOCIADA: el RUC es obligatorio", conColumna.String())

	sinColumna := Hallazgo{Fila: 3, Mensaje: "empresa no encontrada"}
	assert.False(t, strings.Contains(sinColumna.String(), "columna"))
}
