package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/drtcpuno/resoluciones-api/internal/application/ingest"
)

// libro arma un XLSX en memoria con la cabecera dada y filas de datos.
func libro(t *testing.T, cabecera []string, filas ...[]any) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	fila := make([]any, len(cabecera))
	for i, c := range cabecera {
		fila[i] = c
	}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &fila))
	for i, datos := range filas {
		celda, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", celda, &datos))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

func TestLeerLote_FilaCompleta(t *testing.T) {
	r := libro(t, ingest.ColumnasPlantilla,
		[]any{"20123456789", "0123-2025", "", "NUEVA", "15/01/2025", "15/01/2025", 4, "14/01/2029", "ACTIVA"},
	)
	filas, err := LeerLote(r, 0)
	require.NoError(t, err)
	require.Len(t, filas, 1)

	f := filas[0]
	assert.Equal(t, 2, f.Indice, "la primera fila de datos es la 2, como la ve el usuario")
	assert.Equal(t, "20123456789", f.Texto(ingest.ColRUC))
	assert.Equal(t, "0123-2025", f.Texto(ingest.ColNumero))
	assert.Equal(t, "NUEVA", f.Texto(ingest.ColTipo))
	assert.Equal(t, "4", f.Texto(ingest.ColAniosVigencia))
	assert.Equal(t, "ACTIVA", f.Texto(ingest.ColEstado))
}

// Las celdas con fecha nativa de Excel llegan como time.Time, no como el texto
// formateado que dependa de la configuración regional de la hoja.
func TestLeerLote_CeldaFechaNativaLlegaComoTime(t *testing.T) {
	emision := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	r := libro(t, ingest.ColumnasPlantilla,
		[]any{"20123456789", "0123-2025", "", "NUEVA", emision, emision, 4, "14/01/2029", "ACTIVA"},
	)
	filas, err := LeerLote(r, 0)
	require.NoError(t, err)
	require.Len(t, filas, 1)

	crudo := filas[0].Crudo(ingest.ColFechaEmision)
	fecha, ok := crudo.(time.Time)
	require.True(t, ok, "la celda fecha debe convertirse desde el serial de Excel")
	assert.Equal(t, 2025, fecha.Year())
	assert.Equal(t, time.January, fecha.Month())
	assert.Equal(t, 15, fecha.Day())
}

func TestLeerLote_OrdenDeColumnasIndistinto(t *testing.T) {
	cabecera := []string{
		ingest.ColEstado, ingest.ColNumero, ingest.ColRUC, ingest.ColTipo,
		ingest.ColFinVigencia, ingest.ColInicioVigencia, ingest.ColAniosVigencia,
		ingest.ColNumeroAsociado, ingest.ColFechaEmision,
	}
	r := libro(t, cabecera,
		[]any{"ACTIVA", "0123-2025", "20123456789", "NUEVA", "14/01/2029", "15/01/2025", 4, "", ""},
	)
	filas, err := LeerLote(r, 0)
	require.NoError(t, err)
	require.Len(t, filas, 1)
	assert.Equal(t, "20123456789", filas[0].Texto(ingest.ColRUC))
	assert.Equal(t, "ACTIVA", filas[0].Texto(ingest.ColEstado))
}

func TestLeerLote_ColumnasFaltantes(t *testing.T) {
	r := libro(t, []string{ingest.ColRUC, ingest.ColNumero},
		[]any{"20123456789", "0123-2025"},
	)
	_, err := LeerLote(r, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "faltan columnas obligatorias")
	assert.Contains(t, err.Error(), ingest.ColEstado)
}

func TestLeerLote_FilasVaciasSeOmiten(t *testing.T) {
	r := libro(t, ingest.ColumnasPlantilla,
		[]any{"20123456789", "0123-2025", "", "NUEVA", "", "15/01/2025", 4, "14/01/2029", "ACTIVA"},
		[]any{"", "", "", "", "", "", "", "", ""},
		[]any{"20987654321", "0124-2025", "", "NUEVA", "", "15/01/2025", 4, "14/01/2029", "ACTIVA"},
	)
	filas, err := LeerLote(r, 0)
	require.NoError(t, err)
	require.Len(t, filas, 2)
	assert.Equal(t, 2, filas[0].Indice)
	assert.Equal(t, 4, filas[1].Indice, "el índice conserva la posición real en la hoja")
}

func TestLeerLote_SuperaMaximoDeFilas(t *testing.T) {
	r := libro(t, ingest.ColumnasPlantilla,
		[]any{"20123456789", "1-2025", "", "NUEVA", "", "15/01/2025", 4, "14/01/2029", "ACTIVA"},
		[]any{"20123456789", "2-2025", "", "NUEVA", "", "15/01/2025", 4, "14/01/2029", "ACTIVA"},
	)
	_, err := LeerLote(r, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "máximo de 1 filas")
}

func TestLeerLote_ArchivoIlegible(t *testing.T) {
	_, err := LeerLote(bytes.NewReader([]byte("esto no es un xlsx")), 0)
	assert.Error(t, err)
}

// La plantilla descargable debe poder reingresarse por el propio lector.
func TestGenerarPlantilla_RoundTrip(t *testing.T) {
	contenido, err := GenerarPlantilla()
	require.NoError(t, err)
	require.NotEmpty(t, contenido)

	filas, err := LeerLote(bytes.NewReader(contenido), 0)
	require.NoError(t, err)
	require.Len(t, filas, 1, "la plantilla trae una fila de ejemplo")
	assert.Equal(t, "20123456789", filas[0].Texto(ingest.ColRUC))
	assert.Equal(t, ingest.EtiquetaTipoNueva, filas[0].Texto(ingest.ColTipo))
}
