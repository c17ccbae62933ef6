package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/drtcpuno/resoluciones-api/internal/application/ingest"
)

// NombreHojaPlantilla de la plantilla descargable.
const NombreHojaPlantilla = "Resoluciones"

// GenerarPlantilla produce un XLSX vacío con la cabecera en el orden de
// referencia (ESTADO al final) y una fila de ejemplo, sin estilos.
func GenerarPlantilla() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(NombreHojaPlantilla)
	if err != nil {
		return nil, fmt.Errorf("crear hoja: %w", err)
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	cabecera := make([]any, len(ingest.ColumnasPlantilla))
	for i, etiqueta := range ingest.ColumnasPlantilla {
		cabecera[i] = etiqueta
	}
	if err := f.SetSheetRow(NombreHojaPlantilla, "A1", &cabecera); err != nil {
		return nil, fmt.Errorf("escribir cabecera: %w", err)
	}

	ejemplo := []any{
		"20123456789", "0001-2025", "", ingest.EtiquetaTipoNueva,
		"15/01/2025", "15/01/2025", 4, "14/01/2029", ingest.EtiquetaEstadoActiva,
	}
	if err := f.SetSheetRow(NombreHojaPlantilla, "A2", &ejemplo); err != nil {
		return nil, fmt.Errorf("escribir fila de ejemplo: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar plantilla: %w", err)
	}
	return buf.Bytes(), nil
}
