// Package excel adapta archivos XLSX de carga masiva al modelo de filas del
// motor de ingesta. Lee siempre la primera hoja, empareja columnas por
// etiqueta (en cualquier orden) y convierte las celdas fecha del calendario
// serial de Excel a time.Time.
package excel

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/drtcpuno/resoluciones-api/internal/application/ingest"
)

// columnasFecha reciben conversión serial-Excel -> time.Time.
var columnasFecha = map[string]bool{
	ingest.ColFechaEmision:   true,
	ingest.ColInicioVigencia: true,
	ingest.ColFinVigencia:    true,
}

// LeerLote lee el archivo y devuelve las filas lógicas con su índice 1-based
// (la cabecera es la fila 1). Errores aquí son estructurales: archivo ilegible,
// sin hojas, o columnas obligatorias ausentes; rechazan el lote completo.
func LeerLote(r io.Reader, maxFilas int) ([]ingest.Fila, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("abrir archivo: %w", err)
	}
	defer f.Close()

	hojas := f.GetSheetList()
	if len(hojas) == 0 {
		return nil, fmt.Errorf("el archivo no tiene hojas")
	}

	// RawCellValue: las fechas llegan como serial de Excel, no como texto
	// formateado dependiente de la configuración regional de la hoja.
	celdas, err := f.GetRows(hojas[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("leer hoja %q: %w", hojas[0], err)
	}
	if len(celdas) == 0 {
		return nil, fmt.Errorf("la hoja %q está vacía", hojas[0])
	}

	indicePorEtiqueta, err := mapearCabecera(celdas[0])
	if err != nil {
		return nil, err
	}

	var filas []ingest.Fila
	for i := 1; i < len(celdas); i++ {
		if filaVacia(celdas[i]) {
			continue
		}
		if maxFilas > 0 && len(filas) >= maxFilas {
			return nil, fmt.Errorf("el archivo supera el máximo de %d filas", maxFilas)
		}
		valores := make(map[string]any, len(indicePorEtiqueta))
		for etiqueta, idx := range indicePorEtiqueta {
			var crudo string
			if idx < len(celdas[i]) {
				crudo = strings.TrimSpace(celdas[i][idx])
			}
			valores[etiqueta] = convertirCelda(etiqueta, crudo)
		}
		filas = append(filas, ingest.Fila{Indice: i + 1, Valores: valores})
	}
	return filas, nil
}

// mapearCabecera empareja las etiquetas obligatorias con su posición.
func mapearCabecera(cabecera []string) (map[string]int, error) {
	posiciones := make(map[string]int, len(cabecera))
	for idx, celda := range cabecera {
		posiciones[strings.ToUpper(strings.TrimSpace(celda))] = idx
	}
	indice := make(map[string]int, len(ingest.ColumnasPlantilla))
	var faltantes []string
	for _, etiqueta := range ingest.ColumnasPlantilla {
		idx, ok := posiciones[etiqueta]
		if !ok {
			faltantes = append(faltantes, etiqueta)
			continue
		}
		indice[etiqueta] = idx
	}
	if len(faltantes) > 0 {
		return nil, fmt.Errorf("faltan columnas obligatorias: %s", strings.Join(faltantes, ", "))
	}
	return indice, nil
}

// convertirCelda pasa los seriales de fecha de Excel a time.Time; el resto de
// celdas viaja como texto y lo interpreta el motor de ingesta.
func convertirCelda(etiqueta, crudo string) any {
	if crudo == "" || !columnasFecha[etiqueta] {
		return crudo
	}
	serial, err := strconv.ParseFloat(crudo, 64)
	if err != nil {
		return crudo // fecha escrita como texto: la parsea el normalizador
	}
	fecha, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return crudo
	}
	return fecha
}

func filaVacia(celdas []string) bool {
	for _, c := range celdas {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
