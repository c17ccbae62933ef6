// Package ingest implementa el motor de carga masiva de resoluciones:
// validación por fila, chequeo de coherencia temporal, mapeo a registros
// canónicos y orquestación del lote con cascada de renovaciones.
package ingest

import (
	"fmt"
	"strings"
)

// Etiquetas exactas de columna del archivo de carga masiva. El orden de
// referencia de la plantilla es este, con ESTADO al final; el lector acepta
// cualquier orden porque empareja por etiqueta.
const (
	ColRUC            = "RUC_EMPRESA_ASOCIADA"
	ColNumero         = "RESOLUCION_NUMERO"
	ColNumeroAsociado = "RESOLUCION_ASOCIADA"
	ColTipo           = "TIPO_RESOLUCION"
	ColFechaEmision   = "FECHA_RESOLUCION"
	ColInicioVigencia = "FECHA_INICIO_VIGENCIA"
	ColAniosVigencia  = "ANIOS_VIGENCIA"
	ColFinVigencia    = "FECHA_FIN_VIGENCIA"
	ColEstado         = "ESTADO"
)

// ColumnasPlantilla en el orden de referencia de la plantilla descargable.
var ColumnasPlantilla = []string{
	ColRUC, ColNumero, ColNumeroAsociado, ColTipo, ColFechaEmision,
	ColInicioVigencia, ColAniosVigencia, ColFinVigencia, ColEstado,
}

// Fila es una fila lógica del archivo, con sus valores crudos por etiqueta.
// Indice es 1-based y cuenta la cabecera como fila 1: la primera fila de datos
// es la 2, igual que la ve el usuario en su hoja de cálculo.
type Fila struct {
	Indice  int
	Valores map[string]any
}

// Texto devuelve el valor de la columna como texto sin espacios laterales.
func (f Fila) Texto(col string) string {
	v, ok := f.Valores[col]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

// Crudo devuelve el valor sin convertir (puede ser time.Time para celdas fecha).
func (f Fila) Crudo(col string) any {
	return f.Valores[col]
}

// Hallazgo es un error o advertencia localizado en fila y columna.
type Hallazgo struct {
	Fila    int
	Columna string
	Mensaje string
}

func (h Hallazgo) String() string {
	if h.Columna == "" {
		return fmt.Sprintf("fila %d: %s", h.Fila, h.Mensaje)
	}
	return fmt.Sprintf("fila %d, columna %s: %s", h.Fila, h.Columna, h.Mensaje)
}
