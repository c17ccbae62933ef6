package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/drtcpuno/resoluciones-api/internal/domain/resolucion"
)

// ResultadoValidacion agrupa los hallazgos de una fila o de un lote completo.
// Los errores bloquean el procesamiento; las advertencias solo anotan.
type ResultadoValidacion struct {
	Errores      []Hallazgo
	Advertencias []Hallazgo
}

// TieneErrores informa si hay al menos un error.
func (r ResultadoValidacion) TieneErrores() bool { return len(r.Errores) > 0 }

// Agregar acumula los hallazgos de otro resultado (para el reporte del lote).
func (r *ResultadoValidacion) Agregar(otro ResultadoValidacion) {
	r.Errores = append(r.Errores, otro.Errores...)
	r.Advertencias = append(r.Advertencias, otro.Advertencias...)
}

func (r *ResultadoValidacion) errorEn(fila int, col, formato string, args ...any) {
	r.Errores = append(r.Errores, Hallazgo{Fila: fila, Columna: col, Mensaje: fmt.Sprintf(formato, args...)})
}

func (r *ResultadoValidacion) advertirEn(fila int, col, formato string, args ...any) {
	r.Advertencias = append(r.Advertencias, Hallazgo{Fila: fila, Columna: col, Mensaje: fmt.Sprintf(formato, args...)})
}

// ValidarFila aplica las restricciones estructurales y semánticas por fila.
// No consulta persistencia ni muta nada: es la primera compuerta del lote.
func ValidarFila(f Fila) ResultadoValidacion {
	var res ResultadoValidacion

	// RUC: exactamente 11 dígitos.
	ruc := f.Texto(ColRUC)
	switch {
	case ruc == "":
		res.errorEn(f.Indice, ColRUC, "el RUC de la empresa es obligatorio")
	case !esSoloDigitos(ruc):
		res.errorEn(f.Indice, ColRUC, "el RUC debe contener solo dígitos: %q", ruc)
	case len(ruc) != 11:
		res.errorEn(f.Indice, ColRUC, "el RUC debe tener 11 dígitos, tiene %d: %q", len(ruc), ruc)
	}

	// Número de resolución: obligatorio; la canonización se hace después.
	if f.Texto(ColNumero) == "" {
		res.errorEn(f.Indice, ColNumero, "el número de resolución es obligatorio")
	}

	// Tipo de trámite: obligatorio, dentro del vocabulario externo.
	tipo := f.Texto(ColTipo)
	if tipo == "" {
		res.errorEn(f.Indice, ColTipo, "el tipo de resolución es obligatorio")
	} else if _, ok := TipoDesdeEtiqueta(tipo); !ok {
		res.errorEn(f.Indice, ColTipo, "tipo %q no reconocido; valores admitidos: %s",
			tipo, strings.Join(EtiquetasTipoValidas(), ", "))
	}

	// Estado: obligatorio, dentro del vocabulario externo.
	estado := f.Texto(ColEstado)
	if estado == "" {
		res.errorEn(f.Indice, ColEstado, "el estado es obligatorio")
	} else if _, ok := EstadoDesdeEtiqueta(estado); !ok {
		res.errorEn(f.Indice, ColEstado, "estado %q no reconocido; valores admitidos: %s",
			estado, strings.Join(EtiquetasEstadoValidas(), ", "))
	}

	// Años de vigencia: entero en [1, 20].
	aniosTexto := f.Texto(ColAniosVigencia)
	if aniosTexto == "" {
		res.errorEn(f.Indice, ColAniosVigencia, "los años de vigencia son obligatorios")
	} else if anios, err := strconv.Atoi(aniosTexto); err != nil {
		res.errorEn(f.Indice, ColAniosVigencia, "los años de vigencia deben ser un entero: %q", aniosTexto)
	} else if anios < resolucion.AniosVigenciaMin || anios > resolucion.AniosVigenciaMax {
		res.errorEn(f.Indice, ColAniosVigencia, "años de vigencia fuera del rango [%d, %d]: %d",
			resolucion.AniosVigenciaMin, resolucion.AniosVigenciaMax, anios)
	}

	// Fechas de vigencia: ambas obligatorias y parseables.
	for _, col := range []string{ColInicioVigencia, ColFinVigencia} {
		_, ok, err := resolucion.ParseFecha(f.Crudo(col), col)
		if err != nil {
			res.errorEn(f.Indice, col, "%s", sinPrefijoColumna(err, col))
		} else if !ok {
			res.errorEn(f.Indice, col, "la fecha es obligatoria")
		}
	}

	// Fecha de resolución: opcional; si viene y no parsea, se descarta con advertencia.
	if _, _, err := resolucion.ParseFecha(f.Crudo(ColFechaEmision), ColFechaEmision); err != nil {
		res.advertirEn(f.Indice, ColFechaEmision,
			"%s; el valor se descartará", sinPrefijoColumna(err, ColFechaEmision))
	}

	// Resolución asociada: para renovaciones su ausencia es sospechosa.
	if normalizarEtiqueta(tipo) == EtiquetaTipoRenovacion && f.Texto(ColNumeroAsociado) == "" {
		res.advertirEn(f.Indice, ColNumeroAsociado,
			"renovación sin resolución asociada: no se podrá enlazar con la resolución previa")
	}

	return res
}

func esSoloDigitos(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// sinPrefijoColumna quita el prefijo "columna X: " del error de parseo de
// fechas, porque el Hallazgo ya lleva la columna y quedaría duplicada.
func sinPrefijoColumna(err error, col string) string {
	return strings.TrimPrefix(err.Error(), "columna "+col+": ")
}
