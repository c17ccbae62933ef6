package resolucion

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Forma canónica del número de resolución: R-NNNN-AAAA.
var (
	PatronCanonico = regexp.MustCompile(`^R-\d{4}-\d{4}$`)

	reConPrefijo = regexp.MustCompile(`^R-(\d{1,4})-(\d{4})$`)
	reSinPrefijo = regexp.MustCompile(`^(\d{1,4})-(\d{4})$`)
	reDigitos    = regexp.MustCompile(`\d+`)
)

// CanonizarNumero normaliza un número de resolución de forma libre a la forma
// canónica R-NNNN-AAAA. Reglas, en orden de prioridad:
//
//  1. "R-290-2023"  -> "R-0290-2023"  (ya canónico, solo se rellena el número)
//  2. "0290-2023"   -> "R-0290-2023"  (se antepone el prefijo)
//  3. "290"         -> "R-0290-<anioEmision>"  (solo dígitos: se usa el año de emisión)
//  4. sin dígitos   -> "R-0001-<anioEmision>"
//
// El año embebido en el número escrito siempre prevalece sobre anioEmision.
// Esto preserva la eficacia anticipada: una resolución numerada 0290-2024 con
// vigencia desde 2023 canoniza a R-0290-2024, nunca a R-0290-2023.
// La operación es idempotente.
func CanonizarNumero(raw string, anioEmision int) string {
	texto := strings.ToUpper(strings.TrimSpace(raw))

	if m := reConPrefijo.FindStringSubmatch(texto); m != nil {
		return formatoCanonico(m[1], m[2])
	}
	if m := reSinPrefijo.FindStringSubmatch(texto); m != nil {
		return formatoCanonico(m[1], m[2])
	}

	digitos := strings.Join(reDigitos.FindAllString(texto, -1), "")
	if digitos == "" {
		return fmt.Sprintf("R-0001-%04d", anioEmision)
	}
	// Las secuencias reales tienen hasta 4 dígitos; ante más, se conservan los
	// 4 de menor orden.
	if len(digitos) > 4 {
		digitos = digitos[len(digitos)-4:]
	}
	return formatoCanonico(digitos, fmt.Sprintf("%04d", anioEmision))
}

// AnioEmbebido extrae el año escrito dentro de un número de resolución
// ("0551-2021", "R-551-2021"). Devuelve ok=false si el número no trae año:
// en la cascada de renovación eso obliga a omitir el enlace con advertencia,
// porque adivinar el año enlazaría la resolución equivocada.
func AnioEmbebido(raw string) (int, bool) {
	texto := strings.ToUpper(strings.TrimSpace(raw))
	var m []string
	if m = reConPrefijo.FindStringSubmatch(texto); m == nil {
		m = reSinPrefijo.FindStringSubmatch(texto)
	}
	if m == nil {
		return 0, false
	}
	anio, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, false
	}
	return anio, true
}

func formatoCanonico(numero, anio string) string {
	n, _ := strconv.Atoi(numero)
	return fmt.Sprintf("R-%04d-%s", n, anio)
}
