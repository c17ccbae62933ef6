package ingest

import (
	"time"

	"github.com/drtcpuno/resoluciones-api/internal/domain/resolucion"
)

// VerificarCoherencia aplica los invariantes temporales entre campos de una
// fila que ya pasó la validación estructural.
//
//  1. inicio < fin, si no: error.
//  2. el fin declarado debe coincidir con inicio + años − 1 día, con tolerancia
//     de ±1 día por redondeo bisiesto; si no: advertencia. El motor honra el
//     fin declarado, por eso no es error.
//
// Deliberadamente NO se comprueba que la fecha de emisión sea anterior al
// inicio de vigencia: bajo eficacia anticipada una resolución emitida en el año
// A puede otorgar vigencia retroactiva desde A-k, y ese chequeo la rechazaría.
func VerificarCoherencia(indice int, inicio, fin time.Time, anios int) ResultadoValidacion {
	var res ResultadoValidacion

	if !inicio.Before(fin) {
		res.errorEn(indice, ColInicioVigencia,
			"el inicio de vigencia (%s) debe ser anterior al fin (%s)",
			inicio.Format("02/01/2006"), fin.Format("02/01/2006"))
		return res
	}

	esperado, err := resolucion.FinDeVigencia(inicio, anios)
	if err != nil {
		// El rango de años ya lo valida ValidarFila; aquí no debería ocurrir.
		return res
	}
	if diferenciaDias(fin, esperado) > 1 {
		res.advertirEn(indice, ColFinVigencia,
			"el fin de vigencia no coincide con la duración declarada de %d años; se esperaba %s y se obtuvo %s",
			anios, esperado.Format("02/01/2006"), fin.Format("02/01/2006"))
	}
	return res
}

func diferenciaDias(a, b time.Time) int {
	d := int(a.Sub(b).Hours() / 24)
	if d < 0 {
		return -d
	}
	return d
}
