package ingest

import "time"

// Reloj abstrae "hoy" para que el año de procesamiento por defecto y las
// derivaciones de vigencia sean deterministas en tests.
type Reloj interface {
	Hoy() time.Time
}

// RelojSistema usa la fecha civil actual en UTC.
type RelojSistema struct{}

func (RelojSistema) Hoy() time.Time {
	n := time.Now().UTC()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}

// RelojFijo devuelve siempre la misma fecha. Para tests y reprocesos.
type RelojFijo struct {
	Fecha time.Time
}

func (r RelojFijo) Hoy() time.Time { return r.Fecha }
