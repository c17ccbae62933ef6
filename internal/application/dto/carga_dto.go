package dto

// ItemCarga es una resolución creada o actualizada por la carga masiva.
// Las claves JSON siguen el contrato acordado con el frontend del back-office.
type ItemCarga struct {
	NumeroCanonico string `json:"canonical"`
	Empresa        string `json:"company_display"`
	Tramite        string `json:"procedure"`
	Estado         string `json:"state"`
}

// EstadisticasCarga contadores del lote.
type EstadisticasCarga struct {
	Procesadas   int `json:"processed"`
	Creadas      int `json:"created"`
	Actualizadas int `json:"updated"`
	Errores      int `json:"errors"`
}

// ReporteCarga es la respuesta completa de la carga masiva. O bien el lote fue
// rechazado en la validación previa (Exito=false, solo errores y advertencias),
// o bien se procesó con detalle de lo creado, actualizado y fallado.
type ReporteCarga struct {
	Exito        bool              `json:"exito"`
	Mensaje      string            `json:"mensaje"`
	Creadas      []ItemCarga       `json:"created"`
	Actualizadas []ItemCarga       `json:"updated"`
	Errores      []string          `json:"errors"`
	Advertencias []string          `json:"warnings"`
	Estadisticas EstadisticasCarga `json:"stats"`
}
