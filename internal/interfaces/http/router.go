package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/drtcpuno/resoluciones-api/internal/application/ingest"
	"github.com/drtcpuno/resoluciones-api/internal/application/usecase"
)

// Roles reconocidos por el módulo. Los emite el back-office central en el JWT.
const (
	RolAdmin       = "admin"
	RolRegistrador = "registrador"
	RolConsulta    = "consulta"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ResolucionUC *usecase.ResolucionUseCase
	ConstanciaUC *usecase.ConstanciaUseCase
	Orquestador  *ingest.Orquestador
	MaxFilas     int
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	resoluciones := protected.Group("/resoluciones")
	resolucionHandler := NewResolucionHandler(deps.ResolucionUC, deps.ConstanciaUC)
	cargaHandler := NewCargaHandler(deps.Orquestador, deps.MaxFilas)

	// Rutas fijas primero: Fiber resuelve en orden de registro y ":numero"
	// capturaría "plantilla" o "reconciliar-vencidas".
	resoluciones.Get("/", resolucionHandler.Listar)
	resoluciones.Get("/plantilla", cargaHandler.Plantilla)
	resoluciones.Post("/carga-masiva",
		RequireRole(RolAdmin, RolRegistrador), cargaHandler.CargaMasiva)
	resoluciones.Post("/reconciliar-vencidas",
		RequireRole(RolAdmin), resolucionHandler.ReconciliarVencidas)

	resoluciones.Get("/:numero", resolucionHandler.GetPorNumero)
	resoluciones.Get("/:numero/auditoria", resolucionHandler.Auditoria)
	resoluciones.Get("/:numero/constancia", resolucionHandler.Constancia)
	resoluciones.Post("/:numero/suspender",
		RequireRole(RolAdmin), resolucionHandler.Suspender)
	resoluciones.Post("/:numero/reactivar",
		RequireRole(RolAdmin), resolucionHandler.Reactivar)
	resoluciones.Post("/:numero/anular",
		RequireRole(RolAdmin), resolucionHandler.Anular)
}
