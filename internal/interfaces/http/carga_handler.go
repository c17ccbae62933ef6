package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/drtcpuno/resoluciones-api/internal/application/dto"
	"github.com/drtcpuno/resoluciones-api/internal/application/ingest"
	"github.com/drtcpuno/resoluciones-api/internal/infrastructure/excel"
)

// CargaHandler maneja la carga masiva de resoluciones y la plantilla.
type CargaHandler struct {
	orquestador *ingest.Orquestador
	maxFilas    int
}

// NewCargaHandler construye el handler inyectando el orquestador del lote.
func NewCargaHandler(orquestador *ingest.Orquestador, maxFilas int) *CargaHandler {
	return &CargaHandler{orquestador: orquestador, maxFilas: maxFilas}
}

// CargaMasiva godoc
// @Summary      Carga masiva de resoluciones desde XLSX
// @Tags         resoluciones
// @Accept       multipart/form-data
// @Produce      json
// @Param        archivo  formData  file  true  "Archivo XLSX con la cabecera de referencia"
// @Success      200  {object}  dto.ReporteCarga
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/resoluciones/carga-masiva [post]
func (h *CargaHandler) CargaMasiva(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("archivo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "MISSING_FILE", Message: "se requiere el archivo XLSX en el campo 'archivo'"})
	}
	archivo, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "UNREADABLE_FILE", Message: fmt.Sprintf("no se pudo abrir el archivo: %v", err)})
	}
	defer archivo.Close()

	filas, err := excel.LeerLote(archivo, h.maxFilas)
	if err != nil {
		// Error estructural: archivo ilegible o columnas ausentes.
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_FILE", Message: err.Error()})
	}

	reporte, err := h.orquestador.ProcesarLote(c.UserContext(), filas, GetUsername(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(reporte)
}

// Plantilla godoc
// @Summary      Descargar plantilla XLSX de carga masiva
// @Tags         resoluciones
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/resoluciones/plantilla [get]
func (h *CargaHandler) Plantilla(c *fiber.Ctx) error {
	contenido, err := excel.GenerarPlantilla()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="plantilla_resoluciones.xlsx"`)
	return c.Send(contenido)
}
