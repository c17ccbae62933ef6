package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/drtcpuno/resoluciones-api/internal/application/dto"
	"github.com/drtcpuno/resoluciones-api/internal/application/usecase"
	"github.com/drtcpuno/resoluciones-api/internal/domain"
	"github.com/drtcpuno/resoluciones-api/internal/domain/entity"
	"github.com/drtcpuno/resoluciones-api/internal/domain/repository"
)

// ResolucionHandler maneja consultas y transiciones de estado de resoluciones.
type ResolucionHandler struct {
	uc         *usecase.ResolucionUseCase
	constancia *usecase.ConstanciaUseCase
}

// NewResolucionHandler construye el handler con los casos de uso.
func NewResolucionHandler(uc *usecase.ResolucionUseCase, constancia *usecase.ConstanciaUseCase) *ResolucionHandler {
	return &ResolucionHandler{uc: uc, constancia: constancia}
}

// GetPorNumero godoc
// @Summary      Obtener resolución por número canónico
// @Tags         resoluciones
// @Produce      json
// @Param        numero  path  string  true  "Número canónico (R-NNNN-AAAA)"
// @Success      200  {object}  dto.ResolucionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/resoluciones/{numero} [get]
func (h *ResolucionHandler) GetPorNumero(c *fiber.Ctx) error {
	out, err := h.uc.GetPorNumero(c.UserContext(), c.Params("numero"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Listar godoc
// @Summary      Listar resoluciones
// @Tags         resoluciones
// @Produce      json
// @Param        empresa_id  query  string  false  "Filtrar por empresa"
// @Param        estado      query  string  false  "Filtrar por estado interno"
// @Param        por_vencer  query  bool    false  "Solo resoluciones a 30 días o menos de vencer"
// @Success      200  {object}  dto.ResolucionListResponse
// @Router       /api/resoluciones [get]
func (h *ResolucionHandler) Listar(c *fiber.Ctx) error {
	var page dto.PageRequest
	page.Limit = c.QueryInt("limit", 20)
	page.Offset = c.QueryInt("offset", 0)
	page.DefaultPage()

	filtro := repository.FiltroResoluciones{
		EmpresaID: c.Query("empresa_id"),
		Estado:    entity.EstadoResolucion(c.Query("estado")),
		Limit:     page.Limit,
		Offset:    page.Offset,
	}
	out, err := h.uc.Listar(c.UserContext(), filtro)
	if err != nil {
		return responderError(c, err)
	}
	// POR_VENCER es derivado del reloj, no una columna: se filtra sobre la
	// respuesta ya anotada con la situación de vigencia.
	if c.QueryBool("por_vencer") {
		filtrados := out.Items[:0]
		for _, item := range out.Items {
			if item.PorVencer {
				filtrados = append(filtrados, item)
			}
		}
		out.Items = filtrados
		out.Total = len(filtrados)
	}
	return c.JSON(out)
}

// Auditoria godoc
// @Summary      Historial de cambios de una resolución
// @Tags         resoluciones
// @Produce      json
// @Param        numero  path  string  true  "Número canónico"
// @Success      200  {array}  dto.AuditoriaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/resoluciones/{numero}/auditoria [get]
func (h *ResolucionHandler) Auditoria(c *fiber.Ctx) error {
	out, err := h.uc.Auditoria(c.UserContext(), c.Params("numero"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Suspender godoc
// @Summary      Suspender una resolución vigente
// @Tags         resoluciones
// @Accept       json
// @Produce      json
// @Param        numero  path  string  true  "Número canónico"
// @Param        body    body  dto.CambioEstadoRequest  true  "Motivo de la suspensión"
// @Success      200  {object}  dto.ResolucionResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/resoluciones/{numero}/suspender [post]
func (h *ResolucionHandler) Suspender(c *fiber.Ctx) error {
	var in dto.CambioEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Suspender(c.UserContext(), c.Params("numero"), in.Motivo, GetUsername(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Reactivar godoc
// @Summary      Reactivar una resolución suspendida
// @Tags         resoluciones
// @Produce      json
// @Param        numero  path  string  true  "Número canónico"
// @Success      200  {object}  dto.ResolucionResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/resoluciones/{numero}/reactivar [post]
func (h *ResolucionHandler) Reactivar(c *fiber.Ctx) error {
	out, err := h.uc.Reactivar(c.UserContext(), c.Params("numero"), GetUsername(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Anular godoc
// @Summary      Anular una resolución (terminal)
// @Tags         resoluciones
// @Accept       json
// @Produce      json
// @Param        numero  path  string  true  "Número canónico"
// @Param        body    body  dto.CambioEstadoRequest  false  "Motivo de la anulación"
// @Success      200  {object}  dto.ResolucionResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/resoluciones/{numero}/anular [post]
func (h *ResolucionHandler) Anular(c *fiber.Ctx) error {
	var in dto.CambioEstadoRequest
	_ = c.BodyParser(&in)
	out, err := h.uc.Anular(c.UserContext(), c.Params("numero"), in.Motivo, GetUsername(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ReconciliarVencidas godoc
// @Summary      Pasar a VENCIDA las resoluciones vigentes ya expiradas
// @Tags         resoluciones
// @Produce      json
// @Success      200  {object}  dto.ReconciliacionResponse
// @Router       /api/resoluciones/reconciliar-vencidas [post]
func (h *ResolucionHandler) ReconciliarVencidas(c *fiber.Ctx) error {
	out, err := h.uc.ReconciliarVencidas(c.UserContext(), GetUsername(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Constancia godoc
// @Summary      Constancia PDF de una resolución
// @Tags         resoluciones
// @Produce      application/pdf
// @Param        numero  path  string  true  "Número canónico"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/resoluciones/{numero}/constancia [get]
func (h *ResolucionHandler) Constancia(c *fiber.Ctx) error {
	numero := c.Params("numero")
	contenido, err := h.constancia.Generar(c.UserContext(), numero)
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="constancia_`+numero+`.pdf"`)
	return c.Send(contenido)
}

// responderError traduce errores de dominio a códigos HTTP.
func responderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrResolucionNotFound), errors.Is(err, domain.ErrEmpresaNotFound), errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrTransicionInvalida), errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
