package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/adso2925889/Avicola-api/internal/application/dto"
	"github.com/adso2925889/Avicola-api/internal/application/usecase"
	"github.com/adso2925889/Avicola-api/internal/domain"
)

// IngresoHandler maneja las peticiones HTTP para ingresos de gallinas (protegido).
type IngresoHandler struct {
	uc *usecase.IngresoUseCase
}

// NewIngresoHandler construye el handler.
func NewIngresoHandler(uc *usecase.IngresoUseCase) *IngresoHandler {
	return &IngresoHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar ingreso de gallinas
// @Tags         ingresos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateIngresoRequest  true  "Datos del ingreso"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /ingresos/crear [post]
func (h *IngresoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateIngresoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.IDGalpon == 0 || in.IDTipoGallina == 0 || in.Fecha == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id_galpon, id_tipo_gallina y fecha son requeridos"})
	}
	if in.CantidadGallinas < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cantidad_gallinas no puede ser negativa"})
	}
	if err := h.uc.Create(c.Context(), in); err != nil {
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha debe cumplir el formato YYYY-MM-DD"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "ingreso registrado"})
}

// List godoc
// @Summary      Listar ingresos
// @Tags         ingresos
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(10)
// @Param        skip   query  int  false  "Desplazamiento"  default(0)
// @Success      200    {object}  dto.IngresoListResponse
// @Router       /ingresos/ [get]
func (h *IngresoHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", dto.DefaultLimit)
	skip := c.QueryInt("skip", 0)
	out, err := h.uc.List(c.Context(), limit, skip)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener ingreso por ID
// @Tags         ingresos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del ingreso"
// @Success      200  {object}  dto.IngresoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /ingresos/by-id/{id} [get]
func (h *IngresoHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	out, err := h.uc.GetByID(c.Context(), int64(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ingreso no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar ingreso
// @Tags         ingresos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del ingreso"
// @Param        body  body  dto.UpdateIngresoRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /ingresos/by-id/{id} [put]
func (h *IngresoHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var in dto.UpdateIngresoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	changed, err := h.uc.Update(c.Context(), int64(id), in)
	if err != nil {
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha debe cumplir el formato YYYY-MM-DD"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	if !changed {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "SIN_CAMBIOS", Message: "no hay cambios que aplicar"})
	}
	return c.JSON(dto.MessageResponse{Message: "ingreso actualizado"})
}
