package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/adso2925889/Avicola-api/internal/application/dto"
	"github.com/adso2925889/Avicola-api/internal/application/reportes"
	"github.com/adso2925889/Avicola-api/internal/application/usecase"
	"github.com/adso2925889/Avicola-api/internal/domain"
)

// SalvamentoHandler maneja las peticiones HTTP para salvamentos (protegido).
type SalvamentoHandler struct {
	uc      *usecase.SalvamentoUseCase
	reporte *reportes.SalvamentosUseCase
}

// NewSalvamentoHandler construye el handler.
func NewSalvamentoHandler(uc *usecase.SalvamentoUseCase, reporte *reportes.SalvamentosUseCase) *SalvamentoHandler {
	return &SalvamentoHandler{uc: uc, reporte: reporte}
}

// Create godoc
// @Summary      Registrar salvamento
// @Tags         rescue
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSalvamentoRequest  true  "Datos del salvamento"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /rescue/crear [post]
func (h *SalvamentoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSalvamentoRequest
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
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "salvamento registrado"})
}

// List godoc
// @Summary      Listar salvamentos
// @Tags         rescue
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(10)
// @Param        skip   query  int  false  "Desplazamiento"  default(0)
// @Success      200    {object}  dto.SalvamentoListResponse
// @Router       /rescue/ [get]
func (h *SalvamentoHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", dto.DefaultLimit)
	skip := c.QueryInt("skip", 0)
	out, err := h.uc.List(c.Context(), limit, skip)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener salvamento por ID
// @Tags         rescue
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del salvamento"
// @Success      200  {object}  dto.SalvamentoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /rescue/by-id/{id} [get]
func (h *SalvamentoHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	out, err := h.uc.GetByID(c.Context(), int64(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "salvamento no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar salvamento
// @Tags         rescue
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del salvamento"
// @Param        body  body  dto.UpdateSalvamentoRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /rescue/by-id/{id} [put]
func (h *SalvamentoHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var in dto.UpdateSalvamentoRequest
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
	return c.JSON(dto.MessageResponse{Message: "salvamento actualizado"})
}

// Reporte godoc
// @Summary      Reporte PDF de salvamentos por rango de fechas
// @Tags         rescue
// @Security     Bearer
// @Produce      application/pdf
// @Param        desde  query  string  true  "Fecha inicial YYYY-MM-DD"
// @Param        hasta  query  string  true  "Fecha final YYYY-MM-DD"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /rescue/reporte [get]
func (h *SalvamentoHandler) Reporte(c *fiber.Ctx) error {
	desde := c.Query("desde")
	hasta := c.Query("hasta")
	if desde == "" || hasta == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "desde y hasta son requeridos"})
	}
	pdfBytes, filename, err := h.reporte.Generar(c.Context(), desde, hasta)
	if err != nil {
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rango de fechas inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
