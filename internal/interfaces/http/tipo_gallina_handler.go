package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/adso2925889/Avicola-api/internal/application/dto"
	"github.com/adso2925889/Avicola-api/internal/application/usecase"
)

// TipoGallinaHandler maneja las peticiones HTTP para tipos de gallina (protegido).
type TipoGallinaHandler struct {
	uc *usecase.TipoGallinaUseCase
}

// NewTipoGallinaHandler construye el handler.
func NewTipoGallinaHandler(uc *usecase.TipoGallinaUseCase) *TipoGallinaHandler {
	return &TipoGallinaHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tipo de gallina
// @Tags         tipo-gallinas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTipoGallinaRequest  true  "Datos del tipo"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /tipo-gallinas/crear [post]
func (h *TipoGallinaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTipoGallinaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.NombreTipoGallina == "" || in.Raza == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre_tipo_gallina y raza son requeridos"})
	}
	if err := h.uc.Create(c.Context(), in); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "tipo de gallina creado"})
}

// List godoc
// @Summary      Listar tipos de gallina
// @Tags         tipo-gallinas
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(10)
// @Param        skip   query  int  false  "Desplazamiento"  default(0)
// @Success      200    {object}  dto.TipoGallinaListResponse
// @Router       /tipo-gallinas/ [get]
func (h *TipoGallinaHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", dto.DefaultLimit)
	skip := c.QueryInt("skip", 0)
	out, err := h.uc.List(c.Context(), limit, skip)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener tipo de gallina por ID
// @Tags         tipo-gallinas
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del tipo"
// @Success      200  {object}  dto.TipoGallinaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /tipo-gallinas/by-id/{id} [get]
func (h *TipoGallinaHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	out, err := h.uc.GetByID(c.Context(), int64(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tipo de gallina no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar tipo de gallina
// @Tags         tipo-gallinas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del tipo"
// @Param        body  body  dto.UpdateTipoGallinaRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /tipo-gallinas/by-id/{id} [put]
func (h *TipoGallinaHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var in dto.UpdateTipoGallinaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	changed, err := h.uc.Update(c.Context(), int64(id), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	if !changed {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tipo de gallina no encontrado o sin cambios"})
	}
	return c.JSON(dto.MessageResponse{Message: "tipo de gallina actualizado"})
}
