package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/adso2925889/Avicola-api/internal/application/dto"
	"github.com/adso2925889/Avicola-api/internal/application/usecase"
)

// FincaHandler maneja las peticiones HTTP para fincas (protegido).
type FincaHandler struct {
	uc *usecase.FincaUseCase
}

// NewFincaHandler construye el handler.
func NewFincaHandler(uc *usecase.FincaUseCase) *FincaHandler {
	return &FincaHandler{uc: uc}
}

// Create godoc
// @Summary      Crear finca
// @Tags         fincas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFincaRequest  true  "Datos de la finca"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /fincas/crear [post]
func (h *FincaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFincaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.NombreFinca == "" || in.IDUsuario == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre_finca e id_usuario son requeridos"})
	}
	if err := h.uc.Create(c.Context(), in); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "finca creada"})
}

// List godoc
// @Summary      Listar fincas
// @Tags         fincas
// @Security     Bearer
// @Produce      json
// @Param        nombre  query  string  false  "Filtro por nombre (sin distinguir tildes)"
// @Param        limit   query  int     false  "Límite"  default(10)
// @Param        skip    query  int     false  "Desplazamiento"  default(0)
// @Success      200     {object}  dto.FincaListResponse
// @Router       /fincas/ [get]
func (h *FincaHandler) List(c *fiber.Ctx) error {
	nombre := c.Query("nombre")
	limit := c.QueryInt("limit", dto.DefaultLimit)
	skip := c.QueryInt("skip", 0)
	out, err := h.uc.List(c.Context(), nombre, limit, skip)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener finca por ID
// @Tags         fincas
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la finca"
// @Success      200  {object}  dto.FincaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /fincas/by-id/{id} [get]
func (h *FincaHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	out, err := h.uc.GetByID(c.Context(), int64(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "finca no encontrada"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar finca
// @Tags         fincas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la finca"
// @Param        body  body  dto.UpdateFincaRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /fincas/by-id/{id} [put]
func (h *FincaHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var in dto.UpdateFincaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	changed, err := h.uc.Update(c.Context(), int64(id), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	if !changed {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "finca no encontrada o sin cambios"})
	}
	return c.JSON(dto.MessageResponse{Message: "finca actualizada"})
}

// CambiarEstado godoc
// @Summary      Activar/desactivar finca
// @Tags         fincas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la finca"
// @Param        body  body  dto.CambiarEstadoRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /fincas/estado/{id} [patch]
func (h *FincaHandler) CambiarEstado(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var in dto.CambiarEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	changed, err := h.uc.CambiarEstado(c.Context(), int64(id), in.Estado)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	if !changed {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "finca no encontrada"})
	}
	return c.JSON(dto.MessageResponse{Message: "estado actualizado"})
}
