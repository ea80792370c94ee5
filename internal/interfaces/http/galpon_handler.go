package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/adso2925889/Avicola-api/internal/application/dto"
	"github.com/adso2925889/Avicola-api/internal/application/usecase"
)

// GalponHandler maneja las peticiones HTTP para galpones (protegido).
type GalponHandler struct {
	uc *usecase.GalponUseCase
}

// NewGalponHandler construye el handler.
func NewGalponHandler(uc *usecase.GalponUseCase) *GalponHandler {
	return &GalponHandler{uc: uc}
}

// Create godoc
// @Summary      Crear galpón
// @Tags         galpones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateGalponRequest  true  "Datos del galpón"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /galpones/crear [post]
func (h *GalponHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateGalponRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.NombreGalpon == "" || in.IDFinca == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre_galpon e id_finca son requeridos"})
	}
	if err := h.uc.Create(c.Context(), in); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "galpón creado"})
}

// List godoc
// @Summary      Listar galpones
// @Tags         galpones
// @Security     Bearer
// @Produce      json
// @Param        nombre  query  string  false  "Filtro por nombre"
// @Param        limit   query  int     false  "Límite"  default(10)
// @Param        skip    query  int     false  "Desplazamiento"  default(0)
// @Success      200     {object}  dto.GalponListResponse
// @Router       /galpones/ [get]
func (h *GalponHandler) List(c *fiber.Ctx) error {
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
// @Summary      Obtener galpón por ID
// @Tags         galpones
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del galpón"
// @Success      200  {object}  dto.GalponResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /galpones/by-id/{id} [get]
func (h *GalponHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	out, err := h.uc.GetByID(c.Context(), int64(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "galpón no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar galpón
// @Tags         galpones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del galpón"
// @Param        body  body  dto.UpdateGalponRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /galpones/by-id/{id} [put]
func (h *GalponHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var in dto.UpdateGalponRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	changed, err := h.uc.Update(c.Context(), int64(id), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	if !changed {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "galpón no encontrado o sin cambios"})
	}
	return c.JSON(dto.MessageResponse{Message: "galpón actualizado"})
}

// CambiarEstado godoc
// @Summary      Activar/desactivar galpón
// @Tags         galpones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del galpón"
// @Param        body  body  dto.CambiarEstadoRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /galpones/estado/{id} [patch]
func (h *GalponHandler) CambiarEstado(c *fiber.Ctx) error {
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
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "galpón no encontrado"})
	}
	return c.JSON(dto.MessageResponse{Message: "estado actualizado"})
}
