package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/adso2925889/Avicola-api/internal/application/dto"
)

// permisoChecker es el contrato mínimo que necesita el middleware para
// verificar permisos. Lo implementa *usecase.PermisoService; el uso de
// interfaz evita el import circular.
type permisoChecker interface {
	Puede(ctx context.Context, idRol, idModulo int, accion string) (bool, error)
}

// RequirePermiso devuelve un middleware Fiber que verifica si el rol del
// token JWT tiene la acción sobre el módulo. Debe usarse DESPUÉS de
// AuthMiddleware (necesita LocalIDRol).
//
// Comportamiento:
//   - 401 Unauthorized → permiso ausente; la respuesta no distingue si falló
//     el rol, el módulo o la acción.
//   - 500 Internal Server Error → fallo del almacén al consultar el permiso;
//     nunca se traduce a permitir ni a denegar.
func RequirePermiso(idModulo int, accion string, checker permisoChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		idRol := GetIDRol(c)
		if idRol == 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "id_rol no encontrado en el token",
			})
		}

		puede, err := checker.Puede(c.Context(), idRol, idModulo, accion)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Code:    "PERMISO_CHECK_FAILED",
				Message: "no se pudo verificar el permiso, intente más tarde",
			})
		}

		if !puede {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "SIN_PERMISO",
				Message: "no tiene permiso para esta operación",
			})
		}

		return c.Next()
	}
}
