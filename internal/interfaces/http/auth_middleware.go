package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/adso2925889/Avicola-api/internal/application/dto"
	"github.com/adso2925889/Avicola-api/pkg/jwt"
)

// Locals keys para IDUsuario e IDRol en Fiber.
const (
	LocalIDUsuario = "id_usuario"
	LocalIDRol     = "id_rol"
)

// AuthMiddleware valida el Bearer Token JWT y extrae IDUsuario e IDRol a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		idUsuario, idRol, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalIDUsuario, idUsuario)
		c.Locals(LocalIDRol, idRol)
		return c.Next()
	}
}

// GetIDUsuario devuelve el id del usuario del contexto (después del middleware de auth).
func GetIDUsuario(c *fiber.Ctx) int64 {
	v := c.Locals(LocalIDUsuario)
	if v == nil {
		return 0
	}
	id, _ := v.(int64)
	return id
}

// GetIDRol devuelve el id del rol del contexto (después del middleware de auth).
func GetIDRol(c *fiber.Ctx) int {
	v := c.Locals(LocalIDRol)
	if v == nil {
		return 0
	}
	id, _ := v.(int)
	return id
}
