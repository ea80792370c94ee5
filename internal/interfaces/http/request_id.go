package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderRequestID cabecera donde viaja el identificador de la petición.
const HeaderRequestID = "X-Request-ID"

// RequestID asigna un identificador único a cada petición. Si el cliente ya
// envía uno se respeta; en ambos casos queda en locals y en la respuesta.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(HeaderRequestID, id)
		c.Set(HeaderRequestID, id)
		return c.Next()
	}
}
