package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// HeaderRequestID header con el identificador de la petición.
const HeaderRequestID = "X-Request-ID"

// LocalRequestID key en c.Locals.
const LocalRequestID = "request_id"

// RequestLogger asigna un request_id (respeta el recibido en X-Request-ID) y registra
// una línea por petición al terminar.
func RequestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalRequestID, id)
		c.Set(HeaderRequestID, id)

		chainErr := c.Next()
		if chainErr != nil {
			// El ErrorHandler escribe la respuesta; se invoca aquí para registrar el status final.
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		} else if status >= fiber.StatusBadRequest {
			ev = log.Warn()
		}
		ev.Str("request_id", id).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("petición HTTP")
		return nil
	}
}

// GetRequestID devuelve el request_id del contexto (después de RequestLogger).
func GetRequestID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRequestID).(string)
	return s
}
