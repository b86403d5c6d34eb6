package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Inventario-restock/pkg/logger"
)

// RequestLogger registra método, ruta, status y duración de cada petición.
// En un 403 agrega los permisos del principal para diagnosticar el rechazo.
func RequestLogger(log *logger.Logger) fiber.Handler {
	log = log.Component("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		var ev *zerolog.Event
		switch {
		case err != nil || status >= fiber.StatusInternalServerError:
			ev = log.Error().Err(err)
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		default:
			ev = log.Info()
		}
		if p := GetPrincipal(c); p != nil {
			ev = ev.Str("user_id", p.UserID).Str("customer_id", p.CustomerID)
			if status == fiber.StatusForbidden {
				ev = ev.Strs("permissions", p.Permissions())
			}
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("elapsed", time.Since(start)).
			Msg("request")
		return err
	}
}
