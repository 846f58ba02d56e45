package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Pixoll/db-uni-project-api/pkg/logger"
)

const (
	// HeaderRequestID se respeta si viene del cliente; si no, se genera.
	HeaderRequestID = "X-Request-ID"
	localLogger     = "logger"
)

// RequestLogger registra método, ruta, status y latencia de cada petición, y deja en c.Locals
// un logger con el request id para los handlers.
func RequestLogger(log *logger.Logger) fiber.Handler {
	log = log.Named("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID := c.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(HeaderRequestID, reqID)
		reqLog := log.With("request_id", reqID)
		c.Locals(localLogger, reqLog)

		err := c.Next()
		if err != nil {
			// deja que el ErrorHandler de fiber escriba la respuesta antes de leer el status.
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		ev := reqLog.Info()
		if status >= fiber.StatusInternalServerError {
			ev = reqLog.Error()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
		return nil
	}
}

func requestLogger(c *fiber.Ctx) *logger.Logger {
	if l, ok := c.Locals(localLogger).(*logger.Logger); ok {
		return l
	}
	return logger.Nop()
}
