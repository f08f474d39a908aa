package handlers

import (
	"errors"

	"inventory/internal/middleware"
	"inventory/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/rs/zerolog"
)

// MsgProductNotFound is the detail returned for unknown product ids.
const MsgProductNotFound = "Producto no encontrado"

// ErrorHandler renders errors that handlers return instead of writing a response.
// Fiber errors keep their status; anything else is a 500 and gets logged.
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(fiber.Map{"detail": fe.Message})
		}

		log.Error().
			Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Interface("request_id", c.Locals(middleware.RequestIDKey)).
			Msg("unhandled request error")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"detail": utils.StatusMessage(fiber.StatusInternalServerError),
		})
	}
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": MsgProductNotFound})
}

func validationFailed(c *fiber.Ctx, fields validation.FieldErrors) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"detail": "Validation failed",
		"errors": fields,
	})
}

func invalidBody(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"detail": "Invalid request body",
		"error":  err.Error(),
	})
}
