package handler

import (
	"errors"

	"seafood-exporter-api/pkg/errx"
	"seafood-exporter-api/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// respondError writes err as {"error": ...}. Validation errors also carry
// per-field details; internal errors are never echoed to the client.
func respondError(c *fiber.Ctx, err error) error {
	var appErr *errx.Error
	if errors.As(err, &appErr) {
		body := fiber.Map{"error": appErr.Message}
		if len(appErr.Details) > 0 {
			body["details"] = appErr.Details
		}
		if appErr.Status >= fiber.StatusInternalServerError {
			logx.Error().Err(err).Str("path", c.Path()).Msg("request failed")
		}
		return c.Status(appErr.Status).JSON(body)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
	}

	logx.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": errx.SystemErrorMessage})
}

// ErrorHandler is installed as fiber.Config.ErrorHandler.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return respondError(c, err)
}
