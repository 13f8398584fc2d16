package handler

import (
	"errors"

	"github.com/gatherly/gatherly-backend/internal/apperr"
	"github.com/gatherly/gatherly-backend/internal/models"
	"github.com/gofiber/fiber/v2"
)

func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindAuthentication:
		return fiber.StatusUnauthorized
	case apperr.KindForbidden:
		return fiber.StatusForbidden
	case apperr.KindNotFound:
		return fiber.StatusNotFound
	case apperr.KindConflict:
		return fiber.StatusConflict
	case apperr.KindValidation:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// renderError translates a service error into the response envelope. Field
// maps ride along for validation failures; anything unclassified becomes a
// bare 500 without leaking internals.
func renderError(c *fiber.Ctx, err error) error {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		status := statusFor(appErr.Kind)
		if len(appErr.Fields) > 0 {
			return c.Status(status).JSON(models.FieldErrorResponse(appErr.Message, appErr.Fields))
		}
		return c.Status(status).JSON(models.ErrorResponse(appErr.Message))
	}
	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("internal server error"))
}
