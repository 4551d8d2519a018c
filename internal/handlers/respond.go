package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"resumeslide/internal/apperrors"
	"resumeslide/internal/models"
)

// respondError maps the pipeline error taxonomy to HTTP status codes and a
// structured {error} body.
func respondError(c *fiber.Ctx, err error) error {
	return c.Status(statusForError(err)).JSON(models.ErrorResponse{Error: err.Error()})
}

func statusForError(err error) int {
	var inputErr *apperrors.InputError
	if errors.As(err, &inputErr) {
		return fiber.StatusBadRequest
	}

	var extractionErr *apperrors.ExtractionError
	if errors.As(err, &extractionErr) {
		return fiber.StatusUnprocessableEntity
	}

	var analysisErr *apperrors.AnalysisError
	if errors.As(err, &analysisErr) {
		return fiber.StatusBadGateway
	}

	return fiber.StatusInternalServerError
}
