package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/custodia-labs/docproof/internal/core/domain"
)

// errorPayload is the JSON body for every API error.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: requestIDFromCtx(c),
		Error:     errorEnvelope{Code: code, Message: message},
	})
}

// ErrorHandler turns unhandled errors into the JSON envelope without
// leaking internal details.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}

// runStatus maps a finished run to an HTTP status and error code.
func runStatus(run *domain.Run) (int, string) {
	if run.State == domain.RunDone {
		return fiber.StatusOK, ""
	}
	switch {
	case errors.Is(run.Err, domain.ErrInvalidLink):
		return fiber.StatusUnprocessableEntity, "INVALID_LINK"
	case errors.Is(run.Err, domain.ErrFetchFailed):
		return fiber.StatusBadGateway, "FETCH_FAILED"
	case errors.Is(run.Err, domain.ErrProofreadFailed):
		return fiber.StatusBadGateway, "PROOFREAD_FAILED"
	default:
		return fiber.StatusInternalServerError, "INTERNAL_ERROR"
	}
}
