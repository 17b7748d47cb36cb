package http

import (
	"errors"
	"net/http"

	"storecourier/internal/core/application/usecases/commands"
	"storecourier/internal/core/domain/model/carrier"
	"storecourier/internal/core/domain/model/wizard"
	"storecourier/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	var submissionErr *carrier.SubmissionError
	switch {
	case errors.As(err, &submissionErr):
		return http.StatusBadGateway
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsConflicting),
		errors.Is(err, wizard.ErrTransitionRejected),
		errors.Is(err, commands.ErrSubmissionInProgress):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError uses the courier's message for submission failures and hides internal errors.
func writeError(ctx echo.Context, err error) error {
	code := statusFor(err)

	message := err.Error()
	var submissionErr *carrier.SubmissionError
	if errors.As(err, &submissionErr) {
		message = submissionErr.Message
	}
	if code == http.StatusInternalServerError {
		ctx.Logger().Error(err)
		message = http.StatusText(code)
	}

	return ctx.JSON(code, Error{Code: code, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
