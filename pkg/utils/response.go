package utils

import (
	"net/http"

	"handover-system/pkg/apperrors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type HTTPResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HTTPResponse{
		Status:  true,
		Body:    body,
		Message: message,
	})
}

type ListBody struct {
	List  interface{} `json:"list"`
	Total int         `json:"total"`
}

func SuccessList(ctx echo.Context, list interface{}, total int, message string) error {
	return ctx.JSON(http.StatusOK, &HTTPResponse{
		Status:  true,
		Body:    ListBody{List: list, Total: total},
		Message: message,
	})
}

// ErrorResponse maps domain errors onto HTTP status codes and renders the
// standard envelope. The store is never left inconsistent by a failed
// request, so every error here is safe to show and retry.
func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	code := http.StatusInternalServerError
	msg := err.Error()

	switch e := err.(type) {
	case *apperrors.HttpError:
		code = e.Code
		msg = e.Message
	case validator.ValidationErrors:
		code = http.StatusBadRequest
	default:
		code = apperrors.CodeFor(err)
	}

	if code >= http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("method", ctx.Request().Method),
			zap.String("uri", ctx.Request().RequestURI),
			zap.Error(err),
		)
	}

	return ctx.JSON(code, &HTTPResponse{
		Status:  false,
		Message: msg,
	})
}
