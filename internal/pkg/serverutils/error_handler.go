// FILE: internal/pkg/serverutils/error_handler.go
package serverutils

import (
	"errors"
	"fmt"

	"company-profile-be/internal/pkg/apperr"
	"company-profile-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts any error returned down the chain into the
// failure envelope. Store faults are logged and reported generically unless
// verbose is set.
func ErrorHandlerMiddleware(log logger.ILogger, verbose bool) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		return WriteError(ctx, err, log, verbose)
	}
}

func WriteError(ctx *fiber.Ctx, err error, log logger.ILogger, verbose bool) error {
	var appErr *apperr.AppError
	if !errors.As(err, &appErr) {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}
		appErr = apperr.Store(err)
	}

	status := appErr.HTTPStatus()
	message := appErr.Message

	if appErr.Kind == apperr.KindStore {
		log.Error("HTTP", "Request failed with store fault", map[string]interface{}{
			"method": ctx.Method(),
			"path":   ctx.Path(),
			"error":  err.Error(),
		})
		if verbose && appErr.Err != nil {
			message = fmt.Sprintf("%s: %v", message, appErr.Err)
		}
	}

	body := ErrorResponse(status, message)
	body.Errors = appErr.Fields
	return ctx.Status(status).JSON(body)
}
