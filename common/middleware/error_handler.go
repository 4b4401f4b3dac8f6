package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	oteltrace "go.opentelemetry.io/otel/trace"

	apierrors "github.com/git-pranav2004/getdeal/common/apierrors"
	apiresponses "github.com/git-pranav2004/getdeal/common/apiresponses"
	commontrace "github.com/git-pranav2004/getdeal/common/telemetry/trace"
)

// RecoverMiddleware turns panics into SYSTEM_PANIC errors for the error handler.
func RecoverMiddleware(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				panicErr, ok := r.(error)
				if !ok {
					panicErr = fmt.Errorf("panic: %v", r)
				}

				logger.ErrorContext(c.UserContext(), "CRITICAL: Unhandled panic recovered",
					slog.String("error", panicErr.Error()),
					slog.String("stack", string(debug.Stack())),
					slog.String("path", c.Path()),
					slog.String("method", c.Method()),
				)

				err = apierrors.NewApplicationError(apierrors.ErrCodeSystemPanic,
					"A critical system error occurred.", panicErr)
			}
		}()
		return c.Next()
	}
}

// StatusFor maps an AppError to its HTTP status code.
func StatusFor(appErr *apierrors.AppError) int {
	if appErr.Category == apierrors.CategoryBusiness {
		return http.StatusBadRequest
	}

	switch appErr.Code {
	case apierrors.ErrCodeSourceUnavailable,
		apierrors.ErrCodeMalformedData,
		apierrors.ErrCodePublishFailed:
		return http.StatusBadGateway
	case apierrors.ErrCodeRequestTimeout:
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler creates the Fiber error handler writing the standard error envelope.
func ErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		ctx := c.UserContext()
		statusCode := http.StatusInternalServerError
		errCode := apierrors.ErrCodeUnknown
		message := "An unexpected error occurred. Please try again later."

		var fiberErr *fiber.Error
		if appErr, ok := apierrors.As(err); ok {
			errCode = appErr.Code
			message = appErr.Message
			statusCode = StatusFor(appErr)

			if appErr.Category == apierrors.CategoryBusiness && statusCode < 500 {
				logger.WarnContext(ctx, "Business rule violation",
					slog.String("error_code", appErr.Code),
					slog.String("message", appErr.Message),
					slog.String("path", c.Path()),
				)
			} else {
				logger.ErrorContext(ctx, "Error occurred",
					slog.String("error_code", appErr.Code),
					slog.String("category", string(appErr.Category)),
					slog.String("message", appErr.Message),
					slog.Any("cause", appErr.Unwrap()),
					slog.String("path", c.Path()),
				)
			}
		} else if errors.As(err, &fiberErr) {
			statusCode = fiberErr.Code
			message = fiberErr.Message
			if statusCode == http.StatusNotFound {
				errCode = "NOT_FOUND"
			}
			logger.WarnContext(ctx, "HTTP error", slog.Int("status_code", statusCode), slog.String("path", c.Path()))
		} else {
			switch {
			case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
				errCode = apierrors.ErrCodeRequestTimeout
				statusCode = http.StatusRequestTimeout
				message = "Request processing timed out"
			}
			logger.ErrorContext(ctx, "Unhandled error",
				slog.String("error_type", fmt.Sprintf("%T", err)),
				slog.String("error", err.Error()),
				slog.String("error_code", errCode),
				slog.String("path", c.Path()),
			)
		}

		if statusCode >= 500 {
			commontrace.RecordSpanError(oteltrace.SpanFromContext(ctx), err)
		}

		return c.Status(statusCode).JSON(apiresponses.ErrorResponse{
			Status: "error",
			Error: apiresponses.ErrorDetail{
				Code:      errCode,
				Message:   message,
				RequestID: RequestIDFromContext(ctx),
				Timestamp: time.Now().UTC().Format(time.RFC3339),
			},
		})
	}
}
