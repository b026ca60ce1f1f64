package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"todo-list/internal/errors"
)

// AccessLog emits one structured entry per request.
func AccessLog(logger *log.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// Write the error response now so the logged status is final
				c.Error(err)
			}

			res := c.Response()
			entry := logger.WithFields(log.Fields{
				"method":     c.Request().Method,
				"route":      c.Path(),
				"status":     res.Status,
				"latency_ms": time.Since(start).Milliseconds(),
				"request_id": res.Header().Get(echo.HeaderXRequestID),
				"bytes_out":  res.Size,
			})
			if res.Status >= http.StatusInternalServerError {
				entry.Warn("request failed")
			} else {
				entry.Info("request")
			}
			return nil
		}
	}
}

// errorFields builds the log fields for a failed request. Fields attached to
// an AppError are included but never replace the request fields.
func errorFields(err error, c echo.Context) log.Fields {
	fields := log.Fields{}
	if appErr, ok := errors.AsAppError(err); ok {
		for key, value := range appErr.Fields {
			fields[key] = value
		}
	}
	fields["error"] = err.Error()
	fields["code"] = errors.GetErrorCode(err)
	fields["route"] = c.Path()
	fields["request_id"] = c.Response().Header().Get(echo.HeaderXRequestID)
	return fields
}

type errorResponse struct {
	Error string `json:"error"`
}

// ErrorHandler renders every handler error as {"error": "..."} with the
// status derived from the error taxonomy.
func ErrorHandler(logger *log.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, message := http.StatusInternalServerError, errors.GetUserMessage(err)
		if he, ok := err.(*echo.HTTPError); ok {
			status = he.Code
			if msg, ok := he.Message.(string); ok {
				message = msg
			} else {
				message = http.StatusText(he.Code)
			}
		} else {
			status = errors.HTTPStatus(err)
			if errors.ShouldLogError(err) {
				logger.WithFields(errorFields(err, c)).Error("request error")
			}
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, errorResponse{Error: message})
		}
		if writeErr != nil {
			logger.WithError(writeErr).Error("write error response")
		}
	}
}
