package frames

import (
	"net/http"

	"github.com/eleven-am/metric-frames/internal/frame"
	"github.com/eleven-am/metric-frames/internal/shared"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ErrorHandler renders every failure as a frame envelope so the panel can
// show it. Responses that were already written are left alone.
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		reqErr := shared.Classify(err)
		fields := []zap.Field{
			zap.String("kind", string(reqErr.Kind)),
			zap.Int("status", reqErr.Status),
			zap.String("path", c.Request().URL.Path),
		}
		if reqErr.Status >= http.StatusInternalServerError {
			logger.Error(reqErr.Message, append(fields, zap.Error(reqErr.Unwrap()))...)
		} else {
			logger.Info(reqErr.Message, fields...)
		}

		header := c.Response().Header()
		header.Set(echo.HeaderContentType, jsonContentType)
		header.Set(echo.HeaderCacheControl, "no-store")

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(reqErr.Status)
		} else {
			err = c.JSON(reqErr.Status, frame.NewErrorResponse(reqErr.Message))
		}
		if err != nil {
			logger.Error("write error response", zap.Error(err))
		}
	}
}
