package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"starwars/internal/pkg/logger"
	"starwars/internal/pkg/response"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger binds a request-scoped logger to the request context and
// logs one line per request once the handler chain has run.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		ctx, rlog := logger.ContextWithRequestID(c.Request.Context(), requestID(c))
		c.Request = c.Request.WithContext(ctx)
		c.Header(RequestIDHeader, logger.RequestID(ctx))

		c.Next()

		entry := rlog.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start),
		})
		if c.Writer.Status() >= http.StatusInternalServerError {
			entry.Warn("request")
			return
		}
		entry.Info("request")
	}
}

// ErrorLogger logs detailed error information and recovers from panics.
func ErrorLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("%v", recovered)
				logRequestError(c, start, "panic", err, debug.Stack())

				response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Internal server error")
				c.Abort()
				return
			}

			for _, err := range c.Errors {
				logRequestError(c, start, errorTypeName(err.Type), err.Err, nil)
			}
		}()

		c.Next()
	}
}

func logRequestError(c *gin.Context, start time.Time, errType string, err error, stack []byte) {
	entry := logger.FromContext(c.Request.Context()).WithFields(logrus.Fields{
		"type":      errType,
		"status":    c.Writer.Status(),
		"method":    c.Request.Method,
		"path":      c.Request.URL.Path,
		"query":     c.Request.URL.RawQuery,
		"client_ip": c.ClientIP(),
		"latency":   time.Since(start),
	}).WithError(err)
	if stack != nil {
		entry = entry.WithField("stack", string(stack))
	}
	entry.Error("request_error")
}

func requestID(c *gin.Context) string {
	return c.GetHeader(RequestIDHeader)
}

func errorTypeName(t gin.ErrorType) string {
	switch t {
	case gin.ErrorTypeBind:
		return "bind"
	case gin.ErrorTypeRender:
		return "render"
	case gin.ErrorTypePrivate:
		return "private"
	case gin.ErrorTypePublic:
		return "public"
	default:
		return "any"
	}
}
