// Package logger carries a request-scoped logrus entry through the context.
package logger

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type contextKeyType struct{}

var contextKey = contextKeyType{}

const requestIDKey = "request_id"

// Init sets up the text formatter and the level for all log statements.
func Init(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	formatter := new(logrus.TextFormatter)
	formatter.TimestampFormat = "2006-01-02 15:04:05"
	formatter.FullTimestamp = true
	logrus.SetFormatter(formatter)
	logrus.SetLevel(lvl)
	return nil
}

// Default returns a logger without a request ID.
func Default() *logrus.Entry {
	return logrus.NewEntry(logrus.StandardLogger())
}

// ContextWithRequestID returns a context holding a logger tagged with the
// given request ID. An empty ID gets a fresh UUID.
func ContextWithRequestID(ctx context.Context, requestID string) (context.Context, *logrus.Entry) {
	if ctx == nil {
		ctx = context.Background()
	}
	if requestID == "" {
		requestID = uuid.NewString()
	}
	entry := logrus.WithField(requestIDKey, requestID)
	return context.WithValue(ctx, contextKey, entry), entry
}

// FromContext returns the logger stored in ctx, or the default logger.
func FromContext(ctx context.Context) *logrus.Entry {
	if ctx == nil {
		return Default()
	}
	if entry, ok := ctx.Value(contextKey).(*logrus.Entry); ok {
		return entry
	}
	return Default()
}

// RequestID returns the request ID bound to ctx, if any.
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	entry, ok := ctx.Value(contextKey).(*logrus.Entry)
	if !ok {
		return ""
	}
	id, _ := entry.Data[requestIDKey].(string)
	return id
}
