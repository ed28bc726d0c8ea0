package contextutil

import (
	"context"

	"go.uber.org/zap"
)

// contextKey adalah tipe privat agar tidak terjadi tabrakan key dengan library lain
type contextKey string

const (
	requestIDKey contextKey = "request_id"
	sessionIDKey contextKey = "session_id"
	loggerKey    contextKey = "logger"
)

// --- Request ID Helpers ---

// WithRequestID memasukkan Request ID ke dalam context
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

// GetRequestID mengambil Request ID dari context
func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}

// --- Session ID Helpers ---

// WithSessionID memasukkan session ID portal ke dalam context
func WithSessionID(ctx context.Context, sid string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sid)
}

// GetSessionID mengambil session ID dari context
func GetSessionID(ctx context.Context) string {
	if sid, ok := ctx.Value(sessionIDKey).(string); ok {
		return sid
	}
	return ""
}

// --- Logger Helpers ---

// WithLogger memasukkan zap logger (yang biasanya sudah di-decorate) ke context
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger mengambil logger dari context.
// Jika tidak ada, mengembalikan fallback (defaultLogger) agar tidak panic.
func GetLogger(ctx context.Context, defaultLogger *zap.Logger) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok && l != nil {
			return l
		}
	}

	if defaultLogger != nil {
		return defaultLogger
	}

	// safety fallback agar tidak pernah nil
	return zap.NewNop()
}
