package middleware

import (
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// RequestLog wraps a handler with structured access logging.
func RequestLog(logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			start := time.Now()
			next(ctx)
			logger.Info("request",
				zap.ByteString("method", ctx.Method()),
				zap.ByteString("path", ctx.Path()),
				zap.Int("status", ctx.Response.StatusCode()),
				zap.Duration("duration", time.Since(start)),
			)
		}
	}
}

// RequireUser rejects requests that do not carry the caller identity header.
// Authentication proper is handled upstream; the core only needs to know who
// is asking.
func RequireUser(logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			if len(ctx.Request.Header.Peek("X-User-ID")) == 0 {
				logger.Debug("request without user identity", zap.ByteString("path", ctx.Path()))
				ctx.SetStatusCode(fasthttp.StatusUnauthorized)
				return
			}
			next(ctx)
		}
	}
}
