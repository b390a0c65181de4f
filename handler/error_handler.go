package handler

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/formguard/pkg/logger"
)

// NewErrorHandler logs the error and answers with a JSON error body. Datastar
// requests get the same body as an "error" signal patch.
func NewErrorHandler() ErrorHandler {
	return func(ctx Context, err error) {
		r := ctx.Request()
		status, detail := ErrorToDetail(err)

		level := slog.LevelError
		if status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		ctx.Logger().LogAttrs(ctx, level, "request failed",
			logger.Error(err),
			slog.Int("status", status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("datastar", IsDataStar(r)),
		)

		var resp Response = &jsonResponse{status: status, body: JSONResponse{Error: detail}}
		if IsDataStar(r) {
			resp = Signals(map[string]any{"error": detail})
		}
		if rerr := resp.Render(ctx.ResponseWriter(), r); rerr != nil {
			ctx.Logger().ErrorContext(ctx, "failed to render error", logger.Error(rerr))
		}
	}
}
