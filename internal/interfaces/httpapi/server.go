package httpapi

import (
	"net/http"

	"github.com/checkball/checkball/internal/platform/logging"
)

// RouteLimits carries the per-route request budgets, in requests per
// client per minute. Zero disables limiting for that route.
type RouteLimits struct {
	Teams      int
	Scores     int
	Details    int
	SaveConfig int
	LoadConfig int
}

func NewRouter(
	handler *Handler,
	logger *logging.Logger,
	corsAllowedOrigins []string,
	limits RouteLimits,
) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerScoreRoutes(mux, handler, limits)

	return RequestTracing(RequestLogging(logger, SecurityHeaders(CORS(corsAllowedOrigins, recoverPanic(logger, mux)))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
