package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fifa-results/internal/platform/logging"
)

// RouterConfig holds the router settings that come from configuration.
type RouterConfig struct {
	CORSAllowedOrigins []string
	// ImportToken guards POST /v1/imports; empty disables the route.
	ImportToken string
	DocsEnabled bool
}

func NewRouter(handler *Handler, logger *logging.Logger, cfg RouterConfig) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, cfg.DocsEnabled)
	registerResultRoutes(mux, handler)
	registerCompetitionRoutes(mux, handler)
	registerTournamentRoutes(mux, handler)
	registerTeamRoutes(mux, handler)
	registerImportRoutes(mux, handler, cfg.ImportToken)

	return RequestTracing(RequestLogging(logger, CORS(cfg.CORSAllowedOrigins, recoverPanic(logger, mux))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
