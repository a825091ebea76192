package webapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/punchkit/punchkit/pkg/httpserver"
	"github.com/punchkit/punchkit/pkg/locale"
)

// Router assembles the HTTP surface of the validation core.
//
//	GET  /healthz                            liveness probe
//	GET  /locales/{lang}/{namespace}.json    message catalog namespace
//	POST /auth/validate                      field validation
func Router(api *API) chi.Router {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(middleware.Recoverer)
	r.Use(locale.Middleware(locale.DefaultExtractor(
		locale.WithSupported(api.registry.Languages()...),
	)))

	r.Get("/healthz", httpserver.HealthCheckHandler(context.Background(), api.log))
	r.Get("/locales/{lang}/{namespace}.json", api.handleLocaleNamespace)
	r.Post("/auth/validate", api.handleValidate)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	})

	return r
}
