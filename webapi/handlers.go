package webapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/punchkit/punchkit/pkg/catalog"
	"github.com/punchkit/punchkit/pkg/locale"
	"github.com/punchkit/punchkit/pkg/logger"
	"github.com/punchkit/punchkit/pkg/validator"
)

// maxValidateBody bounds the validation request body. The payload is four
// short strings; anything larger is rejected outright.
const maxValidateBody = 64 << 10

// API serves the validation core's external contract: the locales endpoint
// the front-end fetches message catalogs from, and the validation endpoint
// the auth flows call.
type API struct {
	registry *catalog.Registry
	log      *slog.Logger
}

// New creates the API over an eagerly loaded catalog registry.
func New(registry *catalog.Registry, log *slog.Logger) *API {
	return &API{registry: registry, log: log}
}

// handleLocaleNamespace serves GET /locales/{lang}/{namespace}.json: one
// namespace of the requested language's catalog, the same JSON shape the
// backend loads from disk.
func (a *API) handleLocaleNamespace(w http.ResponseWriter, r *http.Request) {
	lang := locale.Parse(chi.URLParam(r, "lang"))
	ns := catalog.Namespace(chi.URLParam(r, "namespace"))

	content, err := a.registry.For(lang).ExportJSON(ns)
	if err != nil {
		var missing *catalog.MissingNamespaceError
		if errors.As(err, &missing) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown namespace"})
			return
		}
		a.log.ErrorContext(r.Context(), "Failed to export namespace",
			logger.Lang(lang.String()), logger.Namespace(ns.String()), logger.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}

// handleValidate serves POST /auth/validate: it binds the optional-field
// payload, validates it against the catalog of the request's language, and
// answers 204 on success or 400 with the field→message object on failure.
// Validation failures are expected outcomes and never surface as 5xx.
func (a *API) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validator.Request

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxValidateBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "malformed request body"})
		return
	}

	lang := locale.FromContext(r.Context())
	messages := a.registry.For(lang)

	err := validator.Validate(r.Context(), req, messages)
	if err == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if errs := validator.ExtractValidationErrors(err); !errs.IsEmpty() {
		for _, ve := range errs {
			a.log.DebugContext(r.Context(), "Field failed validation",
				logger.Field(ve.Field), logger.Lang(lang.String()))
		}
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": errs.Map()})
		return
	}

	// Only context cancellation reaches here.
	a.log.ErrorContext(r.Context(), "Validation aborted", logger.Error(err))
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
