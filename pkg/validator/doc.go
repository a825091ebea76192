// Package validator implements rule-based field validation with localized
// error messages.
//
// Each field kind (name, email, password, password confirmation) has its own
// ordered group of independent checks. A failing field collects every
// violation message from its group, looked up in the caller's message
// catalog, and merges them into one readable sentence. Validate is the entry
// point: it dispatches the rule group of every present field concurrently
// and returns a ValidationErrors collection keyed by field name, shaped for
// direct serialization as a form-error JSON object.
//
//	req := validator.Request{Email: &email, Password: &password}
//	if err := validator.Validate(ctx, req, messages); err != nil {
//		errs := validator.ExtractValidationErrors(err)
//		respondJSON(w, http.StatusBadRequest, errs.Map())
//	}
//
// Rule failures are expected, user-facing outcomes and are never reported
// as panics or internal errors.
package validator
