package validator

import (
	"context"

	"github.com/punchkit/punchkit/pkg/async"
	"github.com/punchkit/punchkit/pkg/catalog"
)

// Request is the optional-field validation payload. A nil field is omitted
// from validation entirely, which is what update-style endpoints rely on; a
// present-but-empty field is still validated and fails the relevant
// minimum-length rule.
type Request struct {
	Name                 *string `json:"name,omitempty"`
	Email                *string `json:"email,omitempty"`
	Password             *string `json:"password,omitempty"`
	PasswordConfirmation *string `json:"password_confirmation,omitempty"`
}

type fieldWork struct {
	field string
	run   func() *ValidationError
}

// Validate runs the rule group of every present field concurrently and
// returns nil when all pass, or ValidationErrors keyed by field name.
//
// The confirmation check is scheduled whenever a password is present, since
// it alone sees both values: an absent confirmation is a "required" failure,
// a present one must match. A confirmation without a password is ignored. A
// request with no recognized field at all fails with a single synthetic
// error under the "fields" key rather than silently succeeding.
//
// Validation never panics on user input, and the only non-validation error
// Validate can return is the context's, when ctx is cancelled mid-flight.
func Validate(ctx context.Context, req Request, messages catalog.MessageLookup) error {
	var work []fieldWork

	if req.Name != nil {
		name := *req.Name
		work = append(work, fieldWork{field: "name", run: func() *ValidationError {
			return ValidateName(messages, name)
		}})
	}

	if req.Email != nil {
		email := *req.Email
		work = append(work, fieldWork{field: "email", run: func() *ValidationError {
			return ValidateEmail(messages, email)
		}})
	}

	if req.Password != nil {
		password := *req.Password
		work = append(work, fieldWork{field: "password", run: func() *ValidationError {
			return ValidatePassword(messages, password)
		}})

		confirmation := req.PasswordConfirmation
		work = append(work, fieldWork{field: "password_confirmation", run: func() *ValidationError {
			return ValidatePasswordConfirmation(messages, password, confirmation)
		}})
	}

	if len(work) == 0 {
		return ValidationErrors{{
			Field:   "fields",
			Rule:    "required",
			Message: "At least one field is required.",
		}}
	}

	// Field rule groups are independent and CPU-only, so fan out one future
	// per field and merge sequentially afterwards.
	futures := make([]*async.Future[*ValidationError], len(work))
	for i, w := range work {
		w := w
		futures[i] = async.Go(ctx, func(context.Context) (*ValidationError, error) {
			return w.run(), nil
		})
	}

	results, err := async.All(futures...)
	if err != nil {
		return err
	}

	var errs ValidationErrors
	for _, result := range results {
		if result != nil {
			errs.Add(*result)
		}
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}
