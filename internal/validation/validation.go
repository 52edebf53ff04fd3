// Package validation implements declarative request validation as an explicit
// ordered list of rule objects per input. The runner evaluates every rule of
// every field and reports all failures together, so a client can fix every
// problem in one round trip.
package validation

import (
	"context"
	"fmt"
	"strings"

	"accounts/internal/domain"
)

// FieldError describes a single failed rule on a single field.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Failure aggregates every failed rule of a validation run. It implements
// error so pipelines can surface it through ordinary error returns; the
// transport layer unwraps it with errors.As.
type Failure struct {
	Errors []FieldError
}

func (f *Failure) Error() string {
	parts := make([]string, 0, len(f.Errors))
	for _, e := range f.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Args carries everything a rule may consult beyond the field's own value:
// the full submitted field map (for cross-field rules) and the authenticated
// account making the request (for state-dependent rules such as the
// old-password check). Account is nil for unauthenticated requests.
type Args struct {
	Values  map[string]string
	Account *domain.Account
}

// Rule checks one field value. The boolean result is the validation outcome;
// a non-nil error means the rule itself could not run (e.g. storage failure)
// and aborts the whole run as an internal error, not a validation failure.
type Rule interface {
	Name() string
	Message() string
	Validate(ctx context.Context, value string, args Args) (bool, error)
}

// Field binds an ordered rule chain to a named input field.
type Field struct {
	Name  string
	Rules []Rule
}

// Schema is the ordered field list for one input type.
type Schema []Field

// Run evaluates the schema against args.Values. All rules of all fields are
// evaluated; failures are collected, never short-circuited.
func (s Schema) Run(ctx context.Context, args Args) error {
	var failed []FieldError
	for _, f := range s {
		value := args.Values[f.Name]
		for _, r := range f.Rules {
			ok, err := r.Validate(ctx, value, args)
			if err != nil {
				return fmt.Errorf("validate %s/%s: %w", f.Name, r.Name(), err)
			}
			if !ok {
				failed = append(failed, FieldError{Field: f.Name, Rule: r.Name(), Message: r.Message()})
			}
		}
	}
	if len(failed) > 0 {
		return &Failure{Errors: failed}
	}
	return nil
}
