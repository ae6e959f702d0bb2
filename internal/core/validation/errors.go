package validation

import (
	"strings"

	"taproom/internal/core/apperror"
)

// MessagePrefix starts the client-facing message of every validation failure.
const MessagePrefix = "Validation failed"

// Error is a single rule violation. Field is a dotted path such as
// "[2].beerName"; it is empty for whole-object rules.
type Error struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e Error) String() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Errors is the outcome of a validation run. Empty means valid.
type Errors []Error

// Valid reports whether no rule was violated.
func (es Errors) Valid() bool {
	return len(es) == 0
}

// Messages renders every violation as "field: message".
func (es Errors) Messages() []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.String()
	}
	return out
}

func (es Errors) Error() string {
	return MessagePrefix + ": " + strings.Join(es.Messages(), ", ")
}

// Err converts the violations into a 400 AppError, or nil when valid.
func (es Errors) Err() error {
	if es.Valid() {
		return nil
	}
	return apperror.NewValidation(es.Error()).
		WithDetail("errors", es.Messages()).
		WithCause(es)
}

// FromError recovers the violations carried by err, if any.
func FromError(err error) (Errors, bool) {
	appErr, ok := apperror.AsAppError(err)
	if !ok || appErr.Err == nil {
		return nil, false
	}
	es, ok := appErr.Err.(Errors)
	return es, ok
}
