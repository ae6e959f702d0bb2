// Package validation provides small composable validators.
//
// A Validator inspects a value and reports every violation it finds; it
// never stops at the first one. Validators are built from plain functions
// so rules read top to bottom next to the type they check:
//
//	var beerRules = validation.All(
//		validation.Field("beerName", func(b Beer) string { return b.Name },
//			validation.NotBlank(), validation.MaxLength(50)),
//	)
package validation

import (
	"cmp"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Validator checks v found at path.
type Validator[T any] func(path string, v T) Errors

// Validate runs rules against v from the root path.
func Validate[T any](v T, rules ...Validator[T]) Errors {
	return All(rules...)("", v)
}

// All runs every rule and concatenates the violations.
func All[T any](rules ...Validator[T]) Validator[T] {
	return func(path string, v T) Errors {
		var errs Errors
		for _, rule := range rules {
			errs = append(errs, rule(path, v)...)
		}
		return errs
	}
}

// Field validates a member of T reached through get.
func Field[T, F any](name string, get func(T) F, rules ...Validator[F]) Validator[T] {
	inner := All(rules...)
	return func(path string, v T) Errors {
		return inner(join(path, name), get(v))
	}
}

// Optional skips absent values and validates present ones.
func Optional[F any](rules ...Validator[F]) Validator[*F] {
	inner := All(rules...)
	return func(path string, v *F) Errors {
		if v == nil {
			return nil
		}
		return inner(path, *v)
	}
}

// Required rejects absent values and validates present ones.
func Required[F any](rules ...Validator[F]) Validator[*F] {
	inner := All(rules...)
	return func(path string, v *F) Errors {
		if v == nil {
			return fail(path, "is required")
		}
		return inner(path, *v)
	}
}

// Each checks the item count of a list and then validates every item.
func Each[T any](minItems, maxItems int, rules ...Validator[T]) Validator[[]T] {
	inner := All(rules...)
	return func(path string, items []T) Errors {
		var errs Errors
		if len(items) < minItems {
			errs = append(errs, Error{Field: path, Message: fmt.Sprintf("must have at least %d items", minItems)})
		}
		if len(items) > maxItems {
			errs = append(errs, Error{Field: path, Message: fmt.Sprintf("must have at most %d items", maxItems)})
		}
		for i, item := range items {
			errs = append(errs, inner(fmt.Sprintf("%s[%d]", path, i), item)...)
		}
		return errs
	}
}

// Check reports message when ok returns false. Use it for cross-field rules.
func Check[T any](message string, ok func(T) bool) Validator[T] {
	return func(path string, v T) Errors {
		if ok(v) {
			return nil
		}
		return fail(path, message)
	}
}

func NotBlank() Validator[string] {
	return Check("must not be blank", func(s string) bool {
		return strings.TrimSpace(s) != ""
	})
}

// MaxLength limits the number of characters, not bytes.
func MaxLength(n int) Validator[string] {
	return Check(fmt.Sprintf("must have at most %d characters", n), func(s string) bool {
		return utf8.RuneCountInString(s) <= n
	})
}

func ExactLength(n int) Validator[string] {
	return Check(fmt.Sprintf("must have exactly %d characters", n), func(s string) bool {
		return utf8.RuneCountInString(s) == n
	})
}

// Pattern requires re to match and reports hint otherwise. Anchor re for a full match.
func Pattern(re *regexp.Regexp, hint string) Validator[string] {
	return Check(hint, re.MatchString)
}

func Min[N cmp.Ordered](lo N) Validator[N] {
	return Check(fmt.Sprintf("must be at least %v", lo), func(v N) bool {
		return v >= lo
	})
}

func Max[N cmp.Ordered](hi N) Validator[N] {
	return Check(fmt.Sprintf("must be at most %v", hi), func(v N) bool {
		return v <= hi
	})
}

// Range is Min and Max combined.
func Range[N cmp.Ordered](lo, hi N) Validator[N] {
	return All(Min(lo), Max(hi))
}

// DecimalGreaterThan requires v > bound.
func DecimalGreaterThan(bound decimal.Decimal, message string) Validator[decimal.Decimal] {
	return Check(message, func(v decimal.Decimal) bool {
		return v.GreaterThan(bound)
	})
}

// DecimalAtMost requires v <= bound.
func DecimalAtMost(bound decimal.Decimal, message string) Validator[decimal.Decimal] {
	return Check(message, func(v decimal.Decimal) bool {
		return v.LessThanOrEqual(bound)
	})
}

// IDs validates a list of primary keys: 1 to 100 entries, each positive.
var IDs = Each[int64](1, 100, Min[int64](1))

func fail(path, message string) Errors {
	return Errors{{Field: path, Message: message}}
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
