// Package validation provides declarative, statically-typed field validation
// rules evaluated against an entity instance on demand. Each rule is a field
// display name plus a predicate; evaluation returns the complete list of
// violations so callers can report all errors in one batch.
package validation

import (
	"fmt"
	"unicode/utf8"
)

// Rule checks one field of an entity. Check returns a violation message, or
// the empty string when the rule passes.
type Rule[T any] struct {
	Field string
	Check func(entity T) string
}

// Apply evaluates every rule against the entity and returns all violation
// messages, not just the first.
func Apply[T any](entity T, rules []Rule[T]) []string {
	var errs []string
	for _, rule := range rules {
		if msg := rule.Check(entity); msg != "" {
			errs = append(errs, msg)
		}
	}
	return errs
}

// Required builds a rule that rejects empty string fields.
func Required[T any](field string, get func(T) string) Rule[T] {
	return Rule[T]{Field: field, Check: func(entity T) string {
		if get(entity) == "" {
			return fmt.Sprintf("The '%s' field is required.", field)
		}
		return ""
	}}
}

// MaxLength builds a rule that bounds the length of a string field.
func MaxLength[T any](field string, max int, get func(T) string) Rule[T] {
	return Rule[T]{Field: field, Check: func(entity T) string {
		if utf8.RuneCountInString(get(entity)) > max {
			return fmt.Sprintf("The '%s' must be a string with a maximum length of %d.", field, max)
		}
		return ""
	}}
}

// Positive builds a rule that requires a strictly positive numeric field.
// The accessor returns any so the rule stays reusable across entities: nil
// and unsupported types fail with their own messages rather than panicking.
func Positive[T any](field string, get func(T) any) Rule[T] {
	return Rule[T]{Field: field, Check: func(entity T) string {
		switch v := get(entity).(type) {
		case nil:
			return fmt.Sprintf("The '%s' cannot be null.", field)
		case float64:
			if v <= 0 {
				return fmt.Sprintf("The '%s' must be a positive number.", field)
			}
		case int:
			if v <= 0 {
				return fmt.Sprintf("The '%s' must be a positive number.", field)
			}
		case int64:
			if v <= 0 {
				return fmt.Sprintf("The '%s' must be a positive number.", field)
			}
		default:
			return fmt.Sprintf("The '%s' is an unsupported data type.", field)
		}
		return ""
	}}
}
