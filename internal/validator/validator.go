// Package validator runs declarative rule sets against loosely typed input
// records such as decoded JSON request bodies.
package validator

import "github.com/SscSPs/project_budget_app/internal/apperrors"

// Rule pairs a predicate with the message reported when the predicate fails.
type Rule[T any] struct {
	Check   func(value T) bool
	Message string
}

// RuleSet maps a field name to the rules evaluated, in order, against that field.
type RuleSet[T any] map[string][]Rule[T]

// Result is the outcome of Validate.
type Result struct {
	IsValid bool
	Errors  map[string]string
}

// Err returns nil for a valid result and a *apperrors.ValidationError otherwise.
func (r Result) Err() error {
	if r.IsValid {
		return nil
	}
	return apperrors.NewFieldValidationError(r.Errors)
}

// Validate evaluates rules against record. For every field in the rule set the
// message of the first failing rule is reported and the remaining rules of that
// field are skipped. Absent fields are passed to predicates as the zero value
// of T. Fields of record that have no rules are ignored.
func Validate[T any](record map[string]T, rules RuleSet[T]) Result {
	errs := make(map[string]string)

	for field, fieldRules := range rules {
		value := record[field]
		for _, rule := range fieldRules {
			if !rule.Check(value) {
				errs[field] = rule.Message
				break
			}
		}
	}

	return Result{IsValid: len(errs) == 0, Errors: errs}
}

// Merge returns a new rule set containing the fields of all given sets.
// Later sets replace earlier ones field by field.
func Merge[T any](sets ...RuleSet[T]) RuleSet[T] {
	merged := make(RuleSet[T])
	for _, set := range sets {
		for field, rules := range set {
			merged[field] = rules
		}
	}
	return merged
}

// Without returns a copy of rules with the given fields removed.
func Without[T any](rules RuleSet[T], fields ...string) RuleSet[T] {
	out := Merge(rules)
	for _, f := range fields {
		delete(out, f)
	}
	return out
}
