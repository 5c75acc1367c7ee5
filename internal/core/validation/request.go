package validation

import (
	"github.com/schooldesk/school-api/internal/core/domain"
)

// Record is a decoded JSON request body.
type Record map[string]any

// String returns the value of key when it is a string, "" otherwise.
func (r Record) String(key string) string {
	s, _ := r[key].(string)
	return s
}

func (r Record) has(key string) bool {
	v, ok := r[key]
	return ok && v != nil
}

// Check validates one field value. The record is available for checks that
// compare against a sibling field.
type Check func(value string, rec Record) []error

// Rule binds a recognised field name to its check.
type Rule struct {
	Field string
	Check Check
}

// RuleSet is an ordered validation table. Required lists groups of
// alternative keys; each group must have at least one key present.
type RuleSet struct {
	Required [][]string
	Rules    []Rule
}

// Validate applies the rule set to rec. Missing required keys fail with
// domain.ErrIncompleteSubmission before any field is checked. Field failures
// are collected for every rule and returned as a *domain.ValidationError keyed
// by the rule's field. Keys without a rule are ignored.
func (rs RuleSet) Validate(rec Record) error {
	for _, group := range rs.Required {
		if !anyPresent(rec, group) {
			return domain.ErrIncompleteSubmission
		}
	}

	fields := domain.NewErrorSet()
	for _, rule := range rs.Rules {
		if !rec.has(rule.Field) {
			continue
		}
		value, ok := rec[rule.Field].(string)
		if !ok {
			fields.Add(rule.Field, rule.Field+" must be text")
			continue
		}
		for _, err := range rule.Check(value, rec) {
			fields.Add(rule.Field, err.Error())
		}
	}

	if fields.Len() > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func anyPresent(rec Record, keys []string) bool {
	for _, k := range keys {
		if rec.has(k) {
			return true
		}
	}
	return false
}

// single adapts a one-value validator to a Check.
func single(fn func(string) error) Check {
	return func(v string, _ Record) []error {
		if err := fn(v); err != nil {
			return []error{err}
		}
		return nil
	}
}

// against adapts a validator that compares the value with a sibling field.
func against(sibling string, fn func(v, other string) error) Check {
	return func(v string, rec Record) []error {
		if err := fn(v, rec.String(sibling)); err != nil {
			return []error{err}
		}
		return nil
	}
}

func password(v string, rec Record) []error {
	return CheckPassword(v, rec.String("confirmPassword"))
}

func present(string, Record) []error { return nil }
