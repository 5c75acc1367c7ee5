package domain

import (
	"bytes"
	"encoding/json"
)

// ErrorSet maps a field name to the first error message recorded for it.
// Iteration and JSON encoding follow insertion order.
type ErrorSet struct {
	keys []string
	msgs map[string]string
}

// NewErrorSet returns an empty set.
func NewErrorSet() *ErrorSet {
	return &ErrorSet{msgs: make(map[string]string)}
}

// Add records msg for field unless the field already has a message.
func (s *ErrorSet) Add(field, msg string) {
	if _, ok := s.msgs[field]; ok {
		return
	}
	s.keys = append(s.keys, field)
	s.msgs[field] = msg
}

// Get returns the message recorded for field.
func (s *ErrorSet) Get(field string) (string, bool) {
	msg, ok := s.msgs[field]
	return msg, ok
}

func (s *ErrorSet) Len() int { return len(s.keys) }

// Fields returns the field names in insertion order.
func (s *ErrorSet) Fields() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

func (s *ErrorSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range s.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(s.msgs[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ValidationError carries the per-field messages of a rejected request.
// errors.Is(err, ErrFieldValidation) reports true for it.
type ValidationError struct {
	Fields *ErrorSet
}

func (e *ValidationError) Error() string { return ErrFieldValidation.Error() }

func (e *ValidationError) Is(target error) bool { return target == ErrFieldValidation }
