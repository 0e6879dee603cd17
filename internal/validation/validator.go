package validation

import (
	"bytes"
	"encoding/json"
	"unicode/utf16"

	"tasks-api/internal/config"
)

// DefaultNameMinLength is the minimum task name length when no config is supplied
const DefaultNameMinLength = 3

// Candidate is a request body decoded as a JSON object, one raw value per field.
// A nil Candidate stands for a missing, empty or malformed body.
type Candidate map[string]json.RawMessage

// DecodeCandidate decodes body into a Candidate. Anything that is not a JSON
// object yields nil so it fails validation like an empty body would.
func DecodeCandidate(body []byte) Candidate {
	var c Candidate
	if err := json.Unmarshal(body, &c); err != nil {
		return nil
	}
	return c
}

// Field returns the raw value of a field and whether it was present
func (c Candidate) Field(name string) (json.RawMessage, bool) {
	raw, ok := c[name]
	return raw, ok
}

// Validator provides the typed field checks used by the task validator
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		config: nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		config: cfg,
	}
}

// IsNull reports whether a raw JSON value is the literal null
func (v *Validator) IsNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// AsString decodes a raw JSON value that must be a string
func (v *Validator) AsString(raw json.RawMessage) (string, bool) {
	if v.IsNull(raw) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// AsBool decodes a raw JSON value that must be a boolean
func (v *Validator) AsBool(raw json.RawMessage) (bool, bool) {
	if v.IsNull(raw) {
		return false, false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false, false
	}
	return b, true
}

// IsValidNameLength checks a task name against the configured minimum length.
// Length is measured in UTF-16 code units, so characters outside the Basic
// Multilingual Plane count twice. Surrounding whitespace is kept.
func (v *Validator) IsValidNameLength(name string) bool {
	return utf16Len(name) >= v.NameMinLength()
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// NameMinLength returns configured minimum task name length or default
func (v *Validator) NameMinLength() int {
	if v.config != nil && v.config.Validation.NameMinLength > 0 {
		return v.config.Validation.NameMinLength
	}
	return DefaultNameMinLength
}
