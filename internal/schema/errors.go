package schema

import (
	"fmt"
	"strings"
)

// ErrorDetail describes a single invalid field, serialised as
// {"type","loc","msg","input"} with an optional "ctx".
type ErrorDetail struct {
	Type  string         `json:"type"`
	Loc   []any          `json:"loc"`
	Msg   string         `json:"msg"`
	Input any            `json:"input"`
	Ctx   map[string]any `json:"ctx,omitempty"`
}

// ValidationError collects every ErrorDetail produced while decoding one
// input. It is only returned when at least one detail is present.
type ValidationError struct {
	Errors []ErrorDetail
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, d := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", locString(d.Loc), d.Msg))
	}
	return fmt.Sprintf("%d validation error(s): %s", len(e.Errors), strings.Join(parts, "; "))
}

func (e *ValidationError) add(d ErrorDetail) {
	e.Errors = append(e.Errors, d)
}

// err returns e as an error, or nil when nothing was recorded.
func (e *ValidationError) err() error {
	if e == nil || len(e.Errors) == 0 {
		return nil
	}
	return e
}

func locString(loc []any) string {
	parts := make([]string, len(loc))
	for i, p := range loc {
		parts[i] = fmt.Sprint(p)
	}
	return strings.Join(parts, ".")
}

// at returns a fresh location slice so callers never share backing arrays.
func at(base []any, elems ...any) []any {
	out := make([]any, 0, len(base)+len(elems))
	out = append(out, base...)
	return append(out, elems...)
}

// error types and messages
const (
	typeMissing          = "missing"
	typeIntType          = "int_type"
	typeIntParsing       = "int_parsing"
	typeIntFromFloat     = "int_from_float"
	typeFloatType        = "float_type"
	typeFloatParsing     = "float_parsing"
	typeFiniteNumber     = "finite_number"
	typeStringType       = "string_type"
	typeDatetimeType     = "datetime_type"
	typeDatetimeParsing  = "datetime_parsing"
	typeEnum             = "enum"
	typeListType         = "list_type"
	typeModelType        = "model_type"
	typeJSONInvalid      = "json_invalid"
	typeStringTooLong    = "string_too_long"
	typeGreaterThanEqual = "greater_than_equal"
	typeValueError       = "value_error"

	msgMissing         = "Field required"
	msgIntType         = "Input should be a valid integer"
	msgIntParsing      = "Input should be a valid integer, unable to parse string as an integer"
	msgIntFromFloat    = "Input should be a valid integer, got a number with a fractional part"
	msgFloatType       = "Input should be a valid number"
	msgFloatParsing    = "Input should be a valid number, unable to parse string as a number"
	msgFiniteNumber    = "Input should be a finite number"
	msgStringType      = "Input should be a valid string"
	msgDatetimeType    = "Input should be a valid datetime"
	msgDatetimeParsing = "Input should be a valid datetime, invalid datetime format"
	msgListType        = "Input should be a valid list"
	msgJSONInvalid     = "JSON decode error"
)
