package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/alfagnish/trading-app/internal/domain"
)

// issue is a coercion failure before it is bound to a location.
type issue struct {
	typ string
	msg string
}

// parseJSON decodes data keeping numbers as json.Number so integer inputs
// are never silently rounded through float64.
func parseJSON(data []byte, loc []any) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, jsonInvalid(err, dec.InputOffset(), loc)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, jsonInvalid(errors.New("trailing data after JSON value"), dec.InputOffset(), loc)
	}
	return v, nil
}

func jsonInvalid(err error, offset int64, loc []any) error {
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		offset = syn.Offset
	}
	return &ValidationError{Errors: []ErrorDetail{{
		Type:  typeJSONInvalid,
		Loc:   at(loc, offset),
		Msg:   msgJSONInvalid,
		Input: map[string]any{},
		Ctx:   map[string]any{"error": err.Error()},
	}}}
}

func toInt(v any) (int64, *issue) {
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n, nil
		}
		f, err := t.Float64()
		if err != nil {
			return 0, &issue{typeIntParsing, msgIntParsing}
		}
		if f != math.Trunc(f) {
			return 0, &issue{typeIntFromFloat, msgIntFromFloat}
		}
		// int64(f) is undefined outside this range.
		if f < -(1<<63) || f >= 1<<63 {
			return 0, &issue{typeIntParsing, msgIntParsing}
		}
		return int64(f), nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return 0, &issue{typeIntParsing, msgIntParsing}
		}
		return n, nil
	default:
		return 0, &issue{typeIntType, msgIntType}
	}
}

func toFloat(v any) (float64, *issue) {
	var (
		f   float64
		err error
	)
	switch t := v.(type) {
	case json.Number:
		f, err = t.Float64()
	case string:
		f, err = strconv.ParseFloat(strings.TrimSpace(t), 64)
	default:
		return 0, &issue{typeFloatType, msgFloatType}
	}
	if err != nil {
		return 0, &issue{typeFloatParsing, msgFloatParsing}
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, &issue{typeFiniteNumber, msgFiniteNumber}
	}
	return f, nil
}

func toString(v any) (string, *issue) {
	s, ok := v.(string)
	if !ok {
		return "", &issue{typeStringType, msgStringType}
	}
	return s, nil
}

var datetimeLayouts = []struct {
	layout string
	naive  bool
}{
	{time.RFC3339Nano, false},
	{"2006-01-02T15:04:05.999999999", true},
	{"2006-01-02 15:04:05.999999999Z07:00", false},
	{"2006-01-02 15:04:05.999999999", true},
	{"2006-01-02T15:04", true},
	{"2006-01-02", true},
}

// toTime accepts ISO 8601 strings (zone optional) and unix timestamps.
// Values without a zone are kept naive; unix timestamps are UTC.
func toTime(v any) (domain.Datetime, *issue) {
	switch t := v.(type) {
	case string:
		s := strings.TrimSpace(t)
		for _, l := range datetimeLayouts {
			if ts, err := time.Parse(l.layout, s); err == nil {
				return domain.Datetime{Time: ts, Naive: l.naive}, nil
			}
		}
		return domain.Datetime{}, &issue{typeDatetimeParsing, msgDatetimeParsing}
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return domain.Datetime{}, &issue{typeDatetimeParsing, msgDatetimeParsing}
		}
		// Values this large are millisecond timestamps.
		if math.Abs(f) > 2e10 {
			f /= 1000
		}
		sec, frac := math.Modf(f)
		return domain.Datetime{Time: time.Unix(int64(sec), int64(frac*1e9)).UTC()}, nil
	default:
		return domain.Datetime{}, &issue{typeDatetimeType, msgDatetimeType}
	}
}
