package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Validate checks a decoded request payload against a kind's field table.
//
// In full mode (partial == false) every required field must be present.
// In both modes each present field is type checked. Messages come back in
// field-table order, missing fields first. The returned Values hold the
// coerced value of every allow-listed field that passed; unknown keys are
// ignored. Payloads should be decoded with json.Decoder.UseNumber so large
// integers survive intact, though float64 values are accepted too.
func Validate(kind Kind, payload map[string]any, partial bool) (Values, []string) {
	var messages []string

	for _, f := range kind.Fields {
		if !f.Required {
			continue
		}
		v, present := payload[f.Name]
		if (!present && !partial) || (present && v == nil) {
			messages = append(messages, f.Name+" is required")
		}
	}

	values := make(Values)
	for _, f := range kind.Fields {
		v, present := payload[f.Name]
		if !present {
			continue
		}
		if v == nil {
			if f.Nullable() {
				values[f.Name] = nil
				continue
			}
			if f.Required {
				// already reported as missing
				continue
			}
		}
		coerced, ok := coerce(f.Type, v)
		if !ok {
			messages = append(messages, typeMessage(f))
			continue
		}
		values[f.Name] = coerced
	}

	return values, messages
}

func typeMessage(f Field) string {
	switch f.Type {
	case FieldString:
		return f.Name + " must be a non-empty string"
	case FieldText:
		return f.Name + " must be a string"
	case FieldNumber:
		return f.Name + " must be a number"
	case FieldInteger:
		return f.Name + " must be an integer"
	case FieldDate:
		return f.Name + " must be a date (YYYY-MM-DD)"
	default:
		return fmt.Sprintf("%s has unsupported type %d", f.Name, f.Type)
	}
}

func coerce(t FieldType, v any) (any, bool) {
	switch t {
	case FieldString:
		s, ok := v.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return nil, false
		}
		return s, true
	case FieldText:
		s, ok := v.(string)
		return s, ok
	case FieldNumber:
		return toFloat(v)
	case FieldInteger:
		return toInt(v)
	case FieldDate:
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		d, err := ParseDate(s)
		if err != nil {
			return nil, false
		}
		return d, true
	default:
		return nil, false
	}
}

func toFloat(v any) (any, bool) {
	var f float64
	switch n := v.(type) {
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return nil, false
		}
		f = parsed
	case float64:
		f = n
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return nil, false
		}
		f = parsed
	default:
		return nil, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}
	return f, true
}

func toInt(v any) (any, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return nil, false
		}
		return floatToInt(f)
	case float64:
		return floatToInt(n)
	case int:
		return int64(n), true
	case int64:
		return n, true
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return nil, false
		}
		return i, true
	default:
		return nil, false
	}
}

// floatToInt accepts whole numbers written in float form, e.g. 3.0 or 1e2.
func floatToInt(f float64) (any, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return nil, false
	}
	return int64(f), true
}
