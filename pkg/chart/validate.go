package chart

import (
	"encoding/json"
	"fmt"
	"math"
)

// Validate filters data down to drawable entries.
//
// An entry survives when its value is finite and non-negative and, if
// requireLabel is set, its label is non-empty. Order is preserved. Dropped
// entries are not reported; an Empty result is the only signal.
func Validate(data []Datum, requireLabel bool) ValidationResult {
	valid := make([]Datum, 0, len(data))
	for _, d := range data {
		if !validValue(d.Value) {
			continue
		}
		if requireLabel && d.Label == "" {
			continue
		}
		valid = append(valid, d)
	}
	return ValidationResult{Valid: valid, Empty: len(valid) == 0}
}

// ValidateAny coerces loosely typed input with [Coerce] and validates it.
func ValidateAny(raw any, requireLabel bool) ValidationResult {
	return Validate(Coerce(raw), requireLabel)
}

func validValue(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// Coerce converts loosely typed input into a dataset.
//
// Accepted shapes are []Datum, []*Datum, []map[string]any and []any whose
// elements are maps, Datum or *Datum values, which covers the output of
// decoding JSON, YAML and TOML into any. Nil entries, entries that are not
// record-shaped and entries whose "value" is not a number are dropped.
// Strings are never parsed as numbers. Anything that is not a list yields nil.
func Coerce(raw any) []Datum {
	switch v := raw.(type) {
	case nil:
		return nil
	case []Datum:
		return v
	case []*Datum:
		out := make([]Datum, 0, len(v))
		for _, d := range v {
			if d != nil {
				out = append(out, *d)
			}
		}
		return out
	case []map[string]any:
		out := make([]Datum, 0, len(v))
		for _, m := range v {
			if d, ok := datumFromMap(m); ok {
				out = append(out, d)
			}
		}
		return out
	case []any:
		out := make([]Datum, 0, len(v))
		for _, e := range v {
			if d, ok := datumFromAny(e); ok {
				out = append(out, d)
			}
		}
		return out
	default:
		return nil
	}
}

func datumFromAny(e any) (Datum, bool) {
	switch d := e.(type) {
	case Datum:
		return d, true
	case *Datum:
		if d == nil {
			return Datum{}, false
		}
		return *d, true
	case map[string]any:
		return datumFromMap(d)
	default:
		return Datum{}, false
	}
}

func datumFromMap(m map[string]any) (Datum, bool) {
	if m == nil {
		return Datum{}, false
	}
	v, ok := toFloat(m["value"])
	if !ok {
		return Datum{}, false
	}
	return Datum{Label: toLabel(m["label"]), Value: v}, true
}

func toLabel(l any) string {
	switch s := l.(type) {
	case nil:
		return ""
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	default:
		// Numeric labels such as years are common in sales exports.
		if _, ok := toFloat(l); ok {
			return fmt.Sprint(l)
		}
		return ""
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
