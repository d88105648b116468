package chart

import "fmt"

// NoDataReason explains why a transformer produced nothing to draw.
type NoDataReason int

const (
	// NoDataNone marks a drawable result.
	NoDataNone NoDataReason = iota
	// NoDataEmpty means no entry survived validation.
	NoDataEmpty
	// NoDataDegenerate means the validated dataset cannot be scaled.
	NoDataDegenerate
)

var reasonNames = map[NoDataReason]string{
	NoDataNone:       "",
	NoDataEmpty:      "no data",
	NoDataDegenerate: "degenerate",
}

// String returns the placeholder name of the reason, or "" for drawable results.
func (r NoDataReason) String() string {
	if s, ok := reasonNames[r]; ok {
		return s
	}
	return fmt.Sprintf("NoDataReason(%d)", int(r))
}

// MarshalText implements encoding.TextMarshaler.
func (r NoDataReason) MarshalText() ([]byte, error) {
	if _, ok := reasonNames[r]; !ok {
		return nil, fmt.Errorf("unknown no-data reason %d", int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *NoDataReason) UnmarshalText(b []byte) error {
	for k, v := range reasonNames {
		if v == string(b) {
			*r = k
			return nil
		}
	}
	return fmt.Errorf("unknown no-data reason %q", b)
}
