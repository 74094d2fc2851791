package action

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// args wraps an untyped argument map with typed accessors that produce
// SchemaErrors naming the offending argument.
type args struct {
	kind   string
	m      map[string]any
	prefix string
}

func (a args) fail(name string, code error, detail string) *SchemaError {
	return &SchemaError{Kind: a.kind, Argument: a.prefix + name, Code: code, Detail: detail}
}

func (a args) optionalString(name string) (string, bool, error) {
	v, ok := a.m[name]
	if !ok || v == nil {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", false, a.fail(name, ErrWrongType, fmt.Sprintf("expected string, got %T", v))
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false, nil
	}
	return s, true, nil
}

func (a args) requiredString(name string) (string, error) {
	s, ok, err := a.optionalString(name)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", a.fail(name, ErrMissingArgument, "")
	}
	return s, nil
}

func (a args) requiredBool(name string) (bool, error) {
	v, ok := a.m[name]
	if !ok || v == nil {
		return false, a.fail(name, ErrMissingArgument, "")
	}
	b, ok := v.(bool)
	if !ok {
		return false, a.fail(name, ErrWrongType, fmt.Sprintf("expected boolean, got %T", v))
	}
	return b, nil
}

func (a args) optionalInt(name string, lo, hi int) (int, bool, error) {
	v, ok := a.m[name]
	if !ok || v == nil {
		return 0, false, nil
	}
	n, err := toInt(v)
	if err != nil {
		return 0, false, a.fail(name, ErrWrongType, err.Error())
	}
	if n < lo || n > hi {
		return 0, false, a.fail(name, ErrOutOfRange, fmt.Sprintf("%d not in [%d, %d]", n, lo, hi))
	}
	return n, true, nil
}

func (a args) requiredInt(name string, lo, hi int) (int, error) {
	n, ok, err := a.optionalInt(name, lo, hi)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, a.fail(name, ErrMissingArgument, "")
	}
	return n, nil
}

// toInt accepts any JSON-decoded number that has no fractional part.
func toInt(v any) (int, error) {
	var f float64
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		f = float64(n)
	case float64:
		f = n
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("expected number, got %q", n.String())
		}
		f = parsed
	default:
		return 0, fmt.Errorf("expected number, got %T", v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("expected integer, got %v", f)
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("integer %v overflows", f)
	}
	return int(f), nil
}
