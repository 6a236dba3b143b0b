package element

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// ValueKind identifies the variant held by a Value
type ValueKind uint8

const (
	KindNull ValueKind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
)

func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value is a single property value. The zero Value is null.
//
// Compound properties (borders, spacing, page margins) are stored as an
// Array holding a nested Properties bag.
type Value struct {
	kind ValueKind
	b    bool
	i    int64
	f    float64
	s    string
	a    *Properties
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating point value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Array returns a compound value wrapping p. A nil p is treated as empty.
func Array(p *Properties) Value {
	if p == nil {
		p = &Properties{}
	}
	return Value{kind: KindArray, a: p}
}

// ValueOf converts a Go value into a Value.
func ValueOf(v any) (Value, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case int:
		return Int(int64(t)), nil
	case int8:
		return Int(int64(t)), nil
	case int16:
		return Int(int64(t)), nil
	case int32:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case uint:
		return Int(clampUint(uint64(t))), nil
	case uint64:
		return Int(clampUint(t)), nil
	case uint8:
		return Int(int64(t)), nil
	case uint16:
		return Int(int64(t)), nil
	case uint32:
		return Int(int64(t)), nil
	case float32:
		return Float(float64(t)), nil
	case float64:
		return Float(t), nil
	case string:
		return String(t), nil
	case *Properties:
		return Array(t), nil
	case map[string]any:
		p, err := NewProperties(t)
		if err != nil {
			return Null(), err
		}
		return Array(p), nil
	case map[string]string:
		p := &Properties{}
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			p.Set(k, String(t[k]))
		}
		return Array(p), nil
	case []any:
		p := &Properties{}
		for i, item := range t {
			iv, err := ValueOf(item)
			if err != nil {
				return Null(), err
			}
			p.Set(strconv.Itoa(i), iv)
		}
		return Array(p), nil
	case []string:
		p := &Properties{}
		for i, item := range t {
			p.Set(strconv.Itoa(i), String(item))
		}
		return Array(p), nil
	}
	return Null(), typeMismatch("ValueOf", v)
}

// MustValue is like ValueOf but panics on error.
func MustValue(v any) Value {
	val, err := ValueOf(v)
	if err != nil {
		panic(err)
	}
	return val
}

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean held by v and whether v is a boolean.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsArray returns the nested bag of a compound value, or nil.
func (v Value) AsArray() *Properties {
	if v.kind != KindArray {
		return nil
	}
	return v.a
}

// Int coerces v to an integer using loose numeric rules: booleans become
// 0/1, strings contribute their leading numeric prefix, anything that is
// not a number becomes 0.
func (v Value) Int() int64 {
	switch v.kind {
	case KindBool:
		if v.b {
			return 1
		}
		return 0
	case KindInt:
		return v.i
	case KindFloat:
		return truncate(v.f)
	case KindString:
		return parseLeadingInt(v.s)
	case KindArray:
		if v.a.Len() > 0 {
			return 1
		}
		return 0
	}
	return 0
}

// Float coerces v to a float with the same rules as Int, keeping fractions.
func (v Value) Float() float64 {
	switch v.kind {
	case KindInt:
		return float64(v.i)
	case KindFloat:
		return v.f
	case KindString:
		return parseLeadingFloat(v.s)
	}
	return float64(v.Int())
}

// String stringifies v: true is "1", false and null are empty, compound
// values have no scalar form and are empty too.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		if v.b {
			return "1"
		}
		return ""
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindString:
		return v.s
	}
	return ""
}

// Interface returns v as a plain Go value.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindArray:
		m := make(map[string]any, v.a.Len())
		for name, item := range v.a.All() {
			m[name] = item.Interface()
		}
		return m
	}
	return nil
}

func clampUint(u uint64) int64 {
	if u > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(u)
}

func truncate(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f <= math.MinInt64 {
		return 0
	}
	return int64(f)
}

// numericPrefix returns the leading number of s ("12px" gives "12", "1.9"
// gives "1.9", "1e3" gives "1e3") and whether it needs float parsing.
func numericPrefix(s string) (string, bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := 0
	for end < len(s) && isDigit(s[end]) {
		end++
		digits++
	}
	isFloat := false
	if end < len(s) && s[end] == '.' {
		frac := end + 1
		for frac < len(s) && isDigit(s[frac]) {
			frac++
		}
		if n := frac - end - 1; n > 0 || digits > 0 {
			isFloat = n > 0
			digits += n
			end = frac
		}
	}
	if digits == 0 {
		return "", false
	}
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		exp := end + 1
		if exp < len(s) && (s[exp] == '+' || s[exp] == '-') {
			exp++
		}
		start := exp
		for exp < len(s) && isDigit(s[exp]) {
			exp++
		}
		if exp > start {
			isFloat = true
			end = exp
		}
	}
	return strings.TrimSuffix(s[:end], "."), isFloat
}

func parseLeadingInt(s string) int64 {
	num, isFloat := numericPrefix(s)
	if num == "" {
		return 0
	}
	if isFloat {
		f, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0
		}
		return truncate(f)
	}
	i, err := strconv.ParseInt(num, 10, 64)
	if err != nil {
		if strings.HasPrefix(num, "-") {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	return i
}

func parseLeadingFloat(s string) float64 {
	num, _ := numericPrefix(s)
	if num == "" {
		return 0
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0
	}
	return f
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
