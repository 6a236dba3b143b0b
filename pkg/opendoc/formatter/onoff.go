package formatter

import (
	"strconv"
	"strings"

	"github.com/benjaminschreck/go-opendoc/pkg/opendoc/element"
)

// Canonical WordprocessingML on/off values.
const (
	On  = "on"
	Off = "off"
)

var (
	truthy = map[string]bool{"on": true, "true": true, "yes": true, "1": true}
	falsy  = map[string]bool{"off": true, "false": true, "no": true, "0": true}
)

// GetOnOff maps a value onto "on" or "off". The second result is false when
// the value is null or not a recognised toggle; such values are treated as
// absent.
func GetOnOff(v element.Value) (string, bool) {
	if v.IsNull() {
		return "", false
	}
	if b, ok := v.AsBool(); ok {
		if b {
			return On, true
		}
		return Off, true
	}
	switch v.Kind() {
	case element.KindInt, element.KindFloat, element.KindString:
	default:
		return "", false
	}
	s := strings.ToLower(v.String())
	switch {
	case truthy[s]:
		return On, true
	case falsy[s]:
		return Off, true
	}
	if v.Kind() == element.KindString {
		if f, ok := numericString(s); ok {
			switch f {
			case 1:
				return On, true
			case 0:
				return Off, true
			}
		}
	}
	return "", false
}

// numericString parses s as a decimal number, allowing surrounding
// whitespace. "1.0", "+1" and "00" parse; "inf", "0x1" and "1px" do not.
func numericString(s string) (float64, bool) {
	s = strings.Trim(s, " \t\n\r\v\f")
	if s == "" || strings.Trim(s, "0123456789+-.e") != "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}

func onOffValue(v element.Value) element.Value {
	s, ok := GetOnOff(v)
	if !ok {
		return element.Null()
	}
	return element.String(s)
}
