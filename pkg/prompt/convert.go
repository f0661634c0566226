package prompt

import (
	"fmt"
	"strconv"
	"strings"
)

// ConvertAnswer coerces a raw textual answer into the type of the field's
// default. An empty answer yields the default unchanged.
func ConvertAnswer(raw string, def interface{}) (interface{}, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	switch def.(type) {
	case int:
		return strconv.Atoi(raw)
	case float64:
		return strconv.ParseFloat(raw, 64)
	case bool:
		return strconv.ParseBool(raw)
	case string:
		return raw, nil
	}
	return nil, fmt.Errorf("unsupported default type %T", def)
}

func validInt(v interface{}) error {
	s, _ := v.(string)
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("%q is not a valid integer", s)
	}
	return nil
}

func validFloat(v interface{}) error {
	s, _ := v.(string)
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
		return fmt.Errorf("%q is not a valid number", s)
	}
	return nil
}
