package agent

import (
	"fmt"
	"strconv"
)

// validateArgs checks args against a tool's declared JSON schema:
// required fields must be present and every provided value must be
// coercible to its declared type. Coerced values are written back so
// executors see canonical types (string, int64, bool).
func validateArgs(schema map[string]interface{}, args map[string]interface{}) error {
	if reqList, ok := schema["required"].([]string); ok {
		for _, name := range reqList {
			if _, present := args[name]; !present {
				return fmt.Errorf("missing required parameter: %s", name)
			}
		}
	}

	props, _ := schema["properties"].(map[string]interface{})
	for name, raw := range args {
		details, ok := props[name].(map[string]interface{})
		if !ok {
			continue
		}
		declared, _ := details["type"].(string)

		switch declared {
		case "string":
			s, err := coerceString(raw)
			if err != nil {
				return fmt.Errorf("parameter %s: %v", name, err)
			}
			args[name] = s
		case "integer":
			n, err := coerceInt(raw)
			if err != nil {
				return fmt.Errorf("parameter %s: %v", name, err)
			}
			args[name] = n
		case "boolean":
			b, err := coerceBool(raw)
			if err != nil {
				return fmt.Errorf("parameter %s: %v", name, err)
			}
			args[name] = b
		}
	}

	return nil
}

func coerceString(v interface{}) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case nil:
		return "", nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case int:
		return strconv.Itoa(t), nil
	default:
		return "", fmt.Errorf("expected string, got %T", v)
	}
}

func coerceInt(v interface{}) (int64, error) {
	switch t := v.(type) {
	case int64:
		return t, nil
	case int:
		return int64(t), nil
	case float64:
		return int64(t), nil
	case string:
		n, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("expected integer, got %q", t)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("expected integer, got %T", v)
	}
}

func coerceBool(v interface{}) (bool, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		b, err := strconv.ParseBool(t)
		if err != nil {
			return false, fmt.Errorf("expected boolean, got %q", t)
		}
		return b, nil
	default:
		return false, fmt.Errorf("expected boolean, got %T", v)
	}
}
