package deromanize

// asMap coerces a generic profile node to map[string]any.
func asMap(where string, v any) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, &BadEntryError{Where: where, Got: v}
	}
	return m, nil
}

// asSlice coerces a generic profile node to []any.
func asSlice(where string, v any) ([]any, error) {
	s, ok := v.([]any)
	if !ok {
		return nil, &BadEntryError{Where: where, Got: v}
	}
	return s, nil
}

// asString coerces a generic profile node to string.
func asString(where string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", &BadEntryError{Where: where, Got: v}
	}
	return s, nil
}

// asInt coerces a generic profile node (int, int64, or float64, as a YAML
// decoder may produce any of them) to int.
func asInt(where string, v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	default:
		return 0, &BadEntryError{Where: where, Got: v}
	}
}
