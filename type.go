// File: lixenwraith/configurator/type.go
package configurator

import (
	"fmt"
	"reflect"
	"strconv"
)

// Configuration maps variable names to their resolved values.
// It also holds any undeclared keys contributed by configuration files or the base map.
type Configuration map[string]any

// Get returns the raw value stored under name
func (c Configuration) Get(name string) (any, bool) {
	val, found := c[name]
	return val, found
}

// String retrieves a string value, converting common scalar types
func (c Configuration) String(name string) (string, error) {
	val, found := c[name]
	if !found {
		return "", fmt.Errorf("key not found: %s", name)
	}
	if val == nil {
		return "", nil // Treat nil as empty string for convenience
	}

	s, err := toText(val)
	if err != nil {
		return "", fmt.Errorf("%w for key %s", err, name)
	}
	return s, nil
}

// Int64 retrieves an integer value.
// Attempts conversion from numeric types, parsable strings, and booleans.
func (c Configuration) Int64(name string) (int64, error) {
	val, found := c[name]
	if !found {
		return 0, fmt.Errorf("key not found: %s", name)
	}
	if val == nil {
		return 0, fmt.Errorf("value for key %s is nil, cannot convert to int64", name)
	}

	v := reflect.ValueOf(val)
	if v.Kind() == reflect.String {
		s := v.String()
		if i, err := strconv.ParseInt(s, 0, 64); err == nil { // Base 0 for auto-detection (e.g., "0xFF")
			return i, nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int64(f), nil // Truncate
		}
		return 0, fmt.Errorf("cannot convert string %q to int64 for key %s", s, name)
	}

	i, err := castNum(val)
	if err != nil {
		return 0, fmt.Errorf("%w for key %s", err, name)
	}
	return i, nil
}

// Bool retrieves a boolean value.
// Attempts conversion from numeric types (0=false, non-zero=true) and parsable strings.
func (c Configuration) Bool(name string) (bool, error) {
	val, found := c[name]
	if !found {
		return false, fmt.Errorf("key not found: %s", name)
	}
	if val == nil {
		return false, fmt.Errorf("value for key %s is nil, cannot convert to bool", name)
	}

	b, err := castBool(val)
	if err != nil {
		return false, fmt.Errorf("%w for key %s", err, name)
	}
	return b, nil
}

// Float64 retrieves a float value.
// Attempts conversion from numeric types, parsable strings, and booleans.
func (c Configuration) Float64(name string) (float64, error) {
	val, found := c[name]
	if !found {
		return 0.0, fmt.Errorf("key not found: %s", name)
	}
	if val == nil {
		return 0.0, fmt.Errorf("value for key %s is nil, cannot convert to float64", name)
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), nil
	case reflect.String:
		s := v.String()
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0.0, fmt.Errorf("cannot convert string %q to float64 for key %s: %w", s, name, err)
		}
		return f, nil
	case reflect.Bool:
		if v.Bool() {
			return 1.0, nil
		}
		return 0.0, nil
	}

	return 0.0, fmt.Errorf("cannot convert type %T to float64 for key %s", val, name)
}

// Strings retrieves a list value as text elements.
// Slices from configuration files are rendered element by element; text is split like an array variable.
func (c Configuration) Strings(name string) ([]string, error) {
	val, found := c[name]
	if !found {
		return nil, fmt.Errorf("key not found: %s", name)
	}

	switch v := val.(type) {
	case nil:
		return nil, nil
	case []string:
		return v, nil
	case string:
		return splitValues(v), nil
	}

	rv := reflect.ValueOf(val)
	if rv.Kind() != reflect.Slice {
		return nil, fmt.Errorf("cannot convert type %T to []string for key %s", val, name)
	}

	out := make([]string, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		s, err := toText(rv.Index(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("element %d of key %s: %w", i, name, err)
		}
		out = append(out, s)
	}
	return out, nil
}
