// File: lixenwraith/configurator/cast.go
package configurator

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"unicode"
)

// ValueDelimiters split array text into elements
const ValueDelimiters = ",;|"

// Cast converts a resolved raw value into the declared kind and applies the transform.
// It is only called for values that were actually resolved.
func Cast(v Variable, raw any) (any, error) {
	var (
		value any
		err   error
	)

	switch v.Kind {
	case KindBool:
		value, err = castBool(raw)
	case KindNum:
		value, err = castNum(raw)
	case KindArray:
		value, err = castArray(raw)
	case KindFile, KindConfig:
		value, err = castFile(raw)
	case KindPath:
		value, err = castDir(raw)
	default:
		value, err = toText(raw)
	}
	if err != nil {
		return nil, err
	}

	if v.Transform != nil {
		return v.Transform(value)
	}
	return value, nil
}

func castBool(raw any) (bool, error) {
	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.String:
		b, err := strconv.ParseBool(strings.TrimSpace(rv.String()))
		if err != nil {
			return false, fmt.Errorf("%w: %q", ErrInvalidBool, rv.String())
		}
		return b, nil
	// Numeric interpretation: 0 is false, non-zero is true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0, nil
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0, nil
	}
	return false, fmt.Errorf("%w: cannot convert type %T", ErrInvalidBool, raw)
}

func castNum(raw any) (int64, error) {
	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > uint64(1<<63-1) {
			return 0, fmt.Errorf("%w: %d overflows int64", ErrInvalidNumber, u)
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		// Truncate toward zero
		return int64(rv.Float()), nil
	case reflect.String:
		return parseLeadingInt(rv.String())
	case reflect.Bool:
		if rv.Bool() {
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("%w: cannot convert type %T", ErrInvalidNumber, raw)
}

// parseLeadingInt parses the integer at the start of s, ignoring any trailing text ("7px" is 7)
func parseLeadingInt(s string) (int64, error) {
	trimmed := strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(trimmed) && (trimmed[end] == '+' || trimmed[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(trimmed) && trimmed[end] >= '0' && trimmed[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}

	n, err := strconv.ParseInt(trimmed[:end], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidNumber, s, err)
	}
	return n, nil
}

func castArray(raw any) (any, error) {
	if raw != nil && reflect.TypeOf(raw).Kind() == reflect.Slice {
		return raw, nil
	}
	text, err := toText(raw)
	if err != nil {
		return nil, err
	}
	return splitValues(text), nil
}

// splitValues splits on every delimiter, keeping empty elements
func splitValues(text string) []string {
	var (
		parts []string
		start int
	)
	for i := 0; i < len(text); i++ {
		if strings.IndexByte(ValueDelimiters, text[i]) >= 0 {
			parts = append(parts, text[start:i])
			start = i + 1
		}
	}
	return append(parts, text[start:])
}

func castFile(raw any) (string, error) {
	return castFSPath(raw, func(info os.FileInfo) bool { return info.Mode().IsRegular() }, "regular file")
}

func castDir(raw any) (string, error) {
	return castFSPath(raw, func(info os.FileInfo) bool { return info.IsDir() }, "directory")
}

// castFSPath resolves raw to an absolute path and checks its kind.
// A missing path and a kind mismatch are reported the same way.
func castFSPath(raw any, isKind func(os.FileInfo) bool, want string) (string, error) {
	text, err := toText(raw)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", fmt.Errorf("%w: empty path", ErrMissingOrWrongTypePath)
	}

	abs, err := filepath.Abs(text)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrMissingOrWrongTypePath, text, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrMissingOrWrongTypePath, abs, err)
	}
	if !isKind(info) {
		return "", fmt.Errorf("%w: %s is not a %s", ErrMissingOrWrongTypePath, abs, want)
	}
	return abs, nil
}

// toText renders scalar values as text; config files may hold numbers or booleans
// for variables declared as strings.
func toText(raw any) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	case []byte:
		return string(v), nil
	case int, int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(raw).Int(), 10), nil
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(reflect.ValueOf(raw).Uint(), 10), nil
	case float32, float64:
		return strconv.FormatFloat(reflect.ValueOf(raw).Float(), 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return "", fmt.Errorf("cannot convert type %T to text", raw)
	}
}
