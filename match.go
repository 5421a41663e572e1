// File: lixenwraith/configurator/match.go
package configurator

import "strings"

const (
	// ArgPrefixes are the characters that may introduce an argument, in any number
	ArgPrefixes = "-+/"
	// ArgValueSeparators separate an argument alias from its inline value
	ArgValueSeparators = "=:"
)

// Match describes where a variable occurs in the argument vector
type Match struct {
	Found    bool
	Index    int
	Value    string
	HasValue bool
}

// MatchArg returns the first token in args naming the variable's argument alias.
// The alias is compared case-insensitively and literally; it is never interpreted
// as a pattern.
func MatchArg(v Variable, args []string) Match {
	if v.Arg == Disabled {
		return Match{Index: -1}
	}
	alias := v.ArgAlias()
	if alias == "" {
		return Match{Index: -1}
	}

	for i, arg := range args {
		if value, hasValue, ok := matchToken(arg, alias); ok {
			return Match{Found: true, Index: i, Value: value, HasValue: hasValue}
		}
	}
	return Match{Index: -1}
}

// matchToken checks a single token against an alias
func matchToken(token, alias string) (value string, hasValue bool, ok bool) {
	body := strings.TrimLeft(token, ArgPrefixes)
	if len(body) == len(token) {
		return "", false, false // No prefix
	}
	if len(body) < len(alias) || !strings.EqualFold(body[:len(alias)], alias) {
		return "", false, false
	}

	rest := body[len(alias):]
	if rest == "" {
		return "", false, true
	}
	if strings.IndexByte(ArgValueSeparators, rest[0]) < 0 {
		// "--names" is not "--name"
		return "", false, false
	}
	return rest[1:], true, true
}

// argValue extracts the raw argument value for a variable.
// Booleans without an inline value are true; other kinds take the next token.
func argValue(v Variable, args []string) (any, bool) {
	m := MatchArg(v, args)
	if !m.Found {
		return nil, false
	}
	if m.HasValue {
		return m.Value, true
	}
	if v.Kind == KindBool {
		return true, true
	}
	if m.Index+1 < len(args) {
		return args[m.Index+1], true
	}
	return nil, false
}
