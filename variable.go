// File: lixenwraith/configurator/variable.go
package configurator

import (
	"fmt"
	"strings"
)

// Disabled switches off argument or environment lookup when used as Arg or Env
const Disabled = "-"

// TransformFunc post-processes a cast value; its result becomes the final value
type TransformFunc func(value any) (any, error)

// Options holds the optional fields of a declaration
type Options struct {
	// Arg is the alias matched on the command line (default: the variable name)
	Arg string
	// Env is the environment variable name (default: the upper-cased variable name)
	Env string
	// Default is the static fallback value
	Default any
	// Required makes absence after all sources a failure
	Required bool
	// Transform is applied after casting
	Transform TransformFunc
}

// Variable is one schema entry
type Variable struct {
	Name string
	Kind Kind
	Options
}

// Var builds a named declaration for use with the Builder type methods
func Var(name string, opts Options) Variable {
	return Variable{Name: name, Options: opts}
}

// Vars declares several variables at once; names are added in sorted order
type Vars map[string]Options

// ArgAlias returns the alias used for argument matching
func (v Variable) ArgAlias() string {
	if v.Arg == "" {
		return v.Name
	}
	return v.Arg
}

// EnvAlias returns the environment variable name, prefixing derived names only
func (v Variable) EnvAlias(prefix string) string {
	if v.Env == "" {
		return prefix + strings.ToUpper(v.Name)
	}
	return v.Env
}

// Schema is the ordered list of declarations compiled in one pass
type Schema []Variable

// Validate checks that every name is non-empty and unique
func (s Schema) Validate() error {
	seen := make(map[string]bool, len(s))
	for i, v := range s {
		if v.Name == "" {
			return fmt.Errorf("declaration %d: %w", i, ErrEmptyName)
		}
		if seen[v.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateVariable, v.Name)
		}
		seen[v.Name] = true
	}
	return nil
}

// partition splits config references from the rest, keeping relative order
func (s Schema) partition() (configs, others Schema) {
	for _, v := range s {
		if v.Kind == KindConfig {
			configs = append(configs, v)
		} else {
			others = append(others, v)
		}
	}
	return configs, others
}
