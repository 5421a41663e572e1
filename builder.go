// File: lixenwraith/configurator/builder.go
package configurator

import (
	"fmt"
	"sort"
)

// Builder accumulates variable declarations into a Schema.
// Each Builder owns its declarations; separate builders share nothing.
type Builder struct {
	vars  []Variable
	names map[string]bool
	err   error
}

// NewBuilder creates an empty schema builder
func NewBuilder() *Builder {
	return &Builder{
		names: make(map[string]bool),
	}
}

// Array declares list variables
func (b *Builder) Array(params ...any) *Builder {
	return b.add(KindArray, params)
}

// Bool declares flag variables
func (b *Builder) Bool(params ...any) *Builder {
	return b.add(KindBool, params)
}

// Config declares configuration file references, loaded before all other variables
func (b *Builder) Config(params ...any) *Builder {
	return b.add(KindConfig, params)
}

// File declares variables holding a path to an existing regular file
func (b *Builder) File(params ...any) *Builder {
	return b.add(KindFile, params)
}

// Num declares integer variables
func (b *Builder) Num(params ...any) *Builder {
	return b.add(KindNum, params)
}

// Path declares variables holding a path to an existing directory
func (b *Builder) Path(params ...any) *Builder {
	return b.add(KindPath, params)
}

// String declares text variables
func (b *Builder) String(params ...any) *Builder {
	return b.add(KindString, params)
}

// add converts each parameter into a declaration of the given kind.
// A parameter is a bare name, a Variable built with Var, or a Vars map.
func (b *Builder) add(kind Kind, params []any) *Builder {
	for _, param := range params {
		switch p := param.(type) {
		case string:
			b.push(Variable{Name: p, Kind: kind})
		case Variable:
			p.Kind = kind
			b.push(p)
		case Vars:
			names := make([]string, 0, len(p))
			for name := range p {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				b.push(Variable{Name: name, Kind: kind, Options: p[name]})
			}
		default:
			b.fail(fmt.Errorf("%w: %T (want string, Variable or Vars)", ErrInvalidParam, param))
		}
	}
	return b
}

func (b *Builder) push(v Variable) {
	if v.Name == "" {
		b.fail(fmt.Errorf("%s declaration: %w", v.Kind, ErrEmptyName))
		return
	}
	if b.names[v.Name] {
		b.fail(fmt.Errorf("%w: %s", ErrDuplicateVariable, v.Name))
		return
	}
	b.names[v.Name] = true
	b.vars = append(b.vars, v)
}

// fail keeps the first error; it is reported by Save
func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Save returns the declarations in call order and resets the builder for reuse
func (b *Builder) Save() (Schema, error) {
	schema, err := Schema(b.vars), b.err
	b.vars = nil
	b.names = make(map[string]bool)
	b.err = nil

	if err != nil {
		return nil, err
	}
	return schema, nil
}

// MustSave is like Save but panics on error
func (b *Builder) MustSave() Schema {
	schema, err := b.Save()
	if err != nil {
		panic(fmt.Sprintf("schema build failed: %v", err))
	}
	return schema
}
