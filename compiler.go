// File: lixenwraith/configurator/compiler.go
package configurator

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Compiler resolves schemas against one argument vector and environment table.
// Configure it with the With* methods before the first Compile call.
type Compiler struct {
	args      []string
	env       map[string]string
	envPrefix string
	base      map[string]any
	loader    LoaderFunc
	logger    *zap.Logger
}

// NewCompiler captures the process arguments and environment
func NewCompiler() *Compiler {
	return &Compiler{
		args:   os.Args[1:],
		env:    environ(),
		loader: LoadFile,
		logger: zap.NewNop(),
	}
}

// environ converts os.Environ into a lookup table
func environ() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if key, value, ok := strings.Cut(kv, "="); ok {
			env[key] = value
		}
	}
	return env
}

// WithArgs sets the argument vector (without the program name)
func (c *Compiler) WithArgs(args []string) *Compiler {
	c.args = args
	return c
}

// WithEnv sets the environment table
func (c *Compiler) WithEnv(env map[string]string) *Compiler {
	c.env = env
	return c
}

// WithEnvPrefix prepends prefix to derived environment names; explicit Env aliases are unchanged
func (c *Compiler) WithEnvPrefix(prefix string) *Compiler {
	c.envPrefix = prefix
	return c
}

// WithBase seeds every pass with a copy of base
func (c *Compiler) WithBase(base map[string]any) *Compiler {
	c.base = base
	return c
}

// WithLoader replaces the configuration file loader
func (c *Compiler) WithLoader(fn LoaderFunc) *Compiler {
	if fn != nil {
		c.loader = fn
	}
	return c
}

// WithLogger sets the logger used for resolution diagnostics
func (c *Compiler) WithLogger(logger *zap.Logger) *Compiler {
	if logger != nil {
		c.logger = logger
	}
	return c
}

// Compile resolves every declaration of schema and returns the merged configuration.
// Config references are loaded first, in order; the remaining variables follow in order,
// each one visible to the variables after it. No configuration is returned on failure.
func (c *Compiler) Compile(schema Schema) (Configuration, error) {
	if err := schema.Validate(); err != nil {
		return nil, fmt.Errorf("compile configuration: %w", err)
	}

	p := &pass{
		args:      c.args,
		env:       c.env,
		envPrefix: c.envPrefix,
		conf:      make(Configuration, len(c.base)+len(schema)),
	}
	for key, value := range c.base {
		p.conf[key] = value
	}

	configs, others := schema.partition()

	for _, v := range configs {
		if err := c.loadConfig(p, v); err != nil {
			return nil, c.fail(err)
		}
	}

	for _, v := range others {
		if err := c.parseVariable(p, v); err != nil {
			return nil, c.fail(err)
		}
	}

	return p.conf, nil
}

func (c *Compiler) fail(err error) error {
	c.logger.Warn("configuration compile failed", zap.Error(err))
	return fmt.Errorf("compile configuration: %w", err)
}

// loadConfig resolves a config reference, merges the file and records its path
func (c *Compiler) loadConfig(p *pass, v Variable) error {
	path, ok, err := c.resolveVariable(p, v)
	if err != nil || !ok {
		return err
	}

	text, isText := path.(string)
	if !isText {
		return variableError(v, path, fmt.Errorf("%w: transform returned %T", ErrMissingOrWrongTypePath, path))
	}

	values, err := c.loader(text)
	if err != nil {
		return variableError(v, text, err)
	}

	p.merge(values)
	p.conf[v.Name] = text

	c.logger.Debug("configuration file loaded",
		zap.String("name", v.Name),
		zap.String("path", text),
		zap.Int("keys", len(values)))
	return nil
}

// parseVariable resolves and casts an ordinary variable into the accumulator
func (c *Compiler) parseVariable(p *pass, v Variable) error {
	value, ok, err := c.resolveVariable(p, v)
	if err != nil {
		return err
	}
	if ok {
		p.conf[v.Name] = value
	}
	return nil
}

// resolveVariable runs the precedence chain and the caster for one declaration.
// ok is false when the variable is absent and not required.
func (c *Compiler) resolveVariable(p *pass, v Variable) (any, bool, error) {
	raw, source, found := p.resolve(v)
	if !found {
		if v.Required {
			return nil, false, variableError(v, nil, ErrMissingRequired)
		}
		c.logger.Debug("variable absent", zap.String("name", v.Name), zap.Stringer("kind", v.Kind))
		return nil, false, nil
	}

	value, err := Cast(v, raw)
	if err != nil {
		return nil, false, variableError(v, raw, err)
	}

	c.logger.Debug("variable resolved",
		zap.String("name", v.Name),
		zap.Stringer("kind", v.Kind),
		zap.String("source", string(source)))
	return value, true, nil
}

func variableError(v Variable, value any, err error) error {
	return &VariableError{
		Name:  v.Name,
		Arg:   v.ArgAlias(),
		Value: value,
		Err:   err,
	}
}

// Compile resolves schema against the process arguments and environment
func Compile(schema Schema) (Configuration, error) {
	return NewCompiler().Compile(schema)
}

// MustCompile is like Compile but panics on error
func MustCompile(schema Schema) Configuration {
	cfg, err := Compile(schema)
	if err != nil {
		panic(fmt.Sprintf("configuration compile failed: %v", err))
	}
	return cfg
}
