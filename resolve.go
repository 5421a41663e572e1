// File: lixenwraith/configurator/resolve.go
package configurator

// Source records which input produced a resolved value
type Source string

const (
	// SourceCLI is a value taken from the argument vector
	SourceCLI Source = "cli"
	// SourceConfig is a value already accumulated in the pass (base map, config file, earlier variable)
	SourceConfig Source = "config"
	// SourceDefault is the declared default
	SourceDefault Source = "default"
	// SourceEnv is a value taken from the environment table
	SourceEnv Source = "env"
	// SourceImplicit is the false fallback of boolean variables
	SourceImplicit Source = "implicit"
)

// pass is the state of one compilation; it is never shared between Compile calls
type pass struct {
	args      []string
	env       map[string]string
	envPrefix string
	conf      Configuration
}

// resolve walks the precedence chain and returns the first defined raw value
func (p *pass) resolve(v Variable) (any, Source, bool) {
	if value, ok := argValue(v, p.args); ok {
		return value, SourceCLI, true
	}

	if value, ok := p.conf[v.Name]; ok && value != nil {
		return value, SourceConfig, true
	}

	if v.Default != nil {
		return v.Default, SourceDefault, true
	}

	if v.Env != Disabled {
		if value, ok := p.env[v.EnvAlias(p.envPrefix)]; ok {
			return value, SourceEnv, true
		}
	}

	if v.Kind == KindBool {
		return false, SourceImplicit, true
	}

	return nil, "", false
}

// merge applies file-provided keys over the accumulated configuration
func (p *pass) merge(values map[string]any) {
	for key, value := range values {
		p.conf[key] = value
	}
}
