// File: lixenwraith/configurator/doc.go

// Package configurator resolves runtime configuration from command-line arguments,
// configuration files, static defaults and environment variables according to a
// declared flat schema, producing a single merged Configuration.
//
// Features:
//   - Typed declarations: array, bool, config, file, num, path (directory), string
//   - Per-variable argument and environment aliases, either of which can be disabled
//   - Chained configuration files (TOML, JSON, YAML) loaded before any other variable
//   - Post-cast transforms
//   - Descriptive errors carrying the variable name, alias and offending value
//   - Typed accessors and struct scanning on the result
//
// Quick Start:
//
//	schema := configurator.NewBuilder().
//	    Config(configurator.Var("configFile", configurator.Options{Arg: "config", Default: "app.toml"})).
//	    String(configurator.Var("name", configurator.Options{Required: true})).
//	    Num("port").
//	    Bool("verbose").
//	    MustSave()
//
//	cfg, err := configurator.Compile(schema)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	name, _ := cfg.String("name")
//	port, _ := cfg.Int64("port")
//
// Precedence (highest to lowest), first defined value wins:
//  1. Command-line arguments (--port=9090, -port 9090, /port:9090)
//  2. Values already accumulated in this pass (config files, base map, earlier variables)
//  3. The declared default
//  4. Environment variables (PORT=9090)
//
// Boolean variables that no source defines resolve to false.
//
// A Compiler never shares state between passes; every Compile call works on its own
// accumulator, so one Compiler may be used from several goroutines.
package configurator
