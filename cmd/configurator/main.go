// FILE: cmd/configurator/main.go
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/configurator"
	"github.com/lixenwraith/configurator/internal/logging"
)

const appName = "configurator"

func main() {
	if err := newRootCommand(nil).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCommand builds the demo command. A nil env uses the process environment.
// Flag parsing is left to the engine, so every argument reaches it untouched.
func newRootCommand(env map[string]string) *cobra.Command {
	return &cobra.Command{
		Use:                appName + " [--config FILE] [--module NAME] [--name NAME] [--format toml|json|yaml] ...",
		Short:              "Resolve the demo schema from arguments, config files, defaults and environment",
		DisableFlagParsing: true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args, env, cmd.OutOrStdout())
		},
	}
}

// demoSchema declares the variables resolved by the command
func demoSchema() configurator.Schema {
	configFile := configurator.Options{Arg: "config"}
	if path := configurator.DiscoverFile(configurator.DefaultDiscoveryOptions(appName)); path != "" {
		configFile.Default = path
	}

	return configurator.NewBuilder().
		Config(configurator.Var("configFile", configFile)).
		String(configurator.Var("moduleName", configurator.Options{
			Arg: "module",
			Transform: func(value any) (any, error) {
				return strings.ToLower(value.(string)), nil
			},
		})).
		String("name", "otherName").
		Path("userProfile").
		Array("tags").
		Num("workers").
		Bool("verbose").
		String(configurator.Var("format", configurator.Options{Default: configurator.FormatTOML, Env: configurator.Disabled})).
		MustSave()
}

// loggingSchema is compiled on its own first, so the main pass can log at the requested level
func loggingSchema() configurator.Schema {
	return configurator.NewBuilder().
		String(configurator.Var("logLevel", configurator.Options{Arg: "log-level", Env: "LOG_LEVEL", Default: "warn"})).
		MustSave()
}

func run(args []string, env map[string]string, out io.Writer) error {
	newCompiler := func() *configurator.Compiler {
		c := configurator.NewCompiler().WithArgs(args)
		if env != nil {
			c = c.WithEnv(env)
		}
		return c
	}

	logCfg, err := newCompiler().Compile(loggingSchema())
	if err != nil {
		return err
	}
	level, _ := logCfg.String("logLevel")

	logger, err := logging.New(level)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfg, err := newCompiler().WithLogger(logger).Compile(demoSchema())
	if err != nil {
		return err
	}

	format, _ := cfg.String("format")
	logger.Info("configuration resolved", zap.Int("keys", len(cfg)), zap.String("format", format))
	return cfg.Encode(out, format)
}
