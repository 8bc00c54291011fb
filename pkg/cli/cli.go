// Package cli provides the command-line interface for hmgo.
package cli

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/hmgo/pkg/config"
	"github.com/devicelab-dev/hmgo/pkg/core"
	"github.com/devicelab-dev/hmgo/pkg/driver/uitest"
	"github.com/devicelab-dev/hmgo/pkg/logger"
	"github.com/devicelab-dev/hmgo/pkg/xpath"
)

// Version is set at build time.
var Version = "dev"

// GlobalFlags are available to all commands.
var GlobalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "agent-url",
		Aliases: []string{"a"},
		Usage:   "Base URL of the forwarded uitest agent",
		EnvVars: []string{"HMGO_AGENT_URL"},
	},
	&cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to hmgo.yaml (defaults to the working directory)",
		EnvVars: []string{"HMGO_CONFIG"},
	},
	&cli.DurationFlag{
		Name:    "settle",
		Usage:   "Pause applied after each device action",
		Value:   -1, // negative means "use config"
		EnvVars: []string{"HMGO_SETTLE"},
	},
	&cli.StringFlag{
		Name:    "log-file",
		Usage:   "Write logs to a file instead of stderr",
		EnvVars: []string{"HMGO_LOG_FILE"},
	},
	&cli.BoolFlag{
		Name:    "verbose",
		Usage:   "Enable verbose logging",
		EnvVars: []string{"HMGO_VERBOSE"},
	},
}

// Execute runs the CLI.
func Execute() {
	app := &cli.App{
		Name:    "hmgo",
		Usage:   "XPath locator for on-device UI automation",
		Version: Version,
		Description: `hmgo resolves XPath expressions against the device's on-screen
element tree and drives the matched element.

Examples:
  hmgo locate "//Button[@text='Login']"
  hmgo tap "//Button[@text='Login']"
  hmgo input "//TextInput[1]" "user@example.com"
  hmgo hierarchy`,
		Flags: GlobalFlags,
		Commands: []*cli.Command{
			hierarchyCommand,
			locateCommand,
			existsCommand,
			tapCommand,
			inputCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup applies logging flags and builds the locator from configuration.
func setup(c *cli.Context) (*xpath.Locator, error) {
	d, err := setupDriver(c)
	if err != nil {
		return nil, err
	}
	return xpath.New(d), nil
}

// setupDriver applies logging flags and builds the uitest driver.
func setupDriver(c *cli.Context) (core.Driver, error) {
	if path := c.String("log-file"); path != "" {
		if err := logger.Init(path); err != nil {
			return nil, err
		}
	}
	logger.SetVerbose(c.Bool("verbose"))

	var cfg *config.Config
	var err error
	if path := c.String("config"); path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadFromDir(".")
	}
	if err != nil {
		return nil, err
	}

	if url := c.String("agent-url"); url != "" {
		cfg.AgentURL = url
	}
	if settle := c.Duration("settle"); settle >= 0 {
		cfg.Settle = config.Duration(settle)
	}
	if cfg.AgentURL == "" {
		return nil, core.ErrInvalidConfig.WithMessage("no agent URL configured")
	}

	return uitest.NewDriver(cfg), nil
}

// requireExpr returns the xpath argument at position i or fails usage.
func requireExpr(c *cli.Context, i int) (string, error) {
	expr := c.Args().Get(i)
	if expr == "" {
		return "", fmt.Errorf("missing xpath expression argument")
	}
	return expr, nil
}
