package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var tapCommand = &cli.Command{
	Name:      "tap",
	Usage:     "Tap the element matching an XPath expression",
	ArgsUsage: "<xpath>",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "double",
			Usage: "Double-tap instead of a single tap",
		},
		&cli.BoolFlag{
			Name:  "long",
			Usage: "Long-press instead of a single tap",
		},
		&cli.BoolFlag{
			Name:  "if-exists",
			Usage: "Silently skip when no element matches",
		},
	},
	Action: func(c *cli.Context) error {
		expr, err := requireExpr(c, 0)
		if err != nil {
			return err
		}
		if c.Bool("double") && c.Bool("long") {
			return fmt.Errorf("--double and --long are mutually exclusive")
		}

		locator, err := setup(c)
		if err != nil {
			return err
		}

		el, err := locator.Locate(expr)
		if err != nil {
			return err
		}

		switch {
		case c.Bool("double"):
			return el.DoubleClick()
		case c.Bool("long"):
			return el.LongClick()
		case c.Bool("if-exists"):
			return el.ClickIfExists()
		default:
			return el.Click()
		}
	},
}

var inputCommand = &cli.Command{
	Name:      "input",
	Usage:     "Focus the matching element and type text into it",
	ArgsUsage: "<xpath> <text>",
	Action: func(c *cli.Context) error {
		expr, err := requireExpr(c, 0)
		if err != nil {
			return err
		}
		text := c.Args().Get(1)
		if text == "" {
			return fmt.Errorf("missing text argument")
		}

		locator, err := setup(c)
		if err != nil {
			return err
		}

		el, err := locator.Locate(expr)
		if err != nil {
			return err
		}

		return el.InputText(text)
	},
}
