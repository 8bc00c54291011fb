package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// matchReport is the JSON shape printed by the locate command.
type matchReport struct {
	Exists     bool              `json:"exists"`
	Bounds     string            `json:"bounds,omitempty"`
	Center     *centerReport     `json:"center,omitempty"`
	Text       string            `json:"text,omitempty"`
	Attributes map[string]string `json:"attributes"`
}

type centerReport struct {
	X int `json:"x"`
	Y int `json:"y"`
}

var locateCommand = &cli.Command{
	Name:      "locate",
	Usage:     "Resolve an XPath expression and print the match as JSON",
	ArgsUsage: "<xpath>",
	Action: func(c *cli.Context) error {
		expr, err := requireExpr(c, 0)
		if err != nil {
			return err
		}

		locator, err := setup(c)
		if err != nil {
			return err
		}

		el, err := locator.Locate(expr)
		if err != nil {
			return err
		}

		report := matchReport{
			Exists:     el.Exists(),
			Attributes: el.Attributes(),
		}
		if el.Exists() {
			report.Bounds = el.Bounds().String()
			center, err := el.Center()
			if err != nil {
				return err
			}
			report.Center = &centerReport{X: center.X, Y: center.Y}
			report.Text = el.Text()
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	},
}

var existsCommand = &cli.Command{
	Name:      "exists",
	Usage:     "Exit 0 if the expression matches an on-screen element, 1 otherwise",
	ArgsUsage: "<xpath>",
	Action: func(c *cli.Context) error {
		expr, err := requireExpr(c, 0)
		if err != nil {
			return err
		}

		locator, err := setup(c)
		if err != nil {
			return err
		}

		el, err := locator.Locate(expr)
		if err != nil {
			return err
		}

		if !el.Exists() {
			return cli.Exit(fmt.Sprintf("not found: %s", expr), 1)
		}
		fmt.Println(el.Bounds())
		return nil
	},
}
