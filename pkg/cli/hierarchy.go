package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/hmgo/pkg/core"
	"github.com/devicelab-dev/hmgo/pkg/hierarchy"
)

var hierarchyCommand = &cli.Command{
	Name:  "hierarchy",
	Usage: "Dump the normalized on-screen element tree as XML",
	Action: func(c *cli.Context) error {
		d, err := setupDriver(c)
		if err != nil {
			return err
		}

		snap, err := d.DumpHierarchy()
		if err != nil {
			return err
		}
		if snap.Empty() {
			return core.ErrEmptyHierarchy
		}

		doc := hierarchy.Normalize(snap)
		fmt.Println(doc.OutputXML(false))
		return nil
	},
}
