package core

import (
	"github.com/devicelab-dev/hmgo/pkg/hierarchy"
)

// Driver defines the interface for device interaction.
// Implementations: uitest agent client, mock.
// The locator handles query logic; Driver just captures hierarchies and
// executes coordinate-based actions. Any settling pause around actions is
// the driver's concern, not the locator's.
type Driver interface {
	// DumpHierarchy captures the current on-screen element tree.
	// An empty or nil snapshot means nothing is on screen.
	DumpHierarchy() (*hierarchy.Snapshot, error)

	// Click taps at screen coordinates.
	Click(x, y int) error

	// DoubleClick double-taps at screen coordinates.
	DoubleClick(x, y int) error

	// LongClick long-presses at screen coordinates.
	LongClick(x, y int) error

	// InputText types text into the currently focused element.
	InputText(text string) error
}
