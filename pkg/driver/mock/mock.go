// Package mock provides a mock driver for testing without a real device.
package mock

import (
	"github.com/devicelab-dev/hmgo/pkg/hierarchy"
)

// Call records one driver invocation.
type Call struct {
	Op   string // dumpHierarchy, click, doubleClick, longClick, inputText
	X, Y int
	Text string
}

// Driver is a mock implementation of core.Driver for testing.
type Driver struct {
	// Snapshot is returned by DumpHierarchy. Nil simulates an empty screen.
	Snapshot *hierarchy.Snapshot
	// DumpErr makes DumpHierarchy fail.
	DumpErr error
	// ActionErr makes every gesture and text action fail.
	ActionErr error

	// Calls records every invocation in order.
	Calls []Call
}

// New creates a mock driver serving the given snapshot.
func New(snap *hierarchy.Snapshot) *Driver {
	return &Driver{Snapshot: snap}
}

// DumpHierarchy returns the canned snapshot.
func (d *Driver) DumpHierarchy() (*hierarchy.Snapshot, error) {
	d.Calls = append(d.Calls, Call{Op: "dumpHierarchy"})
	if d.DumpErr != nil {
		return nil, d.DumpErr
	}
	return d.Snapshot, nil
}

// Click records a tap.
func (d *Driver) Click(x, y int) error {
	d.Calls = append(d.Calls, Call{Op: "click", X: x, Y: y})
	return d.ActionErr
}

// DoubleClick records a double tap.
func (d *Driver) DoubleClick(x, y int) error {
	d.Calls = append(d.Calls, Call{Op: "doubleClick", X: x, Y: y})
	return d.ActionErr
}

// LongClick records a long press.
func (d *Driver) LongClick(x, y int) error {
	d.Calls = append(d.Calls, Call{Op: "longClick", X: x, Y: y})
	return d.ActionErr
}

// InputText records a text entry.
func (d *Driver) InputText(text string) error {
	d.Calls = append(d.Calls, Call{Op: "inputText", Text: text})
	return d.ActionErr
}

// ActionCalls returns the recorded calls excluding hierarchy dumps.
func (d *Driver) ActionCalls() []Call {
	var actions []Call
	for _, c := range d.Calls {
		if c.Op != "dumpHierarchy" {
			actions = append(actions, c)
		}
	}
	return actions
}
