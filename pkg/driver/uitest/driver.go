package uitest

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/devicelab-dev/hmgo/pkg/config"
	"github.com/devicelab-dev/hmgo/pkg/hierarchy"
)

// tapRequest is the body for tap and doubleTap gestures.
type tapRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// longTapRequest is the body for long-press gestures.
type longTapRequest struct {
	X        int `json:"x"`
	Y        int `json:"y"`
	Duration int `json:"duration"` // milliseconds
}

// inputTextRequest is the body for text entry.
type inputTextRequest struct {
	Text string `json:"text"`
}

// Driver implements core.Driver against the uitest agent. It applies the
// configured settle pause after every successful action, keeping the
// pacing policy out of the element handle.
type Driver struct {
	client    *Client
	settle    time.Duration
	longPress time.Duration
}

// NewDriver creates a driver from the workspace configuration.
func NewDriver(cfg *config.Config) *Driver {
	return &Driver{
		client:    NewClient(cfg.AgentURL, cfg.Timeout.Std()),
		settle:    cfg.Settle.Std(),
		longPress: cfg.LongPress.Std(),
	}
}

// DumpHierarchy captures the current on-screen element tree.
func (d *Driver) DumpHierarchy() (*hierarchy.Snapshot, error) {
	data, err := d.client.request("GET", "/hierarchy", nil)
	if err != nil {
		return nil, err
	}

	var snap hierarchy.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse hierarchy: %w", err)
	}

	return &snap, nil
}

// Click taps at screen coordinates.
func (d *Driver) Click(x, y int) error {
	_, err := d.client.request("POST", "/gesture/tap", tapRequest{X: x, Y: y})
	if err != nil {
		return err
	}
	d.pause()
	return nil
}

// DoubleClick double-taps at screen coordinates.
func (d *Driver) DoubleClick(x, y int) error {
	_, err := d.client.request("POST", "/gesture/doubleTap", tapRequest{X: x, Y: y})
	if err != nil {
		return err
	}
	d.pause()
	return nil
}

// LongClick long-presses at screen coordinates.
func (d *Driver) LongClick(x, y int) error {
	req := longTapRequest{
		X:        x,
		Y:        y,
		Duration: int(d.longPress / time.Millisecond),
	}
	_, err := d.client.request("POST", "/gesture/longTap", req)
	if err != nil {
		return err
	}
	d.pause()
	return nil
}

// InputText types text into the currently focused element.
func (d *Driver) InputText(text string) error {
	_, err := d.client.request("POST", "/input/text", inputTextRequest{Text: text})
	if err != nil {
		return err
	}
	d.pause()
	return nil
}

// pause lets the UI settle after an action.
func (d *Driver) pause() {
	if d.settle > 0 {
		time.Sleep(d.settle)
	}
}
