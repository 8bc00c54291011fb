package xpath

import (
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/devicelab-dev/hmgo/pkg/core"
	"github.com/devicelab-dev/hmgo/pkg/logger"
)

// Element is the handle returned by a Locate call. It is either bound
// (the query matched a node with parseable bounds) or unbound; the state
// never changes after construction, and a stale handle does not
// re-validate against a changed screen. An unbound element is a valid
// value: only coordinate-requiring operations fail on it.
type Element struct {
	bounds *core.Bounds
	attrs  map[string]string
	node   *xmlquery.Node
	d      core.Driver

	center *core.Point // computed on first access
}

func newUnbound(d core.Driver) *Element {
	return &Element{
		attrs: map[string]string{},
		d:     d,
	}
}

// Exists reports whether the query resolved to an on-screen element.
func (e *Element) Exists() bool {
	return e.bounds != nil
}

// Bounds returns the matched element's screen rectangle, nil when unbound.
func (e *Element) Bounds() *core.Bounds {
	return e.bounds
}

// Center returns the midpoint of the element's bounds, memoized for the
// element's lifetime. Fails with ErrElementNotFound when unbound; every
// coordinate-based action verifies the center through this path first.
func (e *Element) Center() (core.Point, error) {
	if e.center != nil {
		return *e.center, nil
	}
	if e.bounds == nil {
		return core.Point{}, core.ErrElementNotFound
	}
	c := e.bounds.Center()
	e.center = &c
	return c, nil
}

// Text returns the element's textual content. Resolution priority:
// the node's text attribute, then the node's raw inner text, both
// trimmed; different element kinds expose text through different
// channels in the hierarchy. Never fails; an unbound element logs a
// diagnostic and yields the empty string.
func (e *Element) Text() string {
	if !e.Exists() {
		logger.Warn("element does not exist, cannot read text")
		return ""
	}

	if text := strings.TrimSpace(e.attrs["text"]); text != "" {
		return text
	}

	if e.node == nil {
		logger.Warn("element has no backing node, falling back to empty text")
		return ""
	}

	return strings.TrimSpace(e.node.InnerText())
}

// Attributes returns the matched node's sanitized attributes, empty when
// unbound. The map is the element's own copy; mutating it does not affect
// any other handle.
func (e *Element) Attributes() map[string]string {
	return e.attrs
}

// Attribute returns a single attribute value, empty when absent.
func (e *Element) Attribute(name string) string {
	return e.attrs[name]
}

// Type returns the matched node's component type.
func (e *Element) Type() string {
	return e.attrs["type"]
}

// Click taps the element's center. Fails with ErrElementNotFound when
// unbound, before any driver call.
func (e *Element) Click() error {
	c, err := e.Center()
	if err != nil {
		return err
	}
	return e.d.Click(c.X, c.Y)
}

// ClickIfExists taps the element's center, silently skipping when the
// element is absent. Used where absence is an expected, benign condition.
func (e *Element) ClickIfExists() error {
	if !e.Exists() {
		logger.Debug("clickIfExists: xpath not found, skipping")
		return nil
	}
	return e.Click()
}

// DoubleClick double-taps the element's center.
func (e *Element) DoubleClick() error {
	c, err := e.Center()
	if err != nil {
		return err
	}
	return e.d.DoubleClick(c.X, c.Y)
}

// LongClick long-presses the element's center.
func (e *Element) LongClick() error {
	c, err := e.Center()
	if err != nil {
		return err
	}
	return e.d.LongClick(c.X, c.Y)
}

// InputText clicks the element to focus it, then types the text.
func (e *Element) InputText(text string) error {
	if err := e.Click(); err != nil {
		return err
	}
	return e.d.InputText(text)
}
