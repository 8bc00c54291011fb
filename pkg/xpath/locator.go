// Package xpath resolves XPath expressions against on-screen hierarchy
// snapshots and exposes the match as an actionable element handle.
package xpath

import (
	"fmt"

	"github.com/antchfx/xmlquery"

	"github.com/devicelab-dev/hmgo/pkg/core"
	"github.com/devicelab-dev/hmgo/pkg/hierarchy"
	"github.com/devicelab-dev/hmgo/pkg/logger"
)

// Locator resolves XPath expressions to elements. Each Locate call
// captures one fresh hierarchy snapshot from the driver; captures are
// potentially slow, so callers should not loop over Locate without reason.
type Locator struct {
	d core.Driver
}

// New creates a Locator bound to a driver.
func New(d core.Driver) *Locator {
	return &Locator{d: d}
}

// Locate resolves the expression against the current on-screen hierarchy.
//
// Zero matches is not an error: the returned element reports
// Exists() == false and only fails once a coordinate-requiring operation
// is invoked on it. Errors are reserved for an empty hierarchy, a driver
// failure, or a malformed expression (passed through from the evaluator).
func (l *Locator) Locate(expr string) (*Element, error) {
	snap, err := l.d.DumpHierarchy()
	if err != nil {
		return nil, fmt.Errorf("dump hierarchy: %w", err)
	}
	if snap.Empty() {
		return nil, core.ErrEmptyHierarchy
	}

	doc := hierarchy.Normalize(snap)

	nodes, err := xmlquery.QueryAll(doc, expr)
	if err != nil {
		return nil, fmt.Errorf("evaluate xpath %q: %w", expr, err)
	}

	if len(nodes) == 0 {
		logger.Debug("xpath %q: no match", expr)
		return newUnbound(l.d), nil
	}

	// First match in document order; the evaluator's order is the only
	// tie-break.
	node := nodes[0]
	attrs := attributeMap(node)

	el := &Element{
		attrs: attrs,
		node:  node,
		d:     l.d,
	}

	if b, ok := core.ParseBounds(attrs["bounds"]); ok {
		el.bounds = &b
		logger.Debug("xpath %q bounds: %s", expr, b)
	} else {
		logger.Warn("xpath %q matched a node without usable bounds", expr)
	}

	return el, nil
}

func attributeMap(node *xmlquery.Node) map[string]string {
	attrs := make(map[string]string, len(node.Attr))
	for _, a := range node.Attr {
		attrs[a.Name.Local] = a.Value
	}
	return attrs
}
