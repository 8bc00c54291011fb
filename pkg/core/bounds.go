// Package core defines shared types for the locator engine: screen
// geometry, the device driver contract, and structured errors.
package core

import (
	"fmt"
	"regexp"
	"strconv"
)

// Point represents screen coordinates in device pixels.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Bounds represents the on-screen rectangle of a UI element,
// top-left and bottom-right corners in device pixels.
type Bounds struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

// boundsRe matches the hierarchy wire format "[x1,y1][x2,y2]".
var boundsRe = regexp.MustCompile(`^\[(-?\d+),(-?\d+)\]\[(-?\d+),(-?\d+)\]$`)

// ParseBounds parses a bounds attribute string "[x1,y1][x2,y2]".
// Reports false for any other format.
func ParseBounds(s string) (Bounds, bool) {
	m := boundsRe.FindStringSubmatch(s)
	if m == nil {
		return Bounds{}, false
	}

	x1, _ := strconv.Atoi(m[1])
	y1, _ := strconv.Atoi(m[2])
	x2, _ := strconv.Atoi(m[3])
	y2, _ := strconv.Atoi(m[4])

	return Bounds{Left: x1, Top: y1, Right: x2, Bottom: y2}, true
}

// Center returns the midpoint of the bounds.
func (b Bounds) Center() Point {
	return Point{
		X: (b.Left + b.Right) / 2,
		Y: (b.Top + b.Bottom) / 2,
	}
}

// Width returns the horizontal extent of the bounds.
func (b Bounds) Width() int {
	return b.Right - b.Left
}

// Height returns the vertical extent of the bounds.
func (b Bounds) Height() int {
	return b.Bottom - b.Top
}

// Contains checks if a point is within the bounds.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.Left && x < b.Right && y >= b.Top && y < b.Bottom
}

// String renders the bounds in the wire format.
func (b Bounds) String() string {
	return fmt.Sprintf("[%d,%d][%d,%d]", b.Left, b.Top, b.Right, b.Bottom)
}
