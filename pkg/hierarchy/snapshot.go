// Package hierarchy converts raw on-screen element tree snapshots into
// sanitized XML documents suitable for XPath evaluation.
package hierarchy

// Snapshot is one node of the element tree as dumped by the device agent:
// an open-ended attribute bag plus ordered children. Attribute values may
// be strings, numbers, booleans or null, and may contain control
// characters the agent failed to escape.
type Snapshot struct {
	Attributes map[string]interface{} `json:"attributes"`
	Children   []*Snapshot            `json:"children"`
}

// Empty reports whether the snapshot carries no usable content.
func (s *Snapshot) Empty() bool {
	return s == nil || (len(s.Attributes) == 0 && len(s.Children) == 0)
}
