package hierarchy

import (
	"encoding/xml"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
)

// RootTag is the tag substituted for nodes whose type attribute is missing
// or empty after sanitization. Kept wire-compatible with hierarchies dumped
// by the uitest agent so existing XPath expressions keep resolving.
const RootTag = "orgRoot"

// Normalize converts a snapshot into an XML document ready for XPath
// evaluation. Every attribute value is coerced to text and stripped of
// control characters, the element tag is derived from the type attribute,
// and child order is preserved at every depth. The returned document is
// query-scoped; callers discard it after evaluation.
func Normalize(snap *Snapshot) *xmlquery.Node {
	doc := &xmlquery.Node{Type: xmlquery.DocumentNode}
	xmlquery.AddChild(doc, buildNode(snap))
	return doc
}

func buildNode(snap *Snapshot) *xmlquery.Node {
	attrs := sanitizeAttributes(snap.Attributes)

	tag := attrs["type"]
	if tag == "" {
		tag = RootTag
	}

	node := &xmlquery.Node{Type: xmlquery.ElementNode, Data: tag}

	// Sorted for deterministic serialization; XPath does not care.
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		node.Attr = append(node.Attr, xmlquery.Attr{
			Name:  xml.Name{Local: k},
			Value: attrs[k],
		})
	}

	for _, child := range snap.Children {
		if child == nil {
			continue
		}
		xmlquery.AddChild(node, buildNode(child))
	}

	return node
}

func sanitizeAttributes(attrs map[string]interface{}) map[string]string {
	cleaned := make(map[string]string, len(attrs))
	for k, v := range attrs {
		cleaned[k] = Sanitize(coerce(v))
	}
	return cleaned
}

// Sanitize removes XML-incompatible control characters
// (U+0000–U+001F and U+007F).
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}

// coerce renders an attribute value as text. JSON numbers arrive as
// float64 and must not grow a spurious fraction; null renders empty.
func coerce(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return fmt.Sprint(t)
	}
}
