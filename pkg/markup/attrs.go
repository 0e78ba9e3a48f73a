package markup

import (
	"sort"
	"strings"
)

// Attrs maps attribute names to values. A string value renders as
// name="value" with the value escaped, true renders the bare name, and every
// other value is skipped.
type Attrs map[string]any

// writeTo validates and serializes the attributes in sorted key order.
func (a Attrs) writeTo(b *strings.Builder) error {
	if len(a) == 0 {
		return nil
	}

	// Sort keys for deterministic output
	keys := make([]string, 0, len(a))
	for key := range a {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if !IsAttrName(key) {
			return &ValidationError{Rule: RuleAttrName, Value: key, Pattern: attrNamePattern.String()}
		}

		switch v := a[key].(type) {
		case string:
			if !IsAttrValue(v) {
				return &ValidationError{Rule: RuleAttrValue, Value: v, Pattern: attrValuePattern.String()}
			}
			b.WriteByte(' ')
			b.WriteString(key)
			b.WriteString(`="`)
			b.WriteString(escapeAttr(v))
			b.WriteByte('"')
		case bool:
			if v {
				b.WriteByte(' ')
				b.WriteString(key)
			}
		}
	}

	return nil
}
