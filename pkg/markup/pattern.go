package markup

import (
	"regexp"
	"unicode/utf8"
)

// Patterns are matched against whole strings.
var (
	tagNamePattern   = regexp.MustCompile(`^[0-9A-Za-z]+$`)
	preamblePattern  = regexp.MustCompile(`(?i)^!DOCTYPE +html$`)
	attrNamePattern  = regexp.MustCompile(`^[^\x00-\x1f"'>/=\x{E000}-\x{F8FF}\x{F0000}-\x{FFFFD}]+$`)
	attrValuePattern = regexp.MustCompile(`^[^\x00-\x08\x0b\x0e-\x1f\x{E000}-\x{F8FF}\x{F0000}-\x{FFFFD}]*$`)
)

// IsTagName reports whether name is one or more ASCII letters or digits.
func IsTagName(name string) bool {
	return tagNamePattern.MatchString(name)
}

// IsPreamble reports whether name is a doctype preamble such as "!DOCTYPE html".
func IsPreamble(name string) bool {
	return preamblePattern.MatchString(name)
}

// IsAttrName reports whether name may be used as an attribute name. Names
// must be valid UTF-8.
func IsAttrName(name string) bool {
	return utf8.ValidString(name) && attrNamePattern.MatchString(name)
}

// IsAttrValue reports whether value may be used as an attribute value.
// Values must be valid UTF-8.
func IsAttrValue(value string) bool {
	return utf8.ValidString(value) && attrValuePattern.MatchString(value)
}

// checkTag validates an element name and reports whether it is a preamble.
func checkTag(name string) (preamble bool, err error) {
	if IsPreamble(name) {
		return true, nil
	}
	if !IsTagName(name) {
		return false, &ValidationError{Rule: RuleTagName, Value: name, Pattern: tagNamePattern.String()}
	}
	return false, nil
}
