package markup

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks.
var (
	ErrValidation      = errors.New("markup: validation failed")
	ErrUnsupportedNode = errors.New("markup: unsupported node")
)

// Rule names the character-class rule a string failed.
type Rule string

const (
	RuleTagName   Rule = "tag name"
	RuleAttrName  Rule = "attribute name"
	RuleAttrValue Rule = "attribute value"
)

// ValidationError reports a tag name, preamble, attribute name or attribute
// value that does not match its pattern.
type ValidationError struct {
	Rule    Rule
	Value   string
	Pattern string
}

func (e *ValidationError) Error() string {
	if e.Rule == RuleTagName {
		return fmt.Sprintf("markup: the tag or preamble named %q matches neither %s nor %s",
			e.Value, tagNamePattern.String(), preamblePattern.String())
	}
	return fmt.Sprintf("markup: the %s %q does not match %s", e.Rule, e.Value, e.Pattern)
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// UnsupportedNodeError reports a content item or token value of a shape the
// builder and renderer do not handle.
type UnsupportedNodeError struct {
	Value  any
	Reason string
}

func (e *UnsupportedNodeError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("markup: the node %s (%T) is unsupported: %s", describe(e.Value), e.Value, e.Reason)
	}
	return fmt.Sprintf("markup: the node %s (%T) is an unhandled type", describe(e.Value), e.Value)
}

// Is reports whether target is ErrUnsupportedNode.
func (e *UnsupportedNodeError) Is(target error) bool {
	return target == ErrUnsupportedNode
}

func unsupported(v any, reason string) error {
	return &UnsupportedNodeError{Value: v, Reason: reason}
}

// describe renders a short, bounded description of v for error messages.
func describe(v any) string {
	switch t := v.(type) {
	case nil:
		return "<nil>"
	case *Node:
		if t == nil {
			return "<nil node>"
		}
		return fmt.Sprintf("%q", t.open)
	case Builder, func(...any) *Node, func() *Node:
		return "func"
	}
	s := fmt.Sprintf("%v", v)
	if len(s) > 64 {
		s = s[:61] + "..."
	}
	return s
}
