// Package errors provides structured, actionable error messages for htmlr.
//
// Errors carry a code from the registry (e.g. "E100"), a category, a short
// message, an optional detail and hint, and for configuration files the
// location of the problem. Config parse errors are located from the byte
// offset encoding/json reports:
//
//	err := errors.New("E120").
//	    WithOffset("htmlr.json", data, syntaxErr.Offset).
//	    WithSuggestion("Check that htmlr.json is valid JSON")
//
// Fprint writes an error in one of three styles:
//
//   - StyleText: a report with the offending lines and a caret under the column
//   - StyleCompact: a single file:line:col line
//   - StyleJSON: one object per error, for tooling
//
// FromMarkup converts the errors of the markup package into coded errors,
// and every style shows the markup rule, value and pattern behind them.
package errors
