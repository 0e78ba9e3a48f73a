package errors

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/vango-dev/htmlr/pkg/markup"
)

// Category represents the type of error.
type Category string

const (
	CategoryValidation Category = "validation"
	CategoryRender     Category = "render"
	CategoryConfig     Category = "config"
	CategoryServer     Category = "server"
	CategoryStorage    Category = "storage"
	CategoryCLI        Category = "cli"
)

// Location represents a position in a file. Offset is the byte offset
// reported by encoding/json, when known.
type Location struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column,omitempty"`
	Offset int64  `json:"offset,omitempty"`
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// Error is a structured error with a code, location and suggestions.
type Error struct {
	// Code is a unique error identifier (e.g., "E100").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Location is the file position where the error occurred.
	Location *Location

	// Context contains surrounding file lines, starting at ContextStart.
	Context      []string
	ContextStart int

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Example is code showing the correct approach.
	Example string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// WithLocation adds a file location to the error.
func (e *Error) WithLocation(file string, line, column int) *Error {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.ContextStart, e.Context = readContextLines(file, line, 2)
	return e
}

// WithOffset adds the location of a byte offset into data, as reported by
// encoding/json.
func (e *Error) WithOffset(file string, data []byte, offset int64) *Error {
	if offset <= 0 || offset > int64(len(data)) {
		return e
	}
	line, col := 1, 1
	for _, c := range data[:offset-1] {
		if c == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	e.WithLocation(file, line, col)
	e.Location.Offset = offset
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *Error) WithSuggestion(s string) *Error {
	e.Suggestion = s
	return e
}

// WithExample adds a code example to the error.
func (e *Error) WithExample(ex string) *Error {
	e.Example = ex
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *Error) WithDetail(d string) *Error {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *Error) Wrap(err error) *Error {
	e.Wrapped = err
	return e
}

// readContextLines reads up to radius lines either side of target. It
// returns the number of the first line read.
func readContextLines(filename string, target, radius int) (int, []string) {
	file, err := os.Open(filename)
	if err != nil {
		return 0, nil
	}
	defer file.Close()

	first := max(1, target-radius)
	last := target + radius

	var lines []string
	scanner := bufio.NewScanner(file)
	for n := 1; n <= last && scanner.Scan(); n++ {
		if n >= first {
			lines = append(lines, scanner.Text())
		}
	}
	if len(lines) == 0 {
		return 0, nil
	}
	return first, lines
}

// New creates an Error from a registered error code.
func New(code string) *Error {
	template, ok := registry[code]
	if !ok {
		return &Error{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &Error{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates a new Error with a formatted message (no code).
func Newf(category Category, format string, args ...any) *Error {
	return &Error{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in an Error. Errors of the markup package
// are converted with FromMarkup.
func FromError(err error, code string) *Error {
	if err == nil {
		return nil
	}
	var ce *Error
	if stderrors.As(err, &ce) {
		return ce
	}
	if me := FromMarkup(err); me != nil {
		return me
	}
	return New(code).Wrap(err)
}

// FromMarkup converts a markup.ValidationError or markup.UnsupportedNodeError
// into a coded error. It returns nil for other errors.
func FromMarkup(err error) *Error {
	var ve *markup.ValidationError
	if stderrors.As(err, &ve) {
		switch ve.Rule {
		case markup.RuleAttrName:
			return New("E101").
				WithDetail(fmt.Sprintf("The attribute name %q does not match %s.", ve.Value, ve.Pattern)).
				WithSuggestion("Attribute names cannot contain quotes, '=', '/', '>' or control characters").
				Wrap(err)
		case markup.RuleAttrValue:
			return New("E102").
				WithDetail(fmt.Sprintf("The attribute value %q does not match %s.", ve.Value, ve.Pattern)).
				WithSuggestion("Remove control characters and private-use characters from the value").
				Wrap(err)
		default:
			return New("E100").
				WithDetail(fmt.Sprintf("The tag %q is neither an alphanumeric tag name nor a doctype preamble.", ve.Value)).
				WithSuggestion("Use ASCII letters and digits only, or \"!DOCTYPE html\"").
				Wrap(err)
		}
	}

	var ue *markup.UnsupportedNodeError
	if stderrors.As(err, &ue) {
		return New("E110").
			WithDetail(strings.TrimPrefix(ue.Error(), "markup: ")).
			WithSuggestion("Append strings, nodes, tokens, void elements or slices of them").
			WithExample(`ul := el.Ul()(el.Li()("Hello"), el.Br(), $token)`).
			Wrap(err)
	}
	return nil
}
