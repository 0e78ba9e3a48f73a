package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vango-dev/htmlr/pkg/markup"
)

// Style selects how errors are printed.
type Style string

const (
	// StyleText is the multi-line terminal report.
	StyleText Style = "text"
	// StyleCompact is one line per error, in file:line:col form.
	StyleCompact Style = "compact"
	// StyleJSON is one JSON object per error.
	StyleJSON Style = "json"
)

// ParseStyle parses an error style name. The empty string selects StyleText.
func ParseStyle(s string) (Style, error) {
	switch Style(strings.ToLower(s)) {
	case "", StyleText:
		return StyleText, nil
	case StyleCompact:
		return StyleCompact, nil
	case StyleJSON:
		return StyleJSON, nil
	}
	return "", fmt.Errorf("unknown error format %q (want text, compact or json)", s)
}

const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiRed    = "\033[31m"
	ansiYellow = "\033[33m"
	ansiBlue   = "\033[34m"
	ansiCyan   = "\033[36m"
)

var colorEnabled = true

// DisableColors turns off ANSI escapes in StyleText output.
func DisableColors() {
	colorEnabled = false
}

// EnableColors turns ANSI escapes back on.
func EnableColors() {
	colorEnabled = true
}

func paint(text string, codes ...string) string {
	if !colorEnabled || len(codes) == 0 {
		return text
	}
	return strings.Join(codes, "") + text + ansiReset
}

// markupFacts are the details of a markup error carried by a coded error.
type markupFacts struct {
	Rule    string `json:"rule,omitempty"`
	Value   string `json:"value,omitempty"`
	Pattern string `json:"pattern,omitempty"`
	Type    string `json:"type,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

func factsOf(err error) *markupFacts {
	var ve *markup.ValidationError
	if stderrors.As(err, &ve) {
		return &markupFacts{Rule: string(ve.Rule), Value: strconv.Quote(ve.Value), Pattern: ve.Pattern}
	}
	var ue *markup.UnsupportedNodeError
	if stderrors.As(err, &ue) {
		return &markupFacts{Type: fmt.Sprintf("%T", ue.Value), Reason: ue.Reason}
	}
	return nil
}

// lines returns the facts as label/value pairs in display order.
func (f *markupFacts) lines() [][2]string {
	var out [][2]string
	for _, kv := range [][2]string{
		{"rule", f.Rule},
		{"value", f.Value},
		{"pattern", f.Pattern},
		{"type", f.Type},
		{"reason", f.Reason},
	} {
		if kv[1] != "" {
			out = append(out, kv)
		}
	}
	return out
}

// Format returns the error as a multi-line terminal report:
//
//	error[E120]: Invalid configuration
//	 --> htmlr.json:3:13
//	  |
//	1 | {
//	2 |   "server": {
//	3 |     "port": x
//	  |             ^
//	4 |   }
//	5 | }
//	  |
//	  = The configuration file could not be read or parsed.
//	  = help: Check that htmlr.json is valid JSON
//
// Markup errors add their rule, value and pattern as further notes.
func (e *Error) Format() string {
	var b strings.Builder

	head := "error"
	if e.Code != "" {
		head += "[" + e.Code + "]"
	}
	b.WriteString(paint(head, ansiBold, ansiRed))
	b.WriteString(paint(": "+e.Message, ansiBold))
	b.WriteByte('\n')

	gutter := 1
	if e.Location != nil && len(e.Context) > 0 {
		gutter = len(strconv.Itoa(e.ContextStart + len(e.Context) - 1))
	}
	pad := strings.Repeat(" ", gutter)
	bar := paint("|", ansiBlue)

	if e.Location != nil {
		fmt.Fprintf(&b, "%s%s %s\n", pad, paint("-->", ansiBlue), e.Location)
		if len(e.Context) > 0 {
			fmt.Fprintf(&b, "%s %s\n", pad, bar)
			for i, line := range e.Context {
				n := e.ContextStart + i
				fmt.Fprintf(&b, "%s %s %s\n", paint(fmt.Sprintf("%*d", gutter, n), ansiBlue), bar, line)
				if n == e.Location.Line && e.Location.Column > 0 {
					fmt.Fprintf(&b, "%s %s %s%s\n", pad, bar, strings.Repeat(" ", e.Location.Column-1), paint("^", ansiBold, ansiRed))
				}
			}
			fmt.Fprintf(&b, "%s %s\n", pad, bar)
		}
	}

	note := func(label, text string) {
		b.WriteString(pad)
		b.WriteString(paint(" = ", ansiBlue))
		if label != "" {
			b.WriteString(paint(label+":", ansiBold, ansiCyan))
			if text != "" {
				b.WriteByte(' ')
			}
		}
		b.WriteString(text)
		b.WriteByte('\n')
	}

	for _, line := range wrapText(e.Detail, 72) {
		note("", line)
	}
	if f := factsOf(e.Wrapped); f != nil {
		for _, kv := range f.lines() {
			note(kv[0], kv[1])
		}
	} else if e.Wrapped != nil {
		note("cause", e.Wrapped.Error())
	}
	if e.Suggestion != "" {
		note("help", e.Suggestion)
	}
	if e.Example != "" {
		note("example", "")
		for _, line := range strings.Split(e.Example, "\n") {
			fmt.Fprintf(&b, "%s     %s\n", pad, paint(line, ansiYellow))
		}
	}

	return b.String()
}

// FormatCompact returns the error on a single line, prefixed with its
// location when known, so editors can jump to it.
func (e *Error) FormatCompact() string {
	var parts []string
	if e.Location != nil {
		parts = append(parts, e.Location.String())
	}
	if e.Code != "" {
		parts = append(parts, e.Code)
	}
	msg := e.Message
	if f := factsOf(e.Wrapped); f != nil {
		var kvs []string
		for _, kv := range f.lines() {
			kvs = append(kvs, kv[0]+"="+kv[1])
		}
		msg += " (" + strings.Join(kvs, ", ") + ")"
	}
	parts = append(parts, msg)
	return strings.Join(parts, ": ")
}

// jsonError is the StyleJSON encoding of an Error.
type jsonError struct {
	Code       string       `json:"code,omitempty"`
	Category   Category     `json:"category,omitempty"`
	Message    string       `json:"message"`
	Detail     string       `json:"detail,omitempty"`
	Location   *Location    `json:"location,omitempty"`
	Markup     *markupFacts `json:"markup,omitempty"`
	Suggestion string       `json:"suggestion,omitempty"`
	Example    string       `json:"example,omitempty"`
	Cause      string       `json:"cause,omitempty"`
}

// FormatJSON returns the error as a single-line JSON object.
func (e *Error) FormatJSON() string {
	je := jsonError{
		Code:       e.Code,
		Category:   e.Category,
		Message:    e.Message,
		Detail:     e.Detail,
		Location:   e.Location,
		Markup:     factsOf(e.Wrapped),
		Suggestion: e.Suggestion,
		Example:    e.Example,
	}
	if e.Wrapped != nil {
		je.Cause = e.Wrapped.Error()
	}
	data, err := json.Marshal(je)
	if err != nil {
		return fmt.Sprintf(`{"message":%q}`, e.Message)
	}
	return string(data)
}

// wrapText splits text into lines of at most width bytes, breaking at spaces.
func wrapText(text string, width int) []string {
	var lines []string
	var current strings.Builder
	for _, word := range strings.Fields(text) {
		if current.Len() > 0 && current.Len()+1+len(word) > width {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}

// coded returns err as an *Error, converting markup errors and wrapping any
// other error without a code.
func coded(err error) *Error {
	var ce *Error
	if stderrors.As(err, &ce) {
		return ce
	}
	if me := FromMarkup(err); me != nil {
		return me
	}
	return &Error{Message: err.Error()}
}

// Fprint writes err to w in the given style, followed by a newline.
func Fprint(w io.Writer, err error, style Style) {
	if err == nil {
		return
	}
	e := coded(err)
	switch style {
	case StyleCompact:
		fmt.Fprintln(w, e.FormatCompact())
	case StyleJSON:
		fmt.Fprintln(w, e.FormatJSON())
	default:
		fmt.Fprint(w, e.Format())
	}
}
