package errors

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-dev/htmlr/pkg/markup"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "validation error",
			code:    "E100",
			wantMsg: "Invalid tag name",
			wantCat: CategoryValidation,
		},
		{
			name:    "render error",
			code:    "E110",
			wantMsg: "Unsupported node",
			wantCat: CategoryRender,
		},
		{
			name:    "config error",
			code:    "E120",
			wantMsg: "Invalid configuration",
			wantCat: CategoryConfig,
		},
		{
			name:    "unknown error code",
			code:    "E999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryCLI, "file %q not found", "page.html")
	if err.Message != `file "page.html" not found` {
		t.Errorf("Message = %q, want %q", err.Message, `file "page.html" not found`)
	}
	if err.Error() != `file "page.html" not found` {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestError_Error(t *testing.T) {
	got := New("E122").Error()
	want := "E122: Invalid port"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestError_WithOffset(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "htmlr.json")
	data := []byte("{\n  \"server\": {\n    \"port\": x\n  }\n}\n")
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatal(err)
	}

	offset := int64(bytes.IndexByte(data, 'x') + 1)
	err := New("E120").WithOffset(file, data, offset)

	if err.Location == nil {
		t.Fatal("Location is nil")
	}
	if err.Location.Line != 3 || err.Location.Column != 13 {
		t.Errorf("Location = %d:%d, want 3:13", err.Location.Line, err.Location.Column)
	}
	if err.Location.Offset != offset {
		t.Errorf("Offset = %d, want %d", err.Location.Offset, offset)
	}
	if err.ContextStart != 1 || len(err.Context) != 5 {
		t.Errorf("Context = %d lines from %d, want 5 from 1", len(err.Context), err.ContextStart)
	}

	out := err.Format()
	if !strings.Contains(out, "htmlr.json:3:13") {
		t.Errorf("Format() missing location:\n%s", out)
	}

	if New("E120").WithOffset(file, data, 0).Location != nil {
		t.Error("zero offset should not set a location")
	}
}

func TestError_Wrap(t *testing.T) {
	inner := stderrors.New("disk full")
	outer := New("E141").Wrap(inner)

	if !stderrors.Is(outer, inner) {
		t.Error("errors.Is should see the wrapped error")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E130") != nil {
		t.Error("FromError(nil, ...) should return nil")
	}

	ce := New("E131")
	if FromError(ce, "E130") != ce {
		t.Error("FromError should return *Error as-is")
	}

	std := stderrors.New("boom")
	if got := FromError(std, "E130"); got.Code != "E130" || got.Wrapped != std {
		t.Errorf("FromError() = %+v", got)
	}
}

func TestFromMarkup(t *testing.T) {
	_, tagErr := markup.New("1>2")
	_, nameErr := markup.New("div", markup.Attrs{"a=b": "c"})
	_, valueErr := markup.New("div", markup.Attrs{"title": "\x01"})
	unsupported := markup.Must("div").Append(42).Err()

	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"tag name", tagErr, "E100"},
		{"attribute name", nameErr, "E101"},
		{"attribute value", valueErr, "E102"},
		{"unsupported node", unsupported, "E110"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromMarkup(tt.err)
			if got == nil {
				t.Fatal("FromMarkup() = nil")
			}
			if got.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", got.Code, tt.wantCode)
			}
			if !stderrors.Is(got, tt.err) {
				t.Error("coded error should wrap the markup error")
			}
			if got.Suggestion == "" {
				t.Error("Suggestion is empty")
			}
		})
	}

	if FromMarkup(stderrors.New("other")) != nil {
		t.Error("FromMarkup should ignore unrelated errors")
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E100").
		WithDetail("The tag \"1>2\" is invalid.").
		WithSuggestion("Use letters and digits").
		WithExample("el.Tag(\"article\")")

	want := "error[E100]: Invalid tag name\n" +
		"  = The tag \"1>2\" is invalid.\n" +
		"  = help: Use letters and digits\n" +
		"  = example:\n" +
		"      el.Tag(\"article\")\n"
	if got := err.Format(); got != want {
		t.Errorf("Format() =\n%s\nwant\n%s", got, want)
	}
}

func TestFormat_Location(t *testing.T) {
	DisableColors()
	defer EnableColors()

	file := filepath.Join(t.TempDir(), "htmlr.json")
	data := []byte("{\n  \"server\": {\n    \"port\": x\n  }\n}\n")
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatal(err)
	}

	err := New("E120").WithOffset(file, data, int64(bytes.IndexByte(data, 'x')+1))
	err.Detail = ""

	want := "error[E120]: Invalid configuration\n" +
		" --> " + file + ":3:13\n" +
		"  |\n" +
		"1 | {\n" +
		"2 |   \"server\": {\n" +
		"3 |     \"port\": x\n" +
		"  |             ^\n" +
		"4 |   }\n" +
		"5 | }\n" +
		"  |\n"
	if got := err.Format(); got != want {
		t.Errorf("Format() =\n%s\nwant\n%s", got, want)
	}
}

func TestFormat_MarkupFacts(t *testing.T) {
	_, valueErr := markup.New("div", markup.Attrs{"title": "\x01"})
	unsupported := markup.Must("div").Append(42).Err()

	tests := []struct {
		name        string
		err         *Error
		wantText    []string
		wantCompact string
		wantJSON    markupFacts
	}{
		{
			name:        "attribute value",
			err:         FromMarkup(valueErr),
			wantText:    []string{"= rule: attribute value", `= value: "\x01"`, "= pattern: ^"},
			wantCompact: `E102: Invalid attribute value (rule=attribute value, value="\x01", pattern=`,
			wantJSON:    markupFacts{Rule: "attribute value", Value: `"\x01"`},
		},
		{
			name:        "unsupported node",
			err:         FromMarkup(unsupported),
			wantText:    []string{"= type: int"},
			wantCompact: "E110: Unsupported node (type=int)",
			wantJSON:    markupFacts{Type: "int"},
		},
	}

	DisableColors()
	defer EnableColors()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := tt.err.Format()
			for _, want := range tt.wantText {
				if !strings.Contains(text, want) {
					t.Errorf("Format() missing %q:\n%s", want, text)
				}
			}

			if got := tt.err.FormatCompact(); !strings.HasPrefix(got, tt.wantCompact) {
				t.Errorf("FormatCompact() = %q, want prefix %q", got, tt.wantCompact)
			}

			var decoded jsonError
			if err := json.Unmarshal([]byte(tt.err.FormatJSON()), &decoded); err != nil {
				t.Fatalf("FormatJSON() is not JSON: %v", err)
			}
			if decoded.Markup == nil {
				t.Fatal("FormatJSON() has no markup facts")
			}
			if decoded.Markup.Rule != tt.wantJSON.Rule || decoded.Markup.Value != tt.wantJSON.Value || decoded.Markup.Type != tt.wantJSON.Type {
				t.Errorf("markup = %+v, want %+v", *decoded.Markup, tt.wantJSON)
			}
		})
	}
}

func TestFormatJSON_Location(t *testing.T) {
	err := New("E120")
	err.Location = &Location{File: "htmlr.json", Line: 3, Column: 13, Offset: 27}
	err.Wrap(stderrors.New("invalid character 'x'"))

	var decoded jsonError
	if e := json.Unmarshal([]byte(err.FormatJSON()), &decoded); e != nil {
		t.Fatal(e)
	}
	if decoded.Code != "E120" || decoded.Category != CategoryConfig {
		t.Errorf("decoded = %+v", decoded)
	}
	if decoded.Location == nil || *decoded.Location != *err.Location {
		t.Errorf("Location = %+v, want %+v", decoded.Location, err.Location)
	}
	if decoded.Cause != "invalid character 'x'" {
		t.Errorf("Cause = %q", decoded.Cause)
	}
	if got := err.FormatCompact(); got != "htmlr.json:3:13: E120: Invalid configuration" {
		t.Errorf("FormatCompact() = %q", got)
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in      string
		want    Style
		wantErr bool
	}{
		{"", StyleText, false},
		{"text", StyleText, false},
		{"COMPACT", StyleCompact, false},
		{"json", StyleJSON, false},
		{"yaml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseStyle(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseStyle(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestFprint(t *testing.T) {
	DisableColors()
	defer EnableColors()

	_, tagErr := markup.New("1>2")

	tests := []struct {
		name  string
		err   error
		style Style
		want  string
	}{
		{"markup text", tagErr, StyleText, "error[E100]: Invalid tag name\n"},
		{"plain text", stderrors.New("plain"), StyleText, "error: plain\n"},
		{"plain compact", stderrors.New("plain"), StyleCompact, "plain\n"},
		{"plain json", stderrors.New("plain"), StyleJSON, `{"message":"plain"}` + "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Fprint(&buf, tt.err, tt.style)
			if !strings.HasPrefix(buf.String(), tt.want) {
				t.Errorf("Fprint() = %q, want prefix %q", buf.String(), tt.want)
			}
		})
	}

	var buf bytes.Buffer
	Fprint(&buf, nil, StyleJSON)
	if buf.Len() != 0 {
		t.Errorf("Fprint(nil) = %q", buf.String())
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five six", 10)
	for _, line := range lines {
		if len(line) > 10 {
			t.Errorf("line %q longer than 10", line)
		}
	}
	if strings.Join(lines, " ") != "one two three four five six" {
		t.Errorf("wrapText() = %v", lines)
	}
	if wrapText("", 10) != nil {
		t.Error("wrapText of empty text should be nil")
	}
}

func TestRegistryComplete(t *testing.T) {
	for _, code := range GetAllCodes() {
		tmpl, ok := GetTemplate(code)
		if !ok || tmpl.Message == "" || tmpl.Category == "" {
			t.Errorf("code %s has an incomplete template", code)
		}
	}
}
