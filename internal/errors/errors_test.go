package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "not implemented",
			code:    "R001",
			wantMsg: "Not implemented",
			wantCat: CategoryRuntime,
		},
		{
			name:    "invalid argument",
			code:    "R002",
			wantMsg: "Invalid argument",
			wantCat: CategoryRuntime,
		},
		{
			name:    "config error",
			code:    "R100",
			wantMsg: "Invalid ruix.yaml",
			wantCat: CategoryConfig,
		},
		{
			name:    "unknown error code",
			code:    "R999",
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
	if err.Category != CategoryCLI {
		t.Errorf("Category = %q, want %q", err.Category, CategoryCLI)
	}
}

func TestErrorString(t *testing.T) {
	err := &Error{Code: "R001", Message: "Not implemented"}
	if got, want := err.Error(), "R001: Not implemented"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	err2 := &Error{Message: "plain"}
	if err2.Error() != "plain" {
		t.Errorf("Error() = %q, want %q", err2.Error(), "plain")
	}

	err3 := New("R210").Wrap(fmt.Errorf("access denied"))
	if !strings.HasSuffix(err3.Error(), ": access denied") {
		t.Errorf("Error() = %q, want wrapped cause suffix", err3.Error())
	}
}

func TestIsAndUnwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := fmt.Errorf("outer: %w", New("R200").Wrap(cause))

	if !stderrors.Is(err, New("R200")) {
		t.Error("errors.Is should match on code")
	}
	if stderrors.Is(err, New("R201")) {
		t.Error("errors.Is should not match a different code")
	}
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should reach the wrapped cause")
	}
	if !HasCode(err, "R200") {
		t.Error("HasCode should find R200")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "R100") != nil {
		t.Error("FromError(nil) should be nil")
	}

	original := New("R101")
	if got := FromError(original, "R100"); got != original {
		t.Error("FromError should return an existing *Error unchanged")
	}

	wrapped := FromError(stderrors.New("disk"), "R100")
	if wrapped.Code != "R100" || wrapped.Wrapped == nil {
		t.Errorf("FromError = %+v, want code R100 wrapping the cause", wrapped)
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("R101").
		WithDetail("no ruix.yaml in /srv/site").
		WithSuggestion("pass --config")

	out := err.Format()
	for _, want := range []string{"ERROR R101: Config file not found", "no ruix.yaml in /srv/site", "Hint: pass --config"} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q in:\n%s", want, out)
		}
	}

	if got := err.FormatCompact(); got != "R101: Config file not found" {
		t.Errorf("FormatCompact() = %q", got)
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("aaa bbb ccc ddd", 7)
	if len(lines) != 2 || lines[0] != "aaa bbb" || lines[1] != "ccc ddd" {
		t.Errorf("wrapText = %q", lines)
	}
	if wrapText("", 10) != nil {
		t.Error("wrapText of empty string should be nil")
	}
}
