package errors

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeUsage, "missing %s", "seed")

	if err.Code != ErrCodeUsage {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeUsage)
	}
	if err.Message != "missing seed" {
		t.Errorf("Message = %v, want %v", err.Message, "missing seed")
	}

	expected := "USAGE: missing seed"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := Wrap(ErrCodeFatal, cause, "load %s", "file:///a.md")

	if err.Code != ErrCodeFatal {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeFatal)
	}
	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if want := "FATAL: load file:///a.md: permission denied"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap_PreservesSentinels(t *testing.T) {
	err := Wrap(ErrCodeNotFound, fs.ErrNotExist, "missing")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("wrapped fs.ErrNotExist should still match errors.Is")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{"matching code", New(ErrCodeFatal, "test"), ErrCodeFatal, true},
		{"non-matching code", New(ErrCodeFatal, "test"), ErrCodeNotFound, false},
		{"wrapped error", Wrap(ErrCodeFatal, New(ErrCodeInvalidConfig, "inner"), "outer"), ErrCodeFatal, true},
		{"non-Error type", errors.New("plain error"), ErrCodeFatal, false},
		{"nil error", nil, ErrCodeFatal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"Error type", New(ErrCodeInvalidFormat, "test"), ErrCodeInvalidFormat},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Error type", New(ErrCodeUsage, "friendly message"), "friendly message"},
		{"with cause", Wrap(ErrCodeFatal, errors.New("boom"), "load a.md"), "load a.md: boom"},
		{"plain error", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestValidateSeedPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"relative", "chapters/one.md", false},
		{"absolute", "/home/me/wiki/index.md", false},
		{"spaces", "my wiki/start here.md", false},
		{"unicode", "wiki/café.md", false},
		{"empty", "", true},
		{"whitespace", "   ", true},
		{"null byte", "a\x00b.md", true},
		{"newline", "a\nb.md", true},
		{"too long", strings.Repeat("a", 5000), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSeedPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSeedPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidateSeedPath(%q) code = %v, want %v", tt.path, GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}
