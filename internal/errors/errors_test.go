package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestNewNotFound(t *testing.T) {
	err := NewNotFound("shot.png")

	if err.Code != ErrNotFound {
		t.Errorf("Code = %q, want %q", err.Code, ErrNotFound)
	}
	if err.Status != 404 {
		t.Errorf("Status = %d, want 404", err.Status)
	}
	if !strings.Contains(err.Message, "shot.png") {
		t.Errorf("Message = %q, want it to contain the name", err.Message)
	}
	if err.Details["name"] != "shot.png" {
		t.Errorf("Details[name] = %v, want shot.png", err.Details["name"])
	}
}

func TestNewParseFailed(t *testing.T) {
	cause := stderrors.New("unexpected end of JSON input")
	err := NewParseFailed("settings file", cause)

	if err.Code != ErrParseFailed {
		t.Errorf("Code = %q, want %q", err.Code, ErrParseFailed)
	}
	if err.Status != 422 {
		t.Errorf("Status = %d, want 422", err.Status)
	}
	if !strings.Contains(err.Message, "settings file") || !strings.Contains(err.Message, cause.Error()) {
		t.Errorf("Message = %q, want subject and cause", err.Message)
	}
}

func TestNewClipboardFailed_CarriesOutput(t *testing.T) {
	err := NewClipboardFailed("xclip: command not found", stderrors.New("exit status 127"))

	if err.Code != ErrClipboardFailed {
		t.Errorf("Code = %q, want %q", err.Code, ErrClipboardFailed)
	}
	if err.Details["output"] != "xclip: command not found" {
		t.Errorf("Details[output] = %v, want diagnostic text", err.Details["output"])
	}
}

func TestNewInternal_NilError(t *testing.T) {
	err := NewInternal(nil)
	if err.Message != "internal error" {
		t.Errorf("Message = %q, want 'internal error'", err.Message)
	}
}

func TestError_Format(t *testing.T) {
	err := NewInvalidRequest("filename is required")
	want := "INVALID_REQUEST: filename is required"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	err := NewNotFound("note.txt")

	if !Is(err, ErrNotFound) {
		t.Error("Is(err, ErrNotFound) = false, want true")
	}
	if Is(err, ErrInternal) {
		t.Error("Is(err, ErrInternal) = true, want false")
	}
	if Is(stderrors.New("plain"), ErrNotFound) {
		t.Error("Is(plain error) = true, want false")
	}
}
