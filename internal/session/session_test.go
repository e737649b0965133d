package session

import (
	stderrors "errors"
	"testing"
)

func TestExtractCaptureID(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		want   string
		wantOK bool
	}{
		{"present", []string{"--capture-id=abc123"}, "abc123", true},
		{"among others", []string{"--verbose", "--capture-id=xyz", "extra"}, "xyz", true},
		{"first non-empty wins", []string{"--capture-id=first", "--capture-id=second"}, "first", true},
		{"empty value skipped", []string{"--capture-id=", "--capture-id=later"}, "later", true},
		{"empty value only", []string{"--capture-id="}, "", false},
		{"absent", []string{"serve", "--verbose"}, "", false},
		{"no args", nil, "", false},
		{"separate value not recognized", []string{"--capture-id", "abc"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractCaptureID(tt.args)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ExtractCaptureID(%v) = (%q, %v), want (%q, %v)",
					tt.args, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

type fakeNotifier struct {
	methods []string
	params  []map[string]any
	err     error
}

func (f *fakeNotifier) Notify(method string, params map[string]any) error {
	f.methods = append(f.methods, method)
	f.params = append(f.params, params)
	return f.err
}

func TestBridge_NotifiesOnStartupAndFocus(t *testing.T) {
	n := &fakeNotifier{}
	var activated []string
	b := NewBridge([]string{"--capture-id=abc123"}, n, nil, func(id string) {
		activated = append(activated, id)
	})

	b.OnStartup()
	b.OnFocus()

	if len(n.methods) != 2 {
		t.Fatalf("notifications = %d, want 2", len(n.methods))
	}
	for _, m := range n.methods {
		if m != NotificationMethod {
			t.Errorf("method = %q, want %q", m, NotificationMethod)
		}
	}
	if n.params[0]["value"] != "abc123" {
		t.Errorf("params value = %v, want abc123", n.params[0]["value"])
	}
	if len(activated) != 2 || activated[0] != "abc123" {
		t.Errorf("activated = %v, want two abc123 entries", activated)
	}
}

func TestBridge_NoFlagNoNotification(t *testing.T) {
	n := &fakeNotifier{}
	b := NewBridge([]string{"serve"}, n, nil, nil)

	b.OnStartup()
	b.OnFocus()

	if len(n.methods) != 0 {
		t.Errorf("notifications = %d, want 0", len(n.methods))
	}
}

func TestBridge_EmissionFailureNotFatal(t *testing.T) {
	n := &fakeNotifier{err: stderrors.New("no session")}
	activated := 0
	b := NewBridge([]string{"--capture-id=abc"}, n, nil, func(string) { activated++ })

	// Must not panic, and the activation hook must not fire on failure.
	b.OnStartup()

	if activated != 0 {
		t.Errorf("activated = %d, want 0 on emission failure", activated)
	}
}
