// Package session bridges externally supplied capture identifiers into the
// running application. A second launch of the single-instance app forwards
// its arguments to the running instance and re-raises focus, so the launch
// arguments are re-checked on every window-focus transition as well as at
// startup.
package session

import (
	"log/slog"
	"strings"
)

// CaptureIDFlag is the recognized launch argument prefix.
const CaptureIDFlag = "--capture-id="

// NotificationMethod is the notification emitted to the presentation layer
// when a capture identifier is present.
const NotificationMethod = "notifications/capture-id"

// ExtractCaptureID scans launch arguments for --capture-id=<value>.
// The first match with a non-empty value wins.
func ExtractCaptureID(args []string) (string, bool) {
	for _, arg := range args {
		value, ok := strings.CutPrefix(arg, CaptureIDFlag)
		if ok && value != "" {
			return value, true
		}
	}
	return "", false
}

// Notifier delivers a notification event to the presentation layer.
type Notifier interface {
	Notify(method string, params map[string]any) error
}

// Activated is called after each successful capture-id emission, e.g. to
// journal the activation. May be nil.
type Activated func(id string)

// Bridge re-runs capture-id extraction at its two trigger points and
// notifies the presentation layer. Each check is instantaneous and
// stateless; emission failure is logged, never fatal.
type Bridge struct {
	args      []string
	notifier  Notifier
	log       *slog.Logger
	activated Activated
}

// NewBridge creates a Bridge over the process launch arguments.
func NewBridge(args []string, notifier Notifier, log *slog.Logger, activated Activated) *Bridge {
	if log == nil {
		log = slog.Default()
	}
	return &Bridge{args: args, notifier: notifier, log: log, activated: activated}
}

// OnStartup runs the extraction once at process startup.
func (b *Bridge) OnStartup() {
	b.announce("startup")
}

// OnFocus runs the extraction on a window-focus transition.
func (b *Bridge) OnFocus() {
	b.announce("focus")
}

func (b *Bridge) announce(trigger string) {
	id, ok := ExtractCaptureID(b.args)
	if !ok {
		return
	}

	err := b.notifier.Notify(NotificationMethod, map[string]any{"value": id})
	if err != nil {
		b.log.Warn("capture-id notification failed", "trigger", trigger, "error", err)
		return
	}

	b.log.Debug("capture-id notified", "trigger", trigger, "value", id)
	if b.activated != nil {
		b.activated(id)
	}
}
