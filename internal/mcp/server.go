package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/grabapp/grabd/internal/history"
	"github.com/grabapp/grabd/internal/ops"
	"github.com/grabapp/grabd/internal/session"
)

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"captures_dir": {
		def:     capturesDirToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCapturesDir },
	},
	"captures_list": {
		def:     capturesListToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCapturesList },
	},
	"captures_metadata": {
		def:     capturesMetadataToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCapturesMetadata },
	},
	"captures_text": {
		def:     capturesTextToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCapturesText },
	},
	"captures_image": {
		def:     capturesImageToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCapturesImage },
	},
	"settings_get": {
		def:     settingsGetToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSettingsGet },
	},
	"settings_set": {
		def:     settingsSetToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSettingsSet },
	},
	"clipboard_copy_image": {
		def:     clipboardCopyImageToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleClipboardCopyImage },
	},
	"clipboard_check_event": {
		def:     clipboardCheckEventToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleClipboardCheckEvent },
	},
	"activity_recent": {
		def:     activityRecentToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleActivityRecent },
	},
	"session_focus": {
		def:     sessionFocusToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSessionFocus },
	},
}

// AllToolNames returns a list of all valid tool names.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	return names
}

// serverNotifier adapts an MCPServer to the session.Notifier interface.
type serverNotifier struct {
	s *server.MCPServer
}

// Notify broadcasts a notification to every connected client session.
func (n *serverNotifier) Notify(method string, params map[string]any) error {
	n.s.SendNotificationToAllClients(method, params)
	return nil
}

// NewServer creates a new MCP server with the Grab tools registered and the
// session bridge wired to its notification channel. The bridge runs its
// startup capture-id check when the client session registers, so the
// notification is not emitted before anyone is listening.
func NewServer(env *ops.Env, launchArgs []string, version string) *server.MCPServer {
	var bridge *session.Bridge

	hooks := &server.Hooks{}
	hooks.AddOnRegisterSession(func(ctx context.Context, s server.ClientSession) {
		bridge.OnStartup()
	})

	s := server.NewMCPServer(
		"grabd",
		version,
		server.WithToolCapabilities(true),
		server.WithHooks(hooks),
	)

	bridge = session.NewBridge(launchArgs, &serverNotifier{s: s}, env.Logger(), func(id string) {
		recordActivation(env, id)
	})

	h := NewHandlers(env, bridge)
	for _, entry := range toolRegistry {
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// recordActivation journals a capture-id activation, best-effort.
func recordActivation(env *ops.Env, id string) {
	if env.DB == nil {
		return
	}
	if _, err := history.Record(env.DB, history.KindCaptureID, id, ""); err != nil {
		env.Logger().Warn("activity journal write failed", "kind", history.KindCaptureID, "error", err)
	}
}

// Run starts the MCP server using stdio transport.
func Run(env *ops.Env, launchArgs []string, version string) error {
	s := NewServer(env, launchArgs, version)
	return server.ServeStdio(s)
}
