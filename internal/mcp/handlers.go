package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/grabapp/grabd/internal/errors"
	"github.com/grabapp/grabd/internal/ops"
	"github.com/grabapp/grabd/internal/session"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	env    *ops.Env
	bridge *session.Bridge
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(env *ops.Env, bridge *session.Bridge) *Handlers {
	return &Handlers{env: env, bridge: bridge}
}

// Request types for each tool

// FilenameRequest addresses one artifact by file name.
type FilenameRequest struct {
	Filename string `json:"filename"`
}

// TextContentRequest represents the arguments for captures_text.
type TextContentRequest struct {
	Filename string `json:"filename"`
	Format   string `json:"format,omitempty"`
}

// SettingsSetRequest represents the arguments for settings_set.
type SettingsSetRequest struct {
	CaptureFolder        string `json:"capture_folder"`
	DefaultCaptureFolder string `json:"default_capture_folder,omitempty"`
}

// ActivityRequest represents the arguments for activity_recent.
type ActivityRequest struct {
	Limit int `json:"limit,omitempty"`
}

// Handler implementations

// HandleCapturesDir handles the captures_dir tool call.
func (h *Handlers) HandleCapturesDir(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.GetCapturesDir(h.env)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleCapturesList handles the captures_list tool call.
func (h *Handlers) HandleCapturesList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.ListCaptures(h.env)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleCapturesMetadata handles the captures_metadata tool call.
func (h *Handlers) HandleCapturesMetadata(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[FilenameRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.GetCaptureMetadata(h.env, ops.MetadataInput{Filename: input.Filename})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleCapturesText handles the captures_text tool call.
func (h *Handlers) HandleCapturesText(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[TextContentRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.GetTextContent(h.env, ops.TextContentInput{
		Filename: input.Filename,
		Format:   input.Format,
	})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleCapturesImage handles the captures_image tool call.
func (h *Handlers) HandleCapturesImage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[FilenameRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.GetImageContent(h.env, ops.ImageContentInput{Filename: input.Filename})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleSettingsGet handles the settings_get tool call.
func (h *Handlers) HandleSettingsGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.GetAppSettings(h.env)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleSettingsSet handles the settings_set tool call.
func (h *Handlers) HandleSettingsSet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[SettingsSetRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.SaveAppSettings(h.env, ops.SaveSettingsInput{
		CaptureFolder:        input.CaptureFolder,
		DefaultCaptureFolder: input.DefaultCaptureFolder,
	})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleClipboardCopyImage handles the clipboard_copy_image tool call.
func (h *Handlers) HandleClipboardCopyImage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[FilenameRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.CopyImageToClipboard(h.env, ops.CopyInput{Filename: input.Filename})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleClipboardCheckEvent handles the clipboard_check_event tool call.
func (h *Handlers) HandleClipboardCheckEvent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.CheckClipboardEvent(h.env)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleActivityRecent handles the activity_recent tool call.
func (h *Handlers) HandleActivityRecent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ActivityRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.RecentActivity(h.env, ops.ActivityInput{Limit: input.Limit})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleSessionFocus handles the session_focus tool call. The presentation
// layer calls it on every window-focus transition; a second launch of the
// single-instance app forwards its arguments and re-raises focus, so this is
// where a second capture-id delivery is observed.
func (h *Handlers) HandleSessionFocus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h.bridge.OnFocus()
	return successResult(map[string]any{"checked": true})
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if gErr, ok := err.(*errors.GrabError); ok {
		errorObj := map[string]any{
			"code":    gErr.Code,
			"message": gErr.Message,
			"status":  gErr.Status,
		}
		// Internal error details may carry paths or subprocess output the
		// client has no use for; keep them server-side.
		if gErr.Code != errors.ErrInternal && gErr.Details != nil {
			errorObj["details"] = gErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
