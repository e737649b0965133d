package mcp

import "github.com/mark3labs/mcp-go/mcp"

// Tool definitions for the Grab command surface. Names follow the
// "type_action" convention so the type of a tool is its prefix.

var capturesDirToolDef = mcp.NewTool("captures_dir",
	mcp.WithDescription("Resolve the effective captures directory: the configured folder if it exists, else the platform default."),
)

var capturesListToolDef = mcp.NewTool("captures_list",
	mcp.WithDescription("Scan the captures directory and list every recognized artifact (images and text snippets), newest first, each with its optional sidecar metadata."),
)

var capturesMetadataToolDef = mcp.NewTool("captures_metadata",
	mcp.WithDescription("Load the sidecar metadata record for one named artifact."),
	mcp.WithString("filename",
		mcp.Required(),
		mcp.Description("Artifact file name, e.g. shot.png"),
	),
)

var capturesTextToolDef = mcp.NewTool("captures_text",
	mcp.WithDescription("Return the content of one text artifact, raw or rendered to HTML for preview."),
	mcp.WithString("filename",
		mcp.Required(),
		mcp.Description("Artifact file name, e.g. note.txt"),
	),
	mcp.WithString("format",
		mcp.Description("Content format: raw (default) or html"),
	),
)

var capturesImageToolDef = mcp.NewTool("captures_image",
	mcp.WithDescription("Return the bytes of one image artifact, base64-encoded for transport."),
	mcp.WithString("filename",
		mcp.Required(),
		mcp.Description("Artifact file name, e.g. shot.png"),
	),
)

var settingsGetToolDef = mcp.NewTool("settings_get",
	mcp.WithDescription("Load the application settings record, creating it on first access."),
)

var settingsSetToolDef = mcp.NewTool("settings_set",
	mcp.WithDescription("Rewrite the application settings record in full. The capture folder is created on disk if missing."),
	mcp.WithString("capture_folder",
		mcp.Required(),
		mcp.Description("Absolute path of the active capture folder"),
	),
	mcp.WithString("default_capture_folder",
		mcp.Description("Fallback capture folder; the persisted value is kept when omitted"),
	),
)

var clipboardCopyImageToolDef = mcp.NewTool("clipboard_copy_image",
	mcp.WithDescription("Push one named image artifact onto the system clipboard."),
	mcp.WithString("filename",
		mcp.Required(),
		mcp.Description("Artifact file name, e.g. shot.png"),
	),
)

var clipboardCheckEventToolDef = mcp.NewTool("clipboard_check_event",
	mcp.WithDescription("Consume the pending one-shot clipboard event, if any. Delivery is at-most-once: the backing file is deleted on read."),
)

var activityRecentToolDef = mcp.NewTool("activity_recent",
	mcp.WithDescription("Return the newest journaled actions (copies, consumed clipboard events, capture-id activations)."),
	mcp.WithNumber("limit",
		mcp.Description("Maximum rows to return (default 50, max 500)"),
	),
)

var sessionFocusToolDef = mcp.NewTool("session_focus",
	mcp.WithDescription("Signal that the main window became focused; re-runs capture-id extraction from the launch arguments and emits a capture-id notification when one is present."),
)
