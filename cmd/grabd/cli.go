package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/grabapp/grabd/internal/errors"
	"github.com/grabapp/grabd/internal/ops"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(env *ops.Env) *cli.App {
	app := &cli.App{
		Name:    "grabd",
		Usage:   "Backend data layer for the Grab capture gallery",
		Version: Version,
		Commands: []*cli.Command{
			dirCmd(env),
			listCmd(env),
			metadataCmd(env),
			textCmd(env),
			imageCmd(env),
			settingsCmd(env),
			copyCmd(env),
			eventCmd(env),
			activityCmd(env),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// dirCmd creates the dir command.
func dirCmd(env *ops.Env) *cli.Command {
	return &cli.Command{
		Name:  "dir",
		Usage: "Print the effective captures directory",
		Action: func(c *cli.Context) error {
			output, err := ops.GetCapturesDir(env)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// listCmd creates the list command.
func listCmd(env *ops.Env) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List captured artifacts, newest first",
		Action: func(c *cli.Context) error {
			output, err := ops.ListCaptures(env)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// metadataCmd creates the metadata command.
func metadataCmd(env *ops.Env) *cli.Command {
	return &cli.Command{
		Name:      "metadata",
		Usage:     "Print the sidecar metadata for one artifact",
		ArgsUsage: "<filename>",
		Action: func(c *cli.Context) error {
			filename, err := requireFilename(c)
			if err != nil {
				return err
			}

			output, err := ops.GetCaptureMetadata(env, ops.MetadataInput{Filename: filename})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// textCmd creates the text command.
func textCmd(env *ops.Env) *cli.Command {
	return &cli.Command{
		Name:      "text",
		Usage:     "Print the content of one text artifact",
		ArgsUsage: "<filename>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "html", Usage: "Render the text as HTML for preview"},
		},
		Action: func(c *cli.Context) error {
			filename, err := requireFilename(c)
			if err != nil {
				return err
			}

			format := ops.TextFormatRaw
			if c.Bool("html") {
				format = ops.TextFormatHTML
			}

			output, err := ops.GetTextContent(env, ops.TextContentInput{
				Filename: filename,
				Format:   format,
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// imageCmd creates the image command.
func imageCmd(env *ops.Env) *cli.Command {
	return &cli.Command{
		Name:      "image",
		Usage:     "Print one image artifact base64-encoded",
		ArgsUsage: "<filename>",
		Action: func(c *cli.Context) error {
			filename, err := requireFilename(c)
			if err != nil {
				return err
			}

			output, err := ops.GetImageContent(env, ops.ImageContentInput{Filename: filename})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// settingsCmd creates the settings command with get/set subcommands.
func settingsCmd(env *ops.Env) *cli.Command {
	return &cli.Command{
		Name:  "settings",
		Usage: "Read or rewrite the application settings",
		Subcommands: []*cli.Command{
			{
				Name:  "get",
				Usage: "Print the settings record",
				Action: func(c *cli.Context) error {
					output, err := ops.GetAppSettings(env)
					if err != nil {
						return outputError(err)
					}
					return outputJSON(output)
				},
			},
			{
				Name:  "set",
				Usage: "Rewrite the settings record",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "capture-folder", Required: true, Usage: "Absolute path of the active capture folder"},
					&cli.StringFlag{Name: "default-capture-folder", Usage: "Fallback folder; persisted value is kept when omitted"},
				},
				Action: func(c *cli.Context) error {
					output, err := ops.SaveAppSettings(env, ops.SaveSettingsInput{
						CaptureFolder:        c.String("capture-folder"),
						DefaultCaptureFolder: c.String("default-capture-folder"),
					})
					if err != nil {
						return outputError(err)
					}
					return outputJSON(output)
				},
			},
		},
	}
}

// copyCmd creates the copy command.
func copyCmd(env *ops.Env) *cli.Command {
	return &cli.Command{
		Name:      "copy",
		Usage:     "Push one image artifact onto the system clipboard",
		ArgsUsage: "<filename>",
		Action: func(c *cli.Context) error {
			filename, err := requireFilename(c)
			if err != nil {
				return err
			}

			output, err := ops.CopyImageToClipboard(env, ops.CopyInput{Filename: filename})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// eventCmd creates the event command.
func eventCmd(env *ops.Env) *cli.Command {
	return &cli.Command{
		Name:  "event",
		Usage: "Consume the pending clipboard event, if any",
		Action: func(c *cli.Context) error {
			output, err := ops.CheckClipboardEvent(env)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// activityCmd creates the activity command.
func activityCmd(env *ops.Env) *cli.Command {
	return &cli.Command{
		Name:  "activity",
		Usage: "Print the newest journaled actions",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Aliases: []string{"n"}, Usage: "Maximum rows to return"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.RecentActivity(env, ops.ActivityInput{Limit: c.Int("limit")})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// Helper functions

// requireFilename reads the single positional filename argument.
func requireFilename(c *cli.Context) (string, error) {
	if c.NArg() < 1 {
		return "", outputError(errors.NewInvalidRequest("filename argument is required"))
	}
	return c.Args().First(), nil
}

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if gErr, ok := err.(*errors.GrabError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", gErr.Code, gErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}
