package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/grabapp/grabd/internal/clipboard"
	"github.com/grabapp/grabd/internal/history"
	"github.com/grabapp/grabd/internal/mcp"
	"github.com/grabapp/grabd/internal/ops"
	"github.com/grabapp/grabd/internal/session"
	"github.com/grabapp/grabd/internal/settings"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// cliCommands contains known CLI subcommands.
var cliCommands = map[string]bool{
	"dir": true, "list": true, "metadata": true,
	"text": true, "image": true, "settings": true,
	"copy": true, "event": true, "activity": true,
	"help": true,
}

// isCLIMode determines if we should run CLI vs MCP server.
func isCLIMode() bool {
	if len(os.Args) < 2 {
		return false // No args → MCP server
	}
	arg := os.Args[1]
	// Known subcommand → CLI
	if cliCommands[arg] {
		return true
	}
	// --help or --version → CLI
	if arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" {
		return true
	}
	return false // Default → MCP server
}

// isHelpOrVersion returns true if the user is requesting help or version info.
func isHelpOrVersion() bool {
	if len(os.Args) < 2 {
		return false
	}
	arg := os.Args[1]
	return arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" || arg == "help"
}

// isTerminal returns true if stdin is a terminal (not piped).
func isTerminal() bool {
	stat, _ := os.Stdin.Stat()
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// printBanner displays a friendly banner when run interactively without args.
func printBanner() {
	fmt.Println(`
                 _         _
   __ _ _ _ __ _| |__   __| |
  / _' | '_/ _' | '_ \ / _' |
  \__, |_| \__,_|_.__/ \__,_|
  |___/

  Grab capture registry backend

  Usage: grabd <command> [options]
         grabd --help

  MCP server mode requires piped input.`)
}

func main() {
	// No args + interactive terminal → show banner and exit
	if len(os.Args) < 2 && isTerminal() {
		printBanner()
		return
	}

	// Handle --help/--version before any setup (no base dir needed)
	if isHelpOrVersion() {
		app := newCLIApp(nil)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// stdout is the MCP protocol channel; diagnostics go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	baseDir, err := settings.DefaultBaseDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	env := &ops.Env{
		BaseDir: baseDir,
		Copier:  clipboard.NewSystemCopier(),
		Log:     log,
	}

	// The journal is supplemental: run without it rather than refuse to start.
	if db, err := history.Init(baseDir); err != nil {
		log.Warn("activity journal unavailable", "error", err)
	} else {
		env.DB = db
		defer db.Close()
	}

	// CLI mode: known subcommand
	if isCLIMode() {
		app := newCLIApp(env)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Unknown argument + terminal → show error unless it is the capture-id
	// launch argument, which the MCP server consumes.
	if _, hasCaptureID := session.ExtractCaptureID(os.Args[1:]); len(os.Args) >= 2 && isTerminal() && !hasCaptureID {
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "Run 'grabd --help' for usage.\n")
		os.Exit(1)
	}

	// MCP server mode (default)
	if err := mcp.Run(env, os.Args[1:], Version); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
