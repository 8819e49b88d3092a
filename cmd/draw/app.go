package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/midbel/chartkit/internal/logging"
	"github.com/spf13/cobra"
)

var Version = "dev"

type App struct {
	root   *cobra.Command
	stdout io.Writer
	stderr io.Writer

	logLevel  string
	logFormat string
}

func NewApp() *App {
	app := App{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	app.root = &cobra.Command{
		Use:           "draw",
		Short:         "Render chart documents to SVG",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Init(logging.Config{
				Level:  app.logLevel,
				Format: app.logFormat,
				Output: app.stderr,
			})
			logging.SetLevel(app.logLevel)
		},
	}
	flags := app.root.PersistentFlags()
	flags.StringVar(&app.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	flags.StringVar(&app.logFormat, "log-format", "console", "log format (console, json)")

	app.root.AddCommand(
		app.newRenderCmd(),
		app.newWatchCmd(),
		app.newVersionCmd(),
	)
	return &app
}

func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

func (a *App) Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return a.root.ExecuteContext(ctx)
}

func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.Execute(ctx)
}

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "draw version %s\n", Version)
		},
	}
}
