package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/QAddict/ruix/internal/config"
	"github.com/QAddict/ruix/internal/demo"
	"github.com/QAddict/ruix/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╦═╗╦ ╦╦═╗ ╦
  ╠╦╝║ ║║╔╩╦╝
  ╩╚═╚═╝╩╩ ╚═
`

func main() {
	if err := newRootCmd().Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "ruix",
		Short: "Reactive state-to-view binding demo",
		Long: `RUIX binds observable models to a document tree.

The ruix command builds the bookstore demo page and:

  • renders it to static HTML
  • serves a live preview with a JSON state API
  • publishes the rendered page to S3`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.ConfigFileName, "Path to the configuration file")

	rootCmd.AddCommand(
		renderCmd(),
		serveCmd(),
		publishCmd(),
		versionCmd(),
	)
	return rootCmd
}

// loadConfig reads the file named by --config. A missing file is only an
// error when the flag was given explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")

	var (
		cfg *config.Config
		err error
	)
	if cmd.Flags().Changed("config") {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.LoadOptional(path)
	}
	if err != nil {
		return nil, nil, err
	}
	return cfg, cfg.Logger(cmd.ErrOrStderr()), nil
}

// loadPage creates the demo page from the configured books.
func loadPage(cfg *config.Config) (*demo.Page, error) {
	books, err := demo.LoadBooks(cfg.BooksPath())
	if err != nil {
		return nil, err
	}
	return demo.NewPage(cfg.Title, books), nil
}

// printBanner prints the ASCII art banner.
func printBanner(w io.Writer) {
	fmt.Fprint(w, banner)
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}

// printError prints err, using the structured format for coded errors.
func printError(w io.Writer, err error) {
	if e, ok := errors.As(err); ok {
		fmt.Fprintln(w, e.Format())
		return
	}
	fmt.Fprintf(w, "\033[31mError:\033[0m %s\n", err)
}
