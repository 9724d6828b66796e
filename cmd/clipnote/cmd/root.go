// Package cmd implements the clipnote command tree.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/clipnote/clipnote/pkg/logging"
)

var (
	verbose bool
	quiet   bool

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "clipnote",
	Short: "Sync YouTube video metadata into Notion databases",
	Long: `Clipnote fetches video metadata from the YouTube Data API and keeps two
Notion databases in sync with it: one for videos and one for their channels,
linked by a relation. Records are created when missing and updated only when
a field actually changed, so repeated runs against unchanged videos write
nothing.

Credentials are read from the environment (or a .env file): YOUTUBE_API_KEY,
NOTION_API_KEY, NOTION_VIDEO_DATABASE_ID, and NOTION_CHANNEL_DATABASE_ID.`,
	PersistentPreRun: setupLogging,
}

// Execute runs the root command.
func Execute(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date

	// Context with signal handling so an interrupt stops between remote calls
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only log warnings and errors")
	rootCmd.SilenceUsage = true
}

func setupLogging(_ *cobra.Command, _ []string) {
	switch {
	case verbose:
		logging.SetDefault(logging.Default().Level(zerolog.DebugLevel))
	case quiet:
		logging.SetDefault(logging.Default().Level(zerolog.WarnLevel))
	}
}
