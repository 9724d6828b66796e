package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clipnote/clipnote/internal/config"
	"github.com/clipnote/clipnote/internal/input"
	"github.com/clipnote/clipnote/internal/youtube"
	"github.com/clipnote/clipnote/pkg/catalog"
	"github.com/clipnote/clipnote/pkg/errors"
	"github.com/clipnote/clipnote/pkg/notion"
	"github.com/clipnote/clipnote/pkg/sync"
)

var (
	syncIDs       string
	syncCSV       string
	syncManifest  string
	syncDryRun    bool
	syncBatchSize int
)

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync video metadata from YouTube into Notion",
	Long: `Sync fetches metadata for the given video IDs from the YouTube Data API
and reconciles it against the Notion video database. Each video's channel is
resolved first with get-or-create semantics; a video whose channel cannot be
resolved is skipped rather than created without its relation. Existing pages
are updated only when a field actually differs.`,
	Example: `  clipnote sync --ids dQw4w9WgXcQ,9bZkp7q19f0
  clipnote sync --csv videos.csv
  clipnote sync --manifest sync.yaml --dry-run`,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)

	syncCmd.Flags().StringVar(&syncIDs, "ids", "", "Comma-separated video IDs")
	syncCmd.Flags().StringVar(&syncCSV, "csv", "", "CSV file with a \"Video Id\" column")
	syncCmd.Flags().StringVar(&syncManifest, "manifest", "", "YAML manifest with a videos list")
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Show what would change without writing to Notion")
	syncCmd.Flags().IntVar(&syncBatchSize, "batch-size", 0, "Video IDs fetched per YouTube API call (default from config, max 50)")
}

func runSync(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if syncBatchSize > 0 {
		cfg.BatchSize = syncBatchSize
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ids, err := collectIDs()
	if err != nil {
		return err
	}

	normalizer, err := catalog.NewNormalizer(cfg.Timezone)
	if err != nil {
		return err
	}

	syncer, err := sync.New(
		youtube.NewClient(cfg.YouTubeAPIKey),
		notion.NewClient(cfg.NotionToken),
		cfg.VideoDatabaseID,
		cfg.ChannelDatabaseID,
		sync.WithNormalizer(normalizer),
		sync.WithBatchSize(cfg.BatchSize),
		sync.WithDryRun(syncDryRun),
	)
	if err != nil {
		return err
	}

	result, err := syncer.Run(cmd.Context(), ids)
	if err != nil {
		return err
	}

	fmt.Println(result.Summary())
	if result.HasFailures() {
		return fmt.Errorf("%d of %d videos failed", result.Failed, result.Total)
	}
	return nil
}

// collectIDs gathers video IDs from whichever input sources were given.
func collectIDs() ([]string, error) {
	var ids []string

	if syncIDs != "" {
		ids = append(ids, input.FromArgs(syncIDs)...)
	}
	if syncCSV != "" {
		fromCSV, err := input.FromCSV(syncCSV)
		if err != nil {
			return nil, err
		}
		ids = append(ids, fromCSV...)
	}
	if syncManifest != "" {
		fromManifest, err := input.FromManifest(syncManifest)
		if err != nil {
			return nil, err
		}
		ids = append(ids, fromManifest...)
	}

	ids = input.Dedupe(ids)
	if len(ids) == 0 {
		return nil, errors.NewValidationError("ids", nil, "no video IDs supplied; use --ids, --csv, or --manifest")
	}
	return ids, nil
}
