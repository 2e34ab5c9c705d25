// Package main is the entry point for the floraload CLI, which bulk-imports
// taxonomy records into the document store.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/smartcampus/floradex/internal/config"
	"github.com/smartcampus/floradex/internal/db"
	"github.com/smartcampus/floradex/internal/db/elastic"
	"github.com/smartcampus/floradex/internal/version"
)

var (
	filePath string
	index    string
	docsRate float64
	burst    int
	verbose  bool
)

// maxLineBytes bounds a single NDJSON record. Taxonomy entries with long
// synonym lists stay well under this.
const maxLineBytes = 1 << 20

var rootCmd = &cobra.Command{
	Use:   "floraload",
	Short: "Bulk-import taxonomy records into the floradex document store",
	Long: `floraload reads newline-delimited JSON taxonomy records and indexes them
into the configured Elasticsearch cluster, throttled to avoid overloading
small campus deployments.

Each input line is one taxon document. Records carrying an "id" field are
indexed under that id so re-runs are idempotent.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("floraload %s (%s, %s)\n", version.Version, version.Commit, version.Date)
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import an NDJSON taxonomy file",
	Long: `Import reads taxonomy records from the given NDJSON file and indexes them
one per line.

Example:
  floraload import --file taxonomy.ndjson
  floraload import --file taxonomy.ndjson --rate 50 --index flora_funga_taxonomy`,
	RunE: runImport,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	importCmd.Flags().StringVar(&filePath, "file", "", "NDJSON taxonomy file (required)")
	importCmd.Flags().StringVar(&index, "index", "", "target index (default: from config)")
	importCmd.Flags().Float64Var(&docsRate, "rate", 100, "documents indexed per second")
	importCmd.Flags().IntVar(&burst, "burst", 10, "rate limiter burst size")
	_ = importCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(config.GetEnv())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if index == "" {
		index = cfg.Indices.Taxonomy
	}

	store, err := elastic.NewStore(elastic.Config{
		Addresses:          cfg.Elasticsearch.Addresses,
		Username:           cfg.Elasticsearch.Username,
		Password:           cfg.Elasticsearch.Password,
		InsecureSkipVerify: cfg.Elasticsearch.InsecureSkipVerify,
	})
	if err != nil {
		return fmt.Errorf("create store: %w", err)
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Elasticsearch.ReadinessTimeout)*time.Second); err != nil {
		return fmt.Errorf("store not ready: %w", err)
	}

	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	if verbose {
		fmt.Fprintf(os.Stderr, "Importing %s into %s at %.0f docs/s\n", filePath, index, docsRate)
	}

	n, skipped, err := importNDJSON(ctx, store, f, index, rate.NewLimiter(rate.Limit(docsRate), burst))
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d documents into %s (%d skipped)\n", n, index, skipped)
	return nil
}

// importNDJSON indexes one document per input line, waiting on the limiter
// before each write. Blank lines are ignored; malformed lines are skipped
// and counted.
func importNDJSON(ctx context.Context, store db.DocumentStore, r io.Reader, index string, limiter *rate.Limiter) (indexed, skipped int, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}

		var doc struct {
			ID string `json:"id"`
		}
		if jsonErr := json.Unmarshal(raw, &doc); jsonErr != nil {
			if verbose {
				fmt.Fprintf(os.Stderr, "line %d: skipping malformed record: %v\n", line, jsonErr)
			}
			skipped++
			continue
		}

		if waitErr := limiter.Wait(ctx); waitErr != nil {
			return indexed, skipped, waitErr
		}

		var payload json.RawMessage = append([]byte(nil), raw...)
		if idxErr := store.IndexDocument(ctx, index, doc.ID, payload, false); idxErr != nil {
			return indexed, skipped, fmt.Errorf("line %d: %w", line, idxErr)
		}
		indexed++
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return indexed, skipped, fmt.Errorf("read input: %w", scanErr)
	}
	return indexed, skipped, nil
}
