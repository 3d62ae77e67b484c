package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/loupe-labs/loupe/internal/locate"
	"github.com/loupe-labs/loupe/internal/model"
	"github.com/loupe-labs/loupe/internal/worker"
	"github.com/spf13/cobra"
)

var (
	anchorConcurrency int
	anchorOut         string
)

// anchorCmd represents the anchor command
var anchorCmd = &cobra.Command{
	Use:   "anchor <facts.json>",
	Short: "Re-anchor a batch of fact quotes in parallel",
	Long: `Anchor recomputes offsets for every fact in a JSON export:
- Read fact records (id, quote, source_file) from the input file
- Load each distinct source document once
- Run the matching cascade for every quote with a pool of workers
- Verify how faithfully each quote reproduces its source
- Write the anchored records, in input order, as JSON

Previously stored offsets are ignored on purpose: re-anchoring exists
to replace them after documents get re-extracted.

Example:
  loupe anchor facts.json
  loupe anchor facts.json --concurrency 10 -o anchored.json`,
	Args: cobra.ExactArgs(1),
	RunE: runAnchor,
}

func init() {
	rootCmd.AddCommand(anchorCmd)

	anchorCmd.Flags().IntVar(&anchorConcurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	anchorCmd.Flags().StringVarP(&anchorOut, "output", "o", "", "output path (default: stdout)")
}

func runAnchor(cmd *cobra.Command, args []string) error {
	file := args[0]

	cfg := loadConfig()
	if anchorConcurrency > 0 {
		cfg.Concurrency.Workers = anchorConcurrency
	}

	fmt.Fprintf(os.Stderr, "\n")
	banner(os.Stderr, "Loupe Batch Anchoring")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", cfg.Concurrency.Workers)
	fmt.Fprintf(os.Stderr, "\n")

	batch := worker.NewAnchorBatch(locate.New(cfg.Locate), cfg.Concurrency.Workers)
	outcomes, err := batch.ProcessFile(file)
	if err != nil {
		return fmt.Errorf("anchor batch: %w", err)
	}

	records := make([]model.AnchorResult, len(outcomes))
	anchored := 0
	failed := 0

	for i, o := range outcomes {
		records[i] = o.Record

		switch {
		case o.Err() != nil:
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", o.Record.ID, o.Err())
		case o.Record.Anchored:
			anchored++
			if verbose {
				fmt.Fprintf(os.Stderr, "✓ %s: %s [%d:%d) %s\n",
					o.Record.ID, o.Record.MatchType, o.Record.Start, o.Record.End, o.Record.Integrity)
			}
		default:
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: quote not found in %s\n", o.Record.ID, o.Record.SourceFile)
		}
	}

	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}

	if anchorOut == "" {
		fmt.Println(string(out))
	} else if err := os.WriteFile(anchorOut, append(out, '\n'), 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	// Summary
	fmt.Fprintf(os.Stderr, "\n")
	banner(os.Stderr, "Anchoring Complete")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d facts\n", len(records))
	fmt.Fprintf(os.Stderr, "  Anchored:  %d\n", anchored)
	fmt.Fprintf(os.Stderr, "  Failed:    %d\n", failed)
	if anchorOut != "" {
		fmt.Fprintf(os.Stderr, "  Output:    %s\n", anchorOut)
	}
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}
