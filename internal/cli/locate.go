package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/loupe-labs/loupe/internal/highlight"
	"github.com/loupe-labs/loupe/internal/locate"
	"github.com/loupe-labs/loupe/internal/model"
	"github.com/spf13/cobra"
)

var (
	locStart   int
	locEnd     int
	locSnippet int
	locJSON    bool
)

// locateCmd represents the locate command
var locateCmd = &cobra.Command{
	Use:   "locate <file> <quote>",
	Short: "Find where a quote lives in a document",
	Long: `Locate runs the matching cascade for one quote against one document:
1. Stored offsets (trusted as-is when they fit the document)
2. Exact case-insensitive substring search
3. Whitespace-tolerant search
4. Fuzzy prefix search

The first strategy that answers wins, and the answer carries a trust
label: Precise for stored offsets, then Exact, Normalized, and Fuzzy.
Integrity reports whether the quote still reproduces the source text.

Example:
  loupe locate article.txt "exact words from the article"
  loupe locate article.txt "a quote" --start 120 --end 180
  loupe locate article.txt "a quote" --json`,
	Args: cobra.ExactArgs(2),
	RunE: runLocate,
}

func init() {
	rootCmd.AddCommand(locateCmd)

	locateCmd.Flags().IntVar(&locStart, "start", -1, "stored start offset from a previous run")
	locateCmd.Flags().IntVar(&locEnd, "end", -1, "stored end offset from a previous run")
	locateCmd.Flags().IntVar(&locSnippet, "snippet", 200, "max snippet length, 0 disables the snippet")
	locateCmd.Flags().BoolVar(&locJSON, "json", false, "emit the result as JSON")
}

var qualityColors = map[string]*color.Color{
	"Precise":    color.New(color.FgGreen, color.Bold),
	"Exact":      color.New(color.FgGreen),
	"Normalized": color.New(color.FgYellow),
	"Fuzzy":      color.New(color.FgMagenta),
	"Not Found":  color.New(color.FgRed),
}

var integrityColors = map[model.IntegrityStatus]*color.Color{
	model.IntegrityVerified:        color.New(color.FgGreen),
	model.IntegrityFuzzyMatch:      color.New(color.FgYellow),
	model.IntegrityMissingCitation: color.New(color.FgRed),
}

func qualityBadge(q model.MatchQuality) string {
	if c, ok := qualityColors[q.Label]; ok {
		return c.Sprint(q.Label)
	}
	return q.Label
}

func integrityBadge(s model.IntegrityStatus) string {
	if c, ok := integrityColors[s]; ok {
		return c.Sprint(string(s))
	}
	return string(s)
}

// locateReport is the JSON shape of one localization
type locateReport struct {
	Match     model.MatchResult     `json:"match"`
	Quality   model.MatchQuality    `json:"quality"`
	Integrity model.IntegrityStatus `json:"integrity"`
	Snippet   string                `json:"snippet,omitempty"`
}

func runLocate(cmd *cobra.Command, args []string) error {
	file, quote := args[0], args[1]

	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}
	doc := string(data)

	var stored *model.Offsets
	if locStart >= 0 && locEnd >= 0 {
		stored = &model.Offsets{Start: locStart, End: locEnd}
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Document: %s (%d bytes)\n", file, len(doc))
		fmt.Fprintf(os.Stderr, "Quote: %d bytes\n", len(quote))
		if stored != nil {
			fmt.Fprintf(os.Stderr, "Stored offsets: [%d:%d)\n", stored.Start, stored.End)
		}
		fmt.Fprintln(os.Stderr)
	}

	cfg := loadConfig()
	loc := locate.New(cfg.Locate)

	m := loc.Locate(doc, quote, stored)
	q := highlight.Classify(m.Type)
	integrity := loc.VerifyIntegrity(doc, quote)

	var snippet string
	if m.Found && locSnippet > 0 {
		snippet = locate.Snippet(doc, m, locSnippet)
	}

	if locJSON {
		out, err := json.MarshalIndent(locateReport{
			Match:     m,
			Quality:   q,
			Integrity: integrity,
			Snippet:   snippet,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	if m.Found {
		fmt.Printf("%s  [%d:%d)  %q\n", qualityBadge(q), m.Start, m.End, m.Span(doc))
	} else {
		fmt.Printf("%s  no strategy located the quote\n", qualityBadge(q))
	}
	fmt.Printf("Trust: %d/4   Integrity: %s\n", q.TrustRank, integrityBadge(integrity))
	if snippet != "" {
		fmt.Printf("\n  %s\n", snippet)
	}

	return nil
}
