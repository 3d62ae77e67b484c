package cli

import (
	"fmt"
	"os"

	"github.com/loupe-labs/loupe/internal/model"
	"github.com/loupe-labs/loupe/internal/reader"
	"github.com/spf13/cobra"
)

var (
	viewMode    string
	viewRaw     bool
	viewStart   int
	viewEnd     int
	viewNoCache bool
)

// viewCmd represents the view command
var viewCmd = &cobra.Command{
	Use:   "view <file> <quote>",
	Short: "Render a reader view with the quote highlighted",
	Long: `View renders a document the way the reader UI shows it: normalized
for reading, with the quote's span wrapped in highlight markers.

The displayed variant is chosen by --mode. Auto prefers formatted raw
text, then markdown, then visible text extracted from HTML. Text mode
displays the raw text verbatim, which keeps stored offsets valid.

Matches that span most of the document are left unhighlighted rather
than painted over everything.

Example:
  loupe view article.txt "the quoted evidence"
  loupe view article.txt "the quoted evidence" --mode text --start 120 --end 180
  loupe view page.html "the quoted evidence" --mode html --raw`,
	Args: cobra.ExactArgs(2),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)

	viewCmd.Flags().StringVar(&viewMode, "mode", "auto", "variant to display: auto, text, markdown, or html")
	viewCmd.Flags().BoolVar(&viewRaw, "raw", false, "skip normalization")
	viewCmd.Flags().IntVar(&viewStart, "start", -1, "stored start offset from a previous run")
	viewCmd.Flags().IntVar(&viewEnd, "end", -1, "stored end offset from a previous run")
	viewCmd.Flags().BoolVar(&viewNoCache, "no-cache", false, "disable the normalization cache")
}

func runView(cmd *cobra.Command, args []string) error {
	file, quote := args[0], args[1]

	src, err := loadSource(file)
	if err != nil {
		return err
	}
	if src.IsEmpty() {
		return fmt.Errorf("document is empty: %s", file)
	}

	cfg := loadConfig()
	if viewNoCache {
		cfg.Cache.Enabled = false
	}

	q := reader.Quote{Text: quote}
	if viewStart >= 0 && viewEnd >= 0 {
		q.Stored = &model.Offsets{Start: viewStart, End: viewEnd}
	}

	b := reader.NewBuilder(cfg)
	view := b.BuildView(src, q, reader.ViewOptions{
		Mode: model.ParseViewMode(viewMode),
		Raw:  viewRaw,
	})

	fmt.Println(view.Highlight.Text)

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "Variant: %s\n", view.Format)
	if view.Match.Found {
		fmt.Fprintf(os.Stderr, "Match: %s [%d:%d)\n", qualityBadge(view.Quality), view.Match.Start, view.Match.End)
	} else {
		fmt.Fprintf(os.Stderr, "Match: %s\n", qualityBadge(view.Quality))
	}
	fmt.Fprintf(os.Stderr, "Integrity: %s\n", integrityBadge(view.Integrity))
	if view.Match.Found && !view.Highlight.Applied {
		fmt.Fprintf(os.Stderr, "Highlight suppressed: the span covers too much of the document\n")
	}

	return nil
}

// loadSource reads one file into the variant its extension names
func loadSource(path string) (model.SourceContent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.SourceContent{}, fmt.Errorf("read document: %w", err)
	}

	var src model.SourceContent
	switch detectFormat(path, "") {
	case model.FormatMarkdown:
		src.Markdown = string(data)
	case model.FormatHTML:
		src.HTMLClean = string(data)
	default:
		src.TextRaw = string(data)
	}
	return src, nil
}
