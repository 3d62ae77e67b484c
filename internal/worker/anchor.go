package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/loupe-labs/loupe/internal/locate"
	"github.com/loupe-labs/loupe/internal/model"
)

// AnchorJob re-anchors one fact's quote against its source document.
// Stored offsets on the fact are deliberately ignored: re-anchoring
// exists to replace them.
type AnchorJob struct {
	Index   int
	Fact    model.FactRecord
	Doc     string
	DocErr  error
	Locator *locate.Locator
}

// Execute runs the matching cascade and integrity check for one fact
func (j *AnchorJob) Execute(ctx context.Context) Result {
	rec := model.AnchorResult{
		ID:         j.Fact.ID,
		Quote:      j.Fact.Quote,
		SourceFile: j.Fact.SourceFile,
		MatchType:  model.MatchNone,
		Integrity:  model.IntegrityMissingCitation,
	}
	if j.DocErr != nil {
		rec.Error = j.DocErr.Error()
		return &AnchorOutcome{Index: j.Index, Record: rec, err: j.DocErr}
	}

	m := j.Locator.Locate(j.Doc, j.Fact.Quote, nil)
	rec.MatchType = m.Type
	if m.Found {
		rec.Anchored = true
		rec.Start = m.Start
		rec.End = m.End
	}
	rec.Integrity = j.Locator.VerifyIntegrity(j.Doc, j.Fact.Quote)
	return &AnchorOutcome{Index: j.Index, Record: rec}
}

// AnchorOutcome is the per-fact result of a batch run
type AnchorOutcome struct {
	Index  int
	Record model.AnchorResult
	err    error
}

// Err returns the source-loading error, if any
func (r *AnchorOutcome) Err() error {
	return r.err
}

// AnchorBatch re-anchors many facts concurrently, loading each
// distinct source file once and sharing its text across all the
// facts that cite it.
type AnchorBatch struct {
	locator     *locate.Locator
	concurrency int
}

// NewAnchorBatch creates a new batch processor
func NewAnchorBatch(locator *locate.Locator, concurrency int) *AnchorBatch {
	return &AnchorBatch{
		locator:     locator,
		concurrency: concurrency,
	}
}

// Process anchors all facts and returns outcomes in input order
func (b *AnchorBatch) Process(facts []model.FactRecord) []*AnchorOutcome {
	if len(facts) == 0 {
		return []*AnchorOutcome{}
	}

	docs := make(map[string]string)
	errs := make(map[string]error)
	for _, f := range facts {
		if _, loaded := docs[f.SourceFile]; loaded || errs[f.SourceFile] != nil {
			continue
		}
		data, err := os.ReadFile(f.SourceFile)
		if err != nil {
			errs[f.SourceFile] = fmt.Errorf("read source: %w", err)
			continue
		}
		docs[f.SourceFile] = string(data)
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	// Submit from its own goroutine so Wait drains results while the
	// queue fills; exports can be far larger than the channel buffers.
	go func() {
		for i, f := range facts {
			pool.Submit(&AnchorJob{
				Index:   i,
				Fact:    f,
				Doc:     docs[f.SourceFile],
				DocErr:  errs[f.SourceFile],
				Locator: b.locator,
			})
		}
		pool.Close()
	}()

	results := pool.Wait()

	outcomes := make([]*AnchorOutcome, len(results))
	for i, result := range results {
		outcomes[i] = result.(*AnchorOutcome)
	}
	sort.Slice(outcomes, func(i, k int) bool {
		return outcomes[i].Index < outcomes[k].Index
	})

	return outcomes
}

// ProcessFile reads fact records from a JSON file and anchors them
func (b *AnchorBatch) ProcessFile(path string) ([]*AnchorOutcome, error) {
	facts, err := ReadFactsFile(path)
	if err != nil {
		return nil, fmt.Errorf("read facts: %w", err)
	}

	return b.Process(facts), nil
}

// ReadFactsFile reads fact records from a JSON array file
func ReadFactsFile(path string) ([]model.FactRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open facts file: %w", err)
	}

	var facts []model.FactRecord
	if err := json.Unmarshal(data, &facts); err != nil {
		return nil, fmt.Errorf("parse facts file: %w", err)
	}

	return facts, nil
}
