package locate

import (
	"strings"
	"testing"

	"github.com/loupe-labs/loupe/internal/model"
)

func newTestLocator() *Locator {
	return New(model.DefaultConfig().Locate)
}

func TestLocateExact(t *testing.T) {
	l := newTestLocator()

	m := l.Locate("The cat sat on the mat.", "cat sat", nil)
	if !m.Found {
		t.Fatal("Expected quote to be found")
	}
	if m.Start != 4 || m.End != 11 {
		t.Errorf("Expected span [4,11), got [%d,%d)", m.Start, m.End)
	}
	if m.Type != model.MatchExact {
		t.Errorf("Expected match type %q, got %q", model.MatchExact, m.Type)
	}
}

func TestLocateExactIgnoresCase(t *testing.T) {
	l := newTestLocator()

	m := l.Locate("The CAT sat on the mat.", "cat SAT", nil)
	if !m.Found || m.Type != model.MatchExact {
		t.Fatalf("Expected case-insensitive exact match, got %+v", m)
	}
	if m.Start != 4 || m.End != 11 {
		t.Errorf("Expected span [4,11), got [%d,%d)", m.Start, m.End)
	}
}

func TestLocateNormalized(t *testing.T) {
	l := newTestLocator()

	doc := "The   cat\nsat"
	m := l.Locate(doc, "cat sat", nil)
	if !m.Found {
		t.Fatal("Expected quote to be found across collapsed whitespace")
	}
	if m.Type != model.MatchNormalized {
		t.Errorf("Expected match type %q, got %q", model.MatchNormalized, m.Type)
	}
	if m.Start != 6 || m.End != 13 {
		t.Errorf("Expected span [6,13), got [%d,%d)", m.Start, m.End)
	}
	if got := doc[m.Start:m.End]; got != "cat\nsat" {
		t.Errorf("Expected span to cover original bytes %q, got %q", "cat\nsat", got)
	}
}

func TestLocateStoredPriority(t *testing.T) {
	l := newTestLocator()

	doc := "The cat sat on the mat."
	m := l.Locate(doc, "cat sat", &model.Offsets{Start: 4, End: 11})
	if m.Type != model.MatchStored {
		t.Errorf("Expected stored offsets to win over exact, got %q", m.Type)
	}

	// Valid bounds are trusted as-is, no scanning.
	m = l.Locate(doc, "cat sat", &model.Offsets{Start: 0, End: 3})
	if m.Type != model.MatchStored || m.Start != 0 || m.End != 3 {
		t.Errorf("Expected stored span [0,3) trusted verbatim, got %+v", m)
	}
}

func TestLocateStoredOutOfBoundsFallsThrough(t *testing.T) {
	l := newTestLocator()

	doc := "The cat sat on the mat."
	cases := []*model.Offsets{
		{Start: 4, End: 999},
		{Start: -1, End: 3},
		{Start: 7, End: 7},
		{Start: 11, End: 4},
	}
	for _, stored := range cases {
		m := l.Locate(doc, "cat sat", stored)
		if m.Type != model.MatchExact {
			t.Errorf("Expected stale offsets %+v to degrade to exact scan, got %q", stored, m.Type)
		}
		if m.Start != 4 || m.End != 11 {
			t.Errorf("Expected span [4,11), got [%d,%d)", m.Start, m.End)
		}
	}
}

func TestLocateFuzzy(t *testing.T) {
	l := newTestLocator()

	doc := "Alpha beta gamma delta epsilon zeta eta theta iota kappa."
	quote := doc[:52] + " but the tail of this quote never appears anywhere"
	m := l.Locate(doc, quote, nil)
	if !m.Found {
		t.Fatal("Expected prefix match on mangled quote")
	}
	if m.Type != model.MatchFuzzy {
		t.Errorf("Expected match type %q, got %q", model.MatchFuzzy, m.Type)
	}
	if m.Start != 0 {
		t.Errorf("Expected span to start at 0, got %d", m.Start)
	}
	if m.End != len(doc) {
		t.Errorf("Expected span clamped to document end %d, got %d", len(doc), m.End)
	}
}

func TestLocateFuzzySpanUsesQuoteLength(t *testing.T) {
	l := newTestLocator()

	head := "Biotin is a water-soluble vitamin required by every cell."
	doc := head + " " + strings.Repeat("Filler sentence follows here. ", 10)
	quote := head[:55] + "xx mangled tail never present in the document at all"
	m := l.Locate(doc, quote, nil)
	if !m.Found || m.Type != model.MatchFuzzy {
		t.Fatalf("Expected fuzzy match, got %+v", m)
	}
	if m.Start != 0 {
		t.Errorf("Expected span to start at 0, got %d", m.Start)
	}
	if m.End != len(quote) {
		t.Errorf("Expected approximate span of quote length %d, got %d", len(quote), m.End)
	}
}

func TestLocateNone(t *testing.T) {
	l := newTestLocator()

	m := l.Locate("abc", "xyz", nil)
	if m.Found {
		t.Error("Expected no match")
	}
	if m.Type != model.MatchNone {
		t.Errorf("Expected match type %q, got %q", model.MatchNone, m.Type)
	}
}

func TestLocateEmptyQuote(t *testing.T) {
	l := newTestLocator()

	for _, quote := range []string{"", "   ", " \n\t "} {
		m := l.Locate("The cat sat on the mat.", quote, nil)
		if m.Found || m.Type != model.MatchNone {
			t.Errorf("Expected empty quote %q to yield none, got %+v", quote, m)
		}
	}
}

func TestLocateEmptyDocument(t *testing.T) {
	l := newTestLocator()

	m := l.Locate("", "cat", nil)
	if m.Found || m.Type != model.MatchNone {
		t.Errorf("Expected empty document to yield none, got %+v", m)
	}
}

func TestLocateShortQuoteSkipsFuzzy(t *testing.T) {
	l := newTestLocator()

	// Shorter than the fuzzy prefix: the normalized strategy already
	// tried the whole quote, so fuzzy must not retry and "succeed".
	m := l.Locate("The cat sat on the mat.", "dog stood", nil)
	if m.Found {
		t.Errorf("Expected short absent quote to yield none, got %+v", m)
	}
}

func TestLocateFirstOccurrenceWins(t *testing.T) {
	l := newTestLocator()

	m := l.Locate("cat and cat again", "cat", nil)
	if !m.Found || m.Start != 0 || m.End != 3 {
		t.Errorf("Expected first occurrence [0,3), got %+v", m)
	}
}

func TestLocateContainment(t *testing.T) {
	l := newTestLocator()

	doc := "Vitamin B7, also called biotin,\nhelps  convert food into energy."
	quotes := []string{
		"biotin",
		"also called biotin, helps convert",
		"HELPS  CONVERT",
		doc,
		doc + " and this trailing part pushes the quote far beyond the document end",
	}
	for _, q := range quotes {
		m := l.Locate(doc, q, nil)
		if !m.Found {
			continue
		}
		if m.Start < 0 || m.Start > m.End || m.End > len(doc) {
			t.Errorf("Expected contained span for %q, got [%d,%d) with len %d", q, m.Start, m.End, len(doc))
		}
	}
}

func TestAnchor(t *testing.T) {
	l := newTestLocator()

	off, ok := l.Anchor("The cat sat on the mat.", "cat sat")
	if !ok {
		t.Fatal("Expected anchor to resolve")
	}
	if off.Start != 4 || off.End != 11 {
		t.Errorf("Expected offsets [4,11), got [%d,%d)", off.Start, off.End)
	}

	if _, ok := l.Anchor("abc", "xyz"); ok {
		t.Error("Expected anchor to fail for absent quote")
	}
}
