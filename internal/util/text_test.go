package util

import (
	"strings"
	"testing"
)

func TestFoldASCII_PreservesLength(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"AbC", "abc"},
		{"already lower", "already lower"},
		{"MIXED case 123", "mixed case 123"},
		{"Café MENU", "café menu"}, // non-ASCII é untouched
		{"", ""},
	}

	for _, tc := range cases {
		got := FoldASCII(tc.in)
		if got != tc.want {
			t.Errorf("FoldASCII(%q) = %q, want %q", tc.in, got, tc.want)
		}
		if len(got) != len(tc.in) {
			t.Errorf("FoldASCII(%q) changed byte length: %d -> %d", tc.in, len(tc.in), len(got))
		}
	}
}

func TestIndexFold(t *testing.T) {
	doc := "The Cat sat on the MAT."

	if idx := IndexFold(doc, "cat sat"); idx != 4 {
		t.Errorf("Expected index 4, got %d", idx)
	}
	if idx := IndexFold(doc, "mat"); idx != 19 {
		t.Errorf("Expected index 19, got %d", idx)
	}
	if idx := IndexFold(doc, "dog"); idx != -1 {
		t.Errorf("Expected -1 for missing substring, got %d", idx)
	}
}

func TestCollapseWhitespace(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"The   cat\nsat", "The cat sat"},
		{"  leading and trailing \t ", "leading and trailing"},
		{"single", "single"},
		{"   ", ""},
	}

	for _, tc := range cases {
		if got := CollapseWhitespace(tc.in); got != tc.want {
			t.Errorf("CollapseWhitespace(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCollapseWithMap(t *testing.T) {
	in := "The   cat\nsat"
	collapsed, indexMap := CollapseWithMap(in)

	if collapsed != "The cat sat" {
		t.Fatalf("Expected %q, got %q", "The cat sat", collapsed)
	}
	if len(indexMap) != len(collapsed) {
		t.Fatalf("Expected index map of length %d, got %d", len(collapsed), len(indexMap))
	}

	// 'c' of "cat" sits at collapsed position 4, original position 6
	if indexMap[4] != 6 {
		t.Errorf("Expected indexMap[4] = 6, got %d", indexMap[4])
	}
	// Final 't' of "sat" maps to the last original byte
	if indexMap[len(collapsed)-1] != len(in)-1 {
		t.Errorf("Expected last byte to map to %d, got %d", len(in)-1, indexMap[len(collapsed)-1])
	}
	// Every mapped byte of a non-space run reproduces the original
	for i := 0; i < len(collapsed); i++ {
		if collapsed[i] == ' ' {
			continue
		}
		if in[indexMap[i]] != collapsed[i] {
			t.Errorf("indexMap[%d] = %d points at %q, want %q", i, indexMap[i], in[indexMap[i]], collapsed[i])
		}
	}
}

func TestCollapseWithMap_TrimsEnds(t *testing.T) {
	collapsed, indexMap := CollapseWithMap("  padded  text  ")

	if collapsed != "padded text" {
		t.Errorf("Expected %q, got %q", "padded text", collapsed)
	}
	if len(indexMap) != len(collapsed) {
		t.Errorf("Expected index map of length %d, got %d", len(collapsed), len(indexMap))
	}
}

func TestSplitSentences(t *testing.T) {
	text := "The cat sat. The dog barked! Was it loud? Yes."
	sentences := SplitSentences(text)

	want := []string{"The cat sat.", "The dog barked!", "Was it loud?", "Yes."}
	if len(sentences) != len(want) {
		t.Fatalf("Expected %d sentences, got %d: %v", len(want), len(sentences), sentences)
	}
	for i := range want {
		if sentences[i] != want[i] {
			t.Errorf("Sentence %d: expected %q, got %q", i, want[i], sentences[i])
		}
	}
}

func TestSplitSentences_NoBoundaryInsideNumbers(t *testing.T) {
	sentences := SplitSentences("Version 2.5 shipped in March. Everyone upgraded.")

	if len(sentences) != 2 {
		t.Fatalf("Expected 2 sentences, got %d: %v", len(sentences), sentences)
	}
	if !strings.Contains(sentences[0], "2.5") {
		t.Errorf("Expected version number to stay intact, got %q", sentences[0])
	}
}

func TestSplitSentences_DelimiterRuns(t *testing.T) {
	sentences := SplitSentences("Really?! Yes. Wait... No.")

	if len(sentences) != 4 {
		t.Fatalf("Expected 4 sentences, got %d: %v", len(sentences), sentences)
	}
	if sentences[0] != "Really?!" {
		t.Errorf("Expected delimiter run to stay attached, got %q", sentences[0])
	}
	if sentences[2] != "Wait..." {
		t.Errorf("Expected ellipsis to stay attached, got %q", sentences[2])
	}
}

func TestTitleCase(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"RECOMMENDED INTAKES", "Recommended Intakes"},
		{"FOO-BAR", "Foo-Bar"},
		{"already Title", "Already Title"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := TitleCase(tc.in); got != tc.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
