package catalog

import "testing"

func TestSuggest_Typo(t *testing.T) {
	c := mustLoad(t, testCorpus())

	got := c.Suggest("cd-onpsuh", 3)
	if len(got) == 0 || got[0] != "cd-onpush" {
		t.Errorf("expected cd-onpush first, got %v", got)
	}
}

func TestSuggest_Abbreviation(t *testing.T) {
	c := mustLoad(t, testCorpus())

	got := c.Suggest("cdpush", 3)
	if len(got) == 0 || got[0] != "cd-onpush" {
		t.Errorf("expected cd-onpush first, got %v", got)
	}
}

func TestSuggest_ExactMatchRanksFirst(t *testing.T) {
	c := mustLoad(t, testCorpus())

	got := c.Suggest("cd-track", 3)
	if len(got) == 0 || got[0] != "cd-track" {
		t.Errorf("expected cd-track first, got %v", got)
	}
}

func TestSuggest_NoMatch(t *testing.T) {
	c := mustLoad(t, testCorpus())

	if got := c.Suggest("qqqqqq", 3); len(got) != 0 {
		t.Errorf("expected no suggestions, got %v", got)
	}
}

func TestSuggest_Limit(t *testing.T) {
	c := mustLoad(t, testCorpus())

	if got := c.Suggest("cd", 1); len(got) > 1 {
		t.Errorf("expected at most 1 suggestion, got %v", got)
	}
	if got := c.Suggest("cd-track", 0); got != nil {
		t.Errorf("expected nil for zero limit, got %v", got)
	}
}

func TestEditDistance(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "abc", 0},
		{"abc", "abd", 1},
		{"abc", "acb", 1}, // transposition counts as one edit
		{"abc", "abcd", 1},
		{"kitten", "sitting", 3},
	}
	for _, tc := range cases {
		if got := editDistance(tc.a, tc.b); got != tc.want {
			t.Errorf("editDistance(%q, %q): expected %d, got %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestSubsequenceScore_NotASubsequence(t *testing.T) {
	if _, ok := subsequenceScore("xz", "cd-onpush"); ok {
		t.Error("expected no subsequence match")
	}
	if _, ok := subsequenceScore("toolong-pattern", "cd"); ok {
		t.Error("pattern longer than slug should not match")
	}
}
