package speller

import (
	"fmt"
	"testing"
)

var testAlphabet = []rune(DefaultAlphabet)

func contains(words []string, want string) bool {
	for _, w := range words {
		if w == want {
			return true
		}
	}
	return false
}

func TestDeletes(t *testing.T) {
	testCases := []struct {
		word        string
		wantCount   int
		wantMember  string
		description string
	}{
		{"the", 3, "th", "one delete per position"},
		{"a", 1, "", "single char deletes to empty"},
		{"", 0, "", "empty word has no deletes"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got := Deletes(tc.word)
			if len(got) != tc.wantCount {
				t.Errorf("Deletes(%q): expected %d candidates, got %d", tc.word, tc.wantCount, len(got))
			}
			if tc.wantCount > 0 && !contains(got, tc.wantMember) {
				t.Errorf("Deletes(%q): expected %q in %v", tc.word, tc.wantMember, got)
			}
		})
	}
}

func TestInserts(t *testing.T) {
	// (L+1)*26 candidates, including all single-char words for empty input
	got := Inserts("", testAlphabet)
	if len(got) != 26 {
		t.Errorf("Inserts on empty word: expected 26 candidates, got %d", len(got))
	}
	if !contains(got, "q") {
		t.Error("Inserts on empty word should yield every single-char word")
	}

	got = Inserts("te", testAlphabet)
	if len(got) != 3*26 {
		t.Errorf("Inserts(\"te\"): expected %d candidates, got %d", 3*26, len(got))
	}
	if !contains(got, "the") {
		t.Error("Inserts(\"te\") should contain \"the\"")
	}
}

func TestSubstitutes(t *testing.T) {
	// L*25 candidates, identity replacement excluded
	got := Substitutes("cat", testAlphabet)
	if len(got) != 3*25 {
		t.Errorf("Substitutes(\"cat\"): expected %d candidates, got %d", 3*25, len(got))
	}
	if contains(got, "cat") {
		t.Error("Substitutes must not reproduce the input word")
	}
	if !contains(got, "bat") || !contains(got, "cot") || !contains(got, "car") {
		t.Errorf("Substitutes(\"cat\") missing expected members: %v", got)
	}
}

func TestTransposes(t *testing.T) {
	testCases := []struct {
		word        string
		wantCount   int
		description string
	}{
		{"teh", 2, "two adjacent pairs"},
		{"aab", 1, "identical neighbors skipped"},
		{"a", 0, "single char"},
		{"", 0, "empty word"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got := Transposes(tc.word)
			if len(got) != tc.wantCount {
				t.Errorf("Transposes(%q): expected %d candidates, got %d (%v)", tc.word, tc.wantCount, len(got), got)
			}
		})
	}

	if got := Transposes("teh"); !contains(got, "the") {
		t.Errorf("Transposes(\"teh\") should contain \"the\", got %v", got)
	}
}

func TestEdits1(t *testing.T) {
	tier1 := edits1("teh", testAlphabet)

	for _, want := range []string{"the", "te", "eh", "ten", "teha"} {
		if _, ok := tier1[want]; !ok {
			t.Errorf("edits1(\"teh\") missing %q", want)
		}
	}
	if _, ok := tier1["dog"]; ok {
		t.Error("edits1(\"teh\") must not contain words more than one edit away")
	}
}

func TestEdits2ReachesTwoEdits(t *testing.T) {
	tier1 := edits1("xg", testAlphabet)
	tier2 := edits2(tier1, testAlphabet)

	// "dog" is two substitutions plus an insert away from nothing reachable,
	// but "do" is two substitutions from "xg"
	if _, ok := tier2["do"]; !ok {
		t.Error("edits2 should reach words two substitutions away")
	}
	if _, ok := tier2["dog"]; !ok {
		t.Error("edits2 should reach a substitution plus an insert")
	}
}

func BenchmarkEdits1(b *testing.B) {
	for i := 0; i < b.N; i++ {
		edits1("correction", testAlphabet)
	}
}

func BenchmarkEdits2(b *testing.B) {
	tier1 := edits1("teh", testAlphabet)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		edits2(tier1, testAlphabet)
	}
}

func ExampleDeletes() {
	fmt.Println(Deletes("the"))
	// Output: [he te th]
}
