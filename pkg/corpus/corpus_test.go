package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"spellserve/pkg/vocab"
)

func writeCorpus(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTokenize(t *testing.T) {
	testCases := []struct {
		input       string
		expected    []string
		description string
	}{
		{"The quick, brown FOX!", []string{"the", "quick", "brown", "fox"}, "punctuation stripped, case folded"},
		{"word2vec and utf8", []string{"word2vec", "and", "utf8"}, "digits kept inside tokens"},
		{"  \n\t ", nil, "whitespace only"},
		{"", nil, "empty text"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got := Tokenize(tc.input)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Tokenize(%q): expected %v, got %v", tc.input, tc.expected, got)
			}
		})
	}
}

func TestCountWords(t *testing.T) {
	got := CountWords([]string{"the", "cat", "the", "the"})
	want := map[string]int{"the": 3, "cat": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CountWords: expected %v, got %v", want, got)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeCorpus(t, "The cat sat. The cat ran!\nThe end.")

	counts, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	want := map[string]int{"the": 3, "cat": 2, "sat": 1, "ran": 1, "end": 1}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("LoadFile: expected %v, got %v", want, counts)
	}
}

func TestLoadFileEmpty(t *testing.T) {
	path := writeCorpus(t, "")

	counts, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(counts) != 0 {
		t.Errorf("empty file should yield no counts, got %v", counts)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestBuild(t *testing.T) {
	path := writeCorpus(t, "the the the cat cat stray")

	v, err := Build(path, 2)
	if err != nil {
		t.Fatal(err)
	}

	if !v.Contains("the") || !v.Contains("cat") {
		t.Error("words above the threshold should survive")
	}
	if v.Contains("stray") {
		t.Error("words below min count should be dropped")
	}
	if v.Total() != 5 {
		t.Errorf("Total: expected 5, got %d", v.Total())
	}
}

func TestBuildEmptyCorpusFails(t *testing.T) {
	path := writeCorpus(t, "")

	if _, err := Build(path, 1); !errors.Is(err, vocab.ErrEmptyVocabulary) {
		t.Errorf("expected ErrEmptyVocabulary, got %v", err)
	}
}
