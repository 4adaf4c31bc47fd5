// Package corpus turns raw text into the word count map a Vocabulary is
// built from. Tokenization mirrors the usual frequency-corpus recipe:
// lower-case everything, then take maximal runs of word characters.
package corpus

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"spellserve/pkg/vocab"

	"github.com/charmbracelet/log"
	"github.com/edsrzf/mmap-go"
)

var wordRE = regexp.MustCompile(`\w+`)

// Tokenize splits text into lower-cased word tokens.
func Tokenize(text string) []string {
	return wordRE.FindAllString(strings.ToLower(text), -1)
}

// CountWords tallies occurrences per token.
func CountWords(tokens []string) map[string]int {
	counts := make(map[string]int)
	for _, t := range tokens {
		counts[t]++
	}
	return counts
}

// LoadFile reads a corpus text file and returns its word counts. The file is
// memory-mapped read-only; corpora run to hundreds of megabytes and the map
// avoids a second copy of the text. Empty or unmappable files fall back to a
// plain read.
func LoadFile(path string) (map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: opening %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("corpus: stat %s: %w", path, err)
	}
	if info.Size() == 0 {
		return map[string]int{}, nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		log.Warnf("mmap of %s failed (%v), falling back to full read", path, err)
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil, fmt.Errorf("corpus: reading %s: %w", path, readErr)
		}
		return CountWords(Tokenize(string(data))), nil
	}
	defer m.Unmap()

	counts := CountWords(Tokenize(string(m)))
	log.Debugf("Corpus %s: %d bytes, %d distinct words", path, info.Size(), len(counts))
	return counts, nil
}

// Build loads a corpus file and constructs a Vocabulary from it. Words seen
// fewer than minCount times are dropped before construction; minCount <= 1
// keeps everything.
func Build(path string, minCount int) (*vocab.Vocabulary, error) {
	counts, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	if minCount > 1 {
		for word, count := range counts {
			if count < minCount {
				delete(counts, word)
			}
		}
	}

	return vocab.New(counts)
}
