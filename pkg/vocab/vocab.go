// Package vocab holds the immutable word frequency table every query runs against.
package vocab

import (
	"errors"
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

var (
	// ErrEmptyVocabulary is returned when New is given no words at all.
	ErrEmptyVocabulary = errors.New("vocab: vocabulary is empty")
	// ErrZeroTotal is returned when every supplied count is zero,
	// which would leave probabilities undefined.
	ErrZeroTotal = errors.New("vocab: total count is zero")
)

// Vocabulary is a read-only mapping from normalized word to occurrence count.
// It is built once and never mutated, so any number of queries may share it
// without locking.
type Vocabulary struct {
	counts  map[string]int
	trie    *patricia.Trie
	total   int
	maxFreq int
}

// Completion is a single prefix completion result.
type Completion struct {
	Word      string
	Frequency int
}

// New builds a Vocabulary from a word count map. The map is copied; the
// caller keeps ownership of its argument. Construction fails fast on an
// empty map, a negative count, or a zero total, so probability computation
// is always defined afterwards.
func New(counts map[string]int) (*Vocabulary, error) {
	if len(counts) == 0 {
		return nil, ErrEmptyVocabulary
	}

	v := &Vocabulary{
		counts: make(map[string]int, len(counts)),
		trie:   patricia.NewTrie(),
	}

	for word, count := range counts {
		if count < 0 {
			return nil, fmt.Errorf("vocab: negative count %d for word %q", count, word)
		}
		v.counts[word] = count
		v.trie.Insert(patricia.Prefix(word), count)
		v.total += count
		if count > v.maxFreq {
			v.maxFreq = count
		}
	}

	if v.total == 0 {
		return nil, ErrZeroTotal
	}

	log.Debugf("Vocabulary built: %d words, total count %d", len(v.counts), v.total)
	return v, nil
}

// Contains reports whether word is a known vocabulary entry.
func (v *Vocabulary) Contains(word string) bool {
	_, ok := v.counts[word]
	return ok
}

// Count returns the occurrence count for word, or 0 if unknown.
func (v *Vocabulary) Count(word string) int {
	return v.counts[word]
}

// Probability returns count(word)/total. Unknown words yield 0.
func (v *Vocabulary) Probability(word string) float64 {
	return float64(v.counts[word]) / float64(v.total)
}

// Total returns the sum of all counts.
func (v *Vocabulary) Total() int {
	return v.total
}

// Len returns the number of distinct words.
func (v *Vocabulary) Len() int {
	return len(v.counts)
}

// MaxFrequency returns the highest single-word count.
func (v *Vocabulary) MaxFrequency() int {
	return v.maxFreq
}

// Complete returns known words extending prefix, ranked by frequency
// descending then lexicographic, truncated to limit. The prefix itself is
// skipped to avoid echoing the input back. A limit <= 0 means no truncation.
func (v *Vocabulary) Complete(prefix string, limit int) []Completion {
	var results []Completion

	err := v.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		word := string(p)
		if word == prefix {
			return nil
		}

		freq, ok := item.(int)
		if !ok {
			log.Errorf("Unknown item type %T for word %s", item, p)
			return nil
		}

		results = append(results, Completion{Word: word, Frequency: freq})
		return nil
	})
	if err != nil {
		log.Errorf("Visiting trie subtree: %v", err)
		return nil
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Frequency != results[j].Frequency {
			return results[i].Frequency > results[j].Frequency
		}
		return results[i].Word < results[j].Word
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}
