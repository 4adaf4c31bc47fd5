/*
Package speller suggests spelling corrections for a single word.

Candidates are generated by bounded edit operations (delete, insert,
substitute, adjacent transpose) in two tiers: everything one edit away, then
everything two edits away. Tiers are checked against the vocabulary in strict
order so that a frequent far word can never outrank an available near one:

 1. the word itself, if known, is the only suggestion
 2. otherwise one-edit candidates that are known words
 3. otherwise two-edit candidates that are known words
 4. otherwise no suggestion (a normal outcome, not an error)

Survivors are ranked by corpus probability, count/total, with lexicographic
order breaking ties so output is fully deterministic.

A Speller is a pure value over an immutable vocab.Vocabulary; Suggest does no
I/O and is safe to call from any number of goroutines.
*/
package speller

import (
	"errors"
	"sort"
	"strings"

	"spellserve/pkg/vocab"

	"github.com/charmbracelet/log"
)

// ErrInvalidLimit is returned by Suggest when the requested suggestion count
// is not a positive integer.
var ErrInvalidLimit = errors.New("speller: limit must be a positive integer")

// Suggestion is one ranked correction candidate.
type Suggestion struct {
	Word        string
	Probability float64
}

// Normalizer maps an input word to the canonical form the vocabulary keys
// use. Implementations can plug in lemmatization or stemming; the speller
// only requires that vocabulary keys went through the same mapping.
type Normalizer interface {
	Normalize(word string) string
}

// lowerFold is the default normalizer: plain Unicode lower-casing.
type lowerFold struct{}

func (lowerFold) Normalize(word string) string { return strings.ToLower(word) }

// Speller generates and ranks correction candidates against one vocabulary.
type Speller struct {
	vocab    *vocab.Vocabulary
	alphabet []rune
	norm     Normalizer
}

// Option configures a Speller at construction.
type Option func(*Speller)

// WithAlphabet replaces the default a-z insert/substitute alphabet.
func WithAlphabet(alphabet string) Option {
	return func(s *Speller) {
		if alphabet != "" {
			s.alphabet = []rune(alphabet)
		}
	}
}

// WithNormalizer replaces the default lower-casing normalizer.
func WithNormalizer(n Normalizer) Option {
	return func(s *Speller) {
		if n != nil {
			s.norm = n
		}
	}
}

// New creates a Speller over v. The vocabulary is shared, not copied; it must
// not be mutated afterwards.
func New(v *vocab.Vocabulary, opts ...Option) *Speller {
	s := &Speller{
		vocab:    v,
		alphabet: []rune(DefaultAlphabet),
		norm:     lowerFold{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Suggest returns up to limit corrections for word, ranked by probability
// descending and word ascending on ties. An empty result with a nil error
// means no known word lies within two edits.
func (s *Speller) Suggest(word string, limit int) ([]Suggestion, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	query := s.norm.Normalize(word)
	survivors := s.survivors(query)
	if len(survivors) == 0 {
		log.Debugf("No candidates within two edits of %q", query)
		return nil, nil
	}

	suggestions := make([]Suggestion, 0, len(survivors))
	for _, w := range survivors {
		suggestions = append(suggestions, Suggestion{
			Word:        w,
			Probability: s.vocab.Probability(w),
		})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Probability != suggestions[j].Probability {
			return suggestions[i].Probability > suggestions[j].Probability
		}
		return suggestions[i].Word < suggestions[j].Word
	})

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions, nil
}

// survivors applies the staged tier fallback. The one-edit tier must be fully
// resolved before the two-edit tier is even generated.
func (s *Speller) survivors(query string) []string {
	if s.vocab.Contains(query) {
		return []string{query}
	}

	tier1 := edits1(query, s.alphabet)
	if hits := s.known(tier1); len(hits) > 0 {
		return hits
	}

	return s.known(edits2(tier1, s.alphabet))
}

// known intersects a candidate tier with the vocabulary.
func (s *Speller) known(candidates candidateSet) []string {
	var hits []string
	for w := range candidates {
		if s.vocab.Contains(w) {
			hits = append(hits, w)
		}
	}
	return hits
}
