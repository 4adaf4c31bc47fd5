package speller

// DefaultAlphabet is the character set used for inserts and substitutions
// unless the caller supplies its own.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz"

// Deletes returns every string reachable from word by removing one character.
func Deletes(word string) []string {
	runes := []rune(word)
	out := make([]string, 0, len(runes))
	for i := range runes {
		out = append(out, string(runes[:i])+string(runes[i+1:]))
	}
	return out
}

// Transposes returns every string reachable by swapping two adjacent
// characters. Swapping identical neighbors would reproduce the input, so
// those pairs are skipped.
func Transposes(word string) []string {
	runes := []rune(word)
	var out []string
	for i := 0; i+1 < len(runes); i++ {
		if runes[i] == runes[i+1] {
			continue
		}
		swapped := make([]rune, len(runes))
		copy(swapped, runes)
		swapped[i], swapped[i+1] = swapped[i+1], swapped[i]
		out = append(out, string(swapped))
	}
	return out
}

// Substitutes returns every string reachable by replacing one character with
// a different alphabet character. Identity replacements are excluded.
func Substitutes(word string, alphabet []rune) []string {
	runes := []rune(word)
	out := make([]string, 0, len(runes)*(len(alphabet)-1))
	for i := range runes {
		for _, c := range alphabet {
			if c == runes[i] {
				continue
			}
			out = append(out, string(runes[:i])+string(c)+string(runes[i+1:]))
		}
	}
	return out
}

// Inserts returns every string reachable by inserting one alphabet character
// at any position, including both ends.
func Inserts(word string, alphabet []rune) []string {
	runes := []rune(word)
	out := make([]string, 0, (len(runes)+1)*len(alphabet))
	for i := 0; i <= len(runes); i++ {
		for _, c := range alphabet {
			out = append(out, string(runes[:i])+string(c)+string(runes[i:]))
		}
	}
	return out
}

// candidateSet is a transient, per-query set of candidate words.
type candidateSet map[string]struct{}

func (s candidateSet) add(words []string) {
	for _, w := range words {
		s[w] = struct{}{}
	}
}

// edits1 returns the complete deduplicated one-edit neighborhood of word.
func edits1(word string, alphabet []rune) candidateSet {
	runes := len([]rune(word))
	set := make(candidateSet, (runes+1)*len(alphabet)*2)
	set.add(Deletes(word))
	set.add(Transposes(word))
	set.add(Substitutes(word, alphabet))
	set.add(Inserts(word, alphabet))
	return set
}

// edits2 returns the two-edit neighborhood: the union of edits1 over every
// member of the one-edit tier. It is only computed when the one-edit tier
// produced no vocabulary hit, which keeps the quadratic blowup off the
// common path.
func edits2(tier1 candidateSet, alphabet []rune) candidateSet {
	set := make(candidateSet, len(tier1)*len(alphabet))
	for w := range tier1 {
		for e := range edits1(w, alphabet) {
			set[e] = struct{}{}
		}
	}
	return set
}
