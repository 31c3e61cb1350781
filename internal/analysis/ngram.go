package analysis

import (
	"sort"

	"github.com/SeamusWaldron/gocube_viewer"
)

// NGram represents a repeated move sequence.
type NGram struct {
	N            int      `json:"n"`
	Sequence     []string `json:"sequence"`
	Tokens       []uint8  `json:"-"`
	Count        int      `json:"count"`
	StartIndexes []int    `json:"start_indexes,omitempty"`
}

// NGramReport contains the results of n-gram mining, keyed by n.
type NGramReport struct {
	TopNGrams map[int][]NGram `json:"top_ngrams"`
}

// maxOccurrences caps the start indexes kept per n-gram.
const maxOccurrences = 10

// RollingHash implements a Rabin-Karp rolling hash over move tokens.
type RollingHash struct {
	base   uint64
	hash   uint64
	pow    uint64 // base^(n-1) for removal
	window []uint8
	n      int
}

// NewRollingHash creates a rolling hash for window size n.
func NewRollingHash(n int) *RollingHash {
	rh := &RollingHash{
		base:   31,
		n:      n,
		window: make([]uint8, 0, n),
	}

	rh.pow = 1
	for i := 0; i < n-1; i++ {
		rh.pow *= rh.base
	}

	return rh
}

// Roll adds a token, dropping the oldest one once the window is full.
func (rh *RollingHash) Roll(token uint8) {
	if len(rh.window) < rh.n {
		rh.window = append(rh.window, token)
		rh.hash = rh.hash*rh.base + uint64(token)
		return
	}

	old := rh.window[0]
	rh.hash = (rh.hash-uint64(old)*rh.pow)*rh.base + uint64(token)

	copy(rh.window, rh.window[1:])
	rh.window[rh.n-1] = token
}

// Hash returns the current hash value.
func (rh *RollingHash) Hash() uint64 {
	return rh.hash
}

// Window returns a copy of the current window.
func (rh *RollingHash) Window() []uint8 {
	result := make([]uint8, len(rh.window))
	copy(result, rh.window)
	return result
}

// Ready returns true if the window is full.
func (rh *RollingHash) Ready() bool {
	return len(rh.window) == rh.n
}

type ngramEntry struct {
	tokens []uint8
	count  int
	starts []int
}

// MineNGrams finds the top-K most frequent repeated n-grams for each n in
// [minN, maxN]. Sequences seen only once are not reported.
func MineNGrams(moves []gocube.Move, minN, maxN, topK int) *NGramReport {
	report := &NGramReport{
		TopNGrams: make(map[int][]NGram),
	}

	tokens := make([]uint8, len(moves))
	for i, m := range moves {
		tokens[i] = moveToken(m)
	}

	for n := minN; n <= maxN && n <= len(tokens); n++ {
		if ngrams := mineNGramsForN(tokens, n, topK); len(ngrams) > 0 {
			report.TopNGrams[n] = ngrams
		}
	}

	return report
}

func mineNGramsForN(tokens []uint8, n, topK int) []NGram {
	if n <= 0 || len(tokens) < n {
		return nil
	}

	// Buckets per hash; collisions keep separate entries.
	counts := make(map[uint64][]*ngramEntry)
	var order []*ngramEntry
	rh := NewRollingHash(n)

	for i, tok := range tokens {
		rh.Roll(tok)
		if !rh.Ready() {
			continue
		}

		start := i - n + 1
		window := rh.Window()
		var entry *ngramEntry
		for _, e := range counts[rh.Hash()] {
			if slicesEqual(e.tokens, window) {
				entry = e
				break
			}
		}
		if entry == nil {
			entry = &ngramEntry{tokens: window}
			counts[rh.Hash()] = append(counts[rh.Hash()], entry)
			order = append(order, entry)
		}
		entry.count++
		if len(entry.starts) < maxOccurrences {
			entry.starts = append(entry.starts, start)
		}
	}

	entries := make([]*ngramEntry, 0, len(order))
	for _, entry := range order {
		if entry.count >= 2 {
			entries = append(entries, entry)
		}
	}

	// Most frequent first; ties by first appearance.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].count > entries[j].count
	})

	if len(entries) > topK {
		entries = entries[:topK]
	}

	result := make([]NGram, len(entries))
	for i, entry := range entries {
		sequence := make([]string, len(entry.tokens))
		for j, token := range entry.tokens {
			sequence[j] = moveFromToken(token).Notation()
		}

		result[i] = NGram{
			N:            n,
			Sequence:     sequence,
			Tokens:       entry.tokens,
			Count:        entry.count,
			StartIndexes: entry.starts,
		}
	}

	return result
}

func slicesEqual(a, b []uint8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
