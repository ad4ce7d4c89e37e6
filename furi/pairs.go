package furi

// Pair is one ruby annotation unit: Base is a fragment of the word and
// Furigana its phonetic annotation. An empty Furigana means the
// fragment needs no annotation (it already is phonetic, or identical
// to its reading).
type Pair struct {
	Furigana string `json:"furigana"`
	Base     string `json:"base"`
}

// GeneratePairs aligns word against explicit spans. Stretches of the
// word not covered by any span become unannotated pairs, so the Base
// fragments always concatenate back to word.
//
// Spans must be sorted ascending, non-overlapping and within the
// word's rune bounds; violations are reported as ErrSpanRange,
// ErrSpanBounds or ErrSpanOverlap.
func GeneratePairs(word string, spans []Span) ([]Pair, error) {
	if len(spans) == 0 {
		if word == "" {
			return nil, nil
		}
		return []Pair{{Base: word}}, nil
	}
	runes := []rune(word)
	var pairs []Pair
	cursor := 0
	for i, sp := range spans {
		if sp.End <= sp.Start {
			return nil, ErrSpanRange
		}
		if sp.Start < 0 || sp.End > len(runes) {
			return nil, ErrSpanBounds
		}
		if sp.Start < cursor {
			return nil, ErrSpanOverlap
		}
		if sp.Start > cursor {
			pairs = append(pairs, Pair{Base: string(runes[cursor:sp.Start])})
		}
		pairs = append(pairs, Pair{Furigana: sp.Text, Base: string(runes[sp.Start:sp.End])})
		if i == len(spans)-1 && sp.End < len(runes) {
			pairs = append(pairs, Pair{Base: string(runes[sp.End:])})
		}
		cursor = sp.End
	}
	return pairs, nil
}

// zipPairs pairs reading fragments with word fragments positionally,
// truncating to the shorter sequence.
func zipPairs(readings, bases []string) []Pair {
	n := len(readings)
	if len(bases) < n {
		n = len(bases)
	}
	pairs := make([]Pair, n)
	for i := 0; i < n; i++ {
		pairs[i] = Pair{Furigana: readings[i], Base: bases[i]}
	}
	return pairs
}
