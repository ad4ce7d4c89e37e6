package furi

import "furigana/kana"

// matchRuns matches reading against the script-run tokens of a word
// core: a kanji run consumes any stretch of the reading (greedy,
// longest first), every other run must appear literally. The match is
// anchored at both ends. On success the returned fragments correspond
// one-to-one with tokens.
//
// Greedy-longest with backtracking reproduces the leftmost-greedy
// resolution of a chained (.*)/(literal) pattern: ambiguous boundaries
// resolve deterministically, not necessarily linguistically.
func matchRuns(tokens []string, reading []rune) ([]string, bool) {
	if len(tokens) == 0 {
		return nil, len(reading) == 0
	}
	tok := tokens[0]
	if kana.HasKanji(tok) {
		for n := len(reading); n >= 0; n-- {
			rest, ok := matchRuns(tokens[1:], reading[n:])
			if ok {
				return append([]string{string(reading[:n])}, rest...), true
			}
		}
		return nil, false
	}
	tokRunes := []rune(tok)
	if len(reading) >= len(tokRunes) && string(reading[:len(tokRunes)]) == tok {
		if rest, ok := matchRuns(tokens[1:], reading[len(tokRunes):]); ok {
			return append([]string{tok}, rest...), true
		}
	}
	return nil, false
}
