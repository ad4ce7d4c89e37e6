package kana

import "strings"

// StripOkurigana removes a leading or trailing kana run from input.
// With leading=false the final run is removed (okurigana); with
// leading=true the initial run is removed (bikago, honorific prefixes).
//
// When matchKanji is non-empty the run to remove is taken from
// matchKanji instead of input, so a reading can be trimmed against its
// kanji spelling: StripOkurigana("おかあさん", false, "お母さん")
// returns "おかあ".
//
// Input is returned unchanged when there is nothing sensible to strip:
// the edge being trimmed is not kana, the matcher contains no kanji,
// or an all-kana input is given without a matcher.
func StripOkurigana(input string, leading bool, matchKanji string) string {
	if input == "" {
		return input
	}
	runes := []rune(input)
	if leading && !IsKana(runes[0]) {
		return input
	}
	if !leading && !IsKana(runes[len(runes)-1]) {
		return input
	}
	if matchKanji != "" && !HasKanji(matchKanji) {
		return input
	}
	if matchKanji == "" && IsAllKana(input) {
		return input
	}

	chars := matchKanji
	if chars == "" {
		chars = input
	}
	runs := Tokenize(chars)
	if len(runs) == 0 {
		return input
	}
	if leading {
		return strings.TrimPrefix(input, runs[0])
	}
	return strings.TrimSuffix(input, runs[len(runs)-1])
}
