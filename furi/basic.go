package furi

import (
	"strings"

	"furigana/kana"
)

// Basic infers an alignment for word and reading without any placement
// data.
//
// Kana that appear verbatim in the word must reappear in the reading,
// so they anchor the unknown stretches belonging to kanji runs. A
// leading honorific kana prefix (bikago) and trailing inflectional
// kana (okurigana) are split off first, the remaining core is matched
// run by run, and the affixes are re-attached unannotated. The Base
// fragments of the result always concatenate back to word.
func Basic(word, reading string) []Pair {
	wordRunes := []rune(word)
	readingRunes := []rune(reading)

	// Bikago: the word's leading kana run claims the same number of
	// reading runes. Only honored when the word really starts with the
	// claimed text, so a mismatched reading cannot break coverage.
	innerLen := len([]rune(kana.StripOkurigana(word, true, "")))
	bikagoLen := len(wordRunes) - innerLen
	if bikagoLen > len(readingRunes) {
		bikagoLen = len(readingRunes)
	}
	bikago := ""
	if bikagoLen > 0 {
		if b := string(readingRunes[:bikagoLen]); strings.HasPrefix(word, b) {
			bikago = b
		}
	}

	// Okurigana: trailing reading runes beyond the reading stripped
	// against the word's final kana run.
	keptLen := len([]rune(kana.StripOkurigana(reading, false, word)))
	if keptLen > len(readingRunes) {
		keptLen = len(readingRunes)
	}
	okurigana := string(readingRunes[keptLen:])

	coreWord := strings.TrimSuffix(strings.TrimPrefix(word, bikago), okurigana)
	coreReading := strings.TrimSuffix(strings.TrimPrefix(reading, bikago), okurigana)

	tokens := kana.Tokenize(coreWord)
	var pairs []Pair
	if captured, ok := matchRuns(tokens, []rune(coreReading)); ok {
		pairs = zipPairs(captured, tokens)
	} else if coreWord != "" {
		// No run-level alignment exists (e.g. the word's kana never
		// appear in the reading). Keep the whole core as one block so
		// the word is still fully covered.
		pairs = []Pair{{Furigana: coreReading, Base: coreWord}}
	}

	// Annotation is shown only where it disambiguates.
	for i := range pairs {
		if pairs[i].Furigana == pairs[i].Base {
			pairs[i].Furigana = ""
		}
	}

	if bikago != "" {
		pairs = append([]Pair{{Base: bikago}}, pairs...)
	}
	if okurigana != "" {
		pairs = append(pairs, Pair{Base: okurigana})
	}
	if len(pairs) == 0 {
		pairs = []Pair{{Base: word}}
	}
	return pairs
}
