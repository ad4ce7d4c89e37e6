package furi

import "furigana/kana"

// Combine aligns word with reading, using placement data from src when
// it is present and trustworthy.
//
// A word equal to its reading, or containing no kanji, needs no
// annotation and yields the single pair {"", word}. Otherwise the
// placement data is parsed and then deliberately discarded in two
// cases, falling back to Basic:
//
//   - a single span over an all-kanji word marks an irregular compound
//     reading (義訓/熟字訓); the heuristic split is finer-grained than
//     one coarse span over the whole word, so it wins;
//   - a reading mixing hiragana and katakana signals unreliable data.
//
// Parse or span-precondition failures surface as errors; with a zero
// src no error is possible.
func Combine(word, reading string, src Source) ([]Pair, error) {
	if word == reading || !kana.HasKanji(word) {
		return []Pair{{Base: word}}, nil
	}

	if src.IsZero() {
		return Basic(word, reading), nil
	}

	spans, err := src.Parse()
	if err != nil {
		return nil, err
	}
	// present but empty placement data carries no information
	if len(spans) == 0 {
		return Basic(word, reading), nil
	}

	isSpecialReading := len(spans) == 1 && kana.IsAllKanji(word)
	isMixedReading := kana.HasHiragana(reading) && kana.HasKatakana(reading)
	if isSpecialReading || isMixedReading {
		return Basic(word, reading), nil
	}

	return GeneratePairs(word, spans)
}
