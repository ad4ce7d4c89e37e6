// Package kana classifies Japanese characters by script and provides
// the string helpers the alignment engine is built on: script-run
// tokenization, katakana→hiragana folding, width normalization and
// okurigana/bikago stripping.
package kana

import "golang.org/x/text/width"

// Script identifies the script class of a single rune.
type Script int

const (
	Other Script = iota
	Kanji
	Hiragana
	Katakana
)

// IsKanji reports whether r is in the CJK unified ideographs block.
func IsKanji(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FFF
}

// IsHiragana reports whether r is in the hiragana block.
func IsHiragana(r rune) bool {
	return r >= 0x3040 && r <= 0x309F
}

// IsKatakana reports whether r is in the katakana block. The long
// vowel mark ー lives here, so it classifies as katakana.
func IsKatakana(r rune) bool {
	return r >= 0x30A0 && r <= 0x30FF
}

// IsKana reports whether r is hiragana or katakana.
func IsKana(r rune) bool {
	return IsHiragana(r) || IsKatakana(r)
}

// ScriptOf returns the script class of r.
func ScriptOf(r rune) Script {
	switch {
	case IsKanji(r):
		return Kanji
	case IsHiragana(r):
		return Hiragana
	case IsKatakana(r):
		return Katakana
	default:
		return Other
	}
}

// HasKanji reports whether s contains at least one kanji.
func HasKanji(s string) bool {
	for _, r := range s {
		if IsKanji(r) {
			return true
		}
	}
	return false
}

// HasHiragana reports whether s contains at least one hiragana.
func HasHiragana(s string) bool {
	for _, r := range s {
		if IsHiragana(r) {
			return true
		}
	}
	return false
}

// HasKatakana reports whether s contains at least one katakana.
func HasKatakana(s string) bool {
	for _, r := range s {
		if IsKatakana(r) {
			return true
		}
	}
	return false
}

// IsAllKana reports whether every rune of s is kana. The empty string
// is not kana.
func IsAllKana(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !IsKana(r) {
			return false
		}
	}
	return true
}

// IsAllKanji reports whether every rune of s is kanji. The empty
// string is not kanji.
func IsAllKanji(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !IsKanji(r) {
			return false
		}
	}
	return true
}

// ToHiragana folds katakana runes to their hiragana equivalents.
// Other runes pass through unchanged.
func ToHiragana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r >= 0x30A1 && r <= 0x30F6 {
			runes[i] = r - 0x60
		}
	}
	return string(runes)
}

// NormalizeWidth folds half-width katakana (and other width variants)
// to their canonical full-width forms. Tokenizer dictionaries emit
// half-width readings for some corpora.
func NormalizeWidth(s string) string {
	return width.Fold.String(s)
}

// Tokenize splits s into maximal runs of a single script class,
// covering s fully and in order.
func Tokenize(s string) []string {
	var runs []string
	var start int
	var cur Script
	runes := []rune(s)
	for i, r := range runes {
		sc := ScriptOf(r)
		if i == 0 {
			cur = sc
			continue
		}
		if sc != cur {
			runs = append(runs, string(runes[start:i]))
			start, cur = i, sc
		}
	}
	if len(runes) > 0 {
		runs = append(runs, string(runes[start:]))
	}
	return runs
}
