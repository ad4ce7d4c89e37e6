// Package furi aligns a Japanese word with its phonetic reading,
// producing ordered (furigana, base) pairs ready for ruby rendering.
//
// Three alignment strategies exist and Combine picks between them:
//
//   - A word that equals its reading, or contains no kanji, needs no
//     annotation at all.
//   - Explicit placement data (a Source) maps index ranges of the word
//     to reading fragments; GeneratePairs honors it and fills the gaps.
//   - With no trustworthy placement data, Basic infers an alignment
//     from script-class runs: kana embedded in the word must reappear
//     verbatim in the reading and anchor the kanji spans between them.
//
// All functions are pure and safe for concurrent use.
package furi
