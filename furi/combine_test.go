package furi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineIdentity(t *testing.T) {
	pairs, err := Combine("食べる", "食べる", None())
	require.NoError(t, err)
	assert.Equal(t, []Pair{{Base: "食べる"}}, pairs)
}

func TestCombineKanaOnlyWord(t *testing.T) {
	// No kanji means no annotation, whatever the reading says.
	pairs, err := Combine("きつね", "こん", None())
	require.NoError(t, err)
	assert.Equal(t, []Pair{{Base: "きつね"}}, pairs)
}

func TestCombineEmpty(t *testing.T) {
	pairs, err := Combine("", "", None())
	require.NoError(t, err)
	assert.Equal(t, []Pair{{Base: ""}}, pairs)
}

func TestCombineExplicitSpans(t *testing.T) {
	pairs, err := Combine("お世辞", "おせじ", FromString("1:せ;2:じ"))
	require.NoError(t, err)
	assert.Equal(t, []Pair{
		{Base: "お"},
		{Furigana: "せ", Base: "世"},
		{Furigana: "じ", Base: "辞"},
	}, pairs)
}

func TestCombineMapForm(t *testing.T) {
	pairs, err := Combine("お世辞", "おせじ", FromMap(map[string]string{"1": "せ", "2": "じ"}))
	require.NoError(t, err)
	assert.Equal(t, []Pair{
		{Base: "お"},
		{Furigana: "せ", Base: "世"},
		{Furigana: "じ", Base: "辞"},
	}, pairs)
}

// A single span over an all-kanji word marks an irregular compound
// reading; the coarse span is discarded in favor of the heuristic.
func TestCombineSpecialReadingOverride(t *testing.T) {
	pairs, err := Combine("胡座", "あぐら", FromString("0:あぐら"))
	require.NoError(t, err)
	assert.Equal(t, []Pair{{Furigana: "あぐら", Base: "胡座"}}, pairs)
}

// A reading mixing hiragana and katakana signals unreliable data; the
// spans are discarded and the heuristic runs.
func TestCombineMixedReadingOverride(t *testing.T) {
	pairs, err := Combine("下手", "へタ", FromString("0:へ;1:た"))
	require.NoError(t, err)
	assert.Equal(t, []Pair{{Furigana: "へタ", Base: "下手"}}, pairs)
}

// Placement data that parses to zero spans carries no information and
// must behave exactly like absent data: heuristic alignment, full word
// coverage.
func TestCombineEmptyPlacementData(t *testing.T) {
	want := []Pair{
		{Base: "お"},
		{Furigana: "せじ", Base: "世辞"},
	}

	pairs, err := Combine("お世辞", "おせじ", FromMap(map[string]string{}))
	require.NoError(t, err)
	assert.Equal(t, want, pairs)

	src, err := FromJSON("{}")
	require.NoError(t, err)
	pairs, err = Combine("お世辞", "おせじ", src)
	require.NoError(t, err)
	assert.Equal(t, want, pairs)

	pairs, err = Combine("お世辞", "おせじ", FromString(""))
	require.NoError(t, err)
	assert.Equal(t, want, pairs)
}

func TestCombineNoFuriUsesHeuristic(t *testing.T) {
	pairs, err := Combine("大人しい", "おとなしい", None())
	require.NoError(t, err)
	assert.Equal(t, []Pair{
		{Furigana: "おとな", Base: "大人"},
		{Base: "しい"},
	}, pairs)
}

func TestCombineMalformedFuri(t *testing.T) {
	_, err := Combine("お世辞", "おせじ", FromString("せ"))
	assert.ErrorIs(t, err, ErrMalformedFuri)
}

func TestCombineSpanOutOfBounds(t *testing.T) {
	_, err := Combine("お世辞", "おせじ", FromString("3:じ"))
	assert.ErrorIs(t, err, ErrSpanBounds)
}

func TestCombineCoverageInvariant(t *testing.T) {
	cases := []struct {
		word, reading string
		src           Source
	}{
		{"お世辞", "おせじ", FromString("1:せ;2:じ")},
		{"大人しい", "おとなしい", None()},
		{"使い方", "つかいかた", None()},
		{"胡座", "あぐら", FromString("0:あぐら")},
		{"下手", "へタ", FromString("0:へ;1:た")},
		{"全員", "ぜんいん", FromMap(map[string]string{"0": "ぜん", "1": "いん"})},
		{"大発見", "だいはっけん", FromString("1-2:はっけん")},
		{"きつね", "こん", None()},
		{"", "", None()},
	}
	for _, c := range cases {
		pairs, err := Combine(c.word, c.reading, c.src)
		require.NoError(t, err, "word=%q", c.word)
		joined := ""
		for _, p := range pairs {
			joined += p.Base
		}
		assert.Equal(t, c.word, joined, "word=%q", c.word)
	}
}
