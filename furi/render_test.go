package furi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBracket(t *testing.T) {
	pairs := []Pair{
		{Furigana: "おとな", Base: "大人"},
		{Base: "しい"},
	}
	assert.Equal(t, "[大人|おとな]しい", Bracket(pairs))
}

func TestRubyHTML(t *testing.T) {
	pairs := []Pair{
		{Furigana: "つか", Base: "使"},
		{Base: "い"},
		{Furigana: "かた", Base: "方"},
	}
	assert.Equal(t,
		"<ruby>使<rt>つか</rt></ruby>い<ruby>方<rt>かた</rt></ruby>",
		RubyHTML(pairs))
}
