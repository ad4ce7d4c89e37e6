package model

import (
	"time"

	"furigana/furi"
)

// Token is a morpheme produced by the tokenizer, annotated with ruby
// pairs for its surface form and lemma.
type Token struct {
	Text          string      `json:"text"`
	Lemma         string      `json:"lemma,omitempty"`
	POS           string      `json:"pos,omitempty"`
	Start         int         `json:"start"`
	End           int         `json:"end"`
	Reading       string      `json:"reading,omitempty"`
	Pronunciation string      `json:"pronunciation,omitempty"`
	Ruby          []furi.Pair `json:"ruby,omitempty"`
	RubyLemma     []furi.Pair `json:"ruby_lemma,omitempty"`
	RubyText      string      `json:"ruby_text,omitempty"`
}

// Sentence is an ingested sentence and its metadata.
type Sentence struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Annotated pairs a sentence with the tokens produced for it.
type Annotated struct {
	Sentence Sentence `json:"sentence"`
	Tokens   []Token  `json:"tokens"`
}
