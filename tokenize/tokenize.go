// Package tokenize wraps the kagome morphological tokenizer and
// attaches ruby annotation pairs to every token it produces.
package tokenize

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"furigana/furi"
	"furigana/ingest"
	"furigana/kana"
	"furigana/model"
)

// Token re-exports the shared token type.
type Token = model.Token

// Annotated re-exports the shared per-sentence result type.
type Annotated = model.Annotated

// Chan publishes annotated sentences produced by Start.
var Chan = make(chan Annotated, 100)

// JP tokenizes Japanese text with a kagome dictionary.
type JP struct {
	t *tokenizer.Tokenizer
}

// New builds a tokenizer over the named dictionary: "ipa" (default) or
// "uni".
func New(dictName string) (*JP, error) {
	var d *dict.Dict
	switch dictName {
	case "", "ipa":
		d = ipa.Dict()
	case "uni":
		d = uni.Dict()
	default:
		return nil, fmt.Errorf("tokenize: unknown dictionary %q", dictName)
	}
	t, err := tokenizer.New(d, tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}
	return &JP{t: t}, nil
}

// convert turns kagome tokens into annotated model tokens. Kagome
// readings are katakana and occasionally half-width; they are
// normalized and folded to hiragana before alignment.
func convert(ktoks []tokenizer.Token) []Token {
	out := make([]Token, 0, len(ktoks))
	for _, kt := range ktoks {
		pos := strings.Join(kt.POS(), ",")
		lemma, _ := kt.BaseForm()
		if lemma == "" {
			lemma = kt.Surface
		}
		reading, ok := kt.Reading()
		if !ok {
			reading = ""
		}
		pron, ok := kt.Pronunciation()
		if !ok {
			pron = ""
		}

		hira := kana.ToHiragana(kana.NormalizeWidth(reading))
		ruby, _ := furi.Combine(kt.Surface, hira, furi.None())
		rubyLemma, _ := furi.Combine(lemma, hira, furi.None())

		out = append(out, Token{
			Text:          kt.Surface,
			Lemma:         lemma,
			POS:           pos,
			Start:         kt.Start,
			End:           kt.End,
			Reading:       reading,
			Pronunciation: pron,
			Ruby:          ruby,
			RubyLemma:     rubyLemma,
			RubyText:      furi.Bracket(ruby),
		})
	}
	return out
}

// Tokenize produces annotated tokens for text in normal mode.
func (jp *JP) Tokenize(ctx context.Context, text string) ([]Token, error) {
	if text == "" {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return convert(jp.t.Tokenize(text)), nil
}

// Modes runs the analyzer in Normal, Search and Extended modes and
// returns the tokens per mode, useful to compare segmentations.
func (jp *JP) Modes(ctx context.Context, text string) (map[string][]Token, error) {
	res := make(map[string][]Token)
	if text == "" {
		return res, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res["normal"] = convert(jp.t.Analyze(text, tokenizer.Normal))
	res["search"] = convert(jp.t.Analyze(text, tokenizer.Search))
	res["extended"] = convert(jp.t.Analyze(text, tokenizer.Extended))
	return res, nil
}

// Stream sends annotated tokens to a channel as they are produced.
func (jp *JP) Stream(ctx context.Context, text string) (<-chan Token, <-chan error) {
	out := make(chan Token, 8)
	errs := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errs)
		toks, err := jp.Tokenize(ctx, text)
		if err != nil {
			errs <- err
			return
		}
		for _, tk := range toks {
			select {
			case <-ctx.Done():
				errs <- ctx.Err()
				return
			case out <- tk:
			}
		}
	}()
	return out, errs
}

// Annotate tokenizes an ingested sentence.
func (jp *JP) Annotate(ctx context.Context, s ingest.Sentence) (Annotated, error) {
	toks, err := jp.Tokenize(ctx, s.Text)
	if err != nil {
		return Annotated{}, err
	}
	return Annotated{Sentence: s, Tokens: toks}, nil
}

// Start launches a goroutine that consumes sentences from ingest.Chan,
// annotates them and publishes the results to Chan.
func (jp *JP) Start(ctx context.Context) {
	go func() {
		slog.Debug("tokenize: worker started")
		for {
			select {
			case <-ctx.Done():
				slog.Debug("tokenize: worker stopped", "reason", ctx.Err())
				return
			case s := <-ingest.Chan:
				ann, err := jp.Annotate(ctx, s)
				if err != nil {
					slog.Warn("tokenize: annotate failed", "sentence", s.ID, "error", err)
					continue
				}
				select {
				case <-ctx.Done():
					return
				case Chan <- ann:
					slog.Debug("tokenize: annotated", "sentence", s.ID, "tokens", len(ann.Tokens))
				}
			}
		}
	}()
}
