package tokenize

import (
	"context"
	"testing"
)

func TestNewUnknownDict(t *testing.T) {
	if _, err := New("edict"); err == nil {
		t.Fatal("expected error for unknown dictionary")
	}
}

func TestTokenizeAnnotatesTokens(t *testing.T) {
	jp, err := New("ipa")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	toks, err := jp.Tokenize(context.Background(), "お世辞を言う")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(toks) == 0 {
		t.Fatal("no tokens produced")
	}
	// ruby pairs must reassemble each surface exactly
	surface := ""
	for _, tk := range toks {
		joined := ""
		for _, p := range tk.Ruby {
			joined += p.Base
		}
		if joined != tk.Text {
			t.Errorf("ruby bases = %q; want %q", joined, tk.Text)
		}
		surface += tk.Text
	}
	if surface != "お世辞を言う" {
		t.Errorf("surfaces = %q; want input text", surface)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	jp, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	toks, err := jp.Tokenize(context.Background(), "")
	if err != nil || toks != nil {
		t.Fatalf("got %v, %v; want nil, nil", toks, err)
	}
}

func TestModes(t *testing.T) {
	jp, err := New("ipa")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	res, err := jp.Modes(context.Background(), "公園に行った")
	if err != nil {
		t.Fatalf("Modes: %v", err)
	}
	for _, mode := range []string{"normal", "search", "extended"} {
		if len(res[mode]) == 0 {
			t.Errorf("mode %s produced no tokens", mode)
		}
	}
}

func TestStream(t *testing.T) {
	jp, err := New("ipa")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, errs := jp.Stream(context.Background(), "使い方")
	n := 0
	for range out {
		n++
	}
	if err := <-errs; err != nil {
		t.Fatalf("stream error: %v", err)
	}
	if n == 0 {
		t.Fatal("no tokens streamed")
	}
}
