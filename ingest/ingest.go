// Package ingest accepts raw sentences and publishes them for
// downstream tokenization.
package ingest

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"furigana/model"
)

// Sentence re-exports the shared sentence type.
type Sentence = model.Sentence

// Chan publishes ingested sentences for downstream processing.
var Chan chan Sentence

func init() {
	// buffered so producers are decoupled from consumers
	Chan = make(chan Sentence, 100)
}

// generateID creates a short random hex id, falling back to a
// timestamp string on error.
func generateID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}

// Ingest trims and validates text, constructs a Sentence and publishes
// it to Chan asynchronously. It returns the created Sentence or an
// error if the input was empty.
func Ingest(text string) (Sentence, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Sentence{}, errors.New("ingest: empty sentence")
	}

	s := Sentence{
		ID:        generateID(),
		Text:      trimmed,
		CreatedAt: time.Now().UTC(),
	}

	// publish asynchronously so callers are not blocked
	go func(sent Sentence) {
		select {
		case Chan <- sent:
		default:
			// channel is full; drop silently for now
		}
	}(s)

	return s, nil
}
