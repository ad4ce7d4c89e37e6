package furi

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Span maps a half-open rune range [Start, End) of a word to the
// phonetic text read over it.
type Span struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

type sourceKind int

const (
	sourceNone sourceKind = iota
	sourceString
	sourceMap
	sourceJSON
)

// Source is explicit furigana placement data in one of its accepted
// shapes. The zero value means "no placement data"; Combine then falls
// back to heuristic alignment.
type Source struct {
	kind sourceKind
	raw  string
	locs map[string]string
}

// None returns an empty Source.
func None() Source { return Source{} }

// FromString wraps placement data in its compact string form:
// ';'-separated "start:text" or "start-end:text" entries, where end
// names the last covered rune (inclusive), e.g. "0-1:たなか;3:た".
// The empty string means no placement data.
func FromString(s string) Source {
	if s == "" {
		return Source{}
	}
	return Source{kind: sourceString, raw: s}
}

// FromMap wraps placement data keyed by rune index; every entry covers
// exactly one rune of the word.
func FromMap(m map[string]string) Source {
	return Source{kind: sourceMap, locs: m}
}

// FromJSON wraps placement data given as a JSON object of the same
// shape FromMap accepts, e.g. {"1":"せ","2":"じ"}. Entry order follows
// the document.
func FromJSON(data string) (Source, error) {
	if !gjson.Valid(data) || !gjson.Parse(data).IsObject() {
		return Source{}, fmt.Errorf("%w: not a JSON object: %q", ErrMalformedFuri, data)
	}
	return Source{kind: sourceJSON, raw: data}, nil
}

// IsZero reports whether no placement data is present.
func (s Source) IsZero() bool { return s.kind == sourceNone }

// Parse normalizes the placement data into ordered spans. The string
// and JSON forms keep entry order as given; the map form orders
// entries by ascending index. Malformed entries are rejected with an
// error wrapping ErrMalformedFuri.
func (s Source) Parse() ([]Span, error) {
	switch s.kind {
	case sourceNone:
		return nil, nil
	case sourceString:
		return parseString(s.raw)
	case sourceMap:
		return parseMap(s.locs)
	case sourceJSON:
		return parseJSON(s.raw)
	default:
		return nil, fmt.Errorf("%w: unknown source kind %d", ErrMalformedFuri, s.kind)
	}
}

func parseString(raw string) ([]Span, error) {
	var spans []Span
	for _, entry := range strings.Split(raw, ";") {
		idx, text, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("%w: entry %q has no ':' delimiter", ErrMalformedFuri, entry)
		}
		first, last, ranged := strings.Cut(idx, "-")
		start, err := strconv.Atoi(first)
		if err != nil {
			return nil, fmt.Errorf("%w: bad index in entry %q", ErrMalformedFuri, entry)
		}
		end := start + 1
		if ranged {
			// The raw "end" names the last covered rune, not an
			// exclusive bound.
			e, err := strconv.Atoi(last)
			if err != nil {
				return nil, fmt.Errorf("%w: bad end index in entry %q", ErrMalformedFuri, entry)
			}
			end = e + 1
		}
		spans = append(spans, Span{Start: start, End: end, Text: text})
	}
	return spans, nil
}

func parseMap(locs map[string]string) ([]Span, error) {
	spans := make([]Span, 0, len(locs))
	for key, text := range locs {
		start, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("%w: bad index key %q", ErrMalformedFuri, key)
		}
		spans = append(spans, Span{Start: start, End: start + 1, Text: text})
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })
	return spans, nil
}

func parseJSON(raw string) ([]Span, error) {
	var spans []Span
	var parseErr error
	gjson.Parse(raw).ForEach(func(key, value gjson.Result) bool {
		start, err := strconv.Atoi(key.String())
		if err != nil {
			parseErr = fmt.Errorf("%w: bad index key %q", ErrMalformedFuri, key.String())
			return false
		}
		spans = append(spans, Span{Start: start, End: start + 1, Text: value.String()})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return spans, nil
}
