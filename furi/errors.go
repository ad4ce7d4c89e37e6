package furi

import "errors"

var (
	// ErrMalformedFuri indicates placement data that could not be parsed
	// (missing ':' delimiter, non-numeric index, bad JSON shape).
	ErrMalformedFuri = errors.New("furi: malformed furigana placement data")
	// ErrSpanRange indicates a span whose end does not exceed its start.
	ErrSpanRange = errors.New("furi: span end must be greater than span start")
	// ErrSpanBounds indicates a span outside the word's rune bounds.
	ErrSpanBounds = errors.New("furi: span exceeds word bounds")
	// ErrSpanOverlap indicates spans that are not ascending and disjoint.
	ErrSpanOverlap = errors.New("furi: spans must be sorted and non-overlapping")
)
