package furi

import (
	"html"
	"strings"
)

// Bracket formats pairs as compact [base|furigana] blocks, leaving
// unannotated fragments bare: [大人|おとな]しい.
func Bracket(pairs []Pair) string {
	var b strings.Builder
	for _, p := range pairs {
		if p.Furigana != "" {
			b.WriteString("[")
			b.WriteString(p.Base)
			b.WriteString("|")
			b.WriteString(p.Furigana)
			b.WriteString("]")
		} else {
			b.WriteString(p.Base)
		}
	}
	return b.String()
}

// RubyHTML renders pairs as HTML ruby markup.
func RubyHTML(pairs []Pair) string {
	var b strings.Builder
	for _, p := range pairs {
		if p.Furigana != "" {
			b.WriteString("<ruby>")
			b.WriteString(html.EscapeString(p.Base))
			b.WriteString("<rt>")
			b.WriteString(html.EscapeString(p.Furigana))
			b.WriteString("</rt></ruby>")
		} else {
			b.WriteString(html.EscapeString(p.Base))
		}
	}
	return b.String()
}
