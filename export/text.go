package export

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/NyxSpecter4/thalia-crochet-sub000/pattern"
)

// Text renders a compiled pattern as a plain-text sheet: header,
// materials, glossary, rounds (or parts), notes and context.
func Text(p pattern.Pattern) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s pattern — skill: %s\n\n", title(p.Style.String()), p.Skill)

	b.WriteString("Materials:\n")
	for _, m := range p.Materials {
		fmt.Fprintf(&b, "  - %s\n", m)
	}

	b.WriteString("\nAbbreviations:\n")
	for _, a := range p.Abbreviations {
		fmt.Fprintf(&b, "  %-7s %s\n", a.Abbr, a.Meaning)
	}

	if len(p.Parts) > 0 {
		for _, part := range p.Parts {
			fmt.Fprintf(&b, "\n%s (make %d):\n", title(part.Name), part.Count)
			writeRounds(&b, part.Rounds)
			fmt.Fprintf(&b, "  Join: %s\n", part.Join)
		}
	} else {
		b.WriteString("\nInstructions:\n")
		writeRounds(&b, p.Rounds)
	}

	if len(p.Notes) > 0 {
		b.WriteString("\nNotes:\n")
		for _, n := range p.Notes {
			fmt.Fprintf(&b, "  - %s\n", n)
		}
	}

	if p.CulturalContext != "" {
		fmt.Fprintf(&b, "\nAbout this style:\n  %s\n", p.CulturalContext)
	}

	return b.String()
}

// title uppercases the first letter; strings.Title is deprecated and
// overkill for single-word style names.
func title(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}

func writeRounds(b *strings.Builder, rounds []pattern.RowInstruction) {
	for _, r := range rounds {
		fmt.Fprintf(b, "  Rnd %d: %s\n", r.Round, r.Text)
		for _, n := range r.Notes {
			fmt.Fprintf(b, "         %s\n", n)
		}
	}
}

// Printable renders the pattern as a minimal self-contained HTML page
// suitable for printing. Returns ErrNilWriter for a nil writer; write
// failures are wrapped.
func Printable(w io.Writer, p pattern.Pattern) error {
	if w == nil {
		return ErrNilWriter
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s pattern</title>\n", html.EscapeString(p.Style.String()))
	b.WriteString("<style>body{font:14px/1.5 serif;max-width:42em;margin:2em auto}h2{border-bottom:1px solid #999}</style>\n")
	b.WriteString("</head><body>\n")

	fmt.Fprintf(&b, "<h1>%s pattern</h1>\n<p>Skill level: %s</p>\n",
		html.EscapeString(title(p.Style.String())), p.Skill)

	b.WriteString("<h2>Materials</h2>\n<ul>\n")
	for _, m := range p.Materials {
		fmt.Fprintf(&b, "<li>%s</li>\n", html.EscapeString(m))
	}
	b.WriteString("</ul>\n<h2>Abbreviations</h2>\n<dl>\n")
	for _, a := range p.Abbreviations {
		fmt.Fprintf(&b, "<dt>%s</dt><dd>%s</dd>\n", html.EscapeString(a.Abbr), html.EscapeString(a.Meaning))
	}
	b.WriteString("</dl>\n")

	if len(p.Parts) > 0 {
		for _, part := range p.Parts {
			fmt.Fprintf(&b, "<h2>%s (make %d)</h2>\n<ol>\n", html.EscapeString(title(part.Name)), part.Count)
			for _, r := range part.Rounds {
				fmt.Fprintf(&b, "<li>%s</li>\n", html.EscapeString(r.Text))
			}
			fmt.Fprintf(&b, "</ol>\n<p><em>Join:</em> %s</p>\n", html.EscapeString(part.Join))
		}
	} else {
		b.WriteString("<h2>Instructions</h2>\n<ol>\n")
		for _, r := range p.Rounds {
			fmt.Fprintf(&b, "<li>%s</li>\n", html.EscapeString(r.Text))
		}
		b.WriteString("</ol>\n")
	}

	if len(p.Notes) > 0 {
		b.WriteString("<h2>Notes</h2>\n<ul>\n")
		for _, n := range p.Notes {
			fmt.Fprintf(&b, "<li>%s</li>\n", html.EscapeString(n))
		}
		b.WriteString("</ul>\n")
	}
	if p.CulturalContext != "" {
		fmt.Fprintf(&b, "<h2>About this style</h2>\n<p>%s</p>\n", html.EscapeString(p.CulturalContext))
	}
	b.WriteString("</body></html>\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("Printable: %w", err)
	}

	return nil
}
