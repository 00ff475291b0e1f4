// Package render draws translations and highlighted paragraphs for a terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/mitchellh/colorstring"

	"lingua/internal/domain"
)

var termPalette = []string{
	"magenta", "light_magenta", "green", "yellow", "blue",
	"red", "cyan", "light_yellow", "light_red", "light_blue",
	"light_green", "light_cyan",
}

// Terminal renders with colorstring codes; with color disabled the codes are
// stripped and only the layout remains.
type Terminal struct {
	colorize colorstring.Colorize
}

func NewTerminal(color bool) *Terminal {
	return &Terminal{
		colorize: colorstring.Colorize{
			Colors:  colorstring.DefaultColors,
			Disable: !color,
			Reset:   true,
		},
	}
}

func colorName(index int) string {
	if index < 0 {
		index = -index
	}
	return termPalette[index%len(termPalette)]
}

// Paragraph highlights the located chunks of text. Chunks must be sorted and
// non-overlapping, as produced by the aligner. Current chunks are bold and
// colored by chunk index; historical chunks are dimmed.
func (t *Terminal) Paragraph(text string, chunks []domain.LocatedChunk) string {
	var b strings.Builder
	pos := 0
	for _, c := range chunks {
		if c.Position < pos || c.End > len(text) {
			continue
		}
		b.WriteString(text[pos:c.Position])
		if c.Provenance.IsCurrent() {
			fmt.Fprintf(&b, "[bold][%s]%s[reset]", colorName(c.ChunkIndex), text[c.Position:c.End])
		} else {
			fmt.Fprintf(&b, "[dim][underline]%s[reset]", text[c.Position:c.End])
		}
		pos = c.End
	}
	b.WriteString(text[pos:])
	return t.colorize.Color(b.String())
}

// Legend lists each located chunk with its translation.
func (t *Terminal) Legend(chunks []domain.LocatedChunk) string {
	var b strings.Builder
	for _, c := range chunks {
		if c.Provenance.IsCurrent() {
			fmt.Fprintf(&b, "  [%s]%s[reset] → %s\n", colorName(c.ChunkIndex), c.Chunk, c.Translation)
		} else {
			fmt.Fprintf(&b, "  [dim]%s → %s (#%d)[reset]\n", c.Chunk, c.Translation, int(c.Provenance))
		}
	}
	return t.colorize.Color(b.String())
}

// Partial renders an in-progress translation as an interlinear block.
// Missing fields show placeholder.
func (t *Terminal) Partial(p domain.PartialTranslation, placeholder string) string {
	var b strings.Builder

	natural := placeholder
	if p.NaturalTranslation != nil {
		natural = *p.NaturalTranslation
	}
	fmt.Fprintf(&b, "[bold]natural[reset]  %s\n", natural)

	b.WriteString("[bold]literal[reset]  ")
	if p.DirectTranslation == nil {
		b.WriteString(placeholder)
	} else {
		b.WriteString(t.literal(p.LiteralParts, p.ChunkPairs))
	}
	b.WriteString("\n")

	if len(p.ChunkPairs) > 0 {
		b.WriteString("[bold]words[reset]\n")
		for i, pair := range p.ChunkPairs {
			fmt.Fprintf(&b, "  [%s]%s[reset] → %s\n", colorName(i), pair.Original, pair.Translation)
		}
	}
	if !p.IsComplete {
		b.WriteString("[dim]…[reset]\n")
	}
	return t.colorize.Color(b.String())
}

func (t *Terminal) literal(parts []domain.LiteralPart, pairs []domain.ChunkPair) string {
	var b strings.Builder
	for _, part := range parts {
		if part.Type != domain.PartWord {
			b.WriteString(part.Content)
			continue
		}
		idx := pairIndex(pairs, part.SourceWord)
		if idx < 0 {
			fmt.Fprintf(&b, "[bold]%s[reset]", part.Content)
			continue
		}
		fmt.Fprintf(&b, "[bold][%s]%s[reset]", colorName(idx), part.Content)
	}
	return b.String()
}

func pairIndex(pairs []domain.ChunkPair, source string) int {
	for i, p := range pairs {
		if p.Original == source {
			return i
		}
	}
	return -1
}

// Response renders a finished translation.
func (t *Terminal) Response(r domain.TranslationResponse) string {
	natural, direct := r.NaturalTranslation, r.DirectTranslation
	return t.Partial(domain.PartialTranslation{
		Original:           r.Original,
		NaturalTranslation: &natural,
		DirectTranslation:  &direct,
		LiteralParts:       r.LiteralParts,
		ChunkPairs:         r.ChunkPairs,
		IsComplete:         true,
	}, "")
}
