package tagstream

import "lingua/internal/domain"

// Tokenize splits a literal translation into plain text and tagged words.
//
// A tag cut off at the end of input does not leak its markup: the text before
// it is kept, and the partial word is emitted only once both its source and
// some target text are known.
func Tokenize(literal string) []domain.LiteralPart {
	parts := make([]domain.LiteralPart, 0, 4)
	last := 0

	sc := newEntryScanner(literal)
	for e, ok := sc.next(); ok; e, ok = sc.next() {
		if e.start > last {
			parts = append(parts, domain.TextPart(literal[last:e.start]))
		}
		parts = append(parts, domain.WordPart(e.target, e.source))
		last = e.end
	}

	if last >= len(literal) {
		return parts
	}

	rest := literal[last:]
	pending, ok := pendingEntry(rest, true)
	if !ok {
		return append(parts, domain.TextPart(rest))
	}
	if pending.start > 0 {
		parts = append(parts, domain.TextPart(rest[:pending.start]))
	}
	if pending.source != "" && pending.target != "" {
		parts = append(parts, domain.WordPart(pending.target, pending.source))
	}
	return parts
}

// PlainText joins the content of parts, which is the literal as a reader sees it.
func PlainText(parts []domain.LiteralPart) string {
	n := 0
	for _, p := range parts {
		n += len(p.Content)
	}
	buf := make([]byte, 0, n)
	for _, p := range parts {
		buf = append(buf, p.Content...)
	}
	return string(buf)
}
