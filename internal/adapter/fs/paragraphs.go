package fs

import (
	"strings"

	"lingua/internal/domain"
)

// SplitParagraphs splits text on blank lines. Each paragraph keeps its byte
// offset in text and is trimmed of surrounding whitespace; empty paragraphs
// are skipped. Windows line endings count as line breaks.
func SplitParagraphs(text string) []domain.Paragraph {
	var (
		paras []domain.Paragraph
		start = -1
		end   int
		pos   int
	)
	flush := func() {
		if start >= 0 {
			paras = append(paras, domain.Paragraph{
				Index:  len(paras),
				Offset: start,
				Text:   text[start:end],
			})
			start = -1
		}
	}

	for pos <= len(text) {
		nl := strings.IndexByte(text[pos:], '\n')
		lineEnd := len(text)
		if nl >= 0 {
			lineEnd = pos + nl
		}
		line := text[pos:lineEnd]
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
		} else {
			lead := strings.Index(line, trimmed)
			if start < 0 {
				start = pos + lead
			}
			end = pos + lead + len(trimmed)
		}
		if nl < 0 {
			break
		}
		pos = lineEnd + 1
	}
	flush()
	return paras
}
