package tagstream

import "strings"

const (
	entryOpen  = "<w="
	entryClose = "</w>"
)

type scanState int

const (
	stateOutside  scanState = iota
	stateOpenTag            // reading SOURCE, up to '>'
	stateContent            // reading TARGET, up to '<'
	stateCloseTag           // expecting "</w>"
)

type matchResult int

const (
	matchFailed matchResult = iota
	matchComplete
	matchTruncated
)

// entry is one <w=SOURCE>TARGET</w> span. start and end are byte offsets of
// the whole span in the scanned text; for a truncated entry end is the end of
// input and state records where the input ran out.
type entry struct {
	start  int
	end    int
	source string
	target string
	state  scanState
}

// matchEntry runs the entry state machine from at. With allowEmptySource a
// bare "<w=>" is accepted, which is what the literal tail grammar permits.
func matchEntry(text string, at int, allowEmptySource bool) (entry, matchResult) {
	e := entry{start: at}
	state := stateOutside
	var srcStart, tgtStart int

	i := at
	for i < len(text) {
		switch state {
		case stateOutside:
			if !strings.HasPrefix(text[i:], entryOpen) {
				return e, matchFailed
			}
			i += len(entryOpen)
			srcStart = i
			state = stateOpenTag
			continue
		case stateOpenTag:
			if text[i] == '>' {
				if i == srcStart && !allowEmptySource {
					return e, matchFailed
				}
				e.source = text[srcStart:i]
				tgtStart = i + 1
				state = stateContent
			}
		case stateContent:
			if text[i] == '<' {
				e.target = text[tgtStart:i]
				state = stateCloseTag
				continue
			}
		case stateCloseTag:
			rest := text[i:]
			if strings.HasPrefix(rest, entryClose) {
				e.end = i + len(entryClose)
				e.state = stateOutside
				return e, matchComplete
			}
			if len(rest) < len(entryClose) && strings.HasPrefix(entryClose, rest) {
				i = len(text)
				continue
			}
			return e, matchFailed
		}
		i++
	}

	switch state {
	case stateOutside:
		return e, matchFailed
	case stateOpenTag:
		e.source = text[srcStart:]
	case stateContent:
		e.target = text[tgtStart:]
	}
	e.end = len(text)
	e.state = state
	return e, matchTruncated
}

// entryScanner yields complete entries left to right. A position that does
// not start a complete entry is skipped one byte at a time, so a malformed
// tag never hides a well-formed one that follows it.
type entryScanner struct {
	text string
	pos  int
	last int
}

func newEntryScanner(text string) *entryScanner {
	return &entryScanner{text: text}
}

func (s *entryScanner) next() (entry, bool) {
	for s.pos < len(s.text) {
		j := strings.IndexByte(s.text[s.pos:], '<')
		if j < 0 {
			s.pos = len(s.text)
			break
		}
		at := s.pos + j
		if e, res := matchEntry(s.text, at, false); res == matchComplete {
			s.pos = e.end
			s.last = e.end
			return e, true
		}
		s.pos = at + 1
	}
	return entry{}, false
}

// tail returns the offset just past the last complete entry.
func (s *entryScanner) tail() int {
	return s.last
}

// pendingEntry finds the leftmost entry in text that is cut off by the end of
// input, including one whose closing "</w>" has only partly arrived. In strict
// mode (the words block) SOURCE must be non-empty and closed by '>'; in lenient
// mode (the literal block) both are optional, and a trailing "<" or "<w" counts
// as the start of an entry with nothing known yet.
func pendingEntry(text string, lenient bool) (entry, bool) {
	pos := 0
	for pos < len(text) {
		j := strings.IndexByte(text[pos:], '<')
		if j < 0 {
			return entry{}, false
		}
		at := pos + j
		e, res := matchEntry(text, at, lenient)
		if res == matchTruncated {
			switch {
			case e.state == stateContent, e.state == stateCloseTag:
				return e, true
			case e.state == stateOpenTag && lenient:
				return e, true
			}
		}
		if lenient && res == matchFailed && isOpenPrefix(text[at:]) {
			return entry{start: at, end: len(text)}, true
		}
		pos = at + 1
	}
	return entry{}, false
}

// isOpenPrefix reports whether rest is a proper prefix of "<w=".
func isOpenPrefix(rest string) bool {
	return len(rest) < len(entryOpen) && strings.HasPrefix(entryOpen, rest)
}

type blockState int

const (
	blockAbsent blockState = iota
	blockOpen
	blockClosed
)

// findBlock returns the body of the first <name> block. An open block has no
// closing tag yet and its body runs to the end of text.
func findBlock(text, name string) (string, blockState) {
	open := "<" + name + ">"
	i := strings.Index(text, open)
	if i < 0 {
		return "", blockAbsent
	}
	body := text[i+len(open):]
	if j := strings.Index(body, "</"+name+">"); j >= 0 {
		return body[:j], blockClosed
	}
	return body, blockOpen
}
