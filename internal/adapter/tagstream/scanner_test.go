package tagstream

import "testing"

func TestMatchEntry(t *testing.T) {
	tests := []struct {
		input   string
		lenient bool
		result  matchResult
		state   scanState
		source  string
		target  string
	}{
		{"<w=a>b</w>", false, matchComplete, stateOutside, "a", "b"},
		{"<w=a>b</w>tail", false, matchComplete, stateOutside, "a", "b"},
		{"<w=a", false, matchTruncated, stateOpenTag, "a", ""},
		{"<w=a>bc", false, matchTruncated, stateContent, "a", "bc"},
		{"<w=a>b</", false, matchTruncated, stateCloseTag, "a", "b"},
		{"<w=a>b<x>", false, matchFailed, stateOutside, "", ""},
		{"<w=>b</w>", false, matchFailed, stateOutside, "", ""},
		{"<w=>b</w>", true, matchComplete, stateOutside, "", "b"},
		{"<w=a<b>c</w>", false, matchComplete, stateOutside, "a<b", "c"},
		{"<x=a>b</w>", false, matchFailed, stateOutside, "", ""},
	}

	for _, tt := range tests {
		e, res := matchEntry(tt.input, 0, tt.lenient)
		if res != tt.result {
			t.Errorf("matchEntry(%q) result = %d, want %d", tt.input, res, tt.result)
			continue
		}
		if res == matchFailed {
			continue
		}
		if e.state != tt.state || e.source != tt.source || e.target != tt.target {
			t.Errorf("matchEntry(%q) = {state:%d source:%q target:%q}, want {state:%d source:%q target:%q}",
				tt.input, e.state, e.source, e.target, tt.state, tt.source, tt.target)
		}
	}
}

func TestFindBlock(t *testing.T) {
	tests := []struct {
		input string
		body  string
		state blockState
	}{
		{"<idio>x</idio>", "x", blockClosed},
		{"pre<idio>x</idio>post<idio>y</idio>", "x", blockClosed},
		{"<idio>x</id", "x</id", blockOpen},
		{"<idi", "", blockAbsent},
		{"", "", blockAbsent},
	}

	for _, tt := range tests {
		body, st := findBlock(tt.input, tagIdio)
		if body != tt.body || st != tt.state {
			t.Errorf("findBlock(%q) = (%q, %d), want (%q, %d)", tt.input, body, st, tt.body, tt.state)
		}
	}
}
