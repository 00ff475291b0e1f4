package tagstream

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lingua/internal/domain"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []domain.LiteralPart
	}{
		{
			name:  "mixed text and words",
			input: "<w=どうしよう>What to do</w> for <w=今日>today</w>'s <w=おやつ>snack</w>?",
			want: []domain.LiteralPart{
				domain.WordPart("What to do", "どうしよう"),
				domain.TextPart(" for "),
				domain.WordPart("today", "今日"),
				domain.TextPart("'s "),
				domain.WordPart("snack", "おやつ"),
				domain.TextPart("?"),
			},
		},
		{
			name:  "pending word with partial target",
			input: "the <w=chat>ca",
			want:  []domain.LiteralPart{domain.TextPart("the "), domain.WordPart("ca", "chat")},
		},
		{
			name:  "pending word without target",
			input: "the <w=chat>",
			want:  []domain.LiteralPart{domain.TextPart("the ")},
		},
		{
			name:  "pending source",
			input: "the <w=ch",
			want:  []domain.LiteralPart{domain.TextPart("the ")},
		},
		{
			name:  "pending after complete word",
			input: "<w=chat>cat</w> <w=dort>sl",
			want:  []domain.LiteralPart{domain.WordPart("cat", "chat"), domain.TextPart(" "), domain.WordPart("sl", "dort")},
		},
		{
			name:  "closing tag partly received",
			input: "<w=chat>cat</",
			want:  []domain.LiteralPart{domain.WordPart("cat", "chat")},
		},
		{
			name:  "closing tag missing its bracket",
			input: "the <w=chat>cat</w",
			want:  []domain.LiteralPart{domain.TextPart("the "), domain.WordPart("cat", "chat")},
		},
		{
			name:  "closing tag just started",
			input: "the <w=chat>cat<",
			want:  []domain.LiteralPart{domain.TextPart("the "), domain.WordPart("cat", "chat")},
		},
		{
			name:  "opening bracket only",
			input: "<w=chat>cat</w> <",
			want:  []domain.LiteralPart{domain.WordPart("cat", "chat"), domain.TextPart(" ")},
		},
		{
			name:  "opening tag name only",
			input: "the <w",
			want:  []domain.LiteralPart{domain.TextPart("the ")},
		},
		{
			name:  "text before pending tag is kept after a stray bracket",
			input: "a < b <w=x>y",
			want:  []domain.LiteralPart{domain.TextPart("a < b "), domain.WordPart("y", "x")},
		},
		{
			name:  "unrelated markup stays text",
			input: "a <b> c",
			want:  []domain.LiteralPart{domain.TextPart("a <b> c")},
		},
		{
			name:  "empty source is not a word",
			input: "<w=>x</w> y",
			want:  []domain.LiteralPart{domain.TextPart("<w=>x</w> y")},
		},
		{
			name:  "empty input",
			input: "",
			want:  []domain.LiteralPart{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.input))
		})
	}
}

func TestTokenize_RoundTrip(t *testing.T) {
	tests := []struct {
		literal string
		plain   string
	}{
		{"Just plain text.", "Just plain text."},
		{"The <w=chat>cat</w> <w=dort>sleeps</w>.", "The cat sleeps."},
		{"<w=a>x</w><w=b>y</w>", "xy"},
		{"  spaced  <w=a>x</w>  ", "  spaced  x  "},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.plain, PlainText(Tokenize(tt.literal)), tt.literal)
	}
}
