// Package llm streams tagged translations from language model providers.
package llm

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/*.txt
var promptTemplates embed.FS

const translateTemplate = "templates/translate.txt"

var translatePrompt = template.Must(
	template.New("translate").Funcs(template.FuncMap{"lower": strings.ToLower}).
		ParseFS(promptTemplates, translateTemplate),
).Lookup("translate.txt")

// PromptData is the input to the translation prompt template.
type PromptData struct {
	Text           string
	TargetLanguage string
}

// RenderPrompt builds the instruction that asks the model for the tagged
// <idio>/<words>/<literal> response.
func RenderPrompt(text, targetLanguage string) (string, error) {
	if targetLanguage == "" {
		targetLanguage = "English"
	}
	var buf bytes.Buffer
	if err := translatePrompt.Execute(&buf, PromptData{Text: text, TargetLanguage: targetLanguage}); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}
	return buf.String(), nil
}
