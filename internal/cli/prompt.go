package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"lingua/internal/adapter/llm"
)

var (
	promptText   string
	promptTarget string
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print the translation prompt",
	Long: `Print the prompt sent to the model for a selection, for manual use with
any chat interface. Paste the reply into a file and feed it to 'lingua parse'.

Examples:
  lingua prompt -t "Le chat noir dort"
  lingua prompt -t "Der Hund" --target Spanish`,
	RunE: runPrompt,
}

func init() {
	rootCmd.AddCommand(promptCmd)
	promptCmd.Flags().StringVarP(&promptText, "text", "t", "", "text to translate (required)")
	promptCmd.Flags().StringVar(&promptTarget, "target", "", "target language (default from config)")
	promptCmd.MarkFlagRequired("text")
}

func runPrompt(cmd *cobra.Command, args []string) error {
	target := promptTarget
	if target == "" {
		target = GetConfig().Translate.TargetLanguage
	}
	prompt, err := llm.RenderPrompt(promptText, target)
	if err != nil {
		return err
	}
	fmt.Println(prompt)
	return nil
}
