package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"lingua/internal/adapter/fs"
	"lingua/internal/usecase"
)

var (
	readLegend bool
	readJSON   bool
)

var readCmd = &cobra.Command{
	Use:   "read FILE",
	Short: "Show a passage with past translations highlighted",
	Long: `Render a passage paragraph by paragraph, highlighting every chunk from its
recent translations. More recent translations win where chunks overlap.

Examples:
  lingua read book/ch1.txt
  lingua read book/ch1.txt --legend`,
	Args: cobra.ExactArgs(1),
	RunE: runRead,
}

func init() {
	rootCmd.AddCommand(readCmd)
	readCmd.Flags().BoolVar(&readLegend, "legend", false, "list highlighted chunks under each paragraph")
	readCmd.Flags().BoolVar(&readJSON, "json", false, "output as JSON")
}

func runRead(cmd *cobra.Command, args []string) error {
	text, err := fs.Reader{}.ReadPassage(args[0])
	if err != nil {
		return fmt.Errorf("failed to read passage: %w", err)
	}

	st, err := openHistory()
	if err != nil {
		return err
	}
	defer st.Close()

	hl := usecase.NewHighlightUseCase(st, mergeOptions())
	paras, err := hl.HighlightPassage(fs.DocumentID(args[0]), text)
	if err != nil {
		return err
	}

	if readJSON {
		output, _ := json.MarshalIndent(paras, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	out := newTerminal()
	for i, p := range paras {
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(out.Paragraph(p.Paragraph.Text, p.Chunks))
		if readLegend && len(p.Chunks) > 0 {
			fmt.Print(out.Legend(p.Chunks))
		}
	}
	return nil
}
