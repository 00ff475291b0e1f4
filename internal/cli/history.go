package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"lingua/internal/adapter/fs"
)

var (
	historyClear bool
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history [FILE]",
	Short: "List or clear translation history",
	Long: `Without arguments, list passages that have translation history.
With a passage, list its translations newest first.

Examples:
  lingua history
  lingua history book/ch1.txt
  lingua history book/ch1.txt --clear
  lingua history --clear          # Clear every passage`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "remove history")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
}

func runHistory(cmd *cobra.Command, args []string) error {
	st, err := openHistory()
	if err != nil {
		return err
	}
	defer st.Close()

	if len(args) == 0 {
		if historyClear {
			if err := st.ClearAll(); err != nil {
				return fmt.Errorf("failed to clear history: %w", err)
			}
			fmt.Println("Cleared all history")
			return nil
		}

		docs, err := st.DescribeDocuments()
		if err != nil {
			return err
		}
		if historyJSON {
			output, _ := json.MarshalIndent(docs, "", "  ")
			fmt.Println(string(output))
			return nil
		}
		if len(docs) == 0 {
			fmt.Println("No translation history")
			return nil
		}
		for _, d := range docs {
			path := d.Path
			if path == "" {
				path = "(unknown path)"
			}
			fmt.Printf("%s  %-40s %2d entries  %s\n", d.ID, path, d.Entries, d.UpdatedAt.Format("2006-01-02 15:04"))
		}
		return nil
	}

	docID := fs.DocumentID(args[0])
	if historyClear {
		if err := st.Clear(docID); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		fmt.Printf("Cleared history for %s\n", args[0])
		return nil
	}

	items, err := st.List(docID)
	if err != nil {
		return err
	}
	if historyJSON {
		output, _ := json.MarshalIndent(items, "", "  ")
		fmt.Println(string(output))
		return nil
	}
	if len(items) == 0 {
		fmt.Printf("No history for %s\n", args[0])
		return nil
	}
	for i, it := range items {
		fmt.Printf("[%d] %s  %q\n    → %s\n", i+1, it.CreatedAt.Format("2006-01-02 15:04"), it.Original, it.NaturalTranslation)
	}
	return nil
}
