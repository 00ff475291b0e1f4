package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"lingua/internal/adapter/fs"
)

var passagesJSON bool

var passagesCmd = &cobra.Command{
	Use:   "passages [DIR]",
	Short: "List readable passages",
	Long: `List passage files matched by the configured include/exclude globs.

Examples:
  lingua passages
  lingua passages ./books --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPassages,
}

func init() {
	rootCmd.AddCommand(passagesCmd)
	passagesCmd.Flags().BoolVar(&passagesJSON, "json", false, "output as JSON")
}

func runPassages(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	root := GetRootDir()
	if len(args) > 0 {
		var err error
		root, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}

	walker := fs.NewWalker(cfg.Passages.Includes, cfg.Passages.Excludes)
	passages, err := walker.Walk(root)
	if err != nil {
		return fmt.Errorf("failed to walk %s: %w", root, err)
	}

	if passagesJSON {
		output, _ := json.MarshalIndent(passages, "", "  ")
		fmt.Println(string(output))
		return nil
	}
	if len(passages) == 0 {
		fmt.Printf("No passages found under %s\n", root)
		return nil
	}
	for _, p := range passages {
		rel, err := filepath.Rel(root, p.Path)
		if err != nil {
			rel = p.Path
		}
		fmt.Printf("%s  %-50s %8d bytes\n", p.ID, rel, p.Size)
	}
	return nil
}
