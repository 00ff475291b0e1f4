package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"lingua/internal/adapter/tagstream"
)

var (
	parseOriginal string
	parseFinal    bool
)

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Parse a recorded model response",
	Long: `Parse a recorded (possibly truncated) tagged response and print the
snapshot as JSON. Use "-" to read from stdin. With --final the response must be
complete and is printed in its finished form.

Examples:
  lingua parse response.xml -o "Le chat noir"
  head -c 80 response.xml | lingua parse -`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseOriginal, "original", "o", "", "source text the response translates")
	parseCmd.Flags().BoolVar(&parseFinal, "final", false, "require a complete response and print its finished form")
}

func runParse(cmd *cobra.Command, args []string) error {
	var (
		data []byte
		err  error
	)
	if args[0] == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	partial := tagstream.Parse(string(data), parseOriginal)

	var v any = partial
	if parseFinal {
		resp, err := tagstream.Finalize(partial, time.Now())
		if err != nil {
			return err
		}
		v = resp
	}

	output, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(output))
	return nil
}
