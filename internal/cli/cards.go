package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"lingua/internal/adapter/fs"
	"lingua/internal/adapter/tagstream"
	"lingua/internal/domain"
	"lingua/internal/usecase"
)

var (
	cardsResponse string
	cardsCreate   bool
)

var cardsCmd = &cobra.Command{
	Use:   "cards [FILE]",
	Short: "Draft flashcards from translated words",
	Long: `Collect word pairs from a passage's translation history, or from a recorded
response with --response, and print flashcard drafts as JSON. Duplicate words
are dropped case-insensitively, keeping the first. With --create the drafts are
turned into new cards with initial scheduling fields.

Examples:
  lingua cards book/ch1.txt
  lingua cards --response response.xml --create`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCards,
}

func init() {
	rootCmd.AddCommand(cardsCmd)
	cardsCmd.Flags().StringVar(&cardsResponse, "response", "", "recorded response to take pairs from")
	cardsCmd.Flags().BoolVar(&cardsCreate, "create", false, "create cards instead of drafts")
}

func runCards(cmd *cobra.Command, args []string) error {
	var pairs []domain.ChunkPair

	switch {
	case cardsResponse != "":
		data, err := os.ReadFile(cardsResponse)
		if err != nil {
			return fmt.Errorf("failed to read response: %w", err)
		}
		pairs = tagstream.Parse(string(data), "").ChunkPairs
	case len(args) == 1:
		st, err := openHistory()
		if err != nil {
			return err
		}
		defer st.Close()
		items, err := st.List(fs.DocumentID(args[0]))
		if err != nil {
			return err
		}
		for _, it := range items {
			pairs = append(pairs, it.ChunkPairs...)
		}
	default:
		return fmt.Errorf("specify a passage FILE or --response")
	}

	drafts := usecase.DraftsFromPairs(pairs)
	var v any = drafts
	if cardsCreate {
		now := time.Now()
		cards := make([]domain.Flashcard, 0, len(drafts))
		for _, d := range drafts {
			card, err := usecase.NewFlashcard(d, now)
			if err != nil {
				return err
			}
			cards = append(cards, card)
		}
		v = cards
	}

	output, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(output))
	return nil
}
