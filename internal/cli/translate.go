package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"lingua/internal/adapter/align"
	"lingua/internal/adapter/fs"
	"lingua/internal/adapter/llm"
	"lingua/internal/domain"
	"lingua/internal/port"
	"lingua/internal/usecase"
)

var (
	translateText    string
	translatePassage string
	translateJSON    bool
	translateReplay  string
)

var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Translate a selection while the model streams",
	Long: `Translate a text selection into natural, literal and word-aligned forms.
Progress is shown while the response streams. With --passage the result is
stored in that passage's history and highlighted in the paragraphs containing
the selection.

Examples:
  lingua translate -t "Le chat noir dort"
  lingua translate -t "chat noir" --passage book/ch1.txt
  lingua translate -t "chat" --replay testdata/response.xml --json`,
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)
	translateCmd.Flags().StringVarP(&translateText, "text", "t", "", "text to translate (required)")
	translateCmd.Flags().StringVarP(&translatePassage, "passage", "p", "", "passage file the selection comes from")
	translateCmd.Flags().BoolVar(&translateJSON, "json", false, "output as JSON")
	translateCmd.Flags().StringVar(&translateReplay, "replay", "", "replay a recorded response instead of calling the provider")
	translateCmd.MarkFlagRequired("text")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	var (
		streamer port.Streamer
		err      error
	)
	if translateReplay != "" {
		streamer, err = llm.NewReplayFileStreamer(translateReplay, cfg.Translate.ReplayChunk, 0)
	} else {
		streamer, err = newStreamer()
	}
	if err != nil {
		return err
	}

	var (
		history port.HistoryStore
		docID   string
		passage string
	)
	if translatePassage != "" {
		body, err := fs.Reader{}.ReadPassage(translatePassage)
		if err != nil {
			return fmt.Errorf("failed to read passage: %w", err)
		}
		passage = body

		st, err := openHistory()
		if err != nil {
			return err
		}
		defer st.Close()
		docID = fs.DocumentID(translatePassage)
		if err := st.SetDocumentPath(docID, translatePassage); err != nil {
			return fmt.Errorf("failed to record passage path: %w", err)
		}
		history = st
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetDescription("[cyan]Translating[reset]"),
		progressbar.OptionClearOnFinish(),
	)

	uc := usecase.NewTranslateUseCase(streamer, history, cfg.Highlight.HistorySize, logger)
	resp, err := uc.Translate(cmd.Context(), usecase.TranslateRequest{
		Text:  translateText,
		DocID: docID,
		OnChunk: func(chunk string) error {
			return bar.Add(len(chunk))
		},
		OnUpdate: func(p domain.PartialTranslation) {
			bar.Describe(fmt.Sprintf("[cyan]Translating[reset] %d words", len(p.ChunkPairs)))
		},
	})
	_ = bar.Finish()
	if err != nil {
		if errors.Is(err, domain.ErrIncomplete) {
			return fmt.Errorf("model response ended before the literal translation closed: %w", err)
		}
		return err
	}

	if translateJSON {
		output, _ := json.MarshalIndent(resp, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	out := newTerminal()
	fmt.Print(out.Response(resp))

	if passage != "" {
		hl := usecase.NewHighlightUseCase(history, mergeOptions())
		loc := align.NewLocator()
		scope := align.LayerFromResponse(resp).Original
		partial := domain.PartialTranslation{Original: resp.Original, ChunkPairs: resp.ChunkPairs}
		for _, para := range fs.SplitParagraphs(passage) {
			if _, _, ok := loc.Find(para.Text, scope); !ok {
				continue
			}
			chunks, err := hl.Highlight("", para.Text, &partial)
			if err != nil {
				return err
			}
			fmt.Printf("\n¶%d\n%s\n", para.Index+1, out.Paragraph(para.Text, chunks))
		}
	}
	return nil
}
