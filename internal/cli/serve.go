package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lingua/internal/adapter/memstore"
	"lingua/internal/port"
	"lingua/internal/transport/httpapi"
	"lingua/internal/usecase"
)

var (
	serveAddr      string
	serveEphemeral bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Serve translation streaming, parsing, highlighting and flashcard drafting
over HTTP. History is shared with the CLI.

Examples:
  lingua serve
  lingua serve --ephemeral        # Do not persist history
  lingua serve --addr 127.0.0.1:9000`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
	serveCmd.Flags().BoolVar(&serveEphemeral, "ephemeral", false, "keep history in memory only")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	addr := serveAddr
	if addr == "" {
		addr = cfg.Server.Addr
	}

	streamer, err := newStreamer()
	if err != nil {
		return err
	}
	var st port.HistoryStore
	if serveEphemeral {
		st = memstore.NewMemoryStore()
	} else {
		bolt, err := openHistory()
		if err != nil {
			return err
		}
		st = bolt
	}
	defer st.Close()

	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httpapi.NewRouter(httpapi.RouterDeps{
		Translate: httpapi.NewTranslateHandler(streamer, st, cfg.Highlight.HistorySize, logger),
		Highlight: httpapi.NewHighlightHandler(usecase.NewHighlightUseCase(st, mergeOptions())),
		Cards:     httpapi.NewFlashcardHandler(),
		History:   httpapi.NewHistoryHandler(st),
		Logger:    logger,
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", addr), zap.String("model", streamer.ModelName()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-cmd.Context().Done():
	}

	logger.Info("server stopping...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
