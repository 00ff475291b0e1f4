package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lingua/config"
	"lingua/internal/logging"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
	noColor bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lingua",
	Short: "Interlinear translation reader backed by streaming language models",
	Long: `Lingua translates selected passages into natural, literal and word-by-word
renderings while the model is still streaming, keeps a per-passage history of
past translations and highlights them back onto the text.

Example usage:
  lingua translate -t "Le chat noir dort"       # Translate a selection
  lingua read book/chapter1.txt                 # Show passage with highlights
  lingua history book/chapter1.txt              # List past translations
  lingua serve                                  # Start the HTTP API`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		logger, err = logging.New(cfg.Logging.Level, cfg.Logging.Format)
		if err != nil {
			return err
		}
		cmd.SetContext(logging.WithContext(cmd.Context(), logger))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./lingua.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
