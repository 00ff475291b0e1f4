package cli

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"lingua/config"
	"lingua/internal/adapter/align"
	"lingua/internal/adapter/cache"
	"lingua/internal/adapter/llm"
	"lingua/internal/adapter/render"
	"lingua/internal/adapter/store"
	"lingua/internal/port"
)

// openHistory opens the history database under the root directory and
// brings its schema up to date.
func openHistory() (*store.BoltStore, error) {
	c := GetConfig()
	if c.Store.Path == "" {
		if err := config.EnsureDataDir(GetRootDir()); err != nil {
			return nil, fmt.Errorf("failed to create %s directory: %w", config.DataDirName, err)
		}
	}

	st, err := store.NewBoltStore(c.ResolveHistoryDBPath(GetRootDir()))
	if err != nil {
		return nil, fmt.Errorf("failed to open history store: %w", err)
	}

	res, err := st.CheckMigration(c)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("failed to check migration: %w", err)
	}
	if res.Stale {
		logger.Warn("history was recorded with different translation settings", zap.String("reason", res.Reason))
	}
	if res.NeedsMigration {
		logger.Debug("running schema migration", zap.String("reason", res.Reason))
		if err := st.Migrate(c); err != nil {
			st.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
	}
	return st, nil
}

func newStreamer() (port.Streamer, error) {
	t := GetConfig().Translate
	s, err := llm.New(t)
	if err != nil {
		return nil, err
	}
	return cache.WrapStreamer(s, t.CacheSize, t.CacheTTL), nil
}

func mergeOptions() align.MergeOptions {
	h := GetConfig().Highlight
	return align.MergeOptions{
		HistorySize:   h.HistorySize,
		CurrentWeight: h.CurrentOpacity,
		HistoryWeight: h.HistoryOpacity,
		WeightStep:    h.OpacityStep,
		MinimumWeight: h.MinOpacity,
	}
}

func newTerminal() *render.Terminal {
	return render.NewTerminal(!noColor && term.IsTerminal(int(os.Stdout.Fd())))
}
