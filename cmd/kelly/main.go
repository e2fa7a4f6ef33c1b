package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/kelly/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app carries state shared by every subcommand once the root has run.
type app struct {
	cfg *config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "kelly",
		Short: "Answers questions about AI as a skeptical scientist, in verse",
		Long: `kelly answers questions about artificial intelligence with a poem.

Every poem questions broad claims, names concrete limitations and offers
evidence-based suggestions. When an API key for a hosted model is present
the poem is written remotely; otherwise, or when the remote call fails, a
deterministic composer writes it from a fixed content library.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			slog.SetDefault(a.log)
			return nil
		},
	}

	root.AddCommand(newAskCmd(a), newBatchCmd(a), newClassifyCmd(), newTopicsCmd(), newPersonasCmd())
	return root
}

// newLogger builds a text handler on w. Unknown levels fall back to info.
func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
