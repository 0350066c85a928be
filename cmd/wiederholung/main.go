package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/conorfennell/wiederholung/internal/config"
	"github.com/conorfennell/wiederholung/internal/console"
	"github.com/conorfennell/wiederholung/internal/deck"
	"github.com/conorfennell/wiederholung/internal/parser"
	"github.com/conorfennell/wiederholung/internal/report"
	"github.com/conorfennell/wiederholung/internal/selector"
	"github.com/conorfennell/wiederholung/internal/session"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wiederholung <deck.csv>",
		Short: "Drill question/answer pairs, repeating the ones you miss",
		Long: `Wiederholung asks the questions of a CSV deck (question,answer per line,
'#' starts a comment) in random order, weighted toward questions answered
wrongly. A wrong answer is asked again immediately. Press Ctrl+C to stop and
print the statistics.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         runDrill,
	}
	cmd.Flags().Bool("debug", false, "enable debugging information")
	return cmd
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func runDrill(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.Debug)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	path, err := deck.Resolve(ctx, cfg.Repo, args[0], logger)
	if err != nil {
		return fmt.Errorf("resolving deck: %w", err)
	}

	s, err := parser.LoadFile(path)
	if err != nil {
		return err
	}
	logger.Info("loaded words", "count", s.Len(), "path", path)

	in := console.NewLineReader(cmd.InOrStdin())
	defer in.Close()

	out := cmd.OutOrStdout()
	styles := report.NewStyles(lipgloss.NewRenderer(out))
	sess := session.New(s, session.Options{
		Picker:   selector.New(nil, logger),
		In:       in,
		Out:      out,
		Reporter: report.New(styles),
		Styles:   styles,
		Logger:   logger,
	})
	return sess.Run(ctx)
}
