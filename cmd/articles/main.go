package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/conorfennell/wiederholung/internal/articles"
	"github.com/conorfennell/wiederholung/internal/config"
	"github.com/conorfennell/wiederholung/internal/storage"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "articles <in_file> <out_file>",
		Short: "Append articles (der, die, das) to nouns",
		Long: `Reads one noun per line from in_file, looks each up in the Duden
dictionary and writes "Noun, article" lines to out_file. Reading stops at the
first blank line. Nouns without an entry are reported and skipped.`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE:         runArticles,
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

func runArticles(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.Debug)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	in, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(args[1])
	if err != nil {
		return err
	}
	defer out.Close()

	var lookup articles.Lookuper = articles.NewClient(
		cfg.Articles.Endpoint,
		&http.Client{Timeout: cfg.Articles.Timeout},
		logger,
	)
	if cfg.Articles.Cache != "" {
		db, err := storage.Open(cfg.Articles.Cache)
		if err != nil {
			return fmt.Errorf("opening lookup cache: %w", err)
		}
		defer db.Close()
		lookup = articles.NewCached(lookup, db, logger)
	}

	// Entries found before an interrupt are kept.
	w := bufio.NewWriter(out)
	runErr := articles.Run(ctx, in, w, cmd.OutOrStdout(), lookup, logger)
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing %s: %w", args[1], err)
	}
	if runErr != nil {
		return runErr
	}
	return out.Close()
}

