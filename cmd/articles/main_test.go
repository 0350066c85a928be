package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticles(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/Stadt", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<h1 class="lemma__title">Stadt, die</h1>`))
	})
	mux.HandleFunc("/Markt", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<h1 class="lemma__title">Markt, der</h1>`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	dir := t.TempDir()
	inPath := filepath.Join(dir, "nouns.txt")
	outPath := filepath.Join(dir, "nouns.csv")
	require.NoError(t, os.WriteFile(inPath, []byte("Stadt\nQwertz\nMarkt\n"), 0o644))

	t.Setenv("WH_ARTICLES_ENDPOINT", srv.URL)
	t.Setenv("WH_ARTICLES_CACHE", filepath.Join(dir, "cache.db"))

	cmd := newRootCmd()
	var stdout bytes.Buffer
	cmd.SetArgs([]string{inPath, outPath})
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "Stadt, die\nMarkt, der\n", string(data))
	assert.Equal(t, "Could not find entry for Qwertz in Duden\n", stdout.String())
}

func TestArticlesKeepsEntriesOnInterrupt(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mux := http.NewServeMux()
	mux.HandleFunc("/Stadt", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<h1 class="lemma__title">Stadt, die</h1>`))
	})
	mux.HandleFunc("/Markt", func(w http.ResponseWriter, r *http.Request) {
		cancel()
		http.NotFound(w, r)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	dir := t.TempDir()
	inPath := filepath.Join(dir, "nouns.txt")
	outPath := filepath.Join(dir, "nouns.csv")
	require.NoError(t, os.WriteFile(inPath, []byte("Stadt\nMarkt\nGarten\n"), 0o644))
	t.Setenv("WH_ARTICLES_ENDPOINT", srv.URL)

	cmd := newRootCmd()
	cmd.SetArgs([]string{inPath, outPath})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.ExecuteContext(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "Stadt, die\n", string(data))
}
