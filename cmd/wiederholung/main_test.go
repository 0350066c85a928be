package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/conorfennell/wiederholung/internal/store"
)

func writeDeck(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDrillUntilEndOfInput(t *testing.T) {
	path := writeDeck(t, "# one noun\nHaus, das\n")

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetArgs([]string{path})
	cmd.SetIn(strings.NewReader("der\ndas\n"))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() returned an unexpected error: %v (stderr: %s)", err, errOut.String())
	}

	text := out.String()
	for _, want := range []string{
		"Haus > Falsch! (Haus -> das)",
		"Haus > Genau!",
		" Haus > das |   1 /   2 (50.0%)",
		" TOTAL       |   1 /   2 (50.0%)",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected output to contain '%s', but got:\n%s", want, text)
		}
	}
}

func TestMalformedDeckFailsBeforePrompting(t *testing.T) {
	path := writeDeck(t, "Haus, das\nFrau\n")

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetArgs([]string{path})
	cmd.SetIn(strings.NewReader("das\n"))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.Execute()
	if !errors.Is(err, store.ErrMalformedRecord) {
		t.Fatalf("Expected ErrMalformedRecord, but got %v", err)
	}
	if strings.Contains(out.String(), " > ") {
		t.Errorf("Expected no prompt before the load error, but got:\n%s", out.String())
	}
}

func TestRequiresDeckArgument(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs(nil)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	if err := cmd.Execute(); err == nil {
		t.Error("Expected an error without a deck argument")
	}
}
