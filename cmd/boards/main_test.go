package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"plinkotone/internal/board"
	"plinkotone/internal/storage/sqlite"
)

func openStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "boards.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSavePresetThenShow(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	var out bytes.Buffer

	if err := run(ctx, store, &out, "blues", []string{"save", "mine", "classic"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	out.Reset()
	if err := run(ctx, store, &out, "blues", []string{"show", "mine"}); err != nil {
		t.Fatalf("show: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "mine (blues)") || !strings.Contains(got, "77 tone") {
		t.Fatalf("unexpected show output:\n%s", got)
	}
}

func TestSaveShareCodeKeepsItsScale(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	descs, _ := board.Generate("rain")
	code := board.Encode(descs, "minor")

	if err := run(ctx, store, &bytes.Buffer{}, "pentatonic", []string{"save", "shared", code}); err != nil {
		t.Fatalf("save: %v", err)
	}
	b, err := store.Get(ctx, "shared")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if b.Code != code || b.Scale != "minor" {
		t.Fatalf("stored %+v", b)
	}
}

func TestSaveRejectsGarbage(t *testing.T) {
	store := openStore(t)
	err := run(context.Background(), store, &bytes.Buffer{}, "pentatonic", []string{"save", "x", "%%%"})
	if !errors.Is(err, board.ErrInvalidCode) {
		t.Fatalf("expected ErrInvalidCode, got %v", err)
	}
}

func TestListAndDelete(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	for _, name := range []string{"a", "b"} {
		if err := run(ctx, store, &bytes.Buffer{}, "pentatonic", []string{"save", name, "funnel"}); err != nil {
			t.Fatalf("save %s: %v", name, err)
		}
	}
	var out bytes.Buffer
	if err := run(ctx, store, &out, "pentatonic", []string{"list"}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if lines := strings.Split(strings.TrimSpace(out.String()), "\n"); len(lines) != 3 {
		t.Fatalf("list output:\n%s", out.String())
	}
	if err := run(ctx, store, &bytes.Buffer{}, "pentatonic", []string{"delete", "a"}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	err := run(ctx, store, &bytes.Buffer{}, "pentatonic", []string{"show", "a"})
	if !errors.Is(err, sqlite.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUnknownCommand(t *testing.T) {
	store := openStore(t)
	if err := run(context.Background(), store, &bytes.Buffer{}, "pentatonic", []string{"frobnicate"}); err == nil {
		t.Fatal("expected error")
	}
}
