package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"plinkotone/internal/board"
	"plinkotone/internal/sims/plinko"
	"plinkotone/internal/storage/sqlite"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(newFlagSet(), nil, filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := NewConfig()
	if *cfg != *want {
		t.Fatalf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestLoadConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	dotenv := filepath.Join(dir, "test.env")
	body := "PLINKO_PRESET=funnel\nPLINKO_SCALE=minor\nPLINKO_SEED=5\n"
	if err := os.WriteFile(dotenv, []byte(body), 0o644); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}
	t.Setenv("PLINKO_SCALE", "blues")
	// godotenv never overrides variables that already exist, even empty ones.
	for _, key := range []string{"PLINKO_PRESET", "PLINKO_SEED"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := LoadConfig(newFlagSet(), []string{"-seed", "9"}, dotenv)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Preset != "funnel" {
		t.Fatalf("preset = %q, want funnel from dotenv", cfg.Preset)
	}
	if cfg.Scale != "blues" {
		t.Fatalf("scale = %q, environment should override dotenv", cfg.Scale)
	}
	if cfg.Seed != 9 {
		t.Fatalf("seed = %d, flag should override dotenv", cfg.Seed)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.env")
	if _, err := LoadConfig(newFlagSet(), []string{"-volume", "2"}, missing); err == nil {
		t.Fatal("expected volume error")
	}
	if _, err := LoadConfig(newFlagSet(), []string{"-tps", "0"}, missing); err == nil {
		t.Fatal("expected tps error")
	}
	t.Setenv("PLINKO_WIDTH", "wide")
	if _, err := LoadConfig(newFlagSet(), nil, missing); err == nil {
		t.Fatal("expected env parse error")
	}
}

func TestAudioConfigFollowsMute(t *testing.T) {
	cfg := NewConfig()
	cfg.Mute = true
	cfg.Volume = 0.3
	ac := cfg.AudioConfig()
	if ac.Enabled || ac.MasterVolume != 0.3 {
		t.Fatalf("audio config = %+v", ac)
	}
}

func TestBuildWorldFromShareCode(t *testing.T) {
	src := plinko.New(900, 700)
	if err := src.LoadPreset("rain"); err != nil {
		t.Fatalf("load rain: %v", err)
	}
	cfg := NewConfig()
	cfg.Board = src.ShareCode()

	world, err := BuildWorld(context.Background(), cfg)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if world.Preset() != plinko.SharedPreset || len(world.Pegs()) != len(src.Pegs()) {
		t.Fatalf("world preset %q with %d pegs", world.Preset(), len(world.Pegs()))
	}
}

func TestBuildWorldFromSavedBoard(t *testing.T) {
	cfg := NewConfig()
	cfg.BoardDB = filepath.Join(t.TempDir(), "boards.db")

	src := plinko.New(900, 700)
	if err := src.LoadPreset("cascade"); err != nil {
		t.Fatalf("load cascade: %v", err)
	}
	if err := SaveBoard(context.Background(), cfg.BoardDB, "steps", src); err != nil {
		t.Fatalf("save: %v", err)
	}

	cfg.Saved = "steps"
	world, err := BuildWorld(context.Background(), cfg)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(world.Pegs()) != len(src.Pegs()) {
		t.Fatalf("pegs = %d, want %d", len(world.Pegs()), len(src.Pegs()))
	}

	cfg.Saved = "absent"
	if _, err := BuildWorld(context.Background(), cfg); !errors.Is(err, sqlite.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBuildWorldKeepsFallbackForUnknownPreset(t *testing.T) {
	cfg := NewConfig()
	cfg.Preset = "zigzag"

	world, err := BuildWorld(context.Background(), cfg)
	if !errors.Is(err, board.ErrUnknownPreset) {
		t.Fatalf("expected ErrUnknownPreset, got %v", err)
	}
	if world == nil || world.Preset() != "classic" || len(world.Pegs()) == 0 {
		t.Fatalf("expected the classic fallback board, got %v", world)
	}

	src := plinko.New(900, 700)
	cfg.Board = src.ShareCode()
	world, err = BuildWorld(context.Background(), cfg)
	if err != nil {
		t.Fatalf("share code should win over a bad preset: %v", err)
	}
	if world.Preset() != plinko.SharedPreset {
		t.Fatalf("preset = %q, want %q", world.Preset(), plinko.SharedPreset)
	}
}
