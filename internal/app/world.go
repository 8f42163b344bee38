package app

import (
	"context"
	"fmt"

	"plinkotone/internal/sims/plinko"
	"plinkotone/internal/storage/sqlite"
)

// BuildWorld creates the session described by cfg. A saved board name takes
// precedence over a share code, which takes precedence over the preset. An
// unknown preset is not fatal: the classic board is returned together with
// the error so callers can report it.
func BuildWorld(ctx context.Context, cfg *Config) (*plinko.World, error) {
	world, presetErr := plinko.NewWithConfig(cfg.SimConfig())
	if world == nil {
		return nil, presetErr
	}

	code := cfg.Board
	if cfg.Saved != "" {
		saved, err := lookupSaved(ctx, cfg.BoardDB, cfg.Saved)
		if err != nil {
			return nil, err
		}
		code = saved
	}
	if code != "" {
		if err := world.LoadCode(code); err != nil {
			return nil, err
		}
		return world, nil
	}
	return world, presetErr
}

func lookupSaved(ctx context.Context, dbPath, name string) (string, error) {
	store, err := sqlite.Open(dbPath)
	if err != nil {
		return "", err
	}
	defer store.Close()

	b, err := store.Get(ctx, name)
	if err != nil {
		return "", fmt.Errorf("saved board %q: %w", name, err)
	}
	return b.Code, nil
}

// SaveBoard stores the world's current layout under name.
func SaveBoard(ctx context.Context, dbPath, name string, world *plinko.World) error {
	store, err := sqlite.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.Save(ctx, sqlite.Board{Name: name, Code: world.ShareCode(), Scale: world.Scale()})
}
