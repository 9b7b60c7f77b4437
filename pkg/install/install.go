package install

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/craftget/craftget/pkg/assets"
	"github.com/craftget/craftget/pkg/fetch"
	"github.com/craftget/craftget/pkg/manifest"
	"github.com/craftget/craftget/pkg/mcconfig"
)

// Run installs cfg.GameVersion into cfg.GameDir: version
// descriptor, verified asset index, then every missing asset
// object. A failed run persists nothing the next run can't rebuild
// from; already-installed objects are never refetched.
func Run(
	ctx context.Context,
	c *fetch.Client,
	cfg *mcconfig.RuntimeConfig,
) error {
	m, err := manifest.Fetch(
		ctx, c, cfg.Mirror.VersionManifest,
	)
	if err != nil {
		return err
	}

	desc, err := manifest.FetchDescriptor(
		ctx, c, m,
		cfg.Mirror.VersionManifest,
		cfg.GameVersion,
	)
	if err != nil {
		return err
	}

	if err := writeDescriptor(cfg, desc); err != nil {
		return err
	}
	slog.Info("version descriptor installed",
		"version", cfg.GameVersion,
	)

	syncer := &assets.Syncer{
		Client: c,
		Mirror: cfg.Mirror,
		Root:   cfg.GameDir,
	}
	return syncer.Sync(ctx, desc.AssetIndex)
}

func writeDescriptor(
	cfg *mcconfig.RuntimeConfig,
	desc *manifest.Descriptor,
) error {
	pretty, err := desc.Pretty()
	if err != nil {
		return err
	}

	dir := filepath.Join(
		cfg.GameDir, "versions", cfg.GameVersion,
	)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create version dir: %w", err)
	}

	path := filepath.Join(
		dir, cfg.GameVersion+".json",
	)
	if err := os.WriteFile(path, pretty, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
