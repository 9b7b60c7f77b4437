package assets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/craftget/craftget/pkg/fetch"
	"github.com/craftget/craftget/pkg/manifest"
	"github.com/craftget/craftget/pkg/mirror"
)

// Syncer installs the asset index and its objects under Root. The
// object store itself is the download ledger: an object is skipped
// iff a file already exists at its hash path, and a failed run
// leaves nothing that a rerun can't pick up from.
type Syncer struct {
	Client *fetch.Client
	Mirror mirror.Mirror
	Root   string

	// Progress receives one line per installed object plus a
	// completion notice. Defaults to stdout.
	Progress io.Writer
}

func (s *Syncer) progress() io.Writer {
	if s.Progress != nil {
		return s.Progress
	}
	return os.Stdout
}

// Sync fetches and verifies the asset index named by ref, persists
// the verified body verbatim, and installs every missing object.
func (s *Syncer) Sync(
	ctx context.Context, ref manifest.AssetIndexRef,
) error {
	url, err := mirror.Rewrite(
		ref.URL, s.Mirror.VersionManifest,
	)
	if err != nil {
		return err
	}

	slog.Info("fetching asset index",
		"id", ref.ID, "url", url,
	)
	body, err := s.Client.GetVerified(ctx, url, ref.SHA1)
	if err != nil {
		return fmt.Errorf("asset index %s: %w", ref.ID, err)
	}

	// Verified bytes land on disk before anything parses them,
	// byte-identical to the network response.
	path := IndexPath(s.Root, ref.ID)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create index dir: %w", err)
	}
	if err := os.WriteFile(path, body, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	var idx Index
	if err := json.Unmarshal(body, &idx); err != nil {
		return fmt.Errorf(
			"decode asset index %s: %w", ref.ID, err,
		)
	}

	if err := s.syncObjects(ctx, &idx); err != nil {
		return err
	}
	fmt.Fprintln(s.progress(), "assets installed")
	return nil
}

func (s *Syncer) syncObjects(
	ctx context.Context, idx *Index,
) error {
	names := make([]string, 0, len(idx.Objects))
	for name := range idx.Objects {
		names = append(names, name)
	}
	sort.Strings(names)

	total := len(names)
	done := 0
	for _, name := range names {
		entry := idx.Objects[name]
		if err := ValidateHash(entry.Hash); err != nil {
			return fmt.Errorf("asset %s: %w", name, err)
		}

		path := ObjectPath(s.Root, entry.Hash)
		if _, err := os.Stat(path); err == nil {
			done++
			continue
		}

		url := s.Mirror.Assets +
			entry.Hash[:2] + "/" + entry.Hash
		data, err := s.Client.GetVerified(
			ctx, url, entry.Hash,
		)
		if err != nil {
			return fmt.Errorf("asset %s: %w", name, err)
		}

		if err := os.MkdirAll(
			filepath.Dir(path), 0755,
		); err != nil {
			return fmt.Errorf("create object dir: %w", err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}

		done++
		fmt.Fprintf(s.progress(),
			"%d/%d install asset: %s\n",
			done, total, entry.Hash,
		)
	}
	return nil
}
