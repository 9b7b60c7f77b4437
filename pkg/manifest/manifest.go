package manifest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/craftget/craftget/pkg/fetch"
)

const manifestPath = "mc/game/version_manifest.json"

type VersionEntry struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

type VersionManifest struct {
	Latest struct {
		Release  string `json:"release"`
		Snapshot string `json:"snapshot"`
	} `json:"latest"`
	Versions []VersionEntry `json:"versions"`
}

type VersionNotFoundError struct {
	ID string
}

func (e *VersionNotFoundError) Error() string {
	return fmt.Sprintf(
		"version %s not found in manifest", e.ID,
	)
}

// Fetch downloads the version manifest from the mirror. The
// manifest is the authoritative version index and is never cached;
// every run sees a fresh copy.
func Fetch(
	ctx context.Context,
	c *fetch.Client,
	base string,
) (*VersionManifest, error) {
	url := base + manifestPath
	body, err := c.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("version manifest: %w", err)
	}
	var m VersionManifest
	if err := json.Unmarshal(body, &m); err != nil {
		return nil, fmt.Errorf(
			"decode version manifest: %w", err,
		)
	}
	slog.Debug("fetched version manifest",
		"versions", len(m.Versions),
	)
	return &m, nil
}

// VersionType selects which manifest entries List returns.
type VersionType int

const (
	All VersionType = iota
	Release
	Snapshot
)

func ParseVersionType(s string) (VersionType, error) {
	switch s {
	case "", "all":
		return All, nil
	case "release":
		return Release, nil
	case "snapshot":
		return Snapshot, nil
	}
	return All, fmt.Errorf(
		"unknown version type %q (want all, release or snapshot)",
		s,
	)
}

// List returns version IDs in manifest order, filtered by type.
func (m *VersionManifest) List(vt VersionType) []string {
	var ids []string
	for _, v := range m.Versions {
		switch vt {
		case Release:
			if v.Type != "release" {
				continue
			}
		case Snapshot:
			if v.Type != "snapshot" {
				continue
			}
		}
		ids = append(ids, v.ID)
	}
	return ids
}

func (m *VersionManifest) find(id string) (VersionEntry, error) {
	for _, v := range m.Versions {
		if v.ID == id {
			return v, nil
		}
	}
	return VersionEntry{}, &VersionNotFoundError{ID: id}
}
