package manifest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/craftget/craftget/pkg/fetch"
	"github.com/craftget/craftget/pkg/mirror"
)

// AssetIndexRef is the one part of a version descriptor this
// pipeline types strongly: the pointer to the asset index document.
type AssetIndexRef struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	SHA1      string `json:"sha1"`
	Size      int64  `json:"size"`
	TotalSize int64  `json:"totalSize"`
}

// Descriptor is one version's descriptor document. Beyond the
// asset index reference it is carried as opaque JSON so it can be
// persisted without losing fields this tool doesn't understand.
type Descriptor struct {
	AssetIndex AssetIndexRef
	raw        []byte
}

// Raw returns the descriptor exactly as served.
func (d *Descriptor) Raw() []byte {
	return d.raw
}

// Pretty re-indents the descriptor for the versions/ directory.
func (d *Descriptor) Pretty() ([]byte, error) {
	var doc any
	if err := json.Unmarshal(d.raw, &doc); err != nil {
		return nil, fmt.Errorf("decode descriptor: %w", err)
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// FetchDescriptor resolves version in m and downloads its
// descriptor through the mirror. The upstream protocol publishes no
// digest for descriptors, so this is a plain GET.
func FetchDescriptor(
	ctx context.Context,
	c *fetch.Client,
	m *VersionManifest,
	manifestBase string,
	version string,
) (*Descriptor, error) {
	entry, err := m.find(version)
	if err != nil {
		return nil, err
	}

	url, err := mirror.Rewrite(entry.URL, manifestBase)
	if err != nil {
		return nil, err
	}
	slog.Debug("fetching version descriptor",
		"version", version, "url", url,
	)

	body, err := c.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf(
			"descriptor for %s: %w", version, err,
		)
	}

	var ref struct {
		AssetIndex AssetIndexRef `json:"assetIndex"`
	}
	if err := json.Unmarshal(body, &ref); err != nil {
		return nil, fmt.Errorf(
			"decode descriptor for %s: %w", version, err,
		)
	}
	return &Descriptor{
		AssetIndex: ref.AssetIndex,
		raw:        body,
	}, nil
}
