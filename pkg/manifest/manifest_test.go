package manifest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/craftget/craftget/pkg/fakemirror"
	"github.com/craftget/craftget/pkg/fetch"
)

func testManifest() *VersionManifest {
	m := &VersionManifest{}
	m.Latest.Release = "1.20.4"
	m.Latest.Snapshot = "24w09a"
	m.Versions = []VersionEntry{
		{ID: "24w09a", Type: "snapshot", URL: "https://up.example/24w09a.json"},
		{ID: "1.20.4", Type: "release", URL: "https://up.example/1.20.4.json"},
		{ID: "1.20.3", Type: "release", URL: "https://up.example/1.20.3.json"},
		{ID: "1.0-rc1", Type: "old_beta", URL: "https://up.example/rc1.json"},
	}
	return m
}

func TestListAll(t *testing.T) {
	ids := testManifest().List(All)
	assert.Equal(t,
		[]string{"24w09a", "1.20.4", "1.20.3", "1.0-rc1"},
		ids,
	)
}

func TestListRelease(t *testing.T) {
	ids := testManifest().List(Release)
	assert.Equal(t, []string{"1.20.4", "1.20.3"}, ids)
}

func TestListSnapshot(t *testing.T) {
	ids := testManifest().List(Snapshot)
	assert.Equal(t, []string{"24w09a"}, ids)
}

func TestParseVersionType(t *testing.T) {
	for s, want := range map[string]VersionType{
		"":         All,
		"all":      All,
		"release":  Release,
		"snapshot": Snapshot,
	} {
		got, err := ParseVersionType(s)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseVersionType("beta")
	assert.Error(t, err)
}

func TestFetch(t *testing.T) {
	srv := fakemirror.New()
	defer srv.Close()
	srv.SetJSON(
		"mc/game/version_manifest.json", testManifest(),
	)

	m, err := Fetch(
		context.Background(), fetch.New(), srv.URL(),
	)
	assert.NoError(t, err)
	assert.Len(t, m.Versions, 4)
	assert.Equal(t, "1.20.4", m.Latest.Release)
}

func TestFetchBadJSON(t *testing.T) {
	srv := fakemirror.New()
	defer srv.Close()
	srv.SetFile(
		"mc/game/version_manifest.json",
		[]byte("{not json"),
	)

	_, err := Fetch(
		context.Background(), fetch.New(), srv.URL(),
	)
	assert.Error(t, err)
}

func TestFetchDescriptor(t *testing.T) {
	srv := fakemirror.New()
	defer srv.Close()

	descriptor := map[string]any{
		"id": "1.20.4",
		"assetIndex": map[string]any{
			"id":   "12",
			"url":  "https://up.example/indexes/12.json",
			"sha1": "0123456789abcdef0123456789abcdef01234567",
			"size": 411,
		},
		"mainClass": "net.minecraft.client.main.Main",
	}
	srv.SetJSON("1.20.4.json", descriptor)

	m := testManifest()
	// Point the entry at a host that does not exist; the
	// rewrite to the fake mirror must be what makes it work.
	m.Versions[1].URL = "https://up.example/1.20.4.json"

	desc, err := FetchDescriptor(
		context.Background(), fetch.New(),
		m, srv.URL(), "1.20.4",
	)
	assert.NoError(t, err)
	assert.Equal(t, "12", desc.AssetIndex.ID)
	assert.Equal(t, int64(411), desc.AssetIndex.Size)
	assert.Equal(t,
		"https://up.example/indexes/12.json",
		desc.AssetIndex.URL,
	)

	pretty, err := desc.Pretty()
	assert.NoError(t, err)
	assert.Contains(t, string(pretty), "mainClass")
}

func TestFetchDescriptorVersionNotFound(t *testing.T) {
	_, err := FetchDescriptor(
		context.Background(), fetch.New(),
		testManifest(), "https://mirror.test/", "9.9.9",
	)
	var nf *VersionNotFoundError
	assert.ErrorAs(t, err, &nf)
	assert.Equal(t, "9.9.9", nf.ID)
}
