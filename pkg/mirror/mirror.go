package mirror

import (
	"fmt"
	"net/url"
	"strings"
)

// Mirror holds the download endpoints for one upstream or mirror
// deployment. Every base ends with "/" so paths can be appended
// directly.
type Mirror struct {
	VersionManifest string `toml:"version_manifest"`
	Assets          string `toml:"assets"`
	Client          string `toml:"client"`
	Libraries       string `toml:"libraries"`
}

func Official() Mirror {
	return Mirror{
		VersionManifest: "https://launchermeta.mojang.com/",
		Assets:          "https://resources.download.minecraft.net/",
		Client:          "https://launcher.mojang.com/",
		Libraries:       "https://libraries.minecraft.net/",
	}
}

func BMCLAPI() Mirror {
	return Mirror{
		VersionManifest: "https://bmclapi2.bangbang93.com/",
		Assets:          "https://bmclapi2.bangbang93.com/assets/",
		Client:          "https://bmclapi2.bangbang93.com/",
		Libraries:       "https://bmclapi2.bangbang93.com/maven/",
	}
}

// Rewrite points rawURL at base, keeping its path and query. The
// upstream manifest hands out absolute URLs on the official hosts;
// every outbound fetch goes through here first so a configured
// mirror sees the same paths the official host would.
func Rewrite(rawURL, base string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("rewrite %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf(
			"rewrite %q: not an absolute http(s) url", rawURL,
		)
	}
	if u.Host == "" {
		return "", fmt.Errorf("rewrite %q: missing host", rawURL)
	}

	b, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("rewrite base %q: %w", base, err)
	}
	if b.Scheme == "" || b.Host == "" {
		return "", fmt.Errorf(
			"rewrite base %q: not an absolute url", base,
		)
	}

	u.Scheme = b.Scheme
	u.Host = b.Host
	u.Path = joinPath(b.Path, u.Path)
	return u.String(), nil
}

func joinPath(basePath, path string) string {
	basePath = strings.TrimSuffix(basePath, "/")
	if basePath == "" {
		return path
	}
	return basePath + path
}
