package assets

import (
	"fmt"
	"path/filepath"
)

type ObjectEntry struct {
	Hash string `json:"hash"`
	Size int64  `json:"size"`
}

// Index maps logical asset names to content-addressed objects. Keys
// are unique; sync order does not matter.
type Index struct {
	Objects map[string]ObjectEntry `json:"objects"`
}

// ObjectPath is where an object with the given hash lives under the
// store root: objects/<hash[0:2]>/<hash>. The path is derived only
// from verified content, so a file existing there is proof the
// object is already installed.
func ObjectPath(root, hash string) string {
	return filepath.Join(
		root, "assets", "objects", hash[:2], hash,
	)
}

func IndexPath(root, id string) string {
	return filepath.Join(
		root, "assets", "indexes", id+".json",
	)
}

// ValidateHash rejects anything that is not a 40-char lowercase hex
// SHA-1, before it can become a filesystem path component.
func ValidateHash(hash string) error {
	if len(hash) != 40 {
		return fmt.Errorf(
			"bad object hash %q: want 40 hex chars", hash,
		)
	}
	for _, r := range hash {
		ok := (r >= '0' && r <= '9') ||
			(r >= 'a' && r <= 'f')
		if !ok {
			return fmt.Errorf(
				"bad object hash %q: non-hex char %q",
				hash, r,
			)
		}
	}
	return nil
}
