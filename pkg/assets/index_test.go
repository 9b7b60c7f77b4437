package assets

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectPath(t *testing.T) {
	hash := "abcd1234abcd1234abcd1234abcd1234abcd1234"
	assert.Equal(t,
		filepath.Join(
			"root", "assets", "objects", "ab", hash,
		),
		ObjectPath("root", hash),
	)
}

func TestIndexPath(t *testing.T) {
	assert.Equal(t,
		filepath.Join("root", "assets", "indexes", "5.json"),
		IndexPath("root", "5"),
	)
}

func TestValidateHash(t *testing.T) {
	assert.NoError(t, ValidateHash(
		"aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d",
	))

	for _, bad := range []string{
		"",
		"abcd",
		"AAF4C61DDCC5E8A2DABEDE0F3B482CD9AEA9434D",
		"../../4c61ddcc5e8a2dabede0f3b482cd9aea9434d",
		"zzf4c61ddcc5e8a2dabede0f3b482cd9aea9434d",
	} {
		assert.Error(t, ValidateHash(bad), "hash %q", bad)
	}
}
