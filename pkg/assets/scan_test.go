package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/craftget/craftget/pkg/fetch"
)

func writeObject(
	t *testing.T, root string, data []byte,
) string {
	t.Helper()
	path := ObjectPath(root, fetch.Sum(data))
	assert.NoError(t,
		os.MkdirAll(filepath.Dir(path), 0755),
	)
	assert.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestScanCleanStore(t *testing.T) {
	root := t.TempDir()
	writeObject(t, root, []byte("one"))
	writeObject(t, root, []byte("two"))
	writeObject(t, root, []byte("three"))

	report, err := Scan(root, 2)
	assert.NoError(t, err)
	assert.Equal(t, 3, report.Checked)
	assert.Empty(t, report.Corrupt)
}

func TestScanFindsCorruption(t *testing.T) {
	root := t.TempDir()
	writeObject(t, root, []byte("good"))
	bad := writeObject(t, root, []byte("will rot"))
	assert.NoError(t,
		os.WriteFile(bad, []byte("rotted"), 0644),
	)

	report, err := Scan(root, 0)
	assert.NoError(t, err)
	assert.Equal(t, 2, report.Checked)
	assert.Equal(t, []string{bad}, report.Corrupt)
}

func TestScanIgnoresStrayFiles(t *testing.T) {
	root := t.TempDir()
	writeObject(t, root, []byte("object"))

	stray := filepath.Join(
		root, "assets", "objects", "notes.txt",
	)
	assert.NoError(t,
		os.WriteFile(stray, []byte("hi"), 0644),
	)

	report, err := Scan(root, 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, report.Checked)
	assert.Empty(t, report.Corrupt)
}

func TestScanMissingStore(t *testing.T) {
	report, err := Scan(t.TempDir(), 4)
	assert.NoError(t, err)
	assert.Equal(t, 0, report.Checked)
}
