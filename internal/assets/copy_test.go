package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestCopyTree_CopiesNestedTree(t *testing.T) {
	src := filepath.Join(t.TempDir(), "static")
	dst := t.TempDir()
	writeFile(t, filepath.Join(src, "css", "style.css"), "body {}")
	writeFile(t, filepath.Join(src, "images", "logo.png"), "png-bytes")
	writeFile(t, filepath.Join(src, "favicon.ico"), "ico")

	copied, err := CopyTree(src, dst, nil)
	require.NoError(t, err)
	require.Equal(t, 3, copied)
	require.Equal(t, "body {}", readFile(t, filepath.Join(dst, "css", "style.css")))
	require.Equal(t, "png-bytes", readFile(t, filepath.Join(dst, "images", "logo.png")))
	require.Equal(t, "ico", readFile(t, filepath.Join(dst, "favicon.ico")))
}

func TestCopyTree_MissingSource_NoOp(t *testing.T) {
	dst := t.TempDir()

	copied, err := CopyTree(filepath.Join(t.TempDir(), "static"), dst, nil)
	require.NoError(t, err)
	require.Zero(t, copied)

	entries, err := os.ReadDir(dst)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestCopyTree_Idempotent(t *testing.T) {
	src := filepath.Join(t.TempDir(), "static")
	dst := t.TempDir()
	writeFile(t, filepath.Join(src, "a", "one.txt"), "one")
	writeFile(t, filepath.Join(src, "two.txt"), "two")

	_, err := CopyTree(src, dst, nil)
	require.NoError(t, err)
	copied, err := CopyTree(src, dst, nil)
	require.NoError(t, err)

	require.Equal(t, 2, copied)
	require.Equal(t, "one", readFile(t, filepath.Join(dst, "a", "one.txt")))
	require.Equal(t, "two", readFile(t, filepath.Join(dst, "two.txt")))
}

func TestCopyTree_MergesIntoExistingDestination(t *testing.T) {
	src := filepath.Join(t.TempDir(), "static")
	dst := t.TempDir()
	writeFile(t, filepath.Join(src, "style.css"), "new")
	writeFile(t, filepath.Join(dst, "style.css"), "old")
	writeFile(t, filepath.Join(dst, "keep.txt"), "kept")

	_, err := CopyTree(src, dst, nil)
	require.NoError(t, err)

	// Same-named files are overwritten, unrelated destination files survive.
	require.Equal(t, "new", readFile(t, filepath.Join(dst, "style.css")))
	require.Equal(t, "kept", readFile(t, filepath.Join(dst, "keep.txt")))
}

func TestCopyTree_ReportsProgressPerFile(t *testing.T) {
	src := filepath.Join(t.TempDir(), "static")
	dst := t.TempDir()
	writeFile(t, filepath.Join(src, "a.txt"), "a")
	writeFile(t, filepath.Join(src, "b.txt"), "b")

	var calls [][2]string
	_, err := CopyTree(src, dst, func(s, d string) {
		calls = append(calls, [2]string{s, d})
	})
	require.NoError(t, err)
	require.Len(t, calls, 2)
	require.Equal(t, filepath.Join(src, "a.txt"), calls[0][0])
	require.Equal(t, filepath.Join(dst, "a.txt"), calls[0][1])
}

func TestCopyTree_SourceIsFile_Fails(t *testing.T) {
	src := filepath.Join(t.TempDir(), "static")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0o644))

	_, err := CopyTree(src, t.TempDir(), nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not a directory")
}
