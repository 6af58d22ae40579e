// Package assets copies the static file tree verbatim into the output root.
package assets

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	siteerrors "git.home.luguber.info/inful/sitegen/internal/errors"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
)

// ProgressFunc receives one callback per copied file.
type ProgressFunc func(src, dst string)

// CopyTree recursively copies every file and directory under srcRoot into
// dstRoot, creating intermediate directories as needed. Existing destination
// entries are merged into, and same-named files are overwritten, so the copy
// is idempotent. A missing srcRoot is a no-op. Returns the number of files
// copied.
func CopyTree(srcRoot, dstRoot string, progress ProgressFunc) (int, error) {
	info, err := os.Stat(srcRoot)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("no static directory, skipping copy", logfields.Path(srcRoot))
			return 0, nil
		}
		return 0, siteerrors.Wrapf(err, siteerrors.CategoryFilesystem, "stat static directory %s", srcRoot)
	}
	if !info.IsDir() {
		return 0, siteerrors.Newf(siteerrors.CategoryFilesystem, "static path is not a directory: %s", srcRoot)
	}

	copied := 0
	walkErr := filepath.WalkDir(srcRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(srcRoot, path)
		if err != nil {
			return err
		}
		dst := filepath.Join(dstRoot, rel)
		if d.IsDir() {
			return os.MkdirAll(dst, 0o755)
		}
		if err := copyFile(path, dst); err != nil {
			return err
		}
		copied++
		slog.Debug("copied static file", logfields.Path(rel))
		if progress != nil {
			progress(path, dst)
		}
		return nil
	})
	if walkErr != nil {
		return copied, siteerrors.Wrapf(walkErr, siteerrors.CategoryFilesystem, "copy static files from %s", srcRoot)
	}

	slog.Debug("copied all static files", logfields.Count(copied), logfields.Path(srcRoot))
	return copied, nil
}

// copyFile copies a single file, truncating any existing destination.
// Both handles are released before returning on every path.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer func() {
		_ = in.Close()
	}()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", dst, err)
	}
	return nil
}
