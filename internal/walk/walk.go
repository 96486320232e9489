// Package walk discovers source files to check.
package walk

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// SourceExt is the extension of files picked up in directories.
const SourceExt = ".py"

// FileScanner checks a single file.
type FileScanner interface {
	ScanFile(path string) error
}

// Walker dispatches files under a path to a FileScanner.
type Walker struct {
	scanner FileScanner
	logger  *slog.Logger
}

// New is [Walker] constructor.
func New(scanner FileScanner, logger *slog.Logger) *Walker {
	if logger == nil {
		logger = slog.Default()
	}

	return &Walker{
		scanner: scanner,
		logger:  logger,
	}
}

// Run checks the given path.
//
// A directory is searched recursively for files with SourceExt, files of
// every directory are checked in lexicographic order. Anything else,
// including a path that does not exist, is checked as a single file
// regardless of its extension.
//
// Files failing with I/O errors are logged and skipped. The returned error
// only means the directory could not be traversed at all.
func (w *Walker) Run(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		w.scan(path)
		return nil
	}

	return w.walkDir(path)
}

// Files returns eligible files under the directory in the order Run checks them.
func Files(root string) ([]string, error) {
	var res []string
	err := glob(root, func(path string) {
		res = append(res, path)
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// Eligible checks if the file would be picked up in a directory.
func Eligible(path string) bool {
	return strings.HasSuffix(filepath.Base(path), SourceExt)
}

func (w *Walker) walkDir(root string) error {
	w.logger.Debug("walking directory", "root", root)
	return glob(root, w.scan)
}

func (w *Walker) scan(path string) {
	if err := w.scanner.ScanFile(path); err != nil {
		w.logger.Warn("failed to check file", "path", path, "error", err)
	}
}

func glob(root string, visit func(path string)) error {
	err := doublestar.GlobWalk(
		os.DirFS(root),
		"**/*"+SourceExt,
		func(rel string, d fs.DirEntry) error {
			visit(joinPath(root, rel))
			return nil
		},
		doublestar.WithFilesOnly(),
		doublestar.WithNoFollow(),
	)
	if err != nil {
		return fmt.Errorf("walk %s: %w", root, err)
	}

	return nil
}

// joinPath keeps root as it was given so reported paths start with it.
func joinPath(root, rel string) string {
	rel = filepath.FromSlash(rel)
	if strings.HasSuffix(root, string(filepath.Separator)) {
		return root + rel
	}

	return root + string(filepath.Separator) + rel
}
