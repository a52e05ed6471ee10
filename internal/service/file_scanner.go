package service

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const pdfExtension = ".pdf"

// caseInsensitiveFS reports whether the host's default filesystem matches
// names without regard to case.
var caseInsensitiveFS = runtime.GOOS == "windows" || runtime.GOOS == "darwin"

// findPDFFiles walks root recursively and returns every file with a PDF
// extension, in WalkDir order. A symlinked root is followed; symlinks inside
// the tree count when they point at a regular file, symlinked directories are
// not descended. Returned paths are rooted at root as given.
func findPDFFiles(root string, foldCase bool) ([]string, error) {
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	var files []string

	err = filepath.WalkDir(resolved, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !hasPDFExtension(d.Name(), foldCase) {
			return nil
		}
		if !isRegularFile(path, d) {
			return nil
		}

		rel, err := filepath.Rel(resolved, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.Join(root, rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	return files, nil
}

// isRegularFile reports whether the entry is a regular file, following a
// symlink one hop to its target. Dangling links are not files.
func isRegularFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func hasPDFExtension(name string, foldCase bool) bool {
	ext := filepath.Ext(name)
	if foldCase {
		return strings.EqualFold(ext, pdfExtension)
	}
	return ext == pdfExtension
}
