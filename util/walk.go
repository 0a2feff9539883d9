package util

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

// pendingDir is a directory waiting to be read, with the resolved paths
// of the directories it was reached through.
type pendingDir struct {
	path      string
	resolved  string
	ancestors []string
}

// ListFiles returns the files at path in lexicographic order.
// A file path yields itself. For a directory, its files are listed and,
// when recursive is true, the files of every subdirectory as well;
// subdirectories themselves are never listed. Symlinks are followed, so a
// link to a directory is descended into like the directory itself. A link
// back to a directory already on the current path is skipped, which keeps
// link cycles from looping.
func ListFiles(path string, recursive bool) ([]string, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}
	if err != nil {
		return nil, ioError(path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	root, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil, ioError(path, err)
	}

	var files []string
	pending := []pendingDir{{path: path, resolved: root}}
	for len(pending) > 0 {
		dir := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		entries, err := os.ReadDir(dir.path)
		if err != nil {
			return nil, ioError(dir.path, err)
		}
		chain := append(slices.Clip(dir.ancestors), dir.resolved)
		for _, entry := range entries {
			sub := filepath.Join(dir.path, entry.Name())
			isDir := entry.IsDir()
			if entry.Type()&fs.ModeSymlink != 0 {
				info, err := os.Stat(sub)
				if err != nil {
					return nil, ioError(sub, err)
				}
				isDir = info.IsDir()
			}
			if !isDir {
				files = append(files, sub)
				continue
			}
			if !recursive {
				continue
			}
			resolved, err := filepath.EvalSymlinks(sub)
			if err != nil {
				return nil, ioError(sub, err)
			}
			if slices.Contains(chain, resolved) {
				continue
			}
			pending = append(pending, pendingDir{path: sub, resolved: resolved, ancestors: chain})
		}
	}

	// Traversal order depends on the stack; only the sort is stable.
	slices.Sort(files)
	return files, nil
}
