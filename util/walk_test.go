package util

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestListFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{
		"b.txt":          "b",
		"a.txt":          "a",
		"sub/c.txt":      "c",
		"sub/deep/d.txt": "d",
		"z/e.txt":        "e",
	})
	os.Mkdir(filepath.Join(tmpDir, "empty"), 0755)

	join := func(names ...string) []string {
		out := make([]string, len(names))
		for i, n := range names {
			out[i] = filepath.Join(tmpDir, filepath.FromSlash(n))
		}
		return out
	}

	tests := []struct {
		name      string
		path      string
		recursive bool
		want      []string
	}{
		{
			name:      "recursive",
			path:      tmpDir,
			recursive: true,
			want:      join("a.txt", "b.txt", "sub/c.txt", "sub/deep/d.txt", "z/e.txt"),
		},
		{
			name:      "top level only skips subdirectories",
			path:      tmpDir,
			recursive: false,
			want:      join("a.txt", "b.txt"),
		},
		{
			name:      "single file",
			path:      filepath.Join(tmpDir, "sub", "c.txt"),
			recursive: true,
			want:      join("sub/c.txt"),
		},
		{
			name:      "empty directory",
			path:      filepath.Join(tmpDir, "empty"),
			recursive: true,
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ListFiles(tt.path, tt.recursive)
			if err != nil {
				t.Fatalf("ListFiles() error = %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("ListFiles() = %v, want %v", got, tt.want)
			}
			if !slices.IsSorted(got) {
				t.Errorf("ListFiles() = %v is not sorted", got)
			}
		})
	}
}

func TestListFiles_NotFound(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	_, err := ListFiles(missing, true)
	if !errors.Is(err, ErrPathNotFound) {
		t.Errorf("ListFiles() error = %v, want %v", err, ErrPathNotFound)
	}
}

func TestListFiles_UnreadableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}
	tmpDir := t.TempDir()
	locked := filepath.Join(tmpDir, "locked")
	writeTree(t, tmpDir, map[string]string{"locked/x.txt": "x"})
	if err := os.Chmod(locked, 0); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(locked, 0755) })

	_, err := ListFiles(tmpDir, true)
	var pathErr *PathError
	if !errors.As(err, &pathErr) {
		t.Fatalf("ListFiles() error = %v, want *PathError", err)
	}
	if pathErr.Path != locked {
		t.Errorf("PathError.Path = %v, want %v", pathErr.Path, locked)
	}
	if !errors.Is(err, ErrIO) {
		t.Errorf("ListFiles() error = %v, want %v", err, ErrIO)
	}
}

func TestListFiles_SymlinkedDirectory(t *testing.T) {
	base := t.TempDir()
	tree := filepath.Join(base, "tree")
	writeTree(t, base, map[string]string{
		"tree/b.txt":     "b",
		"real/c.txt":     "c",
		"real/sub/d.txt": "d",
	})
	linked := filepath.Join(tree, "linked")
	if err := os.Symlink(filepath.Join(base, "real"), linked); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	got, err := ListFiles(tree, true)
	if err != nil {
		t.Fatalf("ListFiles() error = %v", err)
	}
	want := []string{
		filepath.Join(tree, "b.txt"),
		filepath.Join(linked, "c.txt"),
		filepath.Join(linked, "sub", "d.txt"),
	}
	if !slices.Equal(got, want) {
		t.Errorf("ListFiles() = %v, want %v", got, want)
	}

	got, err = ListFiles(tree, false)
	if err != nil {
		t.Fatalf("ListFiles(non-recursive) error = %v", err)
	}
	if want := []string{filepath.Join(tree, "b.txt")}; !slices.Equal(got, want) {
		t.Errorf("ListFiles(non-recursive) = %v, want %v", got, want)
	}
}

func TestListFiles_SymlinkCycle(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{"a.txt": "a", "sub/x.txt": "x"})
	if err := os.Symlink(tmpDir, filepath.Join(tmpDir, "sub", "loop")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	got, err := ListFiles(tmpDir, true)
	if err != nil {
		t.Fatalf("ListFiles() error = %v", err)
	}
	want := []string{filepath.Join(tmpDir, "a.txt"), filepath.Join(tmpDir, "sub", "x.txt")}
	if !slices.Equal(got, want) {
		t.Errorf("ListFiles() = %v, want %v", got, want)
	}
}
