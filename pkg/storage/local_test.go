package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStorageSaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir)
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	if err := s.Save("cat.png", strings.NewReader("not really a png")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "cat.png"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "not really a png" {
		t.Fatalf("file content = %q", data)
	}

	if err := s.Delete("cat.png"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "cat.png")); !os.IsNotExist(err) {
		t.Fatal("file still exists after Delete")
	}
}

func TestLocalStorageCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")
	if _, err := NewLocalStorage(dir); err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("images directory not created: %v", err)
	}
}

func TestLocalStorageRejectsTraversal(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	for _, name := range []string{"", "../escape", "a/b", `a\b`, ".."} {
		if err := s.Save(name, strings.NewReader("x")); err == nil {
			t.Errorf("Save(%q) succeeded, want error", name)
		}
	}
}
