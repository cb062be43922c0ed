package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteAtomicOverwritesAndCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.txt")
	if err := WriteAtomic(path, []byte("first\nsecond\n")); err != nil {
		t.Fatal(err)
	}
	if err := WriteAtomic(path, []byte("third\n")); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "third\n" {
		t.Fatalf("content mismatch: got %q, want %q", got, "third\n")
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("expected temp file removed, got %v", err)
	}
}

func TestWriteAtomicFailsWhenParentIsFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WriteAtomic(filepath.Join(blocker, "out.txt"), []byte("data")); err == nil {
		t.Fatal("expected error when parent path is a file")
	}
}

func TestWriteAtomicRefusesDirectoryTarget(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "report.csv")
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := WriteAtomic(target, []byte("data")); err == nil {
		t.Fatal("expected error when target is a directory")
	}
	if _, err := os.Stat(target + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("expected temp file cleaned up, got %v", err)
	}
}
