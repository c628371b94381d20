package storage

import (
	"strings"
	"testing"
)

func testFS(t *testing.T) *FS {
	t.Helper()
	fs, err := NewFS(t.TempDir())
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	return fs
}

func TestWriteAndRead(t *testing.T) {
	fs := testFS(t)
	if err := fs.Write("notes.org", []byte("* A\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, err := fs.Read("notes.org")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(data) != "* A\n" {
		t.Errorf("Read = %q", data)
	}
}

func TestWriteOverwrites(t *testing.T) {
	fs := testFS(t)
	if err := fs.Write("notes.org", []byte("first")); err != nil {
		t.Fatal(err)
	}
	if err := fs.Write("notes.org", []byte("second")); err != nil {
		t.Fatal(err)
	}
	data, _ := fs.Read("notes.org")
	if string(data) != "second" {
		t.Errorf("Read = %q, want %q", data, "second")
	}
}

func TestRejectsTraversal(t *testing.T) {
	fs := testFS(t)
	if err := fs.Write("../escape.txt", []byte("nope")); err == nil {
		t.Error("expected error for path traversal")
	}
	if _, err := fs.Read("../../etc/passwd"); err == nil {
		t.Error("expected error for path traversal read")
	}
}

func TestRejectsAbsolutePath(t *testing.T) {
	fs := testFS(t)
	err := fs.Write("/tmp/abs.txt", []byte("nope"))
	if err == nil || !strings.Contains(err.Error(), "absolute") {
		t.Errorf("expected absolute-path error, got %v", err)
	}
}

func TestNewFSRequiresExistingDir(t *testing.T) {
	if _, err := NewFS("/does/not/exist"); err == nil {
		t.Error("expected error for missing root")
	}
}
