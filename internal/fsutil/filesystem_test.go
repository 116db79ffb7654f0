package fsutil

import (
	"errors"
	"io"
	"io/fs"
	"testing"
)

func TestMemoryFileSystem_ReadBack(t *testing.T) {
	m := NewMemoryFileSystem()
	m.WriteFile("data/results.csv", []byte("year,driver\n"))

	f, err := m.Open("data/results.csv")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	got, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if string(got) != "year,driver\n" {
		t.Errorf("read %q, want %q", got, "year,driver\n")
	}

	if !m.Exists("data/results.csv") {
		t.Error("Exists should report seeded file")
	}
}

func TestMemoryFileSystem_OpenMissing(t *testing.T) {
	m := NewMemoryFileSystem()

	_, err := m.Open("nope.csv")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Open missing file: err = %v, want fs.ErrNotExist", err)
	}

	if m.Exists("nope.csv") {
		t.Error("Exists should be false for missing file")
	}
}

func TestMemoryFileSystem_OpenReadsAll(t *testing.T) {
	m := NewMemoryFileSystem()
	m.WriteFile("f.txt", []byte("abc"))

	f, err := m.Open("f.txt")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if string(data) != "abc" {
		t.Errorf("read %q, want %q", data, "abc")
	}

	info, err := f.Stat()
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Size() != 3 {
		t.Errorf("Size = %d, want 3", info.Size())
	}
}

func TestMemoryFileSystem_MkdirAll(t *testing.T) {
	m := NewMemoryFileSystem()
	if err := m.MkdirAll("plots/run-1", 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if !m.Exists("plots/run-1") {
		t.Error("directory should exist after MkdirAll")
	}
	if !m.Exists("plots") {
		t.Error("parent directory should exist after MkdirAll")
	}

	info, err := m.Stat("plots/run-1")
	if err != nil {
		t.Fatalf("Stat dir failed: %v", err)
	}
	if !info.IsDir() {
		t.Error("Stat on directory should report IsDir")
	}
}
