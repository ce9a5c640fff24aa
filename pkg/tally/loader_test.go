package tally

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fileContent string
		wantLines   int
	}{
		{
			name:        "empty file",
			fileContent: "",
			wantLines:   0,
		},
		{
			name:        "single line no newline",
			fileContent: "OrderDate,Region,Rep",
			wantLines:   1,
		},
		{
			name:        "multiple lines",
			fileContent: "line1\nline2\nline3\n",
			wantLines:   3,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "input.csv")
			if err := os.WriteFile(path, []byte(tt.fileContent), 0644); err != nil {
				t.Fatalf("Failed to write temp file: %v", err)
			}

			lines, err := ReadLines(path)
			if err != nil {
				t.Fatalf("ReadLines() returned error: %v", err)
			}
			if len(lines) != tt.wantLines {
				t.Errorf("Got %d lines, want %d", len(lines), tt.wantLines)
			}
		})
	}
}

func TestReadLinesMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ReadLines(filepath.Join(t.TempDir(), "does-not-exist.csv"))
	if err == nil {
		t.Fatal("Expected error for missing file, got nil")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected a not-exist error, got %v", err)
	}
}

func TestReadLinesFrom(t *testing.T) {
	t.Parallel()

	lines, err := ReadLinesFrom(strings.NewReader("a\nb\n"))
	if err != nil {
		t.Fatalf("ReadLinesFrom() returned error: %v", err)
	}
	if len(lines) != 2 || lines[0] != "a" || lines[1] != "b" {
		t.Errorf("Got %v, want [a b]", lines)
	}
}

func TestStreamLines(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "input.csv")
	if err := os.WriteFile(path, []byte("one\ntwo\nthree\n"), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}

	out := make(chan string, 8)
	errCh := make(chan error, 1)
	go func() {
		errCh <- StreamLines(path, out)
	}()

	var lines []string
	for line := range out {
		lines = append(lines, line)
	}
	if err := <-errCh; err != nil {
		t.Fatalf("StreamLines() returned error: %v", err)
	}
	if len(lines) != 3 {
		t.Errorf("Got %d lines, want 3", len(lines))
	}
}

func TestStreamLinesMissingFileClosesChannel(t *testing.T) {
	t.Parallel()

	out := make(chan string)
	errCh := make(chan error, 1)
	go func() {
		errCh <- StreamLines(filepath.Join(t.TempDir(), "missing.csv"), out)
	}()

	// Drain; the channel must close even on open failure.
	for range out {
	}
	if err := <-errCh; err == nil {
		t.Fatal("Expected error for missing file, got nil")
	}
}
