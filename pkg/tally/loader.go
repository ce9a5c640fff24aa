package tally

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// StreamLines reads path line by line and sends each line on out,
// closing the channel when the file is exhausted. The file is read
// once; restarting means reopening the source.
func StreamLines(path string, out chan<- string) error {
	defer close(out)

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		out <- scanner.Text()
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// ReadLines reads every line of path into memory.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer file.Close()

	return ReadLinesFrom(file)
}

// ReadLinesFrom reads every line from r. Callers wanting progress
// reporting wrap r before passing it in.
func ReadLinesFrom(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}
