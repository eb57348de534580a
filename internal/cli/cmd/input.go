package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// readSource returns the content of path, or of stdin when path is "-" or empty.
func readSource(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// parseViewport parses a WIDTHxHEIGHT size.
func parseViewport(s string) (width, height float64, err error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid viewport %q (want WIDTHxHEIGHT)", s)
	}
	width, err = strconv.ParseFloat(w, 64)
	if err != nil || width <= 0 {
		return 0, 0, fmt.Errorf("invalid viewport width %q", w)
	}
	height, err = strconv.ParseFloat(h, 64)
	if err != nil || height <= 0 {
		return 0, 0, fmt.Errorf("invalid viewport height %q", h)
	}
	return width, height, nil
}
