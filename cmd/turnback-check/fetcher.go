package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// errRemoteInput is returned for URLs; inputs are read from the local filesystem only
var errRemoteInput = errors.New("remote inputs are not supported")

// stdinPath reads the input from standard input
const stdinPath = "-"

// fetcher opens the input files of a run.
// This is CLI-specific logic and is not part of the core library.
type fetcher struct {
	stdin io.Reader
}

// newFetcher creates a new fetcher reading "-" from os.Stdin
func newFetcher() *fetcher {
	return &fetcher{stdin: os.Stdin}
}

// open returns a reader for a local file path, or standard input for "-".
// http and https URLs are rejected.
func (f *fetcher) open(path string) (io.ReadCloser, error) {
	if path == "" {
		return nil, errors.New("no input path given")
	}
	if path == stdinPath {
		return io.NopCloser(f.stdin), nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return nil, fmt.Errorf("%s: %w", path, errRemoteInput)
	}
	return os.Open(path)
}

// localPath checks that path names a local file. Used for inputs that are
// opened by path, like spreadsheets.
func (f *fetcher) localPath(path string) (string, error) {
	if path == stdinPath {
		return "", fmt.Errorf("%s: standard input is only supported for the itinerary document", path)
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return "", fmt.Errorf("%s: %w", path, errRemoteInput)
	}
	if _, err := os.Stat(path); err != nil {
		return "", err
	}
	return path, nil
}
