package wordlist

//go:generate mockgen -destination=../wordlist_mock/wordlist_mock.go -package=wordlist_mock . Storage

import "fmt"

// Storage load and store word lists
type Storage interface {
	// Load return the lines of the word list located at given path
	Load(path string) ([]string, error)
	// Store write given words to path, overwriting any existing file
	Store(path string, words []string) error
}

// ReadError is returned when a word list cannot be loaded
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read in file %s: %s", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// WriteError is returned when a word list cannot be stored
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("did not write to %s: %s", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
