package wordlist

import (
	"errors"
	"io/ioutil"
	"strings"
	"unicode/utf8"
)

const separator = "\n"

var errInvalidEncoding = errors.New("content is not valid UTF-8")

type localStorage struct {
}

// NewLocalStorage return a Storage backed by the local filesystem
func NewLocalStorage() Storage {
	return &localStorage{}
}

func (s *localStorage) Load(path string) ([]string, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	if !utf8.Valid(b) {
		return nil, &ReadError{Path: path, Err: errInvalidEncoding}
	}

	return splitLines(string(b)), nil
}

func (s *localStorage) Store(path string, words []string) error {
	if err := ioutil.WriteFile(path, []byte(joinLines(words)), 0640); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	return nil
}

// an empty file is an empty list, not a list made of one empty line
func splitLines(content string) []string {
	if content == "" {
		return []string{}
	}

	return strings.Split(content, separator)
}

func joinLines(words []string) string {
	return strings.Join(words, separator)
}
