package dictfixer

import (
	"github.com/creekorful/dictfixer/internal/wordlist"
	"github.com/rs/zerolog/log"
)

// Summary represent the outcome of a successful run
type Summary struct {
	Read    int
	Removed int
	Written int
}

// Fixer strip invalid words from word lists
type Fixer struct {
	storage wordlist.Storage
}

// NewFixer create a new Fixer using given storage
func NewFixer(storage wordlist.Storage) *Fixer {
	return &Fixer{storage: storage}
}

// Fix load the word list at input, remove the invalid words and store the result at output.
// output is left untouched if input cannot be loaded.
func (f *Fixer) Fix(input, output string) (Summary, error) {
	words, err := f.storage.Load(input)
	if err != nil {
		return Summary{}, err
	}

	log.Debug().Str("path", input).Int("count", len(words)).Msg("Loaded word list")

	valid := wordlist.RemoveInvalidWords(words)

	if err := f.storage.Store(output, valid); err != nil {
		return Summary{}, err
	}

	log.Debug().Str("path", output).Int("count", len(valid)).Msg("Stored word list")

	return Summary{
		Read:    len(words),
		Removed: len(words) - len(valid),
		Written: len(valid),
	}, nil
}
