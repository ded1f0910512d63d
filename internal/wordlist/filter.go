package wordlist

import "strings"

const apostrophe = "'"

// IsInvalidWord check if given word contains an apostrophe
func IsInvalidWord(word string) bool {
	return strings.Contains(word, apostrophe)
}

// RemoveInvalidWords return a new slice containing only the valid words, in their original order
func RemoveInvalidWords(words []string) []string {
	valid := make([]string, 0, len(words))
	for _, word := range words {
		if !IsInvalidWord(word) {
			valid = append(valid, word)
		}
	}

	return valid
}
