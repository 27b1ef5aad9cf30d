package main

import "strings"

// Tokens is a sequence of words, stored in reverse so that the next word may
// be taken from the end.
type Tokens []string

// Tokenize splits code into words on space and line feed, dropping any that
// are empty after trimming.
func Tokenize(code string) Tokens {
	var words []string
	for _, line := range strings.Split(code, "\n") {
		for _, word := range strings.Split(line, " ") {
			if word = strings.TrimSpace(word); word != "" {
				words = append(words, word)
			}
		}
	}
	return reverseTokens(words)
}

// reverseTokens returns a fresh Tokens sequence that will yield the given
// words in order.
func reverseTokens(words []string) Tokens {
	toks := make(Tokens, len(words))
	for i, word := range words {
		toks[len(words)-1-i] = word
	}
	return toks
}

func (toks *Tokens) next() (word string, ok bool) {
	if i := len(*toks) - 1; i >= 0 {
		word, *toks = (*toks)[i], (*toks)[:i]
		return word, true
	}
	return "", false
}

// Len returns the number of words remaining.
func (toks Tokens) Len() int { return len(toks) }

// Words returns the remaining words in reading order.
func (toks Tokens) Words() []string {
	words := make([]string, len(toks))
	for i, word := range toks {
		words[len(toks)-1-i] = word
	}
	return words
}
