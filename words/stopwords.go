package words

import "strings"

// Stopwords reports whether a lower-cased word is excluded from analysis.
// A nil Stopwords filters nothing.
type Stopwords interface {
	Contains(word string) bool
}

// Set is a fixed stopword set. The zero value filters nothing.
type Set map[string]struct{}

func NewSet(words ...string) Set {
	set := make(Set, len(words))
	set.Add(words...)
	return set
}

func (s Set) Add(words ...string) {
	for _, word := range words {
		word = strings.TrimSpace(lower(word))
		if word != "" {
			s[word] = struct{}{}
		}
	}
}

func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Func adapts a predicate such as a stemmer's stopword check.
type Func func(word string) bool

func (f Func) Contains(word string) bool {
	return f != nil && f(word)
}

// Union matches a word contained in any of its members.
type Union []Stopwords

func (u Union) Contains(word string) bool {
	for _, s := range u {
		if s != nil && s.Contains(word) {
			return true
		}
	}
	return false
}

func isStopWord(stop Stopwords, word string) bool {
	return stop != nil && stop.Contains(word)
}
