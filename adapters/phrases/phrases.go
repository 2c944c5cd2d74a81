package phrases

import (
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"
)

const minPhraseWords = 2

// Extractor finds noun phrases with a part-of-speech tagger.
type Extractor struct{}

func NewExtractor() Extractor {
	return Extractor{}
}

// Phrases returns lower-cased noun phrases of at least two words in order of
// first occurrence.
func (Extractor) Phrases(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return []string{}, nil
	}
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot tag text: %w", err)
	}
	return chunk(doc.Tokens()), nil
}

// chunk groups maximal runs of adjectives and nouns that end on a noun.
func chunk(tokens []prose.Token) []string {
	phrases := []string{}
	seen := map[string]bool{}

	var run []prose.Token
	flush := func() {
		for len(run) > 0 && !isNoun(run[len(run)-1].Tag) {
			run = run[:len(run)-1]
		}
		if len(run) >= minPhraseWords {
			parts := make([]string, len(run))
			for i, token := range run {
				parts[i] = strings.ToLower(token.Text)
			}
			phrase := strings.Join(parts, " ")
			if !seen[phrase] {
				seen[phrase] = true
				phrases = append(phrases, phrase)
			}
		}
		run = run[:0]
	}

	for _, token := range tokens {
		if isNoun(token.Tag) || isAdjective(token.Tag) {
			run = append(run, token)
			continue
		}
		flush()
	}
	flush()
	return phrases
}

func isNoun(tag string) bool {
	switch tag {
	case "NN", "NNS", "NNP", "NNPS":
		return true
	}
	return false
}

func isAdjective(tag string) bool {
	switch tag {
	case "JJ", "JJR", "JJS":
		return true
	}
	return false
}
