package words

import (
	"sort"
	"strings"
)

const DefaultSentenceCount = 3

type sentenceScore struct {
	index int
	score int
}

// Summarize picks the k sentences of text whose tokens are most frequent
// across the whole text and joins them with single spaces in document order.
// Text with at most k sentences is returned unchanged. A non-positive k
// means DefaultSentenceCount.
func Summarize(text string, stop Stopwords, k int) string {
	if k < 1 {
		k = DefaultSentenceCount
	}
	sentences := Sentences(text)
	if len(sentences) <= k {
		return text
	}

	counts := frequencies(func(yield func(string) bool) {
		for _, sentence := range sentences {
			for token := range Tokens(sentence, stop) {
				if !yield(token) {
					return
				}
			}
		}
	})

	scores := make([]sentenceScore, len(sentences))
	for i, sentence := range sentences {
		scores[i].index = i
		for token := range Tokens(sentence, stop) {
			scores[i].score += counts.table[token]
		}
	}

	// ties keep document order
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].score > scores[j].score
	})
	top := scores[:k]
	sort.Slice(top, func(i, j int) bool {
		return top[i].index < top[j].index
	})

	selected := make([]string, len(top))
	for i, s := range top {
		selected[i] = sentences[s.index]
	}
	return strings.Join(selected, " ")
}
