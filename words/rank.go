package words

import (
	"iter"
	"sort"
)

// KeywordLimit caps the length of a keyword ranking.
const KeywordLimit = 10

type Keyword struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// ExtractKeywords ranks the non-stopword tokens of text by frequency.
func ExtractKeywords(text string, stop Stopwords) []Keyword {
	return RankKeywords(Tokens(text, stop))
}

// RankKeywords returns at most KeywordLimit tokens ordered by count,
// descending. Tokens with equal counts keep the order of their first occurrence.
func RankKeywords(tokens iter.Seq[string]) []Keyword {
	counts := frequencies(tokens)
	ranked := make([]Keyword, len(counts.order))
	for i, word := range counts.order {
		ranked[i] = Keyword{Word: word, Count: counts.table[word]}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked[:min(len(ranked), KeywordLimit)]
}

// frequencyTable counts tokens and remembers the order in which they first appeared.
type frequencyTable struct {
	table map[string]int
	order []string
}

func frequencies(tokens iter.Seq[string]) frequencyTable {
	ft := frequencyTable{table: map[string]int{}}
	for token := range tokens {
		if _, seen := ft.table[token]; !seen {
			ft.order = append(ft.order, token)
		}
		ft.table[token]++
	}
	return ft
}
