package words_test

import (
	"slices"
	"strings"
	"testing"
	"video-analyzer/words"

	"github.com/stretchr/testify/require"
)

func TestSentences(t *testing.T) {
	testCases := []struct {
		desc     string
		given    string
		expected []string
	}{
		{
			desc:     "empty",
			given:    "",
			expected: nil,
		},
		{
			desc:     "whitespace only",
			given:    "  \n\t ",
			expected: nil,
		},
		{
			desc:     "no terminator",
			given:    "hello world",
			expected: []string{"hello world"},
		},
		{
			desc:     "simple",
			given:    "One. Two! Three?",
			expected: []string{"One.", "Two!", "Three?"},
		},
		{
			desc:     "abbreviation",
			given:    "Dr. Smith arrived. He left.",
			expected: []string{"Dr. Smith arrived.", "He left."},
		},
		{
			desc:     "abbreviations keep the sentence open",
			given:    "Prof. Lee vs. Mr. Kim, e.g. a rematch. Next.",
			expected: []string{"Prof. Lee vs. Mr. Kim, e.g. a rematch.", "Next."},
		},
		{
			desc:     "sentence-final no",
			given:    "She said no. Then she left.",
			expected: []string{"She said no.", "Then she left."},
		},
		{
			desc:     "decimal number",
			given:    "Pi is 3.14 roughly. Yes.",
			expected: []string{"Pi is 3.14 roughly.", "Yes."},
		},
		{
			desc:     "quotes and ellipsis",
			given:    `He said "stop!" Then he left... Fine`,
			expected: []string{`He said "stop!"`, "Then he left...", "Fine"},
		},
		{
			desc:     "paragraph break",
			given:    "First line\n \nSecond line",
			expected: []string{"First line", "Second line"},
		},
		{
			desc:     "single newline",
			given:    "line one\nline two.",
			expected: []string{"line one\nline two."},
		},
		{
			desc:     "full-width terminators",
			given:    "你好。世界！",
			expected: []string{"你好。", "世界！"},
		},
		{
			desc:     "pure punctuation",
			given:    "?!...",
			expected: []string{"?!..."},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			require.Equal(t, tc.expected, words.Sentences(tc.given))
		})
	}
}

func TestTokens(t *testing.T) {
	testCases := []struct {
		desc     string
		given    string
		stop     words.Stopwords
		expected []string
	}{
		{
			desc:     "empty",
			given:    "",
			expected: nil,
		},
		{
			desc:     "mixed case keeps duplicates",
			given:    "Hello, World! hello",
			expected: []string{"hello", "world", "hello"},
		},
		{
			desc:     "stopwords",
			given:    "The cat and THE hat",
			stop:     words.NewSet("the"),
			expected: []string{"cat", "and", "hat"},
		},
		{
			desc:     "nil set filters nothing",
			given:    "the end",
			stop:     words.Set(nil),
			expected: []string{"the", "end"},
		},
		{
			desc:     "non-ascii",
			given:    "Café NAÏVE",
			expected: []string{"café", "naïve"},
		},
		{
			desc:     "opaque script runs",
			given:    "你好 世界",
			expected: []string{"你好", "世界"},
		},
		{
			desc:     "pure punctuation",
			given:    "!!! ... ???",
			expected: nil,
		},
		{
			desc:     "numbers and separators",
			given:    "test@email.com #hashtag $100",
			expected: []string{"test", "email", "com", "hashtag", "100"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			require.Equal(t, tc.expected, slices.Collect(words.Tokens(tc.given, tc.stop)))
		})
	}
}

func TestTokensStopEarly(t *testing.T) {
	var got []string
	for token := range words.Tokens("one two three four", nil) {
		got = append(got, token)
		if len(got) == 2 {
			break
		}
	}
	require.Equal(t, []string{"one", "two"}, got)
}

func TestStopwordsUnion(t *testing.T) {
	stop := words.Union{
		words.NewSet("alpha"),
		words.Func(func(word string) bool { return word == "beta" }),
		nil,
	}
	require.True(t, stop.Contains("alpha"))
	require.True(t, stop.Contains("beta"))
	require.False(t, stop.Contains("gamma"))
	require.False(t, words.Func(nil).Contains("alpha"))
}

func TestExtractKeywords(t *testing.T) {
	testCases := []struct {
		desc     string
		given    string
		stop     words.Stopwords
		expected []words.Keyword
	}{
		{
			desc:     "empty",
			given:    "",
			expected: []words.Keyword{},
		},
		{
			desc:  "ties keep first occurrence",
			given: "b a b a c",
			expected: []words.Keyword{
				{Word: "b", Count: 2},
				{Word: "a", Count: 2},
				{Word: "c", Count: 1},
			},
		},
		{
			desc:  "stopword never ranked",
			given: "The dog and the cat saw the bird, the fish and the frog.",
			stop:  words.NewSet("the", "and"),
			expected: []words.Keyword{
				{Word: "dog", Count: 1},
				{Word: "cat", Count: 1},
				{Word: "saw", Count: 1},
				{Word: "bird", Count: 1},
				{Word: "fish", Count: 1},
				{Word: "frog", Count: 1},
			},
		},
		{
			desc:  "cats and dogs",
			given: "Cats are great. Cats are fun. Dogs are great too. I like cats.",
			stop:  words.NewSet("are", "too", "i"),
			expected: []words.Keyword{
				{Word: "cats", Count: 3},
				{Word: "great", Count: 2},
				{Word: "fun", Count: 1},
				{Word: "dogs", Count: 1},
				{Word: "like", Count: 1},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			require.Equal(t, tc.expected, words.ExtractKeywords(tc.given, tc.stop))
		})
	}
}

func TestExtractKeywordsLimit(t *testing.T) {
	text := "k1 k2 k3 k4 k5 k6 k7 k8 k9 k10 k11 k12 k12"
	keywords := words.ExtractKeywords(text, nil)

	require.Len(t, keywords, words.KeywordLimit)
	require.Equal(t, words.Keyword{Word: "k12", Count: 2}, keywords[0])
	require.Equal(t, "k1", keywords[1].Word)
	require.Equal(t, "k9", keywords[9].Word)
	for i := 1; i < len(keywords); i++ {
		require.GreaterOrEqual(t, keywords[i-1].Count, keywords[i].Count)
	}
}

func TestSummarize(t *testing.T) {
	testCases := []struct {
		desc     string
		given    string
		stop     words.Stopwords
		k        int
		expected string
	}{
		{
			desc:     "empty",
			given:    "",
			k:        3,
			expected: "",
		},
		{
			desc:     "cats and dogs",
			given:    "Cats are great. Cats are fun. Dogs are great too. I like cats.",
			stop:     words.NewSet("are", "too", "i"),
			k:        2,
			expected: "Cats are great. Cats are fun.",
		},
		{
			desc:     "exactly k sentences returned unchanged",
			given:    "First one.\n\nSecond  one!   Third one?  ",
			k:        3,
			expected: "First one.\n\nSecond  one!   Third one?  ",
		},
		{
			desc:     "fewer than k sentences returned unchanged",
			given:    "  just a single line  ",
			k:        3,
			expected: "  just a single line  ",
		},
		{
			desc:     "document order, not score order",
			given:    "Alpha beta. Gamma. Beta beta alpha. Delta.",
			k:        2,
			expected: "Alpha beta. Beta beta alpha.",
		},
		{
			desc:     "tokens counted twice within a sentence",
			given:    "Go go go. Rust rust. Zig. Go.",
			k:        1,
			expected: "Go go go.",
		},
		{
			desc:     "non-positive k uses default",
			given:    "A a. B b b. C c c c. D.",
			k:        0,
			expected: "A a. B b b. C c c c.",
		},
		{
			desc:     "stopword sentences score zero",
			given:    "The the the. Cats purr. The end.",
			stop:     words.NewSet("the", "end"),
			k:        1,
			expected: "Cats purr.",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			require.Equal(t, tc.expected, words.Summarize(tc.given, tc.stop, tc.k))
		})
	}
}

func TestSummarizeKeepsDocumentOrder(t *testing.T) {
	texts := []string{
		"Zebras run. Apples fall. Zebras eat apples. Zebras sleep. Night comes.",
		"One fish. Two fish. Red fish. Blue fish. Fish fish fish.",
		"Go is fun. Go is fast! Is it? Go go go. Maybe not.",
	}
	for _, text := range texts {
		sentences := words.Sentences(text)
		summary := words.Summarize(text, nil, 2)

		last := -1
		for _, picked := range words.Sentences(summary) {
			idx := slices.Index(sentences, picked)
			require.Greater(t, idx, last, "summary %q of %q", summary, text)
			last = idx
		}
	}
}

func TestDeterministic(t *testing.T) {
	text := strings.Repeat("Video about cats and dogs. Cats win. Dogs bark loudly. ", 3)
	stop := words.NewSet("and", "about")

	require.Equal(t, words.Summarize(text, stop, 3), words.Summarize(text, stop, 3))
	require.Equal(t, words.ExtractKeywords(text, stop), words.ExtractKeywords(text, stop))
}
