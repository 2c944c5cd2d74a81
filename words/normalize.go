package words

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var abbreviations = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true,
	"st": true, "jr": true, "sr": true, "vs": true, "etc": true,
	"e.g": true, "i.e": true, "approx": true,
}

// Sentences splits text into trimmed sentences in document order.
// A sentence ends after a run of terminal punctuation followed by whitespace
// or the end of text, after a full-width terminal, or at a blank line.
// Text without terminators is a single sentence; blank text has none.
func Sentences(text string) []string {
	var sentences []string
	start := 0
	emit := func(end int) {
		if sentence := strings.TrimSpace(text[start:end]); sentence != "" {
			sentences = append(sentences, sentence)
		}
		start = end
	}

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch {
		case isTerminal(r):
			end := i + size
			for end < len(text) {
				next, n := utf8.DecodeRuneInString(text[end:])
				if !isTerminal(next) && !isCloser(next) {
					break
				}
				end += n
			}
			boundary := end == len(text) || isFullWidth(r) || startsWithSpace(text[end:])
			if boundary && !(text[i:end] == "." && isAbbreviation(text[start:i])) {
				emit(end)
			}
			i = end
		case r == '\n' && isParagraphBreak(text[i:]):
			emit(i)
			i += size
		default:
			i += size
		}
	}
	emit(len(text))
	return sentences
}

// Tokens lazily yields lower-cased words of text that are not stopwords.
// Words are maximal runs of letters and digits, so scripts written without
// spaces come out as one opaque token per run.
func Tokens(text string, stop Stopwords) iter.Seq[string] {
	return func(yield func(string) bool) {
		caser := cases.Lower(language.Und)
		emit := func(word string) bool {
			token := caser.String(word)
			if isStopWord(stop, token) {
				return true
			}
			return yield(token)
		}

		start := -1
		for i, r := range text {
			if isWordRune(r) {
				if start < 0 {
					start = i
				}
				continue
			}
			if start >= 0 {
				if !emit(text[start:i]) {
					return
				}
				start = -1
			}
		}
		if start >= 0 {
			emit(text[start:])
		}
	}
}

func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

func isTerminal(r rune) bool {
	switch r {
	case '.', '!', '?', '…', '。', '！', '？':
		return true
	}
	return false
}

func isFullWidth(r rune) bool {
	return r == '。' || r == '！' || r == '？'
}

func isCloser(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '”', '’', '»':
		return true
	}
	return false
}

func startsWithSpace(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsSpace(r)
}

func isParagraphBreak(s string) bool {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\r':
			continue
		case '\n':
			return true
		}
		return false
	}
	return false
}

func isAbbreviation(prefix string) bool {
	fields := strings.Fields(prefix)
	if len(fields) == 0 {
		return false
	}
	last := strings.TrimLeft(fields[len(fields)-1], "([\"'")
	return abbreviations[lower(last)]
}
