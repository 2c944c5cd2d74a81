package stopwords

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"video-analyzer/core"
	"video-analyzer/words"

	"github.com/kljensen/snowball/english"
)

const (
	LanguageEnglish = "english"
	LanguageNone    = "none"
)

// Load builds the stopword set for language, extended with the words listed
// in file (one per line, '#' starts a comment) and with extra.
func Load(language, file string, extra []string) (words.Stopwords, error) {
	var union words.Union

	switch strings.ToLower(language) {
	case LanguageEnglish:
		union = append(union, words.Func(english.IsStopWord))
	case LanguageNone, "":
	default:
		return nil, fmt.Errorf("%w: no stopwords for language %q", core.ErrNotFound, language)
	}

	custom := words.NewSet(extra...)
	if file != "" {
		if err := readFile(file, custom); err != nil {
			return nil, err
		}
	}
	if len(custom) > 0 {
		union = append(union, custom)
	}
	return union, nil
}

func readFile(path string, set words.Set) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot open stopwords file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line, _, _ := strings.Cut(scanner.Text(), "#")
		set.Add(line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("cannot read stopwords file %q: %w", path, err)
	}
	return nil
}
