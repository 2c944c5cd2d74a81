package sentiment

import (
	"strings"
	"video-analyzer/core"
	"video-analyzer/words"

	"github.com/jonreiter/govader"
)

// subjectivity of opinion words, inflected forms listed explicitly
var lexicon = map[string]float64{
	"amazing":       0.9,
	"amazed":        0.9,
	"awesome":       1.0,
	"beautiful":     1.0,
	"beautifully":   1.0,
	"best":          0.3,
	"better":        0.5,
	"brilliant":     1.0,
	"cool":          0.65,
	"easy":          0.83,
	"easier":        0.83,
	"easiest":       0.83,
	"enjoy":         0.5,
	"enjoys":        0.5,
	"enjoyed":       0.5,
	"enjoying":      0.5,
	"enjoyable":     0.6,
	"excellent":     1.0,
	"exciting":      0.8,
	"excited":       0.8,
	"fantastic":     0.9,
	"favorite":      1.0,
	"favourite":     1.0,
	"favorites":     1.0,
	"fun":           0.2,
	"funny":         0.75,
	"funniest":      0.75,
	"glad":          1.0,
	"good":          0.6,
	"great":         0.75,
	"greatest":      0.75,
	"happy":         1.0,
	"happier":       1.0,
	"helpful":       0.5,
	"hilarious":     0.9,
	"incredible":    0.9,
	"interesting":   0.5,
	"interested":    0.5,
	"like":          0.4,
	"likes":         0.4,
	"liked":         0.4,
	"love":          0.6,
	"loves":         0.6,
	"loved":         0.6,
	"loving":        0.6,
	"lovely":        0.75,
	"nice":          1.0,
	"perfect":       1.0,
	"perfectly":     1.0,
	"recommend":     0.4,
	"recommended":   0.4,
	"stunning":      0.9,
	"thanks":        0.2,
	"thank":         0.2,
	"useful":        0.1,
	"wonderful":     1.0,
	"annoying":      0.9,
	"annoyed":       0.9,
	"awful":         1.0,
	"bad":           0.67,
	"boring":        1.0,
	"bored":         1.0,
	"broken":        0.4,
	"difficult":     1.0,
	"disappointing": 0.7,
	"disappointed":  0.7,
	"fail":          0.3,
	"failed":        0.3,
	"fails":         0.3,
	"hate":          0.9,
	"hates":         0.9,
	"hated":         0.9,
	"horrible":      1.0,
	"poor":          0.6,
	"sad":           1.0,
	"scary":         1.0,
	"stupid":        1.0,
	"terrible":      1.0,
	"ugly":          1.0,
	"useless":       0.2,
	"worse":         0.6,
	"worst":         1.0,
	"wrong":         0.9,
}

var intensifiers = map[string]float64{
	"very":       1.3,
	"really":     1.3,
	"so":         1.2,
	"super":      1.4,
	"quite":      1.1,
	"extremely":  1.5,
	"incredibly": 1.5,
	"absolutely": 1.5,
}

// Scorer takes polarity from the VADER compound score and subjectivity from
// the mean weight of opinion words, scaled by a directly preceding intensifier.
type Scorer struct {
	vader *govader.SentimentIntensityAnalyzer
}

func NewScorer() Scorer {
	return Scorer{vader: govader.NewSentimentIntensityAnalyzer()}
}

func (s Scorer) Score(text string) core.Sentiment {
	if strings.TrimSpace(text) == "" {
		return core.Sentiment{}
	}
	return core.Sentiment{
		Polarity:     clamp(s.vader.PolarityScores(text).Compound, -1, 1),
		Subjectivity: subjectivity(text),
	}
}

func subjectivity(text string) float64 {
	var (
		sum  float64
		hits int
		prev string
	)
	for token := range words.Tokens(text, nil) {
		if weight, ok := lexicon[token]; ok {
			if factor, ok := intensifiers[prev]; ok {
				weight *= factor
			}
			sum += clamp(weight, 0, 1)
			hits++
		}
		prev = token
	}
	if hits == 0 {
		return 0
	}
	return sum / float64(hits)
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
