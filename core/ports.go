package core

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mocks.go -package=core

type Analyzer interface {
	Analyze(ctx context.Context, rawURL string) (Report, error)
	AnalyzeText(ctx context.Context, text string) (Analysis, error)
}

type VideoFetcher interface {
	VideoID(rawURL string) (string, error)
	Video(ctx context.Context, id string) (Video, error)
}

type SentimentScorer interface {
	Score(text string) Sentiment
}

type PhraseExtractor interface {
	Phrases(text string) ([]string, error)
}

type Publisher interface {
	Publish(ctx context.Context, report Report) error
}
