package core

import (
	"time"
	"video-analyzer/words"
)

type Video struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Channel     string        `json:"channel"`
	Description string        `json:"description"`
	Views       int64         `json:"views"`
	Length      time.Duration `json:"length"`
	Published   time.Time     `json:"publish_date"`
}

type Sentiment struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

type Analysis struct {
	Sentiment  Sentiment       `json:"sentiment"`
	KeyPhrases []string        `json:"key_phrases"`
	TopWords   []words.Keyword `json:"top_words"`
	Summary    string          `json:"summary"`
}

type Report struct {
	ID        string    `json:"id"`
	Video     Video     `json:"video"`
	Analysis  Analysis  `json:"analysis"`
	CreatedAt time.Time `json:"created_at"`
}

type Options struct {
	SummarySentences int
	KeyPhrases       int
}
