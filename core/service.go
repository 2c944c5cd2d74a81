package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"video-analyzer/words"

	"github.com/google/uuid"
)

type Service struct {
	log       *slog.Logger
	fetcher   VideoFetcher
	scorer    SentimentScorer
	phrases   PhraseExtractor
	publisher Publisher
	stopwords words.Stopwords
	opts      Options
}

func NewService(
	log *slog.Logger,
	fetcher VideoFetcher,
	scorer SentimentScorer,
	phrases PhraseExtractor,
	publisher Publisher,
	stopwords words.Stopwords,
	opts Options,
) (*Service, error) {
	if opts.SummarySentences < 1 {
		return nil, fmt.Errorf("%w: wrong summary sentences specified: %d", ErrBadArguments, opts.SummarySentences)
	}
	if opts.KeyPhrases < 0 {
		return nil, fmt.Errorf("%w: wrong key phrases specified: %d", ErrBadArguments, opts.KeyPhrases)
	}
	return &Service{
		log:       log,
		fetcher:   fetcher,
		scorer:    scorer,
		phrases:   phrases,
		publisher: publisher,
		stopwords: stopwords,
		opts:      opts,
	}, nil
}

func (s *Service) Analyze(ctx context.Context, rawURL string) (Report, error) {
	id, err := s.fetcher.VideoID(rawURL)
	if err != nil {
		s.log.Debug("cannot extract video id", "url", rawURL, "error", err)
		return Report{}, fmt.Errorf("%w: invalid YouTube URL %q", ErrBadArguments, rawURL)
	}

	s.log.Info("analysis started", "video_id", id)
	defer func(start time.Time) {
		s.log.Info("analysis finished", "video_id", id, "duration", time.Since(start))
	}(time.Now())

	video, err := s.fetcher.Video(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			s.log.Warn("video not found", "video_id", id)
		case errors.Is(err, ErrUnavailable):
			s.log.Warn("video is not accessible", "video_id", id)
		default:
			s.log.Error("failed to fetch video details", "video_id", id, "error", err)
		}
		return Report{}, fmt.Errorf("error fetching video details: %w", err)
	}
	s.log.Debug("video fetched", "video_id", id, "title", video.Title, "description_len", len(video.Description))

	analysis, err := s.AnalyzeText(ctx, video.Title+" "+video.Description)
	if err != nil {
		return Report{}, err
	}

	report := Report{
		ID:        uuid.NewString(),
		Video:     video,
		Analysis:  analysis,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, report); err != nil {
		s.log.Error("failed to publish", "report_id", report.ID, "error", err)
	}
	return report, nil
}

func (s *Service) AnalyzeText(ctx context.Context, text string) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}

	phrases, err := s.phrases.Phrases(text)
	if err != nil {
		s.log.Warn("failed to extract key phrases", "error", err)
		phrases = nil
	}
	if len(phrases) > s.opts.KeyPhrases {
		phrases = phrases[:s.opts.KeyPhrases]
	}
	if phrases == nil {
		phrases = []string{}
	}

	analysis := Analysis{
		Sentiment:  s.scorer.Score(text),
		KeyPhrases: phrases,
		TopWords:   words.ExtractKeywords(text, s.stopwords),
		Summary:    words.Summarize(text, s.stopwords, s.opts.SummarySentences),
	}
	s.log.Debug("text analyzed",
		"phrases", len(analysis.KeyPhrases),
		"keywords", len(analysis.TopWords),
		"summary_len", len(analysis.Summary),
	)
	return analysis, nil
}
