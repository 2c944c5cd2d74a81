package main

import (
	"fmt"
	"log/slog"
	"video-analyzer/adapters/phrases"
	"video-analyzer/adapters/publisher"
	"video-analyzer/adapters/sentiment"
	"video-analyzer/adapters/stopwords"
	"video-analyzer/adapters/youtube"
	"video-analyzer/config"
	"video-analyzer/core"
)

type closablePublisher interface {
	core.Publisher
	Close()
}

func buildAnalyzer(cfg config.Config, log *slog.Logger) (core.Analyzer, func(), error) {
	// Stopwords are loaded once and shared by every analysis
	stop, err := stopwords.Load(cfg.Analysis.Language, cfg.Analysis.StopwordsFile, cfg.Analysis.ExtraStopwords)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot load stopwords: %w", err)
	}

	// YouTube adapter
	fetcher, err := youtube.NewClient(cfg.YouTube.Timeout, cfg.YouTube.UserAgent, log)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot init YouTube adapter: %w", err)
	}

	// Publisher adapter
	var pub closablePublisher = publisher.Nop{}
	if cfg.Broker.Address != "" {
		pub, err = publisher.NewNatsPublisher(cfg.Broker.Address, cfg.Broker.Subject, log)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot init Nats publisher: %w", err)
		}
	}

	service, err := core.NewService(
		log,
		fetcher,
		sentiment.NewScorer(),
		phrases.NewExtractor(),
		pub,
		stop,
		core.Options{
			SummarySentences: cfg.Analysis.SummarySentences,
			KeyPhrases:       cfg.Analysis.KeyPhrases,
		},
	)
	if err != nil {
		pub.Close()
		return nil, nil, fmt.Errorf("cannot create analyzer: %w", err)
	}
	return service, pub.Close, nil
}
