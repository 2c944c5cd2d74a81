package youtube

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"
	"video-analyzer/core"

	"github.com/kkdai/youtube/v2"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36"

var (
	videoIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:youtube\.com/watch\?(?:[^#\s]*&)?v=|youtu\.be/)([^&\n?#/]+)`),
		regexp.MustCompile(`youtube\.com/(?:embed|shorts|live)/([^&\n?#/]+)`),
	}
	bareVideoID = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
)

// ParseVideoID extracts the video ID from a watch, short-link, embed or
// shorts URL. A bare 11-character ID is accepted as is.
func ParseVideoID(rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if bareVideoID.MatchString(rawURL) {
		return rawURL, nil
	}
	for _, pattern := range videoIDPatterns {
		if match := pattern.FindStringSubmatch(rawURL); match != nil {
			return match[1], nil
		}
	}
	return "", fmt.Errorf("%w: no video id in %q", core.ErrBadArguments, rawURL)
}

type Client struct {
	log    *slog.Logger
	client youtube.Client
}

func NewClient(timeout time.Duration, userAgent string, log *slog.Logger) (*Client, error) {
	if timeout <= 0 {
		return nil, fmt.Errorf("wrong timeout specified: %s", timeout)
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Client{
		log: log,
		client: youtube.Client{
			HTTPClient: &http.Client{
				Timeout: timeout,
				Transport: &userAgentTransport{
					userAgent: userAgent,
					next:      http.DefaultTransport,
				},
			},
		},
	}, nil
}

func (c *Client) VideoID(rawURL string) (string, error) {
	return ParseVideoID(rawURL)
}

func (c *Client) Video(ctx context.Context, id string) (core.Video, error) {
	video, err := c.client.GetVideoContext(ctx, id)
	if err != nil {
		return core.Video{}, fmt.Errorf("cannot get video %s: %w", id, mapError(err))
	}
	c.log.Debug("video metadata received", "video_id", video.ID, "formats", len(video.Formats))
	return toVideo(video), nil
}

func toVideo(video *youtube.Video) core.Video {
	return core.Video{
		ID:          video.ID,
		Title:       video.Title,
		Channel:     video.Author,
		Description: video.Description,
		Views:       int64(video.Views),
		Length:      video.Duration,
		Published:   video.PublishDate,
	}
}

func mapError(err error) error {
	var status youtube.ErrPlayabiltyStatus
	switch {
	case errors.Is(err, youtube.ErrVideoPrivate),
		errors.Is(err, youtube.ErrLoginRequired),
		errors.Is(err, youtube.ErrNotPlayableInEmbed):
		return fmt.Errorf("%w: %w", core.ErrUnavailable, err)
	case errors.Is(err, youtube.ErrInvalidCharactersInVideoID),
		errors.Is(err, youtube.ErrVideoIDMinLength):
		return fmt.Errorf("%w: %w", core.ErrBadArguments, err)
	case errors.As(err, &status):
		if status.Status == "ERROR" {
			return fmt.Errorf("%w: %w", core.ErrNotFound, err)
		}
		return fmt.Errorf("%w: %w", core.ErrUnavailable, err)
	}
	return err
}

type userAgentTransport struct {
	userAgent string
	next      http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return t.next.RoundTrip(req)
	}
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", t.userAgent)
	return t.next.RoundTrip(req)
}
