package report_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
	"video-analyzer/adapters/report"
	"video-analyzer/core"
	"video-analyzer/words"

	"github.com/stretchr/testify/require"
)

var sample = core.Report{
	ID: "3f2b6c1e-0000-4000-8000-000000000000",
	Video: core.Video{
		ID:        "dQw4w9WgXcQ",
		Title:     "Never Gonna Give You Up",
		Channel:   "Rick Astley",
		Views:     1234567890,
		Length:    212 * time.Second,
		Published: time.Date(2009, 10, 25, 6, 57, 33, 0, time.UTC),
	},
	Analysis: core.Analysis{
		Sentiment:  core.Sentiment{Polarity: 0.25, Subjectivity: 0.5},
		KeyPhrases: []string{"official music video", "rick astley"},
		TopWords:   []words.Keyword{{Word: "rick", Count: 3}, {Word: "video", Count: 2}},
		Summary:    "The official video.",
	},
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Text(&buf, sample))

	out := buf.String()
	for _, want := range []string{
		"=== Video Analysis Results ===",
		"Title: Never Gonna Give You Up",
		"Channel: Rick Astley",
		"Views: 1,234,567,890",
		"Length: 212 seconds",
		"Published: 2009-10-25 06:57:33",
		"The official video.",
		"- official music video",
		"Polarity: 0.25",
		"Subjectivity: 0.50",
		"- rick: 3",
		"- video: 2",
	} {
		require.Contains(t, out, want)
	}
	require.Less(t, strings.Index(out, "Summary:"), strings.Index(out, "Key Topics:"))
	require.Less(t, strings.Index(out, "Sentiment Analysis:"), strings.Index(out, "Top Keywords:"))
}

func TestTextUnknownPublishDate(t *testing.T) {
	var buf bytes.Buffer
	r := sample
	r.Video.Published = time.Time{}
	require.NoError(t, report.Text(&buf, r))
	require.Contains(t, buf.String(), "Published: unknown")
}

func TestAnalysis(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Analysis(&buf, sample.Analysis))
	require.NotContains(t, buf.String(), "Title:")
	require.Contains(t, buf.String(), "- rick: 3")
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.JSON(&buf, sample))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, sample.ID, decoded["id"])
	analysis := decoded["analysis"].(map[string]any)
	require.Equal(t, "The official video.", analysis["summary"])
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("write error")
}

func TestTextWriteError(t *testing.T) {
	require.Error(t, report.Text(failingWriter{}, sample))
}

func TestTroubleshooting(t *testing.T) {
	var buf bytes.Buffer
	report.Troubleshooting(&buf)
	require.Contains(t, buf.String(), "1. Make sure the video URL is correct and the video is public")
	require.Contains(t, buf.String(), "4. ")
}
