package report

import (
	"encoding/json"
	"fmt"
	"io"
	"video-analyzer/core"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

const publishedLayout = "2006-01-02 15:04:05"

var tips = []string{
	"Make sure the video URL is correct and the video is public",
	"Check your internet connection",
	"Try a different video URL",
	"If the issue persists, try updating video-analyzer",
}

type printer struct {
	w       io.Writer
	err     error
	heading lipgloss.Style
	title   lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	renderer := lipgloss.NewRenderer(w)
	return &printer{
		w:       w,
		heading: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		title:   renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
	}
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) section(name string) {
	p.printf("\n%s\n", p.heading.Render(name+":"))
}

// Text writes a human-readable report.
func Text(w io.Writer, report core.Report) error {
	p := newPrinter(w)
	video := report.Video

	p.printf("\n%s\n", p.title.Render("=== Video Analysis Results ==="))
	p.printf("\nTitle: %s\n", video.Title)
	p.printf("Channel: %s\n", video.Channel)
	p.printf("Views: %s\n", humanize.Comma(video.Views))
	p.printf("Length: %d seconds\n", int64(video.Length.Seconds()))
	if video.Published.IsZero() {
		p.printf("Published: unknown\n")
	} else {
		p.printf("Published: %s\n", video.Published.Format(publishedLayout))
	}
	p.analysis(report.Analysis)
	return p.err
}

// Analysis writes the text analysis sections only.
func Analysis(w io.Writer, analysis core.Analysis) error {
	p := newPrinter(w)
	p.analysis(analysis)
	return p.err
}

func (p *printer) analysis(analysis core.Analysis) {
	p.section("Summary")
	p.printf("%s\n", analysis.Summary)

	p.section("Key Topics")
	for _, phrase := range analysis.KeyPhrases {
		p.printf("- %s\n", phrase)
	}

	p.section("Sentiment Analysis")
	p.printf("Polarity: %.2f\n", analysis.Sentiment.Polarity)
	p.printf("Subjectivity: %.2f\n", analysis.Sentiment.Subjectivity)

	p.section("Top Keywords")
	for _, keyword := range analysis.TopWords {
		p.printf("- %s: %d\n", keyword.Word, keyword.Count)
	}
}

// JSON writes reply as indented JSON.
func JSON(w io.Writer, reply any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(reply); err != nil {
		return fmt.Errorf("could not encode reply: %w", err)
	}
	return nil
}

// Troubleshooting writes hints for a failed analysis.
func Troubleshooting(w io.Writer) {
	p := newPrinter(w)
	p.section("Troubleshooting tips")
	for i, tip := range tips {
		p.printf("%d. %s\n", i+1, tip)
	}
}
