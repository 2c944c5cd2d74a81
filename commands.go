package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"video-analyzer/adapters/report"
	"video-analyzer/config"
	"video-analyzer/core"

	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// errReported marks a failure already explained to the user.
var errReported = errors.New("analysis failed")

type analyzerFactory func(cfg config.Config, log *slog.Logger) (core.Analyzer, func(), error)

type app struct {
	in          io.Reader
	out         io.Writer
	errOut      io.Writer
	newAnalyzer analyzerFactory

	configPath string
	format     string
	sentences  int
}

func newApp(in io.Reader, out, errOut io.Writer) *app {
	return &app{
		in:          in,
		out:         out,
		errOut:      errOut,
		newAnalyzer: buildAnalyzer,
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "video-analyzer",
		Short:         "Summarize and analyze YouTube video descriptions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "config.yaml", "configuration file")
	root.PersistentFlags().StringVarP(&a.format, "format", "f", formatText, "output format: text or json")
	root.PersistentFlags().IntVarP(&a.sentences, "sentences", "n", 0, "summary length in sentences (overrides config)")

	root.AddCommand(
		&cobra.Command{
			Use:   "analyze [url]",
			Short: "Fetch a video and analyze its title and description",
			Args:  cobra.MaximumNArgs(1),
			RunE:  a.runAnalyze,
		},
		&cobra.Command{
			Use:   "text [file]",
			Short: "Analyze text from a file or standard input",
			Args:  cobra.MaximumNArgs(1),
			RunE:  a.runText,
		},
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) (core.Analyzer, func(), *slog.Logger, error) {
	if a.format != formatText && a.format != formatJSON {
		return nil, nil, nil, fmt.Errorf("%w: unknown format %q", core.ErrBadArguments, a.format)
	}

	var cfg config.Config
	if err := config.Load(a.configPath, &cfg); err != nil {
		return nil, nil, nil, err
	}
	if cmd.Flags().Changed("sentences") {
		if a.sentences < 1 {
			return nil, nil, nil, fmt.Errorf("%w: sentences must be positive", core.ErrBadArguments)
		}
		cfg.Analysis.SummarySentences = a.sentences
	}

	log, err := makeLogger(cfg.LogLevel, cfg.LogFormat, a.errOut)
	if err != nil {
		return nil, nil, nil, err
	}
	log.Debug("debug messages are enabled")

	analyzer, closeFn, err := a.newAnalyzer(cfg, log)
	if err != nil {
		return nil, nil, nil, err
	}
	return analyzer, closeFn, log, nil
}

func (a *app) runAnalyze(cmd *cobra.Command, args []string) error {
	analyzer, closeFn, log, err := a.setup(cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	var url string
	if len(args) == 1 {
		url = args[0]
	} else {
		fmt.Fprint(a.errOut, "Enter YouTube video URL: ")
		line, err := bufio.NewReader(a.in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("cannot read url: %w", err)
		}
		url = strings.TrimSpace(line)
	}

	if a.format == formatText {
		fmt.Fprintln(a.out, "\nAnalyzing video...")
	}
	result, err := analyzer.Analyze(cmd.Context(), url)
	if err != nil {
		log.Debug("analysis failed", "url", url, "error", err)
		fmt.Fprintf(a.errOut, "Error: %v\n", err)
		report.Troubleshooting(a.errOut)
		return errReported
	}

	if a.format == formatJSON {
		return report.JSON(a.out, result)
	}
	return report.Text(a.out, result)
}

func (a *app) runText(cmd *cobra.Command, args []string) error {
	analyzer, closeFn, _, err := a.setup(cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	var src io.Reader = a.in
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("cannot open input: %w", err)
		}
		defer f.Close()
		src = f
	}
	text, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("cannot read input: %w", err)
	}

	analysis, err := analyzer.AnalyzeText(cmd.Context(), string(text))
	if err != nil {
		return fmt.Errorf("cannot analyze text: %w", err)
	}

	if a.format == formatJSON {
		return report.JSON(a.out, analysis)
	}
	return report.Analysis(a.out, analysis)
}
