// Package summarize drives a full run: resolve the input paper, strip its
// references section, have an agent summarize the body and save the report.
package summarize

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/itsmostafa/papersum/internal/agent"
	"github.com/itsmostafa/papersum/internal/config"
	"github.com/itsmostafa/papersum/internal/fetch"
	"github.com/itsmostafa/papersum/internal/paper"
	"github.com/itsmostafa/papersum/internal/pdf"
)

// ErrInputNotFound is returned when a local input path does not exist.
var ErrInputNotFound = errors.New("input file does not exist")

// Downloader fetches a remote PDF into a temporary file.
type Downloader interface {
	Download(ctx context.Context, url string) (string, error)
}

// Report describes a finished run.
type Report struct {
	Input         string
	Boundary      paper.BoundaryResult
	PagesTotal    int
	PagesKept     int
	TokensBefore  int
	TokensAfter   int
	OutputPath    string
	TrimmedPath   string
	AgentDuration time.Duration
}

// Summarizer runs the pipeline. The function fields default to the pdf
// package and may be replaced in tests.
type Summarizer struct {
	cfg        *config.Config
	provider   agent.Provider
	downloader Downloader
	out        io.Writer
	log        *charmlog.Logger
	agentLog   io.Writer

	extract   func(path string) (*paper.Document, error)
	writeTemp func(doc *paper.Document) (string, error)
}

// New creates a Summarizer from configuration. Status output goes to out.
func New(cfg *config.Config, out io.Writer, log *charmlog.Logger) (*Summarizer, error) {
	agentName, err := agent.ValidateAgentProvider(cfg.Agent)
	if err != nil {
		return nil, err
	}
	provider, err := agent.NewProvider(agentName, cfg.Model)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = os.Stdout
	}
	if log == nil {
		log = charmlog.Default()
	}

	var agentLog io.Writer
	if log.GetLevel() <= charmlog.DebugLevel {
		agentLog = agentOutput{log: log}
	}

	return &Summarizer{
		cfg:      cfg,
		provider: provider,
		downloader: fetch.NewDownloader(fetch.Options{
			Timeout:  cfg.DownloadTimeout,
			Attempts: cfg.DownloadAttempts,
			Logger:   log,
		}),
		out:       out,
		log:       log,
		agentLog:  agentLog,
		extract:   pdf.Extract,
		writeTemp: pdf.WriteTemp,
	}, nil
}

// OutputName returns the summary file name for an input path or URL.
func OutputName(input string) string {
	if fetch.IsURL(input) {
		id := fetch.ArxivID(input)
		if id == "" {
			id = "paper"
		}
		return fmt.Sprintf("summary_arxiv_%s.md", id)
	}
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return fmt.Sprintf("summary_%s.md", stem)
}

// Run summarizes the paper at input, a local path or an arXiv URL.
func (s *Summarizer) Run(ctx context.Context, input string) (*Report, error) {
	log := s.log.With("run", uuid.NewString()[:8])

	var temps []string
	defer func() {
		for _, p := range temps {
			if rmErr := os.Remove(p); rmErr != nil && !os.IsNotExist(rmErr) {
				log.Warn("Failed to remove temp file", "path", p, "error", rmErr)
			}
		}
	}()

	pdfPath, downloaded, err := s.resolve(ctx, input)
	if err != nil {
		return nil, err
	}
	if downloaded {
		temps = append(temps, pdfPath)
	}

	FormatHeader(s.out, input, s.provider.Name(), s.provider.Model())
	FormatStatus(s.out, fmt.Sprintf("Processing: %s", filepath.Base(pdfPath)))

	doc, err := s.extract(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", pdfPath, err)
	}

	body, result, err := paper.Body(doc)
	if err != nil {
		return nil, err
	}
	log.Debug("Reference detection", "boundary", result.String(), "pages", doc.PageCount())
	FormatBoundary(s.out, result, doc.PageCount())

	report := &Report{
		Input:        input,
		Boundary:     result,
		PagesTotal:   doc.PageCount(),
		PagesKept:    body.PageCount(),
		TokensBefore: paper.EstimateTokens(doc),
		TokensAfter:  paper.EstimateTokens(body),
	}

	target := pdfPath
	if body != doc {
		trimmed, err := s.writeTemp(body)
		if err != nil {
			return nil, fmt.Errorf("writing trimmed PDF: %w", err)
		}
		temps = append(temps, trimmed)
		target = trimmed
	}

	FormatStatus(s.out, fmt.Sprintf("Running %s...", s.provider.Name()))
	res, err := agent.Summarize(ctx, s.provider, target, s.agentLog)
	if err != nil {
		return nil, err
	}
	report.AgentDuration = res.Duration
	log.Debug("Agent finished", "agent", res.Agent, "duration", res.Duration)

	if err := os.MkdirAll(s.cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	report.OutputPath = filepath.Join(s.cfg.OutputDir, OutputName(input))
	if err := os.WriteFile(report.OutputPath, []byte(res.Summary), 0644); err != nil {
		return nil, fmt.Errorf("failed to write summary: %w", err)
	}

	if s.cfg.KeepTrimmed && target != pdfPath {
		keep := strings.TrimSuffix(report.OutputPath, ".md") + ".pdf"
		if err := copyFile(target, keep); err != nil {
			return nil, fmt.Errorf("failed to keep trimmed PDF: %w", err)
		}
		report.TrimmedPath = keep
	}

	FormatReport(s.out, report)
	log.Info("Summary saved", "path", report.OutputPath)

	return report, nil
}

// resolve returns a local PDF path for input and whether it was downloaded.
func (s *Summarizer) resolve(ctx context.Context, input string) (string, bool, error) {
	if fetch.IsURL(input) {
		pdfURL, err := fetch.ArxivPDFURL(input)
		if err != nil {
			return "", false, err
		}
		FormatStatus(s.out, fmt.Sprintf("Downloading from: %s", pdfURL))
		path, err := s.downloader.Download(ctx, pdfURL)
		if err != nil {
			return "", false, fmt.Errorf("error downloading arXiv PDF: %w", err)
		}
		return path, true, nil
	}

	info, err := os.Stat(input)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, fmt.Errorf("%w: %s", ErrInputNotFound, input)
		}
		return "", false, err
	}
	if info.IsDir() {
		return "", false, fmt.Errorf("%s is a directory", input)
	}
	return input, false, nil
}

// agentOutput logs agent stdout line by line at debug level.
type agentOutput struct {
	log *charmlog.Logger
}

func (a agentOutput) Write(p []byte) (int, error) {
	for _, l := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		if strings.TrimSpace(l) != "" {
			a.log.Debug("Agent output", "line", l)
		}
	}
	return len(p), nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0644)
}
