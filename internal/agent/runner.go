package agent

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"
)

// Result represents the outcome of an agent run
type Result struct {
	// Summary is the agent's stdout
	Summary string
	// Agent and Model that produced the summary
	Agent string
	Model string
	// Duration of the run
	Duration time.Duration
}

// RunError reports a failed agent process together with its stderr.
type RunError struct {
	Agent  string
	Stderr string
	Err    error
}

func (e *RunError) Error() string {
	msg := fmt.Sprintf("%s failed: %v", e.Agent, e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += "\n" + s
	}
	return msg
}

func (e *RunError) Unwrap() error { return e.Err }

// Summarize asks the provider to summarize the PDF at pdfPath. The agent
// runs in the PDF's directory and is given the file's base name. Raw stdout
// is also copied to rawLog when it is non-nil.
func Summarize(ctx context.Context, p Provider, pdfPath string, rawLog io.Writer) (*Result, error) {
	abs, err := filepath.Abs(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", pdfPath, err)
	}

	cmd, err := p.BuildCommand(ctx, BuildPrompt(filepath.Base(abs)))
	if err != nil {
		return nil, fmt.Errorf("failed to build %s command: %w", p.Name(), err)
	}
	cmd.Dir = filepath.Dir(abs)

	var stdout, stderr bytes.Buffer
	if rawLog != nil {
		cmd.Stdout = io.MultiWriter(&stdout, rawLog)
	} else {
		cmd.Stdout = &stdout
	}
	cmd.Stderr = &stderr

	start := time.Now()
	if err := cmd.Run(); err != nil {
		return nil, &RunError{Agent: p.Name(), Stderr: stderr.String(), Err: err}
	}

	return &Result{
		Summary:  stdout.String(),
		Agent:    p.Name(),
		Model:    p.Model(),
		Duration: time.Since(start),
	}, nil
}
