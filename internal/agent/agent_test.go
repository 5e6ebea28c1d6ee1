package agent

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAgentProvider(t *testing.T) {
	tests := []struct {
		agent     string
		want      AgentProvider
		wantError bool
	}{
		{"gemini", AgentGemini, false},
		{"Claude", AgentClaude, false},
		{" codex ", AgentCodex, false},
		{"gpt", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.agent, func(t *testing.T) {
			got, err := ValidateAgentProvider(tt.agent)
			if tt.wantError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name      string
		agent     AgentProvider
		model     string
		wantName  string
		wantModel string
		wantError bool
	}{
		{"gemini default model", AgentGemini, "", "gemini", "gemini-2.5-flash", false},
		{"gemini explicit model", AgentGemini, "gemini-2.5-pro", "gemini", "gemini-2.5-pro", false},
		{"claude", AgentClaude, "", "claude", DefaultModel(AgentClaude), false},
		{"codex", AgentCodex, "o3", "codex", "o3", false},
		{"unknown", AgentProvider("unknown"), "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(tt.agent, tt.model)
			if tt.wantError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, p.Name())
			assert.Equal(t, tt.wantModel, p.Model())
		})
	}
}

func TestBuildCommand(t *testing.T) {
	ctx := context.Background()

	t.Run("gemini passes prompt as argument", func(t *testing.T) {
		cmd, err := (&GeminiProvider{model: "gemini-2.5-flash"}).BuildCommand(ctx, "hello")
		require.NoError(t, err)
		assert.Equal(t, []string{"gemini", "--model", "gemini-2.5-flash", "-p", "hello"}, cmd.Args)
		assert.Nil(t, cmd.Stdin)
	})

	t.Run("claude reads prompt from stdin", func(t *testing.T) {
		cmd, err := (&ClaudeProvider{model: "m"}).BuildCommand(ctx, "hello")
		require.NoError(t, err)
		assert.Equal(t, "claude", cmd.Args[0])
		assert.Contains(t, cmd.Args, "-p")
		require.NotNil(t, cmd.Stdin)
	})

	t.Run("codex reads prompt from stdin", func(t *testing.T) {
		cmd, err := (&CodexProvider{model: "m"}).BuildCommand(ctx, "hello")
		require.NoError(t, err)
		assert.Equal(t, []string{"codex", "exec"}, cmd.Args[:2])
		assert.Equal(t, "-", cmd.Args[len(cmd.Args)-1])
		require.NotNil(t, cmd.Stdin)
	})
}

func TestBuildPrompt(t *testing.T) {
	p := BuildPrompt("paper.pdf")
	assert.True(t, strings.HasPrefix(p, Prompt))
	assert.True(t, strings.HasSuffix(p, "\nFilepath: paper.pdf"))
}

func TestPromptSections(t *testing.T) {
	for _, want := range []string{
		"1.  **Core Contributions**",
		"2. **Background**",
		"2.  **What the Authors Did**",
		"3.  **Key Findings**",
		"4.  **Noteworthy Discussion**",
		"the paper title and the 4 sections",
	} {
		assert.Contains(t, Prompt, want)
	}
}

// shellProvider runs a shell script in place of a real agent CLI.
type shellProvider struct {
	script string
}

func (p *shellProvider) Name() string  { return "shell" }
func (p *shellProvider) Model() string { return "sh" }

func (p *shellProvider) BuildCommand(ctx context.Context, prompt string) (*exec.Cmd, error) {
	return exec.CommandContext(ctx, "sh", "-c", p.script, "sh", prompt), nil
}

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestSummarize(t *testing.T) {
	requireShell(t)

	dir := t.TempDir()
	pdfPath := filepath.Join(dir, "paper.pdf")
	require.NoError(t, os.WriteFile(pdfPath, []byte("%PDF"), 0o644))

	// Prints the last prompt line and the working directory.
	p := &shellProvider{script: `printf '%s\n' "$1" | tail -n 1; pwd`}

	var raw bytes.Buffer
	res, err := Summarize(context.Background(), p, pdfPath, &raw)
	require.NoError(t, err)

	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(res.Summary), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Filepath: paper.pdf", lines[0])
	gotDir, err := filepath.EvalSymlinks(lines[1])
	require.NoError(t, err)
	assert.Equal(t, resolved, gotDir)

	assert.Equal(t, res.Summary, raw.String())
	assert.Equal(t, "shell", res.Agent)
	assert.Equal(t, "sh", res.Model)
}

func TestSummarizeFailure(t *testing.T) {
	requireShell(t)

	pdfPath := filepath.Join(t.TempDir(), "paper.pdf")
	p := &shellProvider{script: `echo "quota exceeded" >&2; exit 3`}

	res, err := Summarize(context.Background(), p, pdfPath, nil)
	require.Error(t, err)
	assert.Nil(t, res)

	var runErr *RunError
	require.True(t, errors.As(err, &runErr))
	assert.Equal(t, "shell", runErr.Agent)
	assert.Contains(t, runErr.Stderr, "quota exceeded")
	assert.Contains(t, err.Error(), "quota exceeded")

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.ExitCode())
}
