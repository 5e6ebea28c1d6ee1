// Package agent runs external summarization agent CLIs over a PDF.
package agent

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// AgentProvider names a supported agent CLI.
type AgentProvider string

const (
	AgentGemini AgentProvider = "gemini"
	AgentClaude AgentProvider = "claude"
	AgentCodex  AgentProvider = "codex"
)

// Default models per agent, used when no model is configured.
var defaultModels = map[AgentProvider]string{
	AgentGemini: "gemini-2.5-flash",
	AgentClaude: "claude-sonnet-4-20250514",
	AgentCodex:  "gpt-5-codex",
}

// ValidateAgentProvider checks if the given agent string is valid
func ValidateAgentProvider(agent string) (AgentProvider, error) {
	switch AgentProvider(strings.ToLower(strings.TrimSpace(agent))) {
	case AgentGemini:
		return AgentGemini, nil
	case AgentClaude:
		return AgentClaude, nil
	case AgentCodex:
		return AgentCodex, nil
	default:
		return "", fmt.Errorf("unknown agent: %q (valid options: gemini, claude, codex)", agent)
	}
}

// DefaultModel returns the model used by agent when none is configured.
func DefaultModel(agent AgentProvider) string {
	return defaultModels[agent]
}

// Provider defines the interface for agent providers
type Provider interface {
	// Name returns the provider name for display purposes
	Name() string
	// Model returns the model being used by this provider
	Model() string
	// BuildCommand creates the command that answers prompt on stdout
	BuildCommand(ctx context.Context, prompt string) (*exec.Cmd, error)
}

// NewProvider creates a new Provider instance based on the agent type. An
// empty model selects the agent's default.
func NewProvider(agent AgentProvider, model string) (Provider, error) {
	if model == "" {
		model = DefaultModel(agent)
	}
	switch agent {
	case AgentGemini:
		return &GeminiProvider{model: model}, nil
	case AgentClaude:
		return &ClaudeProvider{model: model}, nil
	case AgentCodex:
		return &CodexProvider{model: model}, nil
	default:
		return nil, fmt.Errorf("unknown agent provider: %s", agent)
	}
}

// GeminiProvider implements Provider for the Gemini CLI
type GeminiProvider struct {
	model string
}

func (p *GeminiProvider) Name() string  { return string(AgentGemini) }
func (p *GeminiProvider) Model() string { return p.model }

// BuildCommand creates the gemini command. The prompt is passed as an
// argument.
func (p *GeminiProvider) BuildCommand(ctx context.Context, prompt string) (*exec.Cmd, error) {
	return exec.CommandContext(ctx, "gemini", "--model", p.model, "-p", prompt), nil
}

// ClaudeProvider implements Provider for Claude Code
type ClaudeProvider struct {
	model string
}

func (p *ClaudeProvider) Name() string  { return string(AgentClaude) }
func (p *ClaudeProvider) Model() string { return p.model }

// BuildCommand creates the claude command with the prompt on stdin. Only
// the Read tool is allowed so the agent can open the PDF.
func (p *ClaudeProvider) BuildCommand(ctx context.Context, prompt string) (*exec.Cmd, error) {
	cmd := exec.CommandContext(ctx, "claude",
		"-p",
		"--model", p.model,
		"--output-format=text",
		"--allowedTools", "Read",
	)
	cmd.Stdin = strings.NewReader(prompt)
	return cmd, nil
}

// CodexProvider implements Provider for OpenAI Codex
type CodexProvider struct {
	model string
}

func (p *CodexProvider) Name() string  { return string(AgentCodex) }
func (p *CodexProvider) Model() string { return p.model }

// BuildCommand creates the codex command with the prompt on stdin.
func (p *CodexProvider) BuildCommand(ctx context.Context, prompt string) (*exec.Cmd, error) {
	cmd := exec.CommandContext(ctx, "codex",
		"exec",
		"--model", p.model,
		"--skip-git-repo-check",
		"--sandbox", "read-only",
		"-",
	)
	cmd.Stdin = strings.NewReader(prompt)
	return cmd, nil
}
