package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubcommandsRegistered(t *testing.T) {
	for _, name := range []string{"summarize", "detect", "trim"} {
		t.Run(name, func(t *testing.T) {
			c, _, err := rootCmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, c.Name())
		})
	}
}

func TestSummarizeFlagsMapToConfigKeys(t *testing.T) {
	for flag := range summarizeFlags {
		assert.NotNil(t, summarizeCmd.Flags().Lookup(flag), "missing flag %s", flag)
	}
}

func TestLoadConfigUsesChangedFlags(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, summarizeCmd.Flags().Set("dir", dir))
	require.NoError(t, summarizeCmd.Flags().Set("agent", "claude"))
	t.Cleanup(func() {
		for _, f := range []string{"dir", "agent"} {
			fl := summarizeCmd.Flags().Lookup(f)
			_ = fl.Value.Set(fl.DefValue)
			fl.Changed = false
		}
	})

	cfg, err := loadConfig(summarizeCmd, summarizeFlags)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.OutputDir)
	assert.Equal(t, "claude", cfg.Agent)
	assert.Equal(t, "", cfg.Model)
}

func TestSummarizeRequiresInput(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"summarize"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	require.Error(t, err)
}

func TestDetectPattern(t *testing.T) {
	t.Cleanup(func() {
		detectHeaders = nil
		detectNoNumbering = false
	})

	p := detectPattern()
	assert.True(t, p.Match("3. References"))
	assert.Equal(t, "Headers: references, bibliography, works cited, literature cited (numbered allowed)", describePattern(p))

	detectHeaders = []string{"Literatur"}
	detectNoNumbering = true
	p = detectPattern()
	assert.True(t, p.Match("Literatur"))
	assert.False(t, p.Match("3. Literatur"))
	assert.False(t, p.Match("References"))
	assert.Equal(t, "Headers: Literatur", describePattern(p))
}
