// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	if args == nil {
		// A nil slice makes cobra fall back to os.Args.
		args = []string{}
	}
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeExport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRoot_Converts(t *testing.T) {
	path := writeExport(t, `{"timestamp":"2024-01-01T00:00:00Z","risposte":[{"prompt":"Hi","risposta":"Hello!"}]}`)

	stdout, stderr, err := execute(t, path)
	require.NoError(t, err)
	assert.Equal(t, "# Esportazione Claude\n\nData: 2024-01-01T00:00:00Z\n\n"+
		"## Prompt\nHi\n\n### Risposta\n```python\nHello!\n```\n\n", stdout)
	assert.Empty(t, stderr)
}

func TestRoot_DebugLogging(t *testing.T) {
	t.Setenv("JSON_TO_MD_LOG_LEVEL", "debug")
	path := writeExport(t, `{"timestamp":"t","risposte":[{"prompt":"a","risposta":"b"},{"prompt":"c","risposta":"d"}]}`)

	stdout, stderr, err := execute(t, path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "## Prompt\nc\n")
	assert.Contains(t, stderr, "Converted export")
	assert.Contains(t, stderr, "entries=2")
	assert.NotContains(t, stdout, "Converted export")
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	t.Setenv("JSON_TO_MD_LOG_LEVEL", "loud")
	path := writeExport(t, `{"timestamp":"t","risposte":[]}`)

	stdout, _, err := execute(t, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")
	assert.Empty(t, stdout)
}

func TestRoot_Failures(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		missing  bool
		wantKind string
	}{
		{name: "missing file", missing: true, wantKind: "kind=file_access"},
		{name: "malformed JSON", content: `{"timestamp":"t",}`, wantKind: "kind=parse"},
		{name: "missing risposte", content: `{"timestamp":"t"}`, wantKind: "kind=key_lookup"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "absent.json")
			if !tt.missing {
				path = writeExport(t, tt.content)
			}

			stdout, stderr, err := execute(t, path)
			require.Error(t, err)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, "Conversion failed")
			assert.Contains(t, stderr, tt.wantKind)
		})
	}
}

func TestRoot_RequiresOneArgument(t *testing.T) {
	_, _, err := execute(t)
	assert.Error(t, err)

	_, _, err = execute(t, "a.json", "b.json")
	assert.Error(t, err)
}
