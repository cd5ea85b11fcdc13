package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitguide/internal/catalog"
)

type result struct {
	out    string
	errOut string
	err    error
}

func execute(t *testing.T, stdin string, args ...string) (result, string) {
	t.Helper()
	dir := t.TempDir()
	base := []string{
		"--config", filepath.Join(dir, "config.toml"),
		"--log-file", filepath.Join(dir, "gitguide.log"),
	}

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append(base, args...))

	err := cmd.Execute()
	return result{out: out.String(), errOut: errOut.String(), err: err}, dir
}

const partialCatalog = `
[[steps]]
title = "Only step"
description = "Covers one zone."
highlight = "working-tree"
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestStepsTable(t *testing.T) {
	res, _ := execute(t, "", "steps")
	require.NoError(t, res.err)
	assert.Contains(t, strings.ToLower(res.out), "zone")
	assert.Contains(t, res.out, "remote-tracking-ref")
	assert.Contains(t, res.out, "git push")
	assert.Contains(t, res.out, "(9 steps)")
}

func TestStepsFormats(t *testing.T) {
	res, _ := execute(t, "", "steps", "--format", "markdown")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "| # |")

	res, _ = execute(t, "", "steps", "-f", "csv")
	require.NoError(t, res.err)
	lines := strings.Split(strings.TrimSpace(res.out), "\n")
	assert.Len(t, lines, 10)
	assert.Equal(t, "#,zone,title,command", strings.ToLower(lines[0]))

	res, _ = execute(t, "", "steps", "--format", "toml")
	require.NoError(t, res.err)
	c, err := catalog.Load(strings.NewReader(res.out))
	require.NoError(t, err)
	assert.Equal(t, 9, c.Len())

	res, _ = execute(t, "", "steps", "--format", "yaml")
	assert.ErrorContains(t, res.err, "unknown format")
}

func TestValidate(t *testing.T) {
	res, _ := execute(t, "", "validate")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "embedded: 9 steps, all 8 zones covered")

	dir := t.TempDir()
	partial := writeFile(t, dir, "partial.toml", partialCatalog)
	res, _ = execute(t, "", "validate", partial)
	var coverage *catalog.CoverageError
	require.ErrorAs(t, res.err, &coverage)
	assert.Len(t, coverage.Missing, 7)

	broken := writeFile(t, dir, "broken.toml", "[[steps]]\ntitle = 3\n")
	res, _ = execute(t, "", "validate", broken)
	assert.ErrorContains(t, res.err, "failed to parse catalog")

	res, _ = execute(t, "", "validate", filepath.Join(dir, "missing.toml"))
	assert.Error(t, res.err)
}

func TestCatalogFlagOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	partial := writeFile(t, dir, "partial.toml", partialCatalog)

	res, _ := execute(t, "", "--catalog", partial, "steps")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "Only step")
	assert.Contains(t, res.out, "(1 steps)")
}

func TestConfigInit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--config", path, "config", "init"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "accent_color")

	cmd = NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--config", path, "config", "init"})
	assert.ErrorContains(t, cmd.Execute(), "already exists")

	cmd = NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--config", path, "config", "init", "--force"})
	assert.NoError(t, cmd.Execute())
}

func TestInvalidConfigFails(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.toml", "[ui]\nlayout = \"sideways\"\n")

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfgPath, "--log-file", "", "steps"})
	assert.Error(t, cmd.Execute())
}

func TestBadLogLevel(t *testing.T) {
	res, _ := execute(t, "", "--log-level", "loud", "steps")
	assert.ErrorContains(t, res.err, "log.level")
}

func TestVersion(t *testing.T) {
	res, _ := execute(t, "", "version")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "gitguide "+Version)
}

func TestPlainStepper(t *testing.T) {
	res, dir := execute(t, "next\nzone fetch\nwhat\nquit\n", "--plain", "--log-level", "debug")
	require.NoError(t, res.err)

	assert.Contains(t, res.out, "step 1 / 9")
	assert.Contains(t, res.out, "step 2 / 9")
	assert.Contains(t, res.out, "git fetch")
	assert.Contains(t, res.errOut, `unknown command "what"`)

	// the log file is written by the time the command returns
	logData, err := os.ReadFile(filepath.Join(dir, "gitguide.log"))
	require.NoError(t, err)
	assert.Contains(t, string(logData), "catalog loaded")
	assert.Contains(t, string(logData), "step changed")
}

func TestNonTerminalInputRunsStepper(t *testing.T) {
	// stdin is a reader, not a terminal, so no --plain is needed
	res, _ := execute(t, "quit\n")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "step 1 / 9")
}

func TestUnexpectedArgs(t *testing.T) {
	res, _ := execute(t, "", "steps", "extra")
	assert.Error(t, res.err)
}
