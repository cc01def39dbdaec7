package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetArgs(append([]string{"--no-color"}, args...))
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func writeSource(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestTokensCmd(t *testing.T) {
	path := writeSource(t, t.TempDir(), "a.lm", "x -> 1\n")
	out, _, err := run(t, "", "tokens", path)
	require.NoError(t, err)
	assert.Equal(t, "1:1\tIDENT(x)\n1:3\t->\n1:6\tNUMBER(1)\n1:7\tNEWLINE\n2:1\tEOF\n", out)
}

func TestTokensCmdStdin(t *testing.T) {
	out, _, err := run(t, `"hi"`, "tokens", "-")
	require.NoError(t, err)
	assert.Equal(t, "1:1\tSTRING(\"hi\")\n1:5\tEOF\n", out)
}

func TestTokensCmdLexError(t *testing.T) {
	_, errOut, err := run(t, `"open`, "tokens", "-")
	require.ErrorIs(t, err, ErrReported)
	assert.Contains(t, errOut, "-:1:1: error: unterminated string literal")
}

func TestParseCmd(t *testing.T) {
	out, _, err := run(t, "(1+2)*3\n", "parse", "-")
	require.NoError(t, err)
	assert.Equal(t, "(* (paren (+ 1 2)) 3)\n", out)
}

func TestParseCmdMaxDepthFlag(t *testing.T) {
	_, errOut, err := run(t, "((((1))))", "--max-depth", "3", "parse", "-")
	require.ErrorIs(t, err, ErrReported)
	assert.Contains(t, errOut, "nested deeper than 3 levels")
}

func TestCheckCmd(t *testing.T) {
	dir := t.TempDir()
	good := writeSource(t, dir, "good.lm", "a & b | !c\n")
	bad := writeSource(t, dir, "bad.lm", "1 2\n")
	also := writeSource(t, dir, "also.lm", "\"s\" + 1.5")

	out, errOut, err := run(t, "", "check", good, bad, also)
	require.ErrorIs(t, err, ErrReported)
	assert.Equal(t, good+": ok\n"+also+": ok\n", out)
	assert.Contains(t, errOut, bad+":1:3: error: unexpected NUMBER(2) after expression at index 1")
}

func TestCheckCmdAllGood(t *testing.T) {
	dir := t.TempDir()
	var files []string
	for i := 0; i < 20; i++ {
		files = append(files, writeSource(t, dir, "f"+string(rune('a'+i))+".lm", "-x * (y + 2)"))
	}
	out, _, err := run(t, "", append([]string{"check"}, files...)...)
	require.NoError(t, err)
	assert.Equal(t, 20, strings.Count(out, ": ok\n"))
}

func TestCheckCmdMissingFile(t *testing.T) {
	_, _, err := run(t, "", "check", filepath.Join(t.TempDir(), "missing.lm"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrReported)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigFileFlag(t *testing.T) {
	dir := t.TempDir()
	cfg := writeSource(t, dir, "lumoc.yaml", "max_depth: 1\n")
	_, _, err := run(t, "((1))", "--config", cfg, "parse", "-")
	require.ErrorIs(t, err, ErrReported)

	_, _, err = run(t, "(1)", "--config", cfg, "parse", "-")
	require.NoError(t, err)
}

func TestBadConfig(t *testing.T) {
	cfg := writeSource(t, t.TempDir(), "lumoc.toml", "jobs = 0\n")
	_, _, err := run(t, "1", "--config", cfg, "parse", "-")
	assert.ErrorContains(t, err, "jobs must be positive")
}

func TestVerboseLogs(t *testing.T) {
	_, errOut, err := run(t, "1", "-v", "parse", "-")
	require.NoError(t, err)
	assert.Contains(t, errOut, "config loaded")
	assert.Contains(t, errOut, "parse done")
}

func TestVersionCmd(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "lumoc v"+Version+"\n"))
}

func TestCheckCmdDirectory(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "one.lm", "1 + 1")
	writeSource(t, dir, "two.lm", "x == y")
	writeSource(t, dir, "readme.md", "not lumo (")

	out, _, err := run(t, "", "check", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "one.lm")+": ok\n"+filepath.Join(dir, "two.lm")+": ok\n", out)
}

func TestCheckCmdStdinTwice(t *testing.T) {
	out, _, err := run(t, "a + b\n", "check", "-", "-")
	require.NoError(t, err)
	assert.Equal(t, "-: ok\n", out)
}
