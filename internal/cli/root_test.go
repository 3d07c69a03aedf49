package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passforge/passforge-go/internal/config"
	"github.com/passforge/passforge-go/internal/crypto"
)

func defaultConfig() config.Config {
	return config.Config{
		Length:    16,
		Count:     1,
		Uppercase: true,
		Lowercase: true,
		Digits:    true,
		Symbols:   true,
	}
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand(defaultConfig())
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func outputLines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestRootCommand_Defaults(t *testing.T) {
	out, err := runCommand(t)
	require.NoError(t, err)

	lines := outputLines(out)
	require.Len(t, lines, 1)
	assert.Len(t, lines[0], 16)
}

func TestRootCommand_LengthAndCount(t *testing.T) {
	out, err := runCommand(t, "-l", "20", "-c", "3")
	require.NoError(t, err)

	lines := outputLines(out)
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Len(t, line, 20)
	}
}

func TestRootCommand_NoSymbols(t *testing.T) {
	out, err := runCommand(t, "--no-symbols", "-l", "64")
	require.NoError(t, err)

	lines := outputLines(out)
	require.Len(t, lines, 1)
	for _, ch := range lines[0] {
		alnum := (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9')
		assert.True(t, alnum, "unexpected character %q with --no-symbols", string(ch))
	}
}

func TestRootCommand_ExcludesAmbiguousByDefault(t *testing.T) {
	out, err := runCommand(t, "-l", "64", "-c", "10")
	require.NoError(t, err)

	for _, line := range outputLines(out) {
		assert.False(t, strings.ContainsAny(line, "O0l1I"), "password %q contains ambiguous characters", line)
	}
}

func TestRootCommand_LengthTooShort(t *testing.T) {
	_, err := runCommand(t, "-l", "2")
	require.ErrorIs(t, err, crypto.ErrInvalidConfig)
}

func TestRootCommand_NoCategories(t *testing.T) {
	_, err := runCommand(t, "--no-upper", "--no-lower", "--no-digits", "--no-symbols")
	require.ErrorIs(t, err, crypto.ErrNoCategories)
}

func TestRootCommand_ExplicitZeroLength(t *testing.T) {
	out, err := runCommand(t, "-l", "0")
	require.ErrorIs(t, err, crypto.ErrInvalidConfig)
	assert.Empty(t, out, "no output on config error")
}

func TestRootCommand_ExplicitZeroCount(t *testing.T) {
	out, err := runCommand(t, "-c", "0")
	require.ErrorIs(t, err, crypto.ErrInvalidConfig)
	assert.Empty(t, out, "no output on config error")
}

func TestRootCommand_CountTooSmall(t *testing.T) {
	_, err := runCommand(t, "-c", "-2")
	require.ErrorIs(t, err, crypto.ErrInvalidConfig)
}

func TestRootCommand_VerboseAnnotation(t *testing.T) {
	out, err := runCommand(t, "-v")
	require.NoError(t, err)

	lines := outputLines(out)
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[len(lines)-1], "bits")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "passforge "+Version)
}
