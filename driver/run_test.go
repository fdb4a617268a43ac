package driver_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/monkeylang/monkey/driver"
)

func TestRunSource(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := driver.RunSource("let five = 5;", &buf)
	require.NoError(t, err)
	require.Equal(t, "LET IDENT(five) ASSIGN INT(5) SEMICOLON\n", buf.String())
}

func TestRunSourceEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := driver.RunSource("", &buf)
	require.NoError(t, err)
	require.Equal(t, "\n", buf.String())
}

// A bad character is reported as an error, but the rendered line still
// contains every token, the ILLEGAL one included.
func TestRunSourceIllegal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := driver.RunSource("let a = @;", &buf)
	require.Error(t, err)
	require.Equal(t, "LET IDENT(a) ASSIGN ILLEGAL(\"@\") SEMICOLON\n", buf.String())
}

func TestRunFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "main.monkey")
	require.NoError(t, os.WriteFile(path, []byte("fn(x) { x; }"), 0o644))

	var buf bytes.Buffer
	require.NoError(t, driver.RunFile(path, &buf))
	require.Equal(t, "FUNCTION LEFTPAREN IDENT(x) RIGHTPAREN LEFTBRACE IDENT(x) SEMICOLON RIGHTBRACE\n", buf.String())
}

func TestRunFileMissing(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.Error(t, driver.RunFile(filepath.Join(t.TempDir(), "nope.monkey"), &buf))
	require.Empty(t, buf.String())
}
