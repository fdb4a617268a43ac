package driver

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/monkeylang/monkey/lexer"
)

// RunSource lexes source and writes a space-separated rendering of each
// token to out, newline terminated. ILLEGAL tokens still appear in the
// rendered line; the joined lexical errors are returned for the caller to
// report however it likes.
func RunSource(source string, out io.Writer) error {
	tokens, err := lexer.Lex(source)

	rendered := make([]string, len(tokens))
	for i, tok := range tokens {
		rendered[i] = tok.String()
	}

	if _, writeErr := fmt.Fprintln(out, strings.Join(rendered, " ")); writeErr != nil {
		return writeErr
	}

	return err
}

// RunFile lexes the contents of the file at path.
func RunFile(path string, out io.Writer) error {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return RunSource(string(bytes), out)
}
