package commands

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

var errNotTerminal = errors.New("output is not a terminal")

// terminalClipboard asks the terminal emulator to set the clipboard with
// the OSC 52 escape sequence.
type terminalClipboard struct {
	out io.Writer
}

func (c terminalClipboard) WriteText(ctx context.Context, text string) error {
	f, ok := c.out.(*os.File)
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return errNotTerminal
	}

	_, err := fmt.Fprintf(f, "\x1b]52;c;%s\a", base64.StdEncoding.EncodeToString([]byte(text)))
	return err
}
