package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/coffeeboi0811/glyphcam/ascii"
)

const (
	clearScreen = "\033[H\033[2J"
	cursorHome  = "\033[H"
	clearToEnd  = "\033[J"
	resetStyle  = "\033[0m"
)

// terminalColumns returns the width of the terminal behind f.
func terminalColumns(f *os.File) int {
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 2 {
		return 100 // a sensible default if we can't get the terminal size
	}
	return width - 2 // leave a small margin
}

// isTerminal reports whether escape sequences written to f reach a terminal.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// writeCanvas prints the canvas rows. With useColor every glyph gets the
// ANSI 256 foreground closest to its sampled color; the escape sequence is
// only repeated when the color changes.
func writeCanvas(w io.Writer, c *ascii.Canvas, useColor bool) error {
	bw := bufio.NewWriterSize(w, (c.Cols+1)*c.Rows+64)
	prev := -1
	for y := range c.Rows {
		for x := range c.Cols {
			cell := c.At(x, y)
			if useColor {
				if code := ansi256(cell.Color); code != prev {
					prev = code
					fmt.Fprintf(bw, "\033[38;5;%dm", code)
				}
			}
			bw.WriteRune(cell.Glyph)
		}
		bw.WriteByte('\n')
	}
	if useColor {
		bw.WriteString(resetStyle)
	}
	return bw.Flush()
}
