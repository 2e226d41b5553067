package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// maxChunkSize keeps individual writes under a typical MTU so frames flow
// smoothly over SSH.
const maxChunkSize = 1400

// chunkWriter accumulates a frame and writes it out in MTU-sized chunks.
type chunkWriter struct {
	buf  strings.Builder
	bufw *bufio.Writer
}

func newChunkWriter(w io.Writer) *chunkWriter {
	return &chunkWriter{bufw: bufio.NewWriterSize(w, 8192)}
}

func (cw *chunkWriter) WriteString(s string) {
	cw.buf.WriteString(s)
}

func (cw *chunkWriter) WriteRune(r rune) {
	cw.buf.WriteRune(r)
}

// MoveCursor appends an ANSI cursor position sequence; col and row are 1-based.
func (cw *chunkWriter) MoveCursor(col, row int) {
	fmt.Fprintf(&cw.buf, "\033[%d;%dH", row, col)
}

func (cw *chunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := cw.bufw.WriteString(chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return cw.bufw.Flush()
}

// SizeFunc reports the terminal size in columns and rows.
type SizeFunc func() (width, height int, err error)

// StdoutSize reads the size of the process's own terminal.
func StdoutSize() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// FixedSize always reports the same size.
func FixedSize(width, height int) SizeFunc {
	return func() (int, int, error) { return width, height, nil }
}

func clearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

func hideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

func showCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}
