package session

import (
	"bytes"
	"io"
)

var (
	clearScreen = []byte("\033[H\033[2J")
	greenColor  = []byte("\033[32m")
	resetColor  = []byte("\033[0m")
	newLine     = []byte("\n")
)

// ViewWriter repaints the transcript view: committed lines plain, the
// volatile tail in green. Each render clears the screen first.
type ViewWriter struct {
	Writer io.Writer
	buf    bytes.Buffer
}

func (w *ViewWriter) Render(finalized []string, volatile string) error {
	w.buf.Reset()
	w.buf.Write(clearScreen)
	for _, line := range finalized {
		w.buf.WriteString(line)
		w.buf.Write(newLine)
	}
	w.buf.Write(greenColor)
	w.buf.WriteString(volatile)
	w.buf.Write(resetColor)

	_, err := w.Writer.Write(w.buf.Bytes())
	return err
}

var _ io.Writer = (*SegmentWriter)(nil)

// SegmentWriter writes each committed segment as its own line, which
// keeps the transcript file friendly to tail -f.
type SegmentWriter struct {
	Writer io.Writer
	buf    bytes.Buffer
}

func (w *SegmentWriter) Write(p []byte) (int, error) {
	w.buf.Reset()
	w.buf.Write(p)
	w.buf.Write(newLine)
	return w.Writer.Write(w.buf.Bytes())
}
