// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"bytes"
	"strings"
)

// lineWriter adapts the io.Writer log sink to a channel of whole lines.
// Partial writes are buffered until a newline arrives; flush drains
// whatever remains when the run ends.
type lineWriter struct {
	lines chan<- string
	buf   bytes.Buffer
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.buf.Write(p)
	for {
		idx := bytes.IndexByte(w.buf.Bytes(), '\n')
		if idx < 0 {
			break
		}
		line := string(w.buf.Next(idx + 1))
		w.lines <- strings.TrimSuffix(line, "\n")
	}
	return len(p), nil
}

func (w *lineWriter) flush() {
	if w.buf.Len() > 0 {
		w.lines <- w.buf.String()
		w.buf.Reset()
	}
}
