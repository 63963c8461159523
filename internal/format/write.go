package format

import "quill/internal/source"

// Writer accumulates formatted output, interleaving verbatim source
// fragments with re-rendered comments.
type Writer struct {
	sf  *source.File
	buf []byte
}

// NewWriter creates a new formatting writer.
func NewWriter(sf *source.File) *Writer {
	return &Writer{
		sf:  sf,
		buf: make([]byte, 0, len(sf.Content)),
	}
}

// Bytes returns the accumulated formatted output.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// WriteString appends a string to the output.
func (w *Writer) WriteString(s string) {
	w.buf = append(w.buf, s...)
}

// CopyRange copies a clamped byte range from the source file to the output.
func (w *Writer) CopyRange(start, end int) {
	if w.sf == nil {
		return
	}
	if start < 0 {
		start = 0
	}
	if end > len(w.sf.Content) {
		end = len(w.sf.Content)
	}
	if start >= end {
		return
	}
	w.buf = append(w.buf, w.sf.Content[start:end]...)
}
