// Package chario writes single characters efficiently, preferring a
// destination's byte-level fast paths over allocating slices per write.
package chario

import "io"

// WriteByte writes one byte to w, using io.ByteWriter when available (as
// bufio.Writer and the in-memory buffers are).
func WriteByte(w io.Writer, c byte) error {
	if bw, ok := w.(io.ByteWriter); ok {
		return bw.WriteByte(c)
	}
	_, err := w.Write([]byte{c})
	return err
}

// WriteString writes s to w through io.StringWriter when available.
func WriteString(w io.Writer, s string) error {
	if sw, ok := w.(io.StringWriter); ok {
		_, err := sw.WriteString(s)
		return err
	}
	_, err := w.Write([]byte(s))
	return err
}
