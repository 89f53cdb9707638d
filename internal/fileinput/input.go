// Package fileinput assembles interpreter source text from any number of
// named inputs -- literal strings, readers, files -- concatenated in the
// order they were added, and maps byte offsets in the combined text back to
// a file and line for diagnostics.
package fileinput

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Location names a line in one of the inputs that built a Source.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Source is the combined text of all inputs, retaining where each input's
// bytes begin so offsets can be located.
type Source struct {
	Text   string
	chunks []chunk
}

type chunk struct {
	name string
	off  int
}

// Locate resolves a byte offset in the combined text to the input it came
// from and the 1-based line within that input.
func (src Source) Locate(off int) Location {
	if off > len(src.Text) {
		off = len(src.Text)
	}
	loc := Location{Name: "<no input>", Line: 1}
	start := 0
	for _, c := range src.chunks {
		if c.off > off {
			break
		}
		loc.Name = c.name
		start = c.off
	}
	loc.Line += strings.Count(src.Text[start:off], "\n")
	return loc
}

// Queue collects inputs to be slurped into a Source.  Readers and files are
// not touched until Slurp, so queuing cannot fail.
type Queue struct {
	inputs []input
}

type input struct {
	name string
	text string
	r    io.Reader
	path string
}

func (q *Queue) AddString(name, text string) {
	q.inputs = append(q.inputs, input{name: name, text: text})
}

func (q *Queue) AddReader(r io.Reader) {
	q.inputs = append(q.inputs, input{name: NameOf(r), r: r})
}

func (q *Queue) AddFile(path string) {
	q.inputs = append(q.inputs, input{name: path, path: path})
}

// Slurp reads every queued input in order, returning the concatenated
// Source.  Files are opened, read whole, and closed here.
func (q *Queue) Slurp() (Source, error) {
	var src Source
	var sb strings.Builder
	for _, in := range q.inputs {
		text := in.text
		switch {
		case in.r != nil:
			b, err := io.ReadAll(in.r)
			if err != nil {
				return Source{}, fmt.Errorf("reading %v: %w", in.name, err)
			}
			text = string(b)
		case in.path != "":
			b, err := os.ReadFile(in.path)
			if err != nil {
				return Source{}, err
			}
			text = string(b)
		}
		src.chunks = append(src.chunks, chunk{name: in.name, off: sb.Len()})
		sb.WriteString(text)
	}
	src.Text = sb.String()
	return src, nil
}

// NameOf names a reader for diagnostics, using a Name method when the
// reader has one (os.File does).
func NameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
