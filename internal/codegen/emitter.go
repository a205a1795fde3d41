package codegen

import (
	"bytes"
	"fmt"
)

// emitter accumulates Go source text with block indentation.
// The final text is gofmt-formatted, so indentation only needs to be
// consistent enough to keep the raw output readable when formatting fails.
type emitter struct {
	buf    bytes.Buffer
	indent int
}

// emit writes a formatted, indented line to the output.
func (e *emitter) emit(format string, args ...interface{}) {
	for i := 0; i < e.indent; i++ {
		e.buf.WriteByte('\t')
	}
	fmt.Fprintf(&e.buf, format, args...)
	e.buf.WriteByte('\n')
}

// open writes a line ending a block header, such as "for {", and
// indents the lines that follow.
func (e *emitter) open(format string, args ...interface{}) {
	e.emit(format, args...)
	e.indent++
}

// close dedents and writes the closing line of a block.
func (e *emitter) close(format string, args ...interface{}) {
	e.indent--
	e.emit(format, args...)
}
