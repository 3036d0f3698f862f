package ereport

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Outlet is a sink for Reports. Emit performs the side effect synchronously
// and returns any failure; outlets owning resources also implement io.Closer.
type Outlet interface {
	Emit(r Report) error
}

// OutletFunc adapts a plain function to Outlet.
type OutletFunc func(Report) error

func (f OutletFunc) Emit(r Report) error { return f(r) }

// WriterOutlet formats each Report as one line on an io.Writer.
// Writes are serialized so lines never interleave.
type WriterOutlet struct {
	mu        sync.Mutex
	w         io.Writer
	formatter Formatter
}

// NewWriterOutlet writes to w using f, or a TextFormatter when f is nil.
func NewWriterOutlet(w io.Writer, f Formatter) *WriterOutlet {
	if f == nil {
		f = NewTextFormatter()
	}
	return &WriterOutlet{w: w, formatter: f}
}

// NewConsoleOutlet writes to standard output. With a nil formatter it picks
// AdaptiveColorFormatter on a terminal and TextFormatter otherwise.
func NewConsoleOutlet(f Formatter) *WriterOutlet {
	if f == nil {
		f = DefaultConsoleFormatter()
	}
	return NewWriterOutlet(colorable.NewColorableStdout(), f)
}

// DefaultConsoleFormatter is the formatter console outlets use when none is given.
func DefaultConsoleFormatter() Formatter {
	if IsTerminal(os.Stdout) {
		return NewAdaptiveColorFormatter()
	}
	return NewTextFormatter()
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (o *WriterOutlet) Emit(r Report) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	line := o.formatter.Format(r)
	_, err := io.WriteString(o.w, line+"\n")
	return err
}

func (o *WriterOutlet) Formatter() Formatter {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.formatter
}

func (o *WriterOutlet) SetFormatter(f Formatter) {
	if f == nil {
		return
	}
	o.mu.Lock()
	o.formatter = f
	o.mu.Unlock()
}
