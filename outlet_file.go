package ereport

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/spf13/afero"
)

// FileOption configures a FileOutlet.
type FileOption func(*fileOptions)

type fileOptions struct {
	fs        afero.Fs
	formatter Formatter
	perm      os.FileMode
}

// WithFs opens the file on fs instead of the OS filesystem.
func WithFs(fs afero.Fs) FileOption {
	return func(o *fileOptions) { o.fs = fs }
}

// WithFormatter sets the outlet's formatter (default TextFormatter).
func WithFormatter(f Formatter) FileOption {
	return func(o *fileOptions) { o.formatter = f }
}

// WithPerm sets the mode used when the file is created (default 0644).
func WithPerm(perm os.FileMode) FileOption {
	return func(o *fileOptions) { o.perm = perm }
}

// FileOutlet appends one formatted line per Report to a file it keeps open
// until Close. Every line is synced before Emit returns.
type FileOutlet struct {
	mu        sync.Mutex
	path      string
	file      afero.File
	formatter Formatter
}

// NewFileOutlet opens path, truncating it when truncate is set and
// appending otherwise.
func NewFileOutlet(path string, truncate bool, opts ...FileOption) (*FileOutlet, error) {
	o := fileOptions{perm: 0o644}
	for _, opt := range opts {
		opt(&o)
	}
	if o.fs == nil {
		o.fs = afero.NewOsFs()
	}
	if o.formatter == nil {
		o.formatter = NewTextFormatter()
	}

	flag := os.O_CREATE | os.O_WRONLY
	if truncate {
		flag |= os.O_TRUNC
	} else {
		flag |= os.O_APPEND
	}
	f, err := o.fs.OpenFile(path, flag, o.perm)
	if err != nil {
		return nil, fmt.Errorf("ereport: open %s: %w", path, err)
	}
	return &FileOutlet{path: path, file: f, formatter: o.formatter}, nil
}

// Path returns the file path the outlet writes to.
func (o *FileOutlet) Path() string { return o.path }

func (o *FileOutlet) Emit(r Report) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.file == nil {
		return ErrClosed
	}
	line := o.formatter.Format(r)
	if _, err := io.WriteString(o.file, line+"\n"); err != nil {
		return fmt.Errorf("ereport: write %s: %w", o.path, err)
	}
	if err := o.file.Sync(); err != nil {
		return fmt.Errorf("ereport: sync %s: %w", o.path, err)
	}
	return nil
}

func (o *FileOutlet) Formatter() Formatter {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.formatter
}

func (o *FileOutlet) SetFormatter(f Formatter) {
	if f == nil {
		return
	}
	o.mu.Lock()
	o.formatter = f
	o.mu.Unlock()
}

// Close releases the file. Closing twice is a no-op.
func (o *FileOutlet) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.file == nil {
		return nil
	}
	err := o.file.Close()
	o.file = nil
	if err != nil {
		return fmt.Errorf("ereport: close %s: %w", o.path, err)
	}
	return nil
}
