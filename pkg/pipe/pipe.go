// Package pipe manages the named pipe through which editors send triggers,
// and the listener that turns what arrives into signals.
package pipe

import (
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kevgo/tertestrial/pkg/errors"
	"golang.org/x/sys/unix"
)

// DefaultName is the file name of the pipe in the working directory
const DefaultName = ".testpipe"

// Pipe is a FIFO on the filesystem
type Pipe struct {
	Path string
}

// InDir returns the default pipe in the given directory
func InDir(dir string) *Pipe {
	return &Pipe{Path: filepath.Join(dir, DefaultName)}
}

// New returns a pipe at the given path
func New(path string) *Pipe {
	return &Pipe{Path: path}
}

// Create makes the FIFO, readable and writable only by the current user
func (p *Pipe) Create() error {
	if err := unix.Mkfifo(p.Path, 0700); err != nil {
		return errors.Wrapf(err, errors.ErrPipeCreate, "cannot create pipe %s", p.Path).
			WithHint("Please make sure the current directory is writable and no file with this name exists")
	}
	return nil
}

// Delete removes the FIFO
func (p *Pipe) Delete() error {
	if err := os.Remove(p.Path); err != nil {
		return errors.Wrapf(err, errors.ErrPipeDelete, "cannot delete pipe %s", p.Path)
	}
	return nil
}

// Exists reports whether something exists at the pipe's path
func (p *Pipe) Exists() bool {
	_, err := os.Lstat(p.Path)
	return !stderrors.Is(err, fs.ErrNotExist)
}

// IsFIFO reports whether the pipe's path is a named pipe
func (p *Pipe) IsFIFO() bool {
	info, err := os.Lstat(p.Path)
	return err == nil && info.Mode()&fs.ModeNamedPipe != 0
}

// Open opens the pipe for reading. This blocks until a writer opens it.
// Anything other than a FIFO at the path is refused.
func (p *Pipe) Open() (io.ReadCloser, error) {
	file, err := os.Open(p.Path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPipeOpen, "cannot open pipe %s", p.Path)
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, errors.Wrapf(err, errors.ErrPipeOpen, "cannot open pipe %s", p.Path)
	}
	if info.Mode()&fs.ModeNamedPipe == 0 {
		_ = file.Close()
		return nil, errors.Newf(errors.ErrPipeOpen, "%s is not a named pipe", p.Path).
			WithHint(notFIFOHint(p.Path))
	}
	return file, nil
}

func notFIFOHint(path string) string {
	return "Please delete " + path + " so that tertestrial can create the pipe"
}

// EnsureFIFO creates the pipe if nothing exists at its path. An existing
// FIFO is reused, any other file fails with PIPE_CREATE.
func (p *Pipe) EnsureFIFO() (created bool, err error) {
	if !p.Exists() {
		return true, p.Create()
	}
	if !p.IsFIFO() {
		return false, errors.Newf(errors.ErrPipeCreate, "%s exists and is not a named pipe", p.Path).
			WithHint(notFIFOHint(p.Path))
	}
	return false, nil
}
