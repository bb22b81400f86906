// Package ptyproc spawns a program under a pseudo-terminal and exposes
// Read/Write on the PTY master; the embedders shuttle those bytes to and
// from an internal/term.Terminal.
package ptyproc

import (
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/creack/pty"
)

// Logger is the logging capability ptyproc accepts; internal/logging's
// *Logger satisfies it. internal/term.Logger (Debugf only) does not.
// Process logs only its close event, at Debug level.
type Logger interface {
	Debugf(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Process wraps one spawned child and its PTY master end.
type Process struct {
	mu      sync.Mutex
	ptyFile *os.File
	cmd     *exec.Cmd
	closed  bool
	logger  Logger
}

// Spawn starts program with args under a new PTY sized cols x rows, with
// dir as its working directory and env appended to the current
// environment (plus a forced TERM).
func Spawn(program string, args []string, env []string, dir string, cols, rows int) (*Process, error) {
	cmd := exec.Command(program, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), env...)
	cmd.Env = append(cmd.Env, "TERM=xterm-256color")

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{
		Cols: uint16(cols),
		Rows: uint16(rows),
	})
	if err != nil {
		return nil, err
	}

	return &Process{ptyFile: ptmx, cmd: cmd}, nil
}

// SetLogger installs an optional lifecycle/debug logger.
func (p *Process) SetLogger(l Logger) { p.logger = l }

// Resize applies a new PTY window size; a no-op once the process has
// been closed.
func (p *Process) Resize(cols, rows int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || p.ptyFile == nil {
		return nil
	}
	return pty.Setsize(p.ptyFile, &pty.Winsize{Cols: uint16(cols), Rows: uint16(rows)})
}

// Write sends bytes to the child's stdin (the PTY master, read by the
// child as its controlling terminal's input).
func (p *Process) Write(b []byte) (int, error) {
	p.mu.Lock()
	closed := p.closed
	f := p.ptyFile
	p.mu.Unlock()
	if closed || f == nil {
		return 0, io.ErrClosedPipe
	}
	return f.Write(b)
}

// Read reads output bytes produced by the child. It does not hold the
// mutex across the blocking read, so Close can proceed concurrently.
func (p *Process) Read(b []byte) (int, error) {
	p.mu.Lock()
	closed := p.closed
	f := p.ptyFile
	p.mu.Unlock()
	if closed || f == nil {
		return 0, io.EOF
	}
	return f.Read(b)
}

// SendInterrupt writes Ctrl+C (0x03) to the child.
func (p *Process) SendInterrupt() error {
	_, err := p.Write([]byte{0x03})
	return err
}

// Wait blocks until the child exits and returns its exit error, if any.
func (p *Process) Wait() error {
	if p.cmd == nil {
		return nil
	}
	return p.cmd.Wait()
}

// Close terminates the child (if still running) and closes the PTY.
func (p *Process) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true

	if p.ptyFile != nil {
		p.ptyFile.Close()
	}
	if p.cmd != nil && p.cmd.Process != nil {
		p.cmd.Process.Kill()
		p.cmd.Wait()
	}
	if p.logger != nil {
		p.logger.Debugf("ptyproc: process closed")
	}
	return nil
}

// Running reports whether the child process is still alive.
func (p *Process) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || p.cmd == nil {
		return false
	}
	return p.cmd.ProcessState == nil
}
