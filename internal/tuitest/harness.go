package tuitest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/creack/pty"
)

const (
	defaultCols    = 80
	defaultRows    = 30
	defaultTimeout = 5 * time.Second
	readChunk      = 4096
)

// Step is one scripted interaction: wait Delay, then write Input to the PTY.
type Step struct {
	Delay time.Duration
	Input []byte
}

// Script builds a step list fluently.
type Script []Step

// Wait appends a pause.
func (s Script) Wait(d time.Duration) Script {
	return append(s, Step{Delay: d})
}

// Keys appends one step per key, each preceded by gap.
func (s Script) Keys(gap time.Duration, keys ...[]byte) Script {
	for _, k := range keys {
		s = append(s, Step{Delay: gap, Input: k})
	}
	return s
}

// Config describes the program under test and the terminal it runs in.
type Config struct {
	Command        []string
	Dir            string
	Env            []string
	Cols           int
	Rows           int
	Script         Script
	Timeout        time.Duration
	AllowInterrupt bool
}

// Recording holds the raw terminal stream and the frames parsed from it.
type Recording struct {
	Raw    []byte
	Frames []Frame
}

// Run starts the command on a pseudo terminal, plays the script and waits for
// the program to exit.
func Run(ctx context.Context, cfg Config) (*Recording, error) {
	if len(cfg.Command) == 0 {
		return nil, errors.New("tuitest: command is required")
	}
	cfg = withDefaults(cfg)
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, cfg.Command[0], cfg.Command[1:]...)
	cmd.Dir = cfg.Dir
	cmd.Env = buildEnv(cfg.Env)

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(cfg.Rows), Cols: uint16(cfg.Cols)})
	if err != nil {
		return nil, fmt.Errorf("tuitest: start program: %w", err)
	}
	defer func() { _ = ptmx.Close() }()

	var (
		mu     sync.Mutex
		output bytes.Buffer
	)
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		responder := newTerminalResponder(ptmx)
		buf := make([]byte, readChunk)
		for {
			n, readErr := ptmx.Read(buf)
			if n > 0 {
				responder.Process(buf[:n])
				mu.Lock()
				_, _ = output.Write(buf[:n])
				mu.Unlock()
			}
			if readErr != nil {
				return
			}
		}
	}()

	if err := play(ctx, ptmx, cfg.Script); err != nil {
		return nil, err
	}

	exited := make(chan error, 1)
	go func() { exited <- cmd.Wait() }()

	select {
	case err := <-exited:
		if err != nil && !exitAllowed(cfg, err) {
			return nil, fmt.Errorf("tuitest: program exited with error: %w", err)
		}
	case <-ctx.Done():
		return nil, fmt.Errorf("tuitest: timeout waiting for program exit: %w", ctx.Err())
	}

	// Closing the PTY unblocks the reader so the buffer can be drained.
	_ = ptmx.Close()
	<-drained

	mu.Lock()
	raw := append([]byte(nil), output.Bytes()...)
	mu.Unlock()
	return &Recording{Raw: raw, Frames: parseFrames(raw)}, nil
}

func withDefaults(cfg Config) Config {
	if cfg.Cols <= 0 {
		cfg.Cols = defaultCols
	}
	if cfg.Rows <= 0 {
		cfg.Rows = defaultRows
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return cfg
}

func play(ctx context.Context, w *os.File, script Script) error {
	for _, step := range script {
		if step.Delay > 0 {
			select {
			case <-ctx.Done():
				return fmt.Errorf("tuitest: context cancelled before script finished: %w", ctx.Err())
			case <-time.After(step.Delay):
			}
		}
		if len(step.Input) == 0 {
			continue
		}
		if _, err := w.Write(step.Input); err != nil {
			return fmt.Errorf("tuitest: write input: %w", err)
		}
	}
	return nil
}

// exitAllowed accepts a program killed by the interrupt the script sent.
func exitAllowed(cfg Config, err error) bool {
	return cfg.AllowInterrupt && strings.Contains(err.Error(), "signal: interrupt")
}

func buildEnv(extra []string) []string {
	env := append(os.Environ(), extra...)
	for _, entry := range env {
		if strings.HasPrefix(entry, "TERM=") {
			return env
		}
	}
	return append(env, "TERM=xterm-256color")
}

// Key sequences as a terminal sends them.
var (
	KeyEnter = []byte{'\r'}
	KeySpace = []byte{' '}
	KeyTab   = []byte{'\t'}
	KeyCtrlC = []byte{3}
	KeyUp    = []byte("\x1b[A")
	KeyDown  = []byte("\x1b[B")
	KeyRight = []byte("\x1b[C")
	KeyLeft  = []byte("\x1b[D")
)
