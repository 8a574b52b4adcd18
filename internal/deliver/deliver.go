// Package deliver hands a resolved command to the terminal: typed into a
// tmux pane, copied to the clipboard or printed.
package deliver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/atotto/clipboard"

	"github.com/nikbrunner/cbm/internal/logging/events"
)

// Mode selects where commands are delivered.
type Mode string

const (
	ModeAuto      Mode = "auto"
	ModeTmux      Mode = "tmux"
	ModeClipboard Mode = "clipboard"
	ModeStdout    Mode = "stdout"
)

// ParseMode validates a configured output mode. Empty means auto.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case "":
		return ModeAuto, nil
	case ModeAuto, ModeTmux, ModeClipboard, ModeStdout:
		return m, nil
	default:
		return "", fmt.Errorf("unknown output mode %q (want auto, tmux, clipboard or stdout)", s)
	}
}

// Deliverer sends text to its configured destination.
type Deliverer struct {
	mode   Mode
	target string
	out    io.Writer

	insideTmux func() bool
	runTmux    func(args ...string) error
	copyText   func(text string) error
	noClip     bool
}

// Option customises a Deliverer.
type Option func(*Deliverer)

// WithTmux replaces the tmux detection and command runner.
func WithTmux(inside func() bool, run func(args ...string) error) Option {
	return func(d *Deliverer) {
		d.insideTmux = inside
		d.runTmux = run
	}
}

// WithClipboard replaces the clipboard writer. A nil writer disables the
// clipboard.
func WithClipboard(copyText func(text string) error) Option {
	return func(d *Deliverer) {
		d.copyText = copyText
		d.noClip = copyText == nil
	}
}

// New creates a Deliverer. target is the tmux pane to type into; empty
// means the pane tmux considers current.
func New(mode Mode, target string, out io.Writer, opts ...Option) *Deliverer {
	d := &Deliverer{
		mode:       mode,
		target:     target,
		out:        out,
		insideTmux: func() bool { return os.Getenv("TMUX") != "" },
		runTmux:    runTmux,
		copyText:   clipboard.WriteAll,
		noClip:     clipboard.Unsupported,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Deliver sends text and returns a short description of where it went.
func (d *Deliverer) Deliver(text string) (string, error) {
	switch d.mode {
	case ModeTmux:
		return d.toTmux(text)
	case ModeClipboard:
		return d.toClipboard(text)
	case ModeStdout:
		return d.toStdout(text)
	}

	if d.insideTmux() {
		where, err := d.toTmux(text)
		if err == nil {
			return where, nil
		}
		events.Deliver.Fallback(string(ModeTmux), string(ModeClipboard), err)
	}
	if !d.noClip {
		where, err := d.toClipboard(text)
		if err == nil {
			return where, nil
		}
		events.Deliver.Fallback(string(ModeClipboard), string(ModeStdout), err)
	}
	return d.toStdout(text)
}

func (d *Deliverer) toTmux(text string) (string, error) {
	args := []string{"send-keys", "-l"}
	if d.target != "" {
		args = append(args, "-t", d.target)
	}
	args = append(args, "--", text)

	if err := d.runTmux(args...); err != nil {
		return "", fmt.Errorf("tmux send-keys: %w", err)
	}

	where := "tmux"
	if d.target != "" {
		where += ":" + d.target
	}
	events.Deliver.Sent(string(ModeTmux), d.target, len(text))
	return where, nil
}

func (d *Deliverer) toClipboard(text string) (string, error) {
	if d.noClip {
		return "", errors.New("clipboard: no clipboard utility available")
	}
	if err := d.copyText(text); err != nil {
		return "", fmt.Errorf("clipboard: %w", err)
	}
	events.Deliver.Sent(string(ModeClipboard), "", len(text))
	return string(ModeClipboard), nil
}

func (d *Deliverer) toStdout(text string) (string, error) {
	if _, err := io.WriteString(d.out, text); err != nil {
		return "", err
	}
	events.Deliver.Sent(string(ModeStdout), "", len(text))
	return string(ModeStdout), nil
}

func runTmux(args ...string) error {
	out, err := exec.Command("tmux", args...).CombinedOutput()
	if err != nil && len(out) > 0 {
		return fmt.Errorf("%w: %s", err, out)
	}
	return err
}
