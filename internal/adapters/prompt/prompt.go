// Package prompt asks the user yes/no questions on the terminal.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/reso/internal/ui/style"
	"go.trai.ch/zerr"
)

var questionStyle = lipgloss.NewStyle().Foreground(style.Iris).Bold(true)

// Terminal reads answers from an input stream. With AssumeYes set every
// question is answered with yes without reading input.
type Terminal struct {
	mu        sync.Mutex
	in        *bufio.Reader
	out       io.Writer
	assumeYes bool
}

// New creates a prompter on stdin and stderr.
func New() *Terminal {
	return NewWithIO(os.Stdin, os.Stderr)
}

// NewWithIO creates a prompter on the given streams.
func NewWithIO(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// SetAssumeYes makes Confirm answer yes to every question.
func (t *Terminal) SetAssumeYes(v bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.assumeYes = v
}

// SetIO replaces the input and output streams.
func (t *Terminal) SetIO(in io.Reader, out io.Writer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.in = bufio.NewReader(in)
	t.out = out
}

// Confirm asks question and returns the answer. An empty answer selects def.
// The question is repeated until the answer is recognized.
func (t *Terminal) Confirm(question string, def bool) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}
	if t.assumeYes {
		_, _ = fmt.Fprintf(t.out, "%s %s y\n", questionStyle.Render(question), hint)
		return true, nil
	}
	for {
		_, _ = fmt.Fprintf(t.out, "%s %s ", questionStyle.Render(question), hint)
		line, err := t.in.ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		switch answer {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		case "":
			if err == nil || err == io.EOF {
				return def, nil
			}
		}
		if answer != "" {
			_, _ = fmt.Fprintln(t.out, "Please answer yes or no.")
		}
		if err != nil {
			if err == io.EOF {
				return false, zerr.New("no answer received")
			}
			return false, zerr.Wrap(err, "failed to read answer")
		}
	}
}
