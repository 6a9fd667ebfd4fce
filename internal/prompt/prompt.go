// Package prompt asks the user yes/no and free-text questions.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// Prompter provides the questions the installer asks.
type Prompter interface {
	// Confirm asks a yes/no question; def is returned on an empty answer.
	Confirm(question string, def bool) (bool, error)
	// Input asks for a value; def is returned on an empty answer.
	Input(question, def string) (string, error)
}

// New returns the prompter for the current process.
// assumeYes answers every question with yes or its default; otherwise a
// terminal form is used when stdin and stdout are terminals, and a plain line
// reader when they are not.
func New(assumeYes bool) Prompter {
	if assumeYes {
		return Defaults{Yes: true}
	}
	if IsInteractive() {
		return HuhPrompter{}
	}
	return NewLinePrompter(os.Stdin, os.Stdout)
}

// IsInteractive reports whether stdin and stdout are both terminals.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Defaults answers without asking.
type Defaults struct {
	Yes bool // Confirm returns true instead of the default
}

func (d Defaults) Confirm(_ string, def bool) (bool, error) {
	if d.Yes {
		return true, nil
	}
	return def, nil
}

func (d Defaults) Input(_, def string) (string, error) {
	return def, nil
}

// LinePrompter reads one answer per line.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter reads answers from in and writes questions to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

func (p *LinePrompter) Confirm(question string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	answer, err := p.ask(fmt.Sprintf("%s (%s): ", question, hint))
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (p *LinePrompter) Input(question, def string) (string, error) {
	answer, err := p.ask(fmt.Sprintf("%s (default: %s): ", question, def))
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// ask prints the question and returns the trimmed answer.
// EOF counts as an empty answer so piped input falls back to defaults.
func (p *LinePrompter) ask(question string) (string, error) {
	if _, err := fmt.Fprint(p.out, question); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// HuhPrompter renders terminal forms with charmbracelet/huh.
type HuhPrompter struct{}

var runForm = func(form *huh.Form) error { return form.Run() }

func (HuhPrompter) Confirm(question string, def bool) (bool, error) {
	value := def
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(question).
			Affirmative("Yes").
			Negative("No").
			Value(&value),
	))
	if err := runForm(form); err != nil {
		return false, fmt.Errorf("prompt aborted: %w", err)
	}
	return value, nil
}

func (HuhPrompter) Input(question, def string) (string, error) {
	var value string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(question).
			Placeholder(def).
			Value(&value),
	))
	if err := runForm(form); err != nil {
		return "", fmt.Errorf("prompt aborted: %w", err)
	}
	if strings.TrimSpace(value) == "" {
		return def, nil
	}
	return strings.TrimSpace(value), nil
}
