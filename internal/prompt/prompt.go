// SPDX-License-Identifier: MPL-2.0

package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/powcalc/powcalc/pkg/types"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

const (
	namePrompt     = "Enter your name (letters only, no numbers): "
	basePrompt     = "Enter the first positive integer (base): "
	exponentPrompt = "Enter the second positive integer (exponent): "

	invalidNameMsg = "Invalid name. Please use only letters."
	invalidIntMsg  = "Invalid input. Please enter a positive integer."
)

var (
	// ErrInputClosed is returned when input ends before a valid answer.
	ErrInputClosed = errors.New("input closed before a valid answer was given")
	// ErrAborted is returned when the user cancels a form.
	ErrAborted = errors.New("prompt aborted")
)

type (
	// Options configures a Session.
	Options struct {
		// Forms enables huh forms. Callers usually set it from IsTerminal.
		Forms bool
		// Accessible forces the line-oriented dialogue even when Forms is set.
		Accessible bool
		// Theme styles forms; nil uses huh.ThemeCharm.
		Theme *huh.Theme
	}

	// Answers holds one complete set of console inputs.
	Answers struct {
		Name     types.PersonName
		Base     types.PositiveInt
		Exponent types.PositiveInt
	}

	// Session asks questions on one input/output pair.
	Session struct {
		in    io.Reader
		lines *bufio.Scanner
		out   io.Writer
		forms bool
		theme *huh.Theme
	}
)

// NewSession creates a session reading answers from in and writing prompts
// to out.
func NewSession(in io.Reader, out io.Writer, opts Options) *Session {
	theme := opts.Theme
	if theme == nil {
		theme = huh.ThemeCharm()
	}
	return &Session{
		in:    in,
		lines: bufio.NewScanner(in),
		out:   out,
		forms: opts.Forms && !opts.Accessible,
		theme: theme,
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Ask collects a name, a base and an exponent in that order.
func (s *Session) Ask(ctx context.Context) (Answers, error) {
	var a Answers
	var err error
	if a.Name, err = s.Name(ctx); err != nil {
		return Answers{}, err
	}
	if a.Base, err = s.PositiveInt(ctx, basePrompt); err != nil {
		return Answers{}, err
	}
	if a.Exponent, err = s.PositiveInt(ctx, exponentPrompt); err != nil {
		return Answers{}, err
	}
	return a, nil
}

// Name asks for a name made of letters and spaces.
func (s *Session) Name(ctx context.Context) (types.PersonName, error) {
	answer, err := s.ask(ctx, namePrompt, invalidNameMsg, func(v string) error {
		return types.PersonName(v).Validate()
	})
	if err != nil {
		return "", err
	}
	return types.PersonName(answer), nil
}

// PositiveInt asks question until the answer parses as a positive integer.
func (s *Session) PositiveInt(ctx context.Context, question string) (types.PositiveInt, error) {
	answer, err := s.ask(ctx, question, invalidIntMsg, func(v string) error {
		_, err := types.ParsePositiveInt(v)
		return err
	})
	if err != nil {
		return 0, err
	}
	return types.ParsePositiveInt(answer)
}

func (s *Session) ask(ctx context.Context, question, invalidMsg string, validate func(string) error) (string, error) {
	if s.forms {
		return s.askForm(ctx, question, validate)
	}
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if _, err := io.WriteString(s.out, question); err != nil {
			return "", fmt.Errorf("failed to write prompt: %w", err)
		}
		if !s.lines.Scan() {
			if err := s.lines.Err(); err != nil {
				return "", fmt.Errorf("failed to read answer: %w", err)
			}
			return "", ErrInputClosed
		}
		answer := strings.TrimRight(s.lines.Text(), "\r")
		if validate(answer) == nil {
			return answer, nil
		}
		if _, err := fmt.Fprintln(s.out, invalidMsg); err != nil {
			return "", fmt.Errorf("failed to write prompt: %w", err)
		}
	}
}

func (s *Session) askForm(ctx context.Context, question string, validate func(string) error) (string, error) {
	var answer string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(strings.TrimSuffix(question, ": ")).
				Validate(validate).
				Value(&answer),
		),
	).WithTheme(s.theme).WithInput(s.in).WithOutput(s.out)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrAborted
		}
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	return answer, nil
}
