// Package prompt asks the user questions on a terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"tpaste/internal/apperror"
)

// Prompter asks questions. Every method returns an error matching
// apperror.ErrCancelled when the user abandons the prompt.
type Prompter interface {
	// Input asks for free text. An empty answer yields def.
	Input(question, def string) (string, error)

	// Select asks the user to pick one of choices. def is the index used
	// for an empty answer.
	Select(question string, choices []string, def int) (string, error)

	// Confirm asks a yes/no question. An empty answer yields def.
	Confirm(question string, def bool) (bool, error)
}

// Line is a Prompter reading one answer per line.
type Line struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLine creates a prompter reading answers from in and writing questions to out.
func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{in: bufio.NewReader(in), out: out}
}

func (p *Line) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", apperror.Cancelled("prompt was cancelled")
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Input implements Prompter.
func (p *Line) Input(question, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.out, "? %s (%s) ", question, def)
	} else {
		fmt.Fprintf(p.out, "? %s ", question)
	}
	answer, err := p.readLine()
	if err != nil {
		return "", err
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// Select implements Prompter. The answer may be the choice number or its text.
func (p *Line) Select(question string, choices []string, def int) (string, error) {
	if len(choices) == 0 {
		return "", fmt.Errorf("no choices for %q", question)
	}
	if def < 0 || def >= len(choices) {
		def = 0
	}
	for {
		fmt.Fprintf(p.out, "? %s\n", question)
		for i, choice := range choices {
			marker := " "
			if i == def {
				marker = ">"
			}
			fmt.Fprintf(p.out, "  %s %d) %s\n", marker, i+1, choice)
		}
		fmt.Fprintf(p.out, "  Answer [%d]: ", def+1)

		answer, err := p.readLine()
		if err != nil {
			return "", err
		}
		answer = strings.TrimSpace(answer)
		if answer == "" {
			return choices[def], nil
		}
		if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(choices) {
			return choices[n-1], nil
		}
		for _, choice := range choices {
			if strings.EqualFold(answer, choice) {
				return choice, nil
			}
		}
		fmt.Fprintf(p.out, "  invalid choice: %s\n", answer)
	}
}

// Confirm implements Prompter.
func (p *Line) Confirm(question string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	for {
		fmt.Fprintf(p.out, "? %s (%s) ", question, hint)
		answer, err := p.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "  please answer y or n")
	}
}
