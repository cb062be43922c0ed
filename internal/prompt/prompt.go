// Package prompt asks line-oriented questions on an interactive terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompter writes questions to out and reads trimmed answers from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a prompter reading from in. The buffered reader is shared with
// callers through Reader so that follow-up input is not lost.
func New(in io.Reader, out io.Writer) *Prompter {
	if out == nil {
		out = io.Discard
	}
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Reader returns the buffered reader behind the prompter.
func (p *Prompter) Reader() *bufio.Reader { return p.in }

// Printf writes to the prompter's output.
func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Ask prints question and returns the trimmed answer. An answer cut short by
// end of input is returned as is; io.EOF is returned only when nothing was
// read.
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// AskUntil repeats question until validate accepts the answer, printing each
// rejection before asking again.
func (p *Prompter) AskUntil(question string, validate func(string) error) (string, error) {
	for {
		answer, err := p.Ask(question)
		if err != nil {
			return "", err
		}
		if err := validate(answer); err != nil {
			fmt.Fprintln(p.out, err)
			continue
		}
		return answer, nil
	}
}
