package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jpedro/master/internal/domain"
	"github.com/jpedro/master/internal/ports"
	"golang.org/x/term"
)

// Prompter reads answers from an interactive terminal. Prompts go to out so
// stdout stays clean for piping.
type Prompter struct {
	fd           int
	reader       *bufio.Reader
	out          io.Writer
	isTerminal   func(fd int) bool
	readPassword func(fd int) ([]byte, error)
}

var _ ports.Prompter = (*Prompter)(nil)

func NewPrompter(in *os.File, out io.Writer) *Prompter {
	return newPrompter(int(in.Fd()), in, out, term.IsTerminal, term.ReadPassword)
}

func newPrompter(fd int, in io.Reader, out io.Writer, isTerminal func(int) bool, readPassword func(int) ([]byte, error)) *Prompter {
	return &Prompter{
		fd:           fd,
		reader:       bufio.NewReader(in),
		out:          out,
		isTerminal:   isTerminal,
		readPassword: readPassword,
	}
}

func (p *Prompter) Interactive() bool {
	return p.isTerminal(p.fd)
}

func (p *Prompter) Prompt(ctx context.Context, label string) (string, error) {
	if err := p.ready(ctx); err != nil {
		return "", err
	}

	if _, err := fmt.Fprint(p.out, label); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	line, err := p.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("read answer: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (p *Prompter) PromptMasked(ctx context.Context, label string) (string, error) {
	if err := p.ready(ctx); err != nil {
		return "", err
	}

	if _, err := fmt.Fprint(p.out, label); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	answer, err := p.readPassword(p.fd)
	_, _ = fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("read masked answer: %w", err)
	}

	return string(answer), nil
}

func (p *Prompter) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !p.Interactive() {
		return domain.ErrNoTerminal
	}
	return nil
}
