package picker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jpedro/master/internal/domain"
	"github.com/jpedro/master/internal/ports"
	"golang.org/x/term"
)

var ErrUnexpectedPickerModel = errors.New("unexpected final bubbletea model type")

// Picker asks for a service name with completion from the stored names.
// When only stdin is a terminal it falls back to a plain line prompt.
type Picker struct {
	in          io.Reader
	out         io.Writer
	interactive func() bool
	rich        func() bool
	fallback    ports.Prompter
}

var _ ports.ServicePicker = (*Picker)(nil)

func NewPicker(in *os.File, out io.Writer, fallback ports.Prompter) *Picker {
	return &Picker{
		in:          in,
		out:         out,
		interactive: func() bool { return term.IsTerminal(int(in.Fd())) },
		rich: func() bool {
			f, ok := out.(*os.File)
			return ok && term.IsTerminal(int(f.Fd()))
		},
		fallback: fallback,
	}
}

func (p *Picker) PickService(ctx context.Context, known []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !p.interactive() {
		return "", domain.ErrNoTerminal
	}
	if p.fallback != nil && (p.rich == nil || !p.rich()) {
		answer, err := p.fallback.Prompt(ctx, serviceLabel)
		if err != nil {
			return "", fmt.Errorf("prompt service name: %w", err)
		}
		return answer, nil
	}

	program := tea.NewProgram(
		newModel(known),
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)

	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("run service picker: %w", err)
	}

	result, ok := final.(model)
	if !ok {
		return "", ErrUnexpectedPickerModel
	}
	if result.canceled {
		return "", domain.ErrPromptCanceled
	}

	return result.value, nil
}
