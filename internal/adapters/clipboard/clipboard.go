package clipboard

import (
	"context"
	"errors"
	"fmt"

	sysclip "github.com/atotto/clipboard"
	"github.com/jpedro/master/internal/ports"
)

var ErrUnavailable = errors.New("system clipboard unavailable")

type writeFunc func(text string) error

// System copies text with the platform clipboard utility (pbcopy, xsel,
// xclip, wl-copy or the Windows API).
type System struct {
	unsupported bool
	write       writeFunc
}

var _ ports.Clipboard = (*System)(nil)

func NewSystem() *System {
	return &System{unsupported: sysclip.Unsupported, write: sysclip.WriteAll}
}

func (s *System) Copy(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.unsupported {
		return ErrUnavailable
	}

	if err := s.write(text); err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return nil
}
