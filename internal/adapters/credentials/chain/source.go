package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/jpedro/master/internal/domain"
	"github.com/jpedro/master/internal/ports"
)

const (
	usernamePrompt = "Enter your master username: "
	secretPrompt   = "Enter your master password: "
)

var (
	errNilPrimarySource = errors.New("primary credential source is nil")
	errNilPrompter      = errors.New("prompter is nil")
)

// Source takes what the primary source knows and prompts only for the
// fields it left empty.
type Source struct {
	primary  ports.CredentialSource
	prompter ports.Prompter
}

var _ ports.CredentialSource = (*Source)(nil)

func NewSource(primary ports.CredentialSource, prompter ports.Prompter) *Source {
	source, err := NewSourceChecked(primary, prompter)
	if err != nil {
		panic(err)
	}

	return source
}

func NewSourceChecked(primary ports.CredentialSource, prompter ports.Prompter) (*Source, error) {
	if primary == nil {
		return nil, errNilPrimarySource
	}
	if prompter == nil {
		return nil, errNilPrompter
	}

	return &Source{primary: primary, prompter: prompter}, nil
}

func (s *Source) Credentials(ctx context.Context) (domain.Credential, error) {
	credential, err := s.primary.Credentials(ctx)
	if err != nil {
		return domain.Credential{}, fmt.Errorf("resolve configured credentials: %w", err)
	}

	if credential.Username == "" {
		credential.Username, err = s.prompter.PromptMasked(ctx, usernamePrompt)
		if err != nil {
			return domain.Credential{}, fmt.Errorf("prompt master username: %w", err)
		}
	}

	if credential.Secret == "" {
		credential.Secret, err = s.prompter.PromptMasked(ctx, secretPrompt)
		if err != nil {
			return domain.Credential{}, fmt.Errorf("prompt master password: %w", err)
		}
	}

	return credential, nil
}
