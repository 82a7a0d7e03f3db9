package ports

import (
	"context"

	"github.com/jpedro/master/internal/domain"
)

// CredentialSource may return a partially filled credential; callers decide
// whether missing fields are fatal.
type CredentialSource interface {
	Credentials(ctx context.Context) (domain.Credential, error)
}

type Prompter interface {
	Prompt(ctx context.Context, label string) (string, error)
	PromptMasked(ctx context.Context, label string) (string, error)
}

// ServicePicker asks the user for a service name, offering known names.
type ServicePicker interface {
	PickService(ctx context.Context, known []string) (string, error)
}
