package env

import (
	"context"

	"github.com/jpedro/master/internal/domain"
	"github.com/jpedro/master/internal/ports"
)

// Source hands back credentials that were resolved from configuration at
// startup. Either field may be empty.
type Source struct {
	credential domain.Credential
}

var _ ports.CredentialSource = (*Source)(nil)

func NewSource(username, secret string) *Source {
	return &Source{credential: domain.Credential{Username: username, Secret: secret}}
}

func (s *Source) Credentials(ctx context.Context) (domain.Credential, error) {
	if err := ctx.Err(); err != nil {
		return domain.Credential{}, err
	}

	return s.credential, nil
}
