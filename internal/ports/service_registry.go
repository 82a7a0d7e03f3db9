package ports

import (
	"context"

	"github.com/jpedro/master/internal/domain"
)

type ServiceRegistry interface {
	Load(ctx context.Context) (domain.ServiceSet, error)
	Add(ctx context.Context, name string) error
	Remove(ctx context.Context, name string) error
	Save(ctx context.Context) error
}
