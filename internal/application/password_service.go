package application

import (
	"context"
	"errors"
	"fmt"

	clog "github.com/charmbracelet/log"
	"github.com/jpedro/master/internal/domain"
	"github.com/jpedro/master/internal/logging"
	"github.com/jpedro/master/internal/ports"
)

const (
	serviceFieldName = "service"
	redactedField    = "***"
)

// PasswordService implements the user-facing commands. The registry only
// ever sees service names; the credential and the password stay in memory.
type PasswordService struct {
	registry    ports.ServiceRegistry
	credentials ports.CredentialSource
	clipboard   ports.Clipboard
	picker      ports.ServicePicker
	logger      *clog.Logger
	layout      domain.ChunkLayout
}

type Options struct {
	Layout domain.ChunkLayout
	Picker ports.ServicePicker
	Logger *clog.Logger
}

func NewPasswordService(registry ports.ServiceRegistry, credentials ports.CredentialSource, clipboard ports.Clipboard, opts Options) *PasswordService {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	return &PasswordService{
		registry:    registry,
		credentials: credentials,
		clipboard:   clipboard,
		picker:      opts.Picker,
		logger:      logger,
		layout:      opts.Layout,
	}
}

func (s *PasswordService) Generate(ctx context.Context, cmd GenerateCommand) (GenerateResult, error) {
	if err := s.layout.Validate(); err != nil {
		return GenerateResult{}, err
	}

	credential, err := s.credentials.Credentials(ctx)
	if err != nil {
		return GenerateResult{}, fmt.Errorf("resolve credentials: %w", err)
	}
	if !credential.Complete() {
		return GenerateResult{}, domain.ErrCredentialsRequired
	}

	service, err := s.resolveService(ctx, cmd.Service)
	if err != nil {
		return GenerateResult{}, err
	}
	s.logger.Debug("resolved request", serviceFieldName, service, "counter", cmd.Counter)

	if err := s.registry.Add(ctx, service); err != nil {
		return GenerateResult{}, fmt.Errorf("record service: %w", err)
	}
	if err := s.registry.Save(ctx); err != nil {
		return GenerateResult{}, fmt.Errorf("save services: %w", err)
	}
	s.logger.Debug("recorded service", serviceFieldName, service)

	request := domain.NewDerivationRequest(credential, service, cmd.Counter, s.layout)
	redactedRequest := request
	redactedRequest.Username = redactedField
	redactedRequest.Secret = redactedField
	s.logger.Debug("derivation",
		"source", domain.CanonicalSource(redactedRequest),
		"chunks", request.ChunkCount,
		"length", request.ChunkLength,
		"separator", request.Separator,
	)

	password := domain.Derive(request)
	s.logger.Debug("derived password", "length", len(password))

	result := GenerateResult{Service: service, Password: password}
	if cmd.NoCopy {
		return result, nil
	}
	if err := s.clipboard.Copy(ctx, password); err != nil {
		s.logger.Debug("could not copy password", "err", err)
		result.CopyErr = err
		return result, nil
	}

	result.Copied = true
	return result, nil
}

func (s *PasswordService) resolveService(ctx context.Context, service string) (string, error) {
	if service != "" {
		return service, nil
	}
	if s.picker == nil {
		return "", domain.ErrServiceRequired
	}

	known, err := s.ListServices(ctx)
	if err != nil {
		return "", err
	}

	picked, err := s.picker.PickService(ctx, known)
	if err != nil {
		if errors.Is(err, domain.ErrNoTerminal) {
			return "", fmt.Errorf("%w: %w", domain.ErrServiceRequired, err)
		}
		return "", fmt.Errorf("pick service: %w", err)
	}
	if picked == "" {
		return "", domain.ErrServiceRequired
	}

	return picked, nil
}

func (s *PasswordService) ListServices(ctx context.Context) ([]string, error) {
	services, err := s.registry.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load services: %w", err)
	}
	s.logger.Debug("loaded services", "count", services.Len())

	return services.Names(), nil
}

func (s *PasswordService) RemoveService(ctx context.Context, service string) error {
	if service == "" {
		return domain.ErrServiceRequired
	}

	if err := s.registry.Remove(ctx, service); err != nil {
		return fmt.Errorf("forget service: %w", err)
	}
	if err := s.registry.Save(ctx); err != nil {
		return fmt.Errorf("save services: %w", err)
	}
	s.logger.Debug("removed service", serviceFieldName, service)

	return nil
}
