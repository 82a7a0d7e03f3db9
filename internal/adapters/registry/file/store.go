package file

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"syscall"

	"github.com/jpedro/master/internal/domain"
	"github.com/jpedro/master/internal/ports"
)

const (
	registryDirMode  = 0o700
	registryFileMode = 0o600
	tempFilePattern  = ".list-*.txt.tmp"
)

// Store keeps the set of known service names in a plaintext file, one name
// per line. The file is read at most once per Store.
type Store struct {
	path     string
	mu       sync.Mutex
	services domain.ServiceSet
}

var _ ports.ServiceRegistry = (*Store)(nil)

func NewStore(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("registry path is empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve registry path: %w", err)
	}

	return &Store{path: filepath.Clean(absPath)}, nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Load(ctx context.Context) (domain.ServiceSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(); err != nil {
		return nil, err
	}

	return s.services.Clone(), nil
}

func (s *Store) Add(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(); err != nil {
		return err
	}

	s.services.Add(name)
	return nil
}

func (s *Store) Remove(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(); err != nil {
		return err
	}

	s.services.Remove(name)
	return nil
}

func (s *Store) Save(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(); err != nil {
		return err
	}

	return s.write(encodeNames(s.services))
}

func (s *Store) loadLocked() error {
	if s.services != nil {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		// A regular file in place of a parent directory also means no registry yet.
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			s.services = domain.NewServiceSet()
			return nil
		}
		return fmt.Errorf("read registry file: %w", err)
	}

	services, err := decodeNames(data)
	if err != nil {
		return fmt.Errorf("decode registry file: %w", err)
	}

	s.services = services
	return nil
}

// decodeNames trims every line; a blank line becomes the empty name.
func decodeNames(data []byte) (domain.ServiceSet, error) {
	services := domain.NewServiceSet()
	if len(data) == 0 {
		return services, nil
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	for scanner.Scan() {
		services.Add(strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return services, nil
}

func encodeNames(services domain.ServiceSet) []byte {
	return []byte(strings.Join(services.Names(), "\n"))
}

func (s *Store) write(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, registryDirMode); err != nil {
		return fmt.Errorf("create registry directory: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp registry file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp registry file: %w", err)
	}

	if err := tempFile.Chmod(registryFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp registry file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp registry file: %w", err)
	}

	if err := os.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("replace registry file: %w", err)
	}

	cleanup = false
	return nil
}
