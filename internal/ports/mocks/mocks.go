// Package mocks holds testify-based doubles for the ports interfaces.
package mocks

import (
	"context"

	"github.com/jpedro/master/internal/domain"
	"github.com/jpedro/master/internal/ports"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

var (
	_ ports.ServiceRegistry  = (*MockServiceRegistry)(nil)
	_ ports.CredentialSource = (*MockCredentialSource)(nil)
	_ ports.Prompter         = (*MockPrompter)(nil)
	_ ports.ServicePicker    = (*MockServicePicker)(nil)
	_ ports.Clipboard        = (*MockClipboard)(nil)
)

type MockServiceRegistry struct {
	mock.Mock
}

func NewMockServiceRegistry(t testingT) *MockServiceRegistry {
	m := &MockServiceRegistry{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockServiceRegistry) Load(ctx context.Context) (domain.ServiceSet, error) {
	args := m.Called(ctx)
	set, _ := args.Get(0).(domain.ServiceSet)
	return set, args.Error(1)
}

func (m *MockServiceRegistry) Add(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

func (m *MockServiceRegistry) Remove(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

func (m *MockServiceRegistry) Save(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockCredentialSource struct {
	mock.Mock
}

func NewMockCredentialSource(t testingT) *MockCredentialSource {
	m := &MockCredentialSource{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCredentialSource) Credentials(ctx context.Context) (domain.Credential, error) {
	args := m.Called(ctx)
	credential, _ := args.Get(0).(domain.Credential)
	return credential, args.Error(1)
}

type MockPrompter struct {
	mock.Mock
}

func NewMockPrompter(t testingT) *MockPrompter {
	m := &MockPrompter{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPrompter) Prompt(ctx context.Context, label string) (string, error) {
	args := m.Called(ctx, label)
	return args.String(0), args.Error(1)
}

func (m *MockPrompter) PromptMasked(ctx context.Context, label string) (string, error) {
	args := m.Called(ctx, label)
	return args.String(0), args.Error(1)
}

type MockServicePicker struct {
	mock.Mock
}

func NewMockServicePicker(t testingT) *MockServicePicker {
	m := &MockServicePicker{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockServicePicker) PickService(ctx context.Context, known []string) (string, error) {
	args := m.Called(ctx, known)
	return args.String(0), args.Error(1)
}

type MockClipboard struct {
	mock.Mock
}

func NewMockClipboard(t testingT) *MockClipboard {
	m := &MockClipboard{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockClipboard) Copy(ctx context.Context, text string) error {
	return m.Called(ctx, text).Error(0)
}
