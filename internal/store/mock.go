package store

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"biodex/internal/domain"
)

// ErrMockNotImplemented is returned when a MockClient read lacks an override.
var ErrMockNotImplemented = errors.New("store.MockClient: method not implemented")

// MockClient is a test double for Client. Reads without a stub fail with
// ErrMockNotImplemented; writes without a stub succeed.
type MockClient struct {
	ListSpeciesFn   func(context.Context) ([]domain.Species, error)
	GetSpeciesFn    func(context.Context, int64) (domain.Species, error)
	CreateSpeciesFn func(context.Context, uuid.UUID, domain.SpeciesInput) (domain.Species, error)
	UpdateSpeciesFn func(context.Context, int64, domain.SpeciesInput) ([]domain.Species, error)
	DeleteSpeciesFn func(context.Context, int64) error
	ListProfilesFn  func(context.Context) ([]domain.Profile, error)
	GetProfileFn    func(context.Context, uuid.UUID) (domain.Profile, error)

	mu                     sync.Mutex
	ListSpeciesCallCount   int
	GetSpeciesCallCount    int
	CreateSpeciesCallCount int
	UpdateSpeciesCallCount int
	DeleteSpeciesCallCount int
	ListProfilesCallCount  int
	GetProfileCallCount    int
	CreateSpeciesCallArgs  []CreateSpeciesCallArg
	UpdateSpeciesCallArgs  []UpdateSpeciesCallArg
	DeleteSpeciesCallArgs  []int64
	Closed                 bool
}

// CreateSpeciesCallArg captures arguments passed to CreateSpecies.
type CreateSpeciesCallArg struct {
	Author uuid.UUID
	Input  domain.SpeciesInput
}

// UpdateSpeciesCallArg captures arguments passed to UpdateSpecies.
type UpdateSpeciesCallArg struct {
	ID    int64
	Input domain.SpeciesInput
}

// NewMockClient returns a MockClient with zeroed handlers.
func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) ListSpecies(ctx context.Context) ([]domain.Species, error) {
	m.mu.Lock()
	m.ListSpeciesCallCount++
	m.mu.Unlock()
	if m.ListSpeciesFn == nil {
		return nil, ErrMockNotImplemented
	}
	return m.ListSpeciesFn(ctx)
}

func (m *MockClient) GetSpecies(ctx context.Context, id int64) (domain.Species, error) {
	m.mu.Lock()
	m.GetSpeciesCallCount++
	m.mu.Unlock()
	if m.GetSpeciesFn == nil {
		return domain.Species{}, ErrMockNotImplemented
	}
	return m.GetSpeciesFn(ctx, id)
}

// CreateSpecies echoes the input back with ID 1 unless stubbed.
func (m *MockClient) CreateSpecies(ctx context.Context, author uuid.UUID, in domain.SpeciesInput) (domain.Species, error) {
	m.mu.Lock()
	m.CreateSpeciesCallCount++
	m.CreateSpeciesCallArgs = append(m.CreateSpeciesCallArgs, CreateSpeciesCallArg{Author: author, Input: in})
	m.mu.Unlock()
	if m.CreateSpeciesFn == nil {
		return domain.Species{ID: 1, Author: author}.Apply(in), nil
	}
	return m.CreateSpeciesFn(ctx, author, in)
}

// UpdateSpecies returns one matching row unless stubbed.
func (m *MockClient) UpdateSpecies(ctx context.Context, id int64, in domain.SpeciesInput) ([]domain.Species, error) {
	m.mu.Lock()
	m.UpdateSpeciesCallCount++
	m.UpdateSpeciesCallArgs = append(m.UpdateSpeciesCallArgs, UpdateSpeciesCallArg{ID: id, Input: in})
	m.mu.Unlock()
	if m.UpdateSpeciesFn == nil {
		return []domain.Species{domain.Species{ID: id}.Apply(in)}, nil
	}
	return m.UpdateSpeciesFn(ctx, id, in)
}

func (m *MockClient) DeleteSpecies(ctx context.Context, id int64) error {
	m.mu.Lock()
	m.DeleteSpeciesCallCount++
	m.DeleteSpeciesCallArgs = append(m.DeleteSpeciesCallArgs, id)
	m.mu.Unlock()
	if m.DeleteSpeciesFn == nil {
		return nil
	}
	return m.DeleteSpeciesFn(ctx, id)
}

func (m *MockClient) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	m.mu.Lock()
	m.ListProfilesCallCount++
	m.mu.Unlock()
	if m.ListProfilesFn == nil {
		return nil, ErrMockNotImplemented
	}
	return m.ListProfilesFn(ctx)
}

func (m *MockClient) GetProfile(ctx context.Context, id uuid.UUID) (domain.Profile, error) {
	m.mu.Lock()
	m.GetProfileCallCount++
	m.mu.Unlock()
	if m.GetProfileFn == nil {
		return domain.Profile{}, ErrMockNotImplemented
	}
	return m.GetProfileFn(ctx, id)
}

func (m *MockClient) Close() error {
	m.mu.Lock()
	m.Closed = true
	m.mu.Unlock()
	return nil
}

// Calls returns a snapshot of the write call counts.
func (m *MockClient) Calls() (create, update, del int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CreateSpeciesCallCount, m.UpdateSpeciesCallCount, m.DeleteSpeciesCallCount
}
