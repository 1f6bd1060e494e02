// Package store talks to the relational data service behind biodex.
//
// Client is implemented over database/sql (SQLite, Postgres, MySQL) and over
// the PostgREST HTTP dialect exposed by hosted Postgres services. All
// implementations return errors.Error values whose Message is the text the
// service produced, so it can be shown to the user unchanged.
package store

import (
	"context"

	"github.com/google/uuid"

	"biodex/internal/domain"
)

// Client is the remote data service.
type Client interface {
	ListSpecies(ctx context.Context) ([]domain.Species, error)
	GetSpecies(ctx context.Context, id int64) (domain.Species, error)
	CreateSpecies(ctx context.Context, author uuid.UUID, in domain.SpeciesInput) (domain.Species, error)
	// UpdateSpecies replaces every editable field of the row with the given
	// id and returns the rows that matched.
	UpdateSpecies(ctx context.Context, id int64, in domain.SpeciesInput) ([]domain.Species, error)
	DeleteSpecies(ctx context.Context, id int64) error

	ListProfiles(ctx context.Context) ([]domain.Profile, error)
	GetProfile(ctx context.Context, id uuid.UUID) (domain.Profile, error)

	Close() error
}

const (
	tableSpecies  = "species"
	tableProfiles = "profiles"
)
