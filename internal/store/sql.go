package store

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"biodex/internal/debug"
	"biodex/internal/domain"
)

// dialect captures what differs between SQL backends.
type dialect struct {
	name string
	// numbered placeholders ($1, $2) instead of ?.
	numbered bool
	// returning reports support for INSERT/UPDATE ... RETURNING.
	returning bool
	// bootstrap holds CREATE TABLE IF NOT EXISTS statements run on open.
	bootstrap []string
}

// rebind rewrites ? placeholders for dialects that number them.
func (d dialect) rebind(query string) string {
	if !d.numbered {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

const speciesColumns = "id, author, scientific_name, common_name, kingdom, total_population, image, description"
const profileColumns = "id, email, display_name, biography"

// sqlClient implements Client over database/sql.
type sqlClient struct {
	db      *sql.DB
	dialect dialect
}

func newSQLClient(ctx context.Context, db *sql.DB, d dialect) (*sqlClient, error) {
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, remoteFailed("ping "+d.name, err)
	}
	for _, stmt := range d.bootstrap {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, remoteFailed("bootstrap "+d.name, err)
		}
	}
	debug.Logf("store: opened %s backend", d.name)
	return &sqlClient{db: db, dialect: d}, nil
}

func (c *sqlClient) Close() error {
	return c.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSpecies(row rowScanner) (domain.Species, error) {
	var (
		s           domain.Species
		kingdom     string
		commonName  sql.NullString
		population  sql.NullInt64
		image       sql.NullString
		description sql.NullString
	)
	if err := row.Scan(&s.ID, &s.Author, &s.ScientificName, &commonName, &kingdom, &population, &image, &description); err != nil {
		return domain.Species{}, err
	}
	s.Kingdom = domain.Kingdom(kingdom)
	s.CommonName = nullString(commonName)
	s.TotalPopulation = nullInt(population)
	s.Image = nullString(image)
	s.Description = nullString(description)
	return s, nil
}

func scanProfile(row rowScanner) (domain.Profile, error) {
	var (
		p   domain.Profile
		bio sql.NullString
	)
	if err := row.Scan(&p.ID, &p.Email, &p.DisplayName, &bio); err != nil {
		return domain.Profile{}, err
	}
	p.Biography = nullString(bio)
	return p, nil
}

func (c *sqlClient) ListSpecies(ctx context.Context) ([]domain.Species, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT `+speciesColumns+` FROM `+tableSpecies+` ORDER BY id`)
	if err != nil {
		return nil, remoteFailed("list species", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	species := []domain.Species{}
	for rows.Next() {
		s, err := scanSpecies(rows)
		if err != nil {
			return nil, remoteFailed("scan species", err)
		}
		species = append(species, s)
	}
	if err := rows.Err(); err != nil {
		return nil, remoteFailed("list species", err)
	}
	return species, nil
}

func (c *sqlClient) GetSpecies(ctx context.Context, id int64) (domain.Species, error) {
	query := c.dialect.rebind(`SELECT ` + speciesColumns + ` FROM ` + tableSpecies + ` WHERE id = ?`)
	s, err := scanSpecies(c.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Species{}, notFound("species", id)
	}
	if err != nil {
		return domain.Species{}, remoteFailed("get species", err)
	}
	return s, nil
}

func (c *sqlClient) CreateSpecies(ctx context.Context, author uuid.UUID, in domain.SpeciesInput) (domain.Species, error) {
	if err := in.Validate(); err != nil {
		return domain.Species{}, err
	}
	args := []any{author, in.ScientificName, in.CommonName, string(in.Kingdom), in.TotalPopulation, in.Image, in.Description}
	insert := `INSERT INTO ` + tableSpecies + ` (author, scientific_name, common_name, kingdom, total_population, image, description)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	if c.dialect.returning {
		row := c.db.QueryRowContext(ctx, c.dialect.rebind(insert+` RETURNING `+speciesColumns), args...)
		s, err := scanSpecies(row)
		if err != nil {
			return domain.Species{}, remoteFailed("create species", err)
		}
		return s, nil
	}

	res, err := c.db.ExecContext(ctx, c.dialect.rebind(insert), args...)
	if err != nil {
		return domain.Species{}, remoteFailed("create species", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Species{}, remoteFailed("create species", err)
	}
	return c.GetSpecies(ctx, id)
}

func (c *sqlClient) UpdateSpecies(ctx context.Context, id int64, in domain.SpeciesInput) ([]domain.Species, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	args := []any{in.ScientificName, in.CommonName, string(in.Kingdom), in.TotalPopulation, in.Image, in.Description, id}
	update := `UPDATE ` + tableSpecies + `
		SET scientific_name = ?, common_name = ?, kingdom = ?, total_population = ?, image = ?, description = ?
		WHERE id = ?`

	if !c.dialect.returning {
		if _, err := c.db.ExecContext(ctx, c.dialect.rebind(update), args...); err != nil {
			return nil, remoteFailed("update species", err)
		}
		s, err := c.GetSpecies(ctx, id)
		if err != nil {
			if isNotFound(err) {
				return []domain.Species{}, nil
			}
			return nil, err
		}
		return []domain.Species{s}, nil
	}

	rows, err := c.db.QueryContext(ctx, c.dialect.rebind(update+` RETURNING `+speciesColumns), args...)
	if err != nil {
		return nil, remoteFailed("update species", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	updated := []domain.Species{}
	for rows.Next() {
		s, err := scanSpecies(rows)
		if err != nil {
			return nil, remoteFailed("scan species", err)
		}
		updated = append(updated, s)
	}
	if err := rows.Err(); err != nil {
		return nil, remoteFailed("update species", err)
	}
	return updated, nil
}

func (c *sqlClient) DeleteSpecies(ctx context.Context, id int64) error {
	query := c.dialect.rebind(`DELETE FROM ` + tableSpecies + ` WHERE id = ?`)
	if _, err := c.db.ExecContext(ctx, query, id); err != nil {
		return remoteFailed("delete species", err)
	}
	return nil
}

func (c *sqlClient) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT `+profileColumns+` FROM `+tableProfiles+` ORDER BY display_name, id`)
	if err != nil {
		return nil, remoteFailed("list profiles", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	profiles := []domain.Profile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, remoteFailed("scan profile", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, remoteFailed("list profiles", err)
	}
	return profiles, nil
}

func (c *sqlClient) GetProfile(ctx context.Context, id uuid.UUID) (domain.Profile, error) {
	query := c.dialect.rebind(`SELECT ` + profileColumns + ` FROM ` + tableProfiles + ` WHERE id = ?`)
	p, err := scanProfile(c.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Profile{}, notFound("profile", id)
	}
	if err != nil {
		return domain.Profile{}, remoteFailed("get profile", err)
	}
	return p, nil
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}

func nullInt(ni sql.NullInt64) *int64 {
	if !ni.Valid {
		return nil
	}
	v := ni.Int64
	return &v
}
