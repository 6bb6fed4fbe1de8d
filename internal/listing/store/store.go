package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/carlot/internal/listing"
)

// Store persists listings in Postgres. Deletes are soft.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// Expected column order: id, vehicle_id, title, price, description, status, created_at, updated_at
const selectListingColumns = `id, vehicle_id, title, price, description, status, created_at, updated_at`

func scanListing(s scanner) (*listing.Listing, error) {
	var l listing.Listing

	var status string

	if err := s.Scan(
		&l.ID, &l.VehicleID, &l.Title, &l.Price, &l.Description, &status, &l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		return nil, err
	}

	l.Status = listing.Status(status)

	return &l, nil
}

func (s *Store) CreateListing(ctx context.Context, l *listing.Listing) error {
	query := `
		INSERT INTO listings (vehicle_id, title, price, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		l.VehicleID,
		l.Title,
		l.Price,
		l.Description,
		l.Status,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating listing: %w", err)
	}

	return nil
}

func (s *Store) GetListing(ctx context.Context, id uuid.UUID) (*listing.Listing, error) {
	query := `SELECT ` + selectListingColumns + `
		FROM listings
		WHERE id = $1 AND deleted_at IS NULL`

	l, err := scanListing(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, listing.ErrNotFound
		}

		return nil, fmt.Errorf("getting listing: %w", err)
	}

	return l, nil
}

func (s *Store) ListListings(ctx context.Context, filter listing.ListFilter) ([]*listing.Listing, error) {
	query := `SELECT ` + selectListingColumns + `
		FROM listings
		WHERE deleted_at IS NULL`

	var args []any

	if filter.Status != nil {
		query += " AND status = $1"

		args = append(args, *filter.Status)
	}

	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing listings: %w", err)
	}
	defer rows.Close()

	var ls []*listing.Listing

	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning listing: %w", err)
		}

		ls = append(ls, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating listings: %w", err)
	}

	return ls, nil
}

func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, status listing.Status) error {
	query := `
		UPDATE listings
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND deleted_at IS NULL
	`

	return s.execOne(ctx, "updating listing status", query, status, id)
}

func (s *Store) DeleteListing(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE listings
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	return s.execOne(ctx, "deleting listing", query, id)
}

// execOne runs a statement that must touch exactly one live row.
func (s *Store) execOne(ctx context.Context, op, query string, args ...any) error {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if n == 0 {
		return listing.ErrNotFound
	}

	return nil
}
