package store

import (
	"context"
	"database/sql"
	"fmt"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Add(ctx context.Context, vehicleID string) error {
	query := `
		INSERT INTO favorites (vehicle_id, created_at)
		VALUES ($1, NOW())
		ON CONFLICT (vehicle_id) DO NOTHING
	`

	if _, err := s.db.ExecContext(ctx, query, vehicleID); err != nil {
		return fmt.Errorf("adding favorite: %w", err)
	}

	return nil
}

func (s *Store) Remove(ctx context.Context, vehicleID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM favorites WHERE vehicle_id = $1`, vehicleID); err != nil {
		return fmt.Errorf("removing favorite: %w", err)
	}

	return nil
}

func (s *Store) Exists(ctx context.Context, vehicleID string) (bool, error) {
	var exists bool

	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM favorites WHERE vehicle_id = $1)`, vehicleID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking favorite: %w", err)
	}

	return exists, nil
}

func (s *Store) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT vehicle_id FROM favorites ORDER BY created_at DESC, vehicle_id`)
	if err != nil {
		return nil, fmt.Errorf("listing favorites: %w", err)
	}
	defer rows.Close()

	var ids []string

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning favorite: %w", err)
		}

		ids = append(ids, id)
	}

	return ids, rows.Err()
}
