package favorite

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidVehicle = errors.New("vehicle id is required")

type Repository interface {
	Add(ctx context.Context, vehicleID string) error
	Remove(ctx context.Context, vehicleID string) error
	Exists(ctx context.Context, vehicleID string) (bool, error)
	// List returns favorited vehicle ids, most recently added first.
	List(ctx context.Context) ([]string, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Toggle flips the favorite state of vehicleID and returns the new state.
func (s *Service) Toggle(ctx context.Context, vehicleID string) (bool, error) {
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return false, ErrInvalidVehicle
	}

	exists, err := s.repo.Exists(ctx, vehicleID)
	if err != nil {
		return false, fmt.Errorf("checking favorite: %w", err)
	}

	if exists {
		if err := s.repo.Remove(ctx, vehicleID); err != nil {
			return true, fmt.Errorf("removing favorite: %w", err)
		}

		return false, nil
	}

	if err := s.repo.Add(ctx, vehicleID); err != nil {
		return false, fmt.Errorf("adding favorite: %w", err)
	}

	return true, nil
}

func (s *Service) IsFavorite(ctx context.Context, vehicleID string) (bool, error) {
	return s.repo.Exists(ctx, vehicleID)
}

func (s *Service) List(ctx context.Context) ([]string, error) {
	return s.repo.List(ctx)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	ids, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}

	return len(ids), nil
}
