package listing

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=listing
type Repository interface {
	CreateListing(ctx context.Context, l *Listing) error
	GetListing(ctx context.Context, id uuid.UUID) (*Listing, error)
	ListListings(ctx context.Context, filter ListFilter) ([]*Listing, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	DeleteListing(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

type CreateParams struct {
	VehicleID   string `validate:"required"`
	Title       string `validate:"required,max=120"`
	Price       int64  `validate:"gt=0"`
	Description string `validate:"max=2000"`
	Status      Status `validate:"omitempty,oneof=available pending sold"`
}

type ListFilter struct {
	Status *Status
}

func (s *Service) Publish(ctx context.Context, params CreateParams) (*Listing, error) {
	if err := s.validate.Struct(params); err != nil {
		return nil, fmt.Errorf("invalid listing: %w", err)
	}

	status := params.Status
	if status == "" {
		status = StatusAvailable
	}

	l := &Listing{
		VehicleID:   params.VehicleID,
		Title:       params.Title,
		Price:       params.Price,
		Description: params.Description,
		Status:      status,
	}
	if err := s.repo.CreateListing(ctx, l); err != nil {
		return nil, err
	}

	return l, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Listing, error) {
	return s.repo.GetListing(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Listing, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	return s.repo.ListListings(ctx, filter)
}

func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteListing(ctx, id)
}

// Counts tallies listings per status. Every status is present in the result.
func (s *Service) Counts(ctx context.Context) (map[Status]int, error) {
	ls, err := s.repo.ListListings(ctx, ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("counting listings: %w", err)
	}

	counts := make(map[Status]int, len(statuses))
	for _, st := range statuses {
		counts[st] = 0
	}

	for _, l := range ls {
		counts[l.Status]++
	}

	return counts, nil
}
