package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrInvalidAmount = errors.New("payment amount must be positive")

type ResultStatus string

const (
	StatusSucceeded ResultStatus = "succeeded"
	StatusCancelled ResultStatus = "cancelled"
)

// Request is what the negotiation hands to the payment step once a price is agreed.
type Request struct {
	Amount       int64
	VehicleID    string
	VehicleTitle string
	Role         string
}

type Result struct {
	Status    ResultStatus
	Reference string
}

//go:generate mockgen -source=payment.go -destination=processor_mock.go -package=payment
type Processor interface {
	Charge(ctx context.Context, req Request) (Result, error)
}

// Simulated approves every well-formed request without moving money.
type Simulated struct{}

func NewSimulated() *Simulated {
	return &Simulated{}
}

func (s *Simulated) Charge(ctx context.Context, req Request) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	if req.Amount <= 0 {
		return Result{}, fmt.Errorf("charging %d: %w", req.Amount, ErrInvalidAmount)
	}

	return Result{
		Status:    StatusSucceeded,
		Reference: "SIM-" + uuid.NewString()[:8],
	}, nil
}
