package listing

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("listing not found")
	ErrInvalidStatus = errors.New("invalid listing status")
)

// Status is where a published listing is in the sale process.
type Status string

const (
	StatusAvailable Status = "available"
	StatusPending   Status = "pending"
	StatusSold      Status = "sold"
)

var statuses = []Status{StatusAvailable, StatusPending, StatusSold}

func Statuses() []Status {
	return append([]Status(nil), statuses...)
}

func (s Status) Valid() bool {
	for _, v := range statuses {
		if s == v {
			return true
		}
	}

	return false
}

// Next cycles available -> pending -> sold -> available.
func (s Status) Next() Status {
	for i, v := range statuses {
		if s == v {
			return statuses[(i+1)%len(statuses)]
		}
	}

	return StatusAvailable
}

// Listing is a vehicle a seller has published for sale. It is separate from the catalog
// record it was created from.
type Listing struct {
	ID          uuid.UUID
	VehicleID   string
	Title       string
	Price       int64 // whole dollars
	Description string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
