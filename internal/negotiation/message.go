package negotiation

import "time"

// Type identifies what a chat message represents.
type Type string

const (
	TypeText              Type = "text"
	TypeOffer             Type = "offer"
	TypeCounterOffer      Type = "counter_offer"
	TypePurchaseRequest   Type = "purchase_request"
	TypeOfferAccepted     Type = "offer_accepted"
	TypeOfferDeclined     Type = "offer_declined"
	TypePurchaseConfirmed Type = "purchase_confirmed"
	TypePaymentComplete   Type = "payment_complete"
	TypeSystem            Type = "system"
	TypeVehicleCard       Type = "vehicle_card"
)

// Actionable reports whether messages of this type carry a status the counterparty can act on.
func (t Type) Actionable() bool {
	switch t {
	case TypeOffer, TypeCounterOffer, TypePurchaseRequest:
		return true
	}

	return false
}

type Sender string

const (
	SenderBuyer  Sender = "buyer"
	SenderDealer Sender = "dealer"
	SenderSystem Sender = "system"
)

// Role is the side of the negotiation an operation is performed as.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleDealer Role = "dealer"
)

func (r Role) Valid() bool {
	return r == RoleBuyer || r == RoleDealer
}

func (r Role) Sender() Sender {
	return Sender(r)
}

func (r Role) Other() Role {
	if r == RoleBuyer {
		return RoleDealer
	}

	return RoleBuyer
}

// Status is the lifecycle state of an offer-like message.
type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusDeclined  Status = "declined"
	StatusCountered Status = "countered"
)

// Terminal reports whether no further transition may be applied.
func (s Status) Terminal() bool {
	return s == StatusAccepted || s == StatusDeclined
}

// Data is the structured payload of offer-like, payment and vehicle card messages.
type Data struct {
	Status           Status
	Amount           int64
	OriginalPrice    int64
	NegotiationRound int
	Reference        string
	VehicleID        string
	VehicleTitle     string
}

type Message struct {
	ID        string
	Type      Type
	Content   string
	Sender    Sender
	Timestamp time.Time
	Data      *Data
}

// Pending reports whether m is an offer-like message still awaiting a response.
func (m Message) Pending() bool {
	return m.Type.Actionable() && m.Data != nil && m.Data.Status == StatusPending
}

func (m Message) clone() Message {
	if m.Data != nil {
		d := *m.Data
		m.Data = &d
	}

	return m
}
