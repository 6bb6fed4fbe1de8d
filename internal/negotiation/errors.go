package negotiation

import "errors"

var (
	ErrInvalidAmount    = errors.New("amount must be a positive whole number")
	ErrInvalidRole      = errors.New("invalid role")
	ErrRoleNotAllowed   = errors.New("role cannot perform this action")
	ErrMessageNotFound  = errors.New("message not found")
	ErrNotActionable    = errors.New("message cannot be acted on")
	ErrAlreadyResolved  = errors.New("offer already resolved")
	ErrOwnOffer         = errors.New("cannot respond to your own offer")
	ErrRoundLimit       = errors.New("negotiation round limit reached")
	ErrNoPendingPayment = errors.New("no payment is awaiting completion")
	ErrPaymentMismatch  = errors.New("payment does not match the agreed terms")
	ErrPaymentInFlight  = errors.New("payment is already being processed")
)
