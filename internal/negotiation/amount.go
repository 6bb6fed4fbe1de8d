package negotiation

import "github.com/MrJamesThe3rd/carlot/internal/vehicle"

// ParseOfferAmount reads a user-entered amount such as "36,000". Anything that isn't a
// positive whole number yields ErrInvalidAmount.
func ParseOfferAmount(s string) (int64, error) {
	n, err := vehicle.ParsePrice(s)
	if err != nil || n <= 0 {
		return 0, ErrInvalidAmount
	}

	return n, nil
}
