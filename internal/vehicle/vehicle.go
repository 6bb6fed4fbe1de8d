package vehicle

import (
	"strconv"
	"strings"
	"time"
)

// PPSRStatus is the outcome of a Personal Property Securities Register search.
type PPSRStatus string

const (
	PPSRClear      PPSRStatus = "clear"
	PPSREncumbered PPSRStatus = "encumbered"
	PPSRWrittenOff PPSRStatus = "written_off"
	PPSRStolen     PPSRStatus = "stolen"
)

type PPSR struct {
	Status    PPSRStatus
	Reference string
	CheckedAt time.Time
}

// ConditionReport scores are out of 10.
type ConditionReport struct {
	Exterior   int
	Interior   int
	Mechanical int
	Tyres      int
	Notes      string
}

// Overall is the rounded mean of the four scores.
func (r ConditionReport) Overall() int {
	return (r.Exterior + r.Interior + r.Mechanical + r.Tyres + 2) / 4
}

type Seller struct {
	Name       string
	Dealership string
	Phone      string
	Email      string
	Rating     float64
}

// Vehicle is a read-only catalog record. Prices are whole dollars.
type Vehicle struct {
	ID           string
	Make         string
	Model        string
	Variant      string
	Year         int
	BodyType     string
	Transmission string
	FuelType     string
	Colour       string
	OdometerKM   int
	Location     string

	Price       int64
	TradePrice  int64
	RetailPrice int64
	AskingPrice int64 // zero when the seller hasn't set one

	Condition string
	PPSR      PPSR
	Report    ConditionReport
	Extras    []string
	Seller    Seller
	ImageKey  string
}

// Ask returns the asking price, falling back to the list price.
func (v Vehicle) Ask() int64 {
	if v.AskingPrice > 0 {
		return v.AskingPrice
	}

	return v.Price
}

func (v Vehicle) Title() string {
	parts := make([]string, 0, 4)
	if v.Year > 0 {
		parts = append(parts, strconv.Itoa(v.Year))
	}

	for _, p := range []string{v.Make, v.Model, v.Variant} {
		if p != "" {
			parts = append(parts, p)
		}
	}

	return strings.Join(parts, " ")
}
