package csvcatalog

// field is a vehicle attribute a profile can map a column to.
type field int

const (
	fieldID field = iota
	fieldMake
	fieldModel
	fieldVariant
	fieldYear
	fieldBody
	fieldTransmission
	fieldFuel
	fieldColour
	fieldOdometer
	fieldLocation
	fieldPrice
	fieldTradePrice
	fieldRetailPrice
	fieldAskingPrice
	fieldCondition
	fieldPPSR
	fieldImage
	fieldSeller
	fieldDealership
)

// required fields must all be present for a profile to match a header row.
var required = []field{fieldID, fieldMake, fieldModel, fieldPrice}

// Profile maps the column headers of one export layout onto vehicle fields.
type Profile struct {
	Name    string
	Comma   rune
	Columns map[field]string
}

var profiles = []Profile{
	{
		Name:  "carlot",
		Comma: ',',
		Columns: map[field]string{
			fieldID:           "id",
			fieldMake:         "make",
			fieldModel:        "model",
			fieldVariant:      "variant",
			fieldYear:         "year",
			fieldBody:         "body_type",
			fieldTransmission: "transmission",
			fieldFuel:         "fuel_type",
			fieldColour:       "colour",
			fieldOdometer:     "odometer_km",
			fieldLocation:     "location",
			fieldPrice:        "price",
			fieldTradePrice:   "trade_price",
			fieldRetailPrice:  "retail_price",
			fieldAskingPrice:  "asking_price",
			fieldCondition:    "condition",
			fieldPPSR:         "ppsr_status",
			fieldImage:        "image_key",
			fieldSeller:       "seller",
			fieldDealership:   "dealership",
		},
	},
	{
		// Dealer management system stock export.
		Name:  "dms",
		Comma: ';',
		Columns: map[field]string{
			fieldID:           "Stock No",
			fieldMake:         "Make",
			fieldModel:        "Model",
			fieldVariant:      "Badge",
			fieldYear:         "Build Year",
			fieldBody:         "Body",
			fieldTransmission: "Gearbox",
			fieldFuel:         "Fuel",
			fieldColour:       "Colour",
			fieldOdometer:     "Kms",
			fieldLocation:     "Yard",
			fieldPrice:        "Drive Away",
			fieldTradePrice:   "Trade",
			fieldRetailPrice:  "Retail",
			fieldAskingPrice:  "Web Price",
			fieldPPSR:         "PPSR",
			fieldSeller:       "Salesperson",
			fieldDealership:   "Dealer",
		},
	},
}

// matches reports whether every required column of p is in cols.
func (p Profile) matches(cols map[string]int) bool {
	for _, f := range required {
		if _, ok := cols[p.Columns[f]]; !ok {
			return false
		}
	}

	return true
}
