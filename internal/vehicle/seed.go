package vehicle

import "time"

func checked(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seed() []Vehicle {
	return []Vehicle{
		{
			ID: "1", Make: "Ford", Model: "Ranger", Variant: "XLT 3.2 (4x4)", Year: 2019,
			BodyType: "Ute", Transmission: "Automatic", FuelType: "Diesel", Colour: "Shadow Black",
			OdometerKM: 84210, Location: "Parramatta, NSW",
			Price: 38990, TradePrice: 33500, RetailPrice: 39990, AskingPrice: 37300,
			Condition: "Very good",
			PPSR:      PPSR{Status: PPSRClear, Reference: "PPSR-2093-8812", CheckedAt: checked(2024, time.May, 2)},
			Report: ConditionReport{
				Exterior: 8, Interior: 8, Mechanical: 9, Tyres: 7,
				Notes: "Minor stone chips on bonnet. Tub liner scuffed.",
			},
			Extras: []string{"Tow bar", "Tonneau cover", "Nudge bar", "Reverse camera"},
			Seller: Seller{
				Name: "Dave Kowalski", Dealership: "Westside Motors", Phone: "02 9687 1100",
				Email: "dave@westsidemotors.com.au", Rating: 4.7,
			},
			ImageKey: "ranger",
		},
		{
			ID: "2", Make: "Toyota", Model: "Corolla", Variant: "Ascent Sport Hybrid", Year: 2021,
			BodyType: "Hatchback", Transmission: "CVT", FuelType: "Hybrid", Colour: "Glacier White",
			OdometerKM: 32870, Location: "Richmond, VIC",
			Price: 29450, TradePrice: 25200, RetailPrice: 30500,
			Condition: "Excellent",
			PPSR:      PPSR{Status: PPSRClear, Reference: "PPSR-4410-0127", CheckedAt: checked(2024, time.April, 18)},
			Report:    ConditionReport{Exterior: 9, Interior: 9, Mechanical: 9, Tyres: 8},
			Extras:    []string{"Apple CarPlay", "Adaptive cruise"},
			Seller: Seller{
				Name: "Priya Shah", Dealership: "Yarra Toyota", Phone: "03 9428 3300",
				Email: "priya.shah@yarratoyota.com.au", Rating: 4.9,
			},
			ImageKey: "corolla",
		},
		{
			ID: "3", Make: "Mazda", Model: "CX-5", Variant: "GT (AWD)", Year: 2020,
			BodyType: "SUV", Transmission: "Automatic", FuelType: "Petrol", Colour: "Soul Red Crystal",
			OdometerKM: 56400, Location: "Fortitude Valley, QLD",
			Price: 36900, TradePrice: 31000, RetailPrice: 38200, AskingPrice: 35950,
			Condition: "Very good",
			PPSR:      PPSR{Status: PPSRClear, Reference: "PPSR-7781-3390", CheckedAt: checked(2024, time.March, 9)},
			Report: ConditionReport{
				Exterior: 8, Interior: 9, Mechanical: 8, Tyres: 6,
				Notes: "Rear tyres due for replacement within 5,000 km.",
			},
			Extras: []string{"Sunroof", "Leather trim", "Bose audio", "360 camera"},
			Seller: Seller{
				Name: "Liam O'Connor", Dealership: "Valley Mazda", Phone: "07 3252 9000",
				Email: "liam@valleymazda.com.au", Rating: 4.5,
			},
			ImageKey: "cx5",
		},
		{
			ID: "4", Make: "Volkswagen", Model: "Golf", Variant: "110TSI Comfortline", Year: 2018,
			BodyType: "Hatchback", Transmission: "DSG", FuelType: "Petrol", Colour: "Tungsten Silver",
			OdometerKM: 97350, Location: "Glenelg, SA",
			Price: 21990, TradePrice: 17800, RetailPrice: 22990,
			Condition: "Good",
			PPSR:      PPSR{Status: PPSREncumbered, Reference: "PPSR-1120-6654", CheckedAt: checked(2024, time.May, 20)},
			Report: ConditionReport{
				Exterior: 7, Interior: 7, Mechanical: 8, Tyres: 8,
				Notes: "Finance owing; payout arranged at settlement.",
			},
			Extras: []string{"Roof racks"},
			Seller: Seller{
				Name: "Mei Lin", Dealership: "Bayside Euro", Phone: "08 8294 1200",
				Email: "mei@baysideeuro.com.au", Rating: 4.2,
			},
			ImageKey: "golf",
		},
		{
			ID: "5", Make: "Tesla", Model: "Model 3", Variant: "Long Range", Year: 2022,
			BodyType: "Sedan", Transmission: "Automatic", FuelType: "Electric", Colour: "Pearl White",
			OdometerKM: 41200, Location: "Subiaco, WA",
			Price: 52900, TradePrice: 46000, RetailPrice: 54900, AskingPrice: 51500,
			Condition: "Excellent",
			PPSR:      PPSR{Status: PPSRClear, Reference: "PPSR-9035-2214", CheckedAt: checked(2024, time.June, 1)},
			Report:    ConditionReport{Exterior: 9, Interior: 9, Mechanical: 10, Tyres: 8},
			Extras:    []string{"Enhanced Autopilot", "Tinted windows", "Wall charger"},
			Seller: Seller{
				Name: "Sam Nguyen", Dealership: "Perth EV Centre", Phone: "08 9381 4400",
				Email: "sam@perthev.com.au", Rating: 4.8,
			},
			ImageKey: "model3",
		},
		{
			ID: "6", Make: "Hyundai", Model: "i30", Variant: "Active", Year: 2017,
			BodyType: "Hatchback", Transmission: "Manual", FuelType: "Petrol", Colour: "Phantom Black",
			OdometerKM: 121900, Location: "Newcastle, NSW",
			Price: 13990, TradePrice: 10500, RetailPrice: 14990,
			Condition: "Fair",
			PPSR:      PPSR{Status: PPSRClear, Reference: "PPSR-5562-7843", CheckedAt: checked(2024, time.February, 27)},
			Report: ConditionReport{
				Exterior: 6, Interior: 6, Mechanical: 7, Tyres: 5,
				Notes: "Hail dimples on roof. Clutch feels light.",
			},
			Seller: Seller{
				Name: "Jordan Blake", Dealership: "Hunter Auto Sales", Phone: "02 4961 2200",
				Email: "jordan@hunterauto.com.au", Rating: 4.1,
			},
			ImageKey: "i30",
		},
	}
}
