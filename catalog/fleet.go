/*
fleet.go - Demo fleet for development and demos

PURPOSE:
  A handful of realistic records in both raw rate shapes (explicit day
  ranges and month labels), including the data-quality warts the parsers
  exist for: spaced thousands separators, a malformed range entry, an
  unrecognized season label. Loaded via POST /api/admin/seed.

NOTE:
  Seeding replaces existing records with the same IDs. Development and
  demo environments only.
*/
package catalog

// DemoFleet returns the built-in demo records.
func DemoFleet() []Record {
	return []Record{
		{
			ID:              "villa-helios",
			Name:            "Villa Helios",
			Kind:            KindVilla,
			Location:        "Mykonos, Greece",
			Guests:          10,
			Cabins:          5,
			BaseWeeklyPrice: "€15 000",
			MonthRates: []MonthRate{
				{Label: "May / October", Price: "€15 000"},
				{Label: "June / September", Price: "€22 000"},
				{Label: "July / August", Price: "€35 000"},
			},
			Images:        "helios-pool.jpg | helios-terrace.jpg | helios-suite.jpg",
			Amenities:     "Infinity pool | Chef's kitchen | Gym | Helipad access",
			OccupiedDates: "2025-07-12 | 2025-07-13 | 2025-07-14",
			ArrivalPolicy: "July and August: Saturday to Saturday",
		},
		{
			ID:              "villa-azzurra",
			Name:            "Villa Azzurra",
			Kind:            KindVilla,
			Location:        "Amalfi Coast, Italy",
			Guests:          8,
			Cabins:          4,
			BaseWeeklyPrice: "€12 500",
			RangeRates:      "01-01 to 03-31: €9 800 | 04-01 to 06-30: €14 500 | 07-01 to 08-31: €24 000 | 09-01 to 12-31: €11 200",
			Images:          "azzurra-cliff.jpg | azzurra-garden.jpg",
			Amenities:       "Sea view | Private beach path | Wine cellar",
			ArrivalPolicy:   "Flexible",
		},
		{
			ID:              "my-serena",
			Name:            "M/Y Serena",
			Kind:            KindYacht,
			Location:        "Côte d'Azur, France",
			Guests:          12,
			Cabins:          6,
			BaseWeeklyPrice: "€85 000",
			// First entry is the kind of garbage the CMS actually exports;
			// the parser drops it and prices those weeks at the default.
			RangeRates:    "high season premium | 05-01 to 09-30: €110 000",
			Images:        "serena-bow.jpg | serena-deck.jpg | serena-salon.jpg",
			Amenities:     "Jacuzzi | Tender garage | Jet skis | Crew of 7",
			OccupiedDates: "2025-08-02 | 2025-08-03 | 2025-08-04 | 2025-08-05",
			ArrivalPolicy: "July and August: Saturday to Saturday",
		},
		{
			ID:       "villa-thalassa",
			Name:     "Villa Thalassa",
			Kind:     KindVilla,
			Location: "Paros, Greece",
			Guests:   6,
			Cabins:   3,
			// No headline price and an unrecognizable season label: lists
			// at the baseline rate rather than free.
			MonthRates: []MonthRate{
				{Label: "Shoulder season", Price: "€8 000"},
				{Label: "Aug peak", Price: "€18 000"},
			},
			Images:    "thalassa-view.jpg",
			Amenities: "Plunge pool | Outdoor dining",
		},
	}
}
