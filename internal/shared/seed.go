package shared

import "stay_resolver/internal/domain"

func seedProvenance() *domain.Provenance {
	return &domain.Provenance{IsExternal: false, Source: domain.SourceSeed}
}

// SeedProperties is the initial catalog. Numeric ids stay well below 50000;
// that range is reserved for externally discovered properties.
var SeedProperties = []domain.Property{
	{
		Code: "GHSE", NumericID: 1001,
		Name:  "Grand Hyatt Seattle",
		Phone: "(206) 774-1234",
		Address: domain.Address{
			Line1: "721 Pine Street", City: "Seattle", Country: "United States", PostalCode: "98101",
		},
		Chain:      &domain.ChainInfo{Code: "GRAN", ID: 21207, Name: "Grand Hyatt"},
		Brand:      &domain.ChainInfo{Code: "GRAN", ID: 33940, Name: "Grand"},
		Provenance: seedProvenance(),
	},
	{
		Code: "HRSF", NumericID: 1002,
		Name:  "Hyatt Regency San Francisco",
		Phone: "(415) 788-1234",
		Address: domain.Address{
			Line1: "5 Embarcadero Center", City: "San Francisco", Country: "United States", PostalCode: "94111",
		},
		Chain:      &domain.ChainInfo{Code: "HYAT", ID: 24118, Name: "Hyatt Regency"},
		Brand:      &domain.ChainInfo{Code: "HYAT", ID: 37551, Name: "Hyatt"},
		Provenance: seedProvenance(),
	},
	{
		Code: "MMNY", NumericID: 1003,
		Name:  "Marriott Marquis New York",
		Phone: "(212) 398-1900",
		Address: domain.Address{
			Line1: "1535 Broadway", City: "New York", Country: "United States", PostalCode: "10036",
		},
		Chain:      &domain.ChainInfo{Code: "MARR", ID: 26031, Name: "Marriott Marquis"},
		Brand:      &domain.ChainInfo{Code: "MARR", ID: 38265, Name: "Marriott"},
		Provenance: seedProvenance(),
	},
	{
		Code: "HGDE", NumericID: 1004,
		Name:  "Hilton Garden Inn Denver",
		Phone: "(303) 603-8000",
		Address: domain.Address{
			Line1: "1400 Welton Street", City: "Denver", Country: "United States", PostalCode: "80202",
		},
		Chain:      &domain.ChainInfo{Code: "HILT", ID: 22814, Name: "Hilton Garden"},
		Brand:      &domain.ChainInfo{Code: "HILT", ID: 35119, Name: "Hilton"},
		Provenance: seedProvenance(),
	},
	{
		Code: "WAMI", NumericID: 1005,
		Name:  "Waldorf Astoria Miami",
		Phone: "(305) 374-0000",
		Address: domain.Address{
			Line1: "300 Biscayne Boulevard", City: "Miami", Country: "United States", PostalCode: "33132",
		},
		Chain:      &domain.ChainInfo{Code: "WALD", ID: 27402, Name: "Waldorf Astoria"},
		Brand:      &domain.ChainInfo{Code: "WALD", ID: 39023, Name: "Waldorf"},
		Provenance: seedProvenance(),
	},
	{
		Code: "COCH", NumericID: 1006,
		Name:  "Courtyard Chicago Downtown",
		Phone: "(312) 329-2500",
		Address: domain.Address{
			Line1: "30 East Hubbard Street", City: "Chicago", Country: "United States", PostalCode: "60611",
		},
		Chain:      &domain.ChainInfo{Code: "COUR", ID: 23655, Name: "Courtyard Chicago"},
		Brand:      &domain.ChainInfo{Code: "COUR", ID: 36108, Name: "Courtyard"},
		Provenance: seedProvenance(),
	},
	{
		Code: "IBOS", NumericID: 1007,
		Name:  "InterContinental Boston",
		Phone: "(617) 747-1000",
		Address: domain.Address{
			Line1: "510 Atlantic Avenue", City: "Boston", Country: "United States", PostalCode: "02210",
		},
		Chain:      &domain.ChainInfo{Code: "INTE", ID: 25470, Name: "InterContinental Boston"},
		Brand:      &domain.ChainInfo{Code: "INTE", ID: 38812, Name: "InterContinental"},
		Provenance: seedProvenance(),
	},
	{
		Code: "WAUS", NumericID: 1008,
		Name:  "Westin Austin Downtown",
		Phone: "(512) 391-2333",
		Address: domain.Address{
			Line1: "310 East 5th Street", City: "Austin", Country: "United States", PostalCode: "78701",
		},
		Chain:      &domain.ChainInfo{Code: "WEST", ID: 28190, Name: "Westin Austin"},
		Brand:      &domain.ChainInfo{Code: "WEST", ID: 39544, Name: "Westin"},
		Provenance: seedProvenance(),
	},
}
