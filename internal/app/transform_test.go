package app

import (
	"testing"
	"unicode/utf8"

	"stay_resolver/internal/domain"
)

func TestFormatPhone(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", "(000) 000-0000"},
		{"2065551234", "(206) 555-1234"},
		{"+1 206-555-1234", "(206) 555-1234"},
		{"(206) 555 1234", "(206) 555-1234"},
		{"+44 20 7946 0958", "+44 20 7946 0958"}, // not a US shape, passed through
	}
	for _, c := range cases {
		if got := formatPhone(c.in); got != c.want {
			t.Errorf("formatPhone(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestStableID_Deterministic(t *testing.T) {
	a := stableID(chainIDBase, "Hyatt Regency")
	b := stableID(chainIDBase, "hyatt regency") // case-insensitive
	if a != b {
		t.Fatalf("ids differ for the same name: %d vs %d", a, b)
	}
	if a < chainIDBase || a >= chainIDBase+10000 {
		t.Fatalf("id %d outside chain range", a)
	}
	if stableID(brandIDBase, "Hyatt") == stableID(brandIDBase, "Hilton") {
		t.Fatal("distinct names should not collide here")
	}
}

func TestExtractBrandAndChain(t *testing.T) {
	chain, brand := extractBrandAndChain("Holiday Inn Express Seattle")
	if chain.Name != "Holiday Inn" || chain.Code != "HOLI" {
		t.Fatalf("chain = %+v", chain)
	}
	if brand.Name != "Holiday" || brand.Code != "HOLI" {
		t.Fatalf("brand = %+v", brand)
	}

	chain, brand = extractBrandAndChain("Fairmont")
	if chain.Name != "Fairmont" || brand.Name != "Fairmont" {
		t.Fatalf("single-word name: chain=%+v brand=%+v", chain, brand)
	}
}

func TestGenerateCode(t *testing.T) {
	if got := generateCode("Grand Tower Hotel", "GRAN", "San Francisco"); got != "GRSF" {
		t.Fatalf("code = %q, want GRSF", got)
	}
	// Single-word city: one initial, padded from non-stopword name words.
	if got := generateCode("Grand Tower Riverside", "GRAN", "Miami"); got != "GRMR" {
		t.Fatalf("code = %q, want GRMR", got)
	}
}

func TestGenerateCode_MultibyteInitials(t *testing.T) {
	got := generateCode("Grand Tower Riverside", "GRAN", "Überlingen")
	if got != "GRÜR" {
		t.Fatalf("code = %q, want GRÜR", got)
	}
	if !utf8.ValidString(got) {
		t.Fatalf("code %q is not valid UTF-8", got)
	}

	// Lowercase multibyte initials are uppercased whole, never byte-sliced.
	if got := generateCode("Palace Resort", "PALA", "überlingen lindau"); got != "PAÜL" {
		t.Fatalf("code = %q, want PAÜL", got)
	}
}

func TestUniqueCode_CollisionSuffix(t *testing.T) {
	existing := map[string]struct{}{"GRSF": {}}
	if got := uniqueCode("GRSF", existing); got != "GRS2" {
		t.Fatalf("code = %q, want GRS2", got)
	}
	existing["GRS2"] = struct{}{}
	if got := uniqueCode("GRSF", existing); got != "GRS3" {
		t.Fatalf("code = %q, want GRS3", got)
	}
	if got := uniqueCode("FRESH", map[string]struct{}{}); got != "FRESH" {
		t.Fatalf("non-colliding code rewritten: %q", got)
	}
}

func TestNextExternalID(t *testing.T) {
	if got := nextExternalID(nil); got != 50000 {
		t.Fatalf("empty catalog: %d, want 50000", got)
	}
	catalog := []domain.Property{
		{NumericID: 1001}, // seed range, ignored
		{NumericID: 50003},
		{NumericID: 50007},
	}
	if got := nextExternalID(catalog); got != 50008 {
		t.Fatalf("got %d, want 50008", got)
	}
}

func TestTransformPlace(t *testing.T) {
	place := domain.RawPlace{
		Title: "Seaside Suites Santa Cruz",
		Address: domain.PlaceAddress{
			Number: "100", Street: "Beach Street", Locality: "Santa Cruz",
			Country: "United States", PostalCode: "95060",
		},
		Position: &domain.Coordinates{Longitude: -122.026, Latitude: 36.962},
		Phones:   []string{"8315550100"},
	}
	codes := map[string]struct{}{}
	p := transformPlace(place, nil, codes, 50000)

	if p.Name != "Seaside Suites Santa Cruz" {
		t.Fatalf("name = %q", p.Name)
	}
	if p.Address.Line1 != "100 Beach Street" {
		t.Fatalf("line1 = %q", p.Address.Line1)
	}
	if p.Phone != "(831) 555-0100" {
		t.Fatalf("phone = %q", p.Phone)
	}
	if p.Code != "SESC" {
		t.Fatalf("code = %q, want SESC", p.Code)
	}
	if p.NumericID != 50000 {
		t.Fatalf("numeric id = %d", p.NumericID)
	}
	if p.Provenance == nil || !p.Provenance.IsExternal || p.Provenance.Source != domain.SourceGeocoder {
		t.Fatalf("provenance = %+v", p.Provenance)
	}
	if p.Provenance.Coordinates == nil || p.Provenance.Coordinates.Longitude != -122.026 {
		t.Fatalf("coordinates = %+v", p.Provenance.Coordinates)
	}
	if p.Chain == nil || p.Chain.Name != "Seaside Suites" {
		t.Fatalf("chain = %+v", p.Chain)
	}

	// Same name twice keeps ids stable but codes unique.
	p2 := transformPlace(place, nil, codes, 50001)
	if p2.Chain.ID != p.Chain.ID || p2.Brand.ID != p.Brand.ID {
		t.Fatal("derived ids should be deterministic for the same name")
	}
	if p2.Code == p.Code {
		t.Fatalf("codes should not collide within a batch: %q", p2.Code)
	}
}
