package match

import (
	"reflect"
	"testing"

	"stay_resolver/internal/domain"
)

func prop(name, city string) domain.Property {
	return domain.Property{Name: name, Address: domain.Address{City: city, Country: "United States"}}
}

func TestNewVocabulary_BrandTerms(t *testing.T) {
	catalog := []domain.Property{
		prop("Grand Hyatt Seattle", "Seattle"),
		prop("Hilton Garden Inn Denver", "Denver"),
		prop("W Hotel", "Austin"), // "w" too short to count
	}
	v := NewVocabulary(catalog)

	for _, want := range []string{"grand", "hyatt", "hilton", "garden", "hotel"} {
		if _, ok := v.brands[want]; !ok {
			t.Errorf("expected brand term %q", want)
		}
	}
	if _, ok := v.brands["w"]; ok {
		t.Errorf("short token %q should not be a brand term", "w")
	}
	if _, ok := v.brands["seattle"]; ok {
		t.Errorf("third word %q should not be a brand term", "seattle")
	}
}

func TestEnhanceQuery_CorrectsMisspelledBrand(t *testing.T) {
	v := NewVocabulary([]domain.Property{prop("Hyatt Regency San Francisco", "San Francisco")})

	got := v.EnhanceQuery("hyat regency downtown")
	if got != "hyatt regency downtown" {
		t.Fatalf("EnhanceQuery = %q, want misspelled brand corrected", got)
	}
}

func TestEnhanceQuery_LeavesUnrelatedTokens(t *testing.T) {
	v := NewVocabulary([]domain.Property{prop("Hyatt Regency San Francisco", "San Francisco")})

	got := v.EnhanceQuery("cozy cabin tahoe")
	if got != "cozy cabin tahoe" {
		t.Fatalf("EnhanceQuery = %q, want tokens untouched", got)
	}
}

func TestExtractLocations(t *testing.T) {
	v := NewVocabulary([]domain.Property{prop("Grand Hyatt Seattle", "Seattle")})

	got := v.ExtractLocations("grand hyatt hotel san francisco")
	// Singles first, then the maximal contiguous phrase.
	want := []string{"san", "francisco", "san francisco"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExtractLocations = %v, want %v", got, want)
	}
}

func TestExtractLocations_NoLocations(t *testing.T) {
	v := NewVocabulary([]domain.Property{prop("Grand Hyatt Seattle", "Seattle")})

	if got := v.ExtractLocations("grand hyatt hotel"); len(got) != 0 {
		t.Fatalf("ExtractLocations = %v, want none", got)
	}
}
