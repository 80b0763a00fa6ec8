package domain

import "errors"

// ErrCatalogUnavailable is the one fatal resolver error: without a catalog
// there is nothing to score, so callers must be able to tell "service broken"
// apart from "no matches".
var ErrCatalogUnavailable = errors.New("catalog unavailable")

const (
	SourceSeed     = "seed"
	SourceGeocoder = "external-geocoder"
)

type Address struct {
	Line1      string `json:"address_line_1"`
	City       string `json:"city"`
	Country    string `json:"country"`
	PostalCode string `json:"zip_code"`
}

type Coordinates struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// Provenance records how a property entered the catalog. It feeds scoring
// (location boost for geocoder results) and is never serialized out.
type Provenance struct {
	IsExternal  bool
	Source      string // seed | external-geocoder
	Coordinates *Coordinates
	RawPhone    string
}

type ChainInfo struct {
	Code string `json:"code"`
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Property struct {
	Code       string      `json:"spirit_cd"` // stable catalog key, unique
	NumericID  int64       `json:"hotel_id,omitempty"`
	Name       string      `json:"property_name"`
	Address    Address     `json:"address"`
	Phone      string      `json:"phone,omitempty"`
	Chain      *ChainInfo  `json:"chain,omitempty"`
	Brand      *ChainInfo  `json:"brand,omitempty"`
	Provenance *Provenance `json:"-"`
}

// IsExternal reports whether the property came from the place-search
// provider rather than seed data.
func (p Property) IsExternal() bool {
	return p.Provenance != nil && p.Provenance.IsExternal
}

type MatchType string

const (
	MatchExact   MatchType = "exact"
	MatchPartial MatchType = "partial"
	MatchFuzzy   MatchType = "fuzzy"
)

// MatchResult is query-scoped: one per property per resolve call.
type MatchResult struct {
	Property        Property
	NameScore       int
	LocationScore   int
	CombinedScore   float64
	MatchedLocation string
	MatchType       MatchType
}

// RankedProperty is what callers receive: a sanitized Property with its
// dense 1-based rank in the final sorted list.
type RankedProperty struct {
	Property
	Rank int `json:"rank"`
}
