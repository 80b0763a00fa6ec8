package domain

import "context"

type CatalogStore interface {
	ListAll(ctx context.Context) ([]Property, error)
	GetByCode(ctx context.Context, code string) (*Property, error)
	Put(ctx context.Context, p Property) error // upsert by code
}

// GeocodeProvider resolves a free-text location phrase to coordinates.
// A nil result with nil error means "no match"; callers treat it the same
// as a provider failure and skip augmentation.
type GeocodeProvider interface {
	SearchText(ctx context.Context, query string, bias Coordinates) (*Coordinates, error)
}

type NearbyQuery struct {
	Category   string
	Country    string
	MaxResults int
	Contacts   bool
}

type NearbyPlaceProvider interface {
	SearchNearby(ctx context.Context, pos Coordinates, q NearbyQuery) ([]RawPlace, error)
}

// RawPlace is a provider result before transformation into a Property.
type RawPlace struct {
	Title    string
	Address  PlaceAddress
	Position *Coordinates
	Phones   []string
}

type PlaceAddress struct {
	Number     string
	Street     string
	Locality   string
	Country    string
	PostalCode string
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
