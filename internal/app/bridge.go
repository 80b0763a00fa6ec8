package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"stay_resolver/internal/domain"
)

type AugmentStatus string

const (
	AugmentApplied AugmentStatus = "applied"
	AugmentSkipped AugmentStatus = "skipped"
)

// Skip reasons, surfaced through metrics so "provider broke" is
// distinguishable from "found nothing".
const (
	SkipNoLocationTerm = "no-location-term"
	SkipGeocodeError   = "geocode-error"
	SkipGeocodeMiss    = "geocode-miss"
	SkipNearbyError    = "nearby-error"
	SkipNoResults      = "no-results"
)

// Augmentation is the outcome of one external-search round. Skipped rounds
// carry a reason instead of an error: augmentation failure is never fatal
// to the resolve operation.
type Augmentation struct {
	Status AugmentStatus
	Reason string
	Merged []domain.Property // populated when Status == AugmentApplied
}

func skipped(reason string) Augmentation {
	return Augmentation{Status: AugmentSkipped, Reason: reason}
}

// defaultBias anchors text search when no region is otherwise known
// (approximate center of the US).
var defaultBias = domain.Coordinates{Longitude: -98.5795, Latitude: 39.8283}

const (
	nearbyCategory   = "hotel"
	nearbyCountry    = "US"
	nearbyMaxResults = 20
)

// Bridge enriches the catalog with live results from the place-search
// provider: geocode a location phrase, fetch nearby hotels, transform them
// into catalog properties, and write non-duplicates back to the store.
type Bridge struct {
	geo   domain.GeocodeProvider
	near  domain.NearbyPlaceProvider
	store domain.CatalogStore
	cache domain.Cache // optional geocode cache
	ttl   time.Duration
}

func NewBridge(geo domain.GeocodeProvider, near domain.NearbyPlaceProvider, store domain.CatalogStore, cache domain.Cache, geocodeTTL time.Duration) *Bridge {
	return &Bridge{geo: geo, near: near, store: store, cache: cache, ttl: geocodeTTL}
}

// Augment runs one external-search round for a location term against the
// current catalog. Every failure degrades to a skip; the caller keeps its
// seed-only results.
func (b *Bridge) Augment(ctx context.Context, term string, catalog []domain.Property) Augmentation {
	coords, err := b.geocode(ctx, term)
	if err != nil {
		log.Warn().Err(err).Str("term", term).Msg("geocode failed")
		return skipped(SkipGeocodeError)
	}
	if coords == nil {
		return skipped(SkipGeocodeMiss)
	}

	places, err := b.near.SearchNearby(ctx, *coords, domain.NearbyQuery{
		Category:   nearbyCategory,
		Country:    nearbyCountry,
		MaxResults: nearbyMaxResults,
		Contacts:   true,
	})
	if err != nil {
		log.Warn().Err(err).Str("term", term).Msg("nearby search failed")
		return skipped(SkipNearbyError)
	}
	if len(places) == 0 {
		return skipped(SkipNoResults)
	}

	externals := b.ingest(ctx, places, catalog)
	merged := MergeProperties(catalog, externals)
	log.Info().Str("term", term).Int("found", len(places)).Int("merged", len(merged)-len(catalog)).
		Msg("catalog augmented from place search")
	return Augmentation{Status: AugmentApplied, Merged: merged}
}

func (b *Bridge) geocode(ctx context.Context, term string) (*domain.Coordinates, error) {
	key := "geocode:" + term
	if b.cache != nil {
		var cached domain.Coordinates
		if ok, _ := b.cache.Get(ctx, key, &cached); ok {
			return &cached, nil
		}
	}
	coords, err := b.geo.SearchText(ctx, term, defaultBias)
	if err != nil || coords == nil {
		return coords, err
	}
	if b.cache != nil {
		_ = b.cache.Set(ctx, key, *coords, int(b.ttl.Seconds()))
	}
	return coords, nil
}

// ingest transforms provider places into properties and writes the
// non-duplicates back to the store so later queries see them without
// another external lookup. Write failures are logged, never fatal.
func (b *Bridge) ingest(ctx context.Context, places []domain.RawPlace, catalog []domain.Property) []domain.Property {
	existingCodes := make(map[string]struct{}, len(catalog))
	for _, p := range catalog {
		existingCodes[p.Code] = struct{}{}
	}
	numericID := nextExternalID(catalog)

	out := make([]domain.Property, 0, len(places))
	for _, place := range places {
		prop := transformPlace(place, catalog, existingCodes, numericID)
		numericID++

		if dup, existing := isDuplicate(prop, catalog); dup {
			log.Debug().Str("name", prop.Name).Str("matches", existing.Name).Msg("skipping duplicate place")
			out = append(out, prop)
			continue
		}
		if err := b.store.Put(ctx, prop); err != nil {
			log.Warn().Err(err).Str("code", prop.Code).Msg("catalog write-back failed")
		}
		out = append(out, prop)
	}
	return out
}
