package app

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"stay_resolver/internal/adapters/observability"
	"stay_resolver/internal/domain"
	"stay_resolver/internal/match"
)

const (
	minCombinedScore    = 30 // results at or below never leave the resolver
	minLocationTermLen  = 3  // shorter extracted terms never trigger external search
	dominantTopN        = 3
	dominantMinScore    = 70 // location confidence needed to vote for a dominant location
	dominantKeepScore   = 50 // in-location results must still clear this
	dominantBypassScore = 90 // very confident location matches survive regardless
)

// Resolver is the sole entry point for natural-language property
// resolution. The bridge is optional; without one the resolver ranks the
// seed catalog only.
type Resolver struct {
	store        domain.CatalogStore
	bridge       *Bridge
	defaultLimit int
}

func NewResolver(store domain.CatalogStore, bridge *Bridge, defaultLimit int) *Resolver {
	if defaultLimit <= 0 {
		defaultLimit = 5
	}
	return &Resolver{store: store, bridge: bridge, defaultLimit: defaultLimit}
}

// Resolve ranks the catalog against a free-text query and returns the top
// matches, sanitized and capped. An empty list is a valid outcome; the one
// fatal error is a failed catalog read (ErrCatalogUnavailable).
func (r *Resolver) Resolve(ctx context.Context, query string, limit int) ([]domain.RankedProperty, error) {
	if limit <= 0 {
		limit = r.defaultLimit
	}

	results, augmented, err := r.rank(ctx, query)
	if err != nil {
		return nil, err
	}
	observability.ObserveResolve(augmented, len(results))

	if len(results) > limit {
		results = results[:limit]
	}

	ranked := make([]domain.RankedProperty, 0, len(results))
	for i, m := range results {
		p := m.Property
		p.Provenance = nil // stripped unconditionally before return
		ranked = append(ranked, domain.RankedProperty{Property: p, Rank: i + 1})
	}
	return ranked, nil
}

// rank produces the full filtered, sorted match list with scores attached.
// Kept separate from Resolve so tests can assert on score invariants.
func (r *Resolver) rank(ctx context.Context, query string) ([]domain.MatchResult, bool, error) {
	if strings.TrimSpace(query) == "" {
		return nil, false, nil
	}

	catalog, err := r.store.ListAll(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	matcher := match.NewMatcher(query, catalog)
	results := matchAll(matcher, catalog)

	augmented := false
	if r.bridge != nil {
		term := longestLocationTerm(matcher.LocationTerms())
		if term == "" {
			observability.ObserveAugmentation(string(AugmentSkipped), SkipNoLocationTerm)
		} else {
			aug := r.bridge.Augment(ctx, term, catalog)
			observability.ObserveAugmentation(string(aug.Status), aug.Reason)
			if aug.Status == AugmentApplied {
				// Full re-score over the merged set, replacing the
				// seed-only results rather than appending to them.
				merged := match.NewMatcher(query, aug.Merged)
				results = matchAll(merged, aug.Merged)
				augmented = true
			}
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].CombinedScore > results[j].CombinedScore
	})

	results = filterDominantLocation(results)

	kept := results[:0]
	for _, m := range results {
		if m.CombinedScore > minCombinedScore {
			kept = append(kept, m)
		}
	}
	return kept, augmented, nil
}

func matchAll(m *match.Matcher, catalog []domain.Property) []domain.MatchResult {
	out := make([]domain.MatchResult, 0, len(catalog))
	for _, p := range catalog {
		out = append(out, m.Match(p))
	}
	return out
}

// longestLocationTerm picks the longest extracted term of usable length,
// preferring "san francisco" over "san".
func longestLocationTerm(terms []string) string {
	best := ""
	for _, t := range terms {
		if len(t) >= minLocationTermLen && len(t) > len(best) {
			best = t
		}
	}
	return best
}

// filterDominantLocation suppresses off-location matches once the top
// results agree on a target location. Fuzzy location scoring alone admits
// loosely-related properties from other cities when the name score is
// high; restricting to the inferred location, while letting very confident
// location matches and external results through, cuts those false
// positives. Fails open: if the filter would empty the list it is
// discarded entirely.
func filterDominantLocation(results []domain.MatchResult) []domain.MatchResult {
	top := results
	if len(top) > dominantTopN {
		top = top[:dominantTopN]
	}

	tally := map[string]int{}
	var order []string // first-appearance order keeps the tie-break deterministic
	for _, m := range top {
		if m.LocationScore < dominantMinScore || m.MatchedLocation == "" {
			continue
		}
		loc := strings.ToLower(m.MatchedLocation)
		if _, seen := tally[loc]; !seen {
			order = append(order, loc)
		}
		tally[loc]++
	}
	if len(tally) == 0 {
		return results
	}

	dominant := order[0]
	for _, loc := range order {
		if tally[loc] > tally[dominant] {
			dominant = loc
		}
	}
	log.Debug().Str("location", dominant).Msg("dominant location detected")

	filtered := make([]domain.MatchResult, 0, len(results))
	for _, m := range results {
		switch {
		case strings.EqualFold(m.MatchedLocation, dominant) && m.LocationScore >= dominantKeepScore:
			filtered = append(filtered, m)
		case m.LocationScore >= dominantBypassScore:
			filtered = append(filtered, m)
		case m.Property.IsExternal():
			filtered = append(filtered, m)
		}
	}

	if len(filtered) == 0 && len(results) > 0 {
		log.Debug().Msg("dominant-location filter too strict, keeping unfiltered results")
		return results
	}
	return filtered
}
