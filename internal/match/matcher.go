package match

import (
	"fmt"

	"stay_resolver/internal/domain"
)

// geocoderLocationFloor: a property returned by a location search is assumed
// correctly located regardless of string similarity.
const geocoderLocationFloor = 95

// Matcher scores catalog properties against one query. The vocabulary and
// the extracted location terms are computed once at construction and reused
// for every property.
type Matcher struct {
	query string
	vocab *Vocabulary
	terms []string
}

func NewMatcher(query string, catalog []domain.Property) *Matcher {
	vocab := NewVocabulary(catalog)
	return &Matcher{
		query: query,
		vocab: vocab,
		terms: vocab.ExtractLocations(query),
	}
}

// LocationTerms returns the location candidates extracted from the query.
func (m *Matcher) LocationTerms() []string { return m.terms }

// Match combines name and location similarity into one relevance score.
// The location weight grows with the number of location terms found in the
// query, capped at 0.6: more location words means the user cares more about
// where than about the exact name.
func (m *Matcher) Match(p domain.Property) domain.MatchResult {
	nameScore, matchType := ScoreName(m.query, p.Name, m.vocab)

	candidates := []string{
		p.Address.City,
		p.Address.Country,
		fmt.Sprintf("%s %s", p.Address.City, p.Address.Country),
		p.Address.PostalCode,
	}

	bestLocScore := 0
	bestLocMatch := ""
	for _, term := range m.terms {
		score, matched := ScoreLocation(term, candidates)
		if score > bestLocScore {
			bestLocScore = score
			bestLocMatch = matched
		}
	}

	locationWeight := 0.2 + 0.1*float64(len(m.terms))
	if locationWeight > 0.6 {
		locationWeight = 0.6
	}
	nameWeight := 1.0 - locationWeight

	if p.Provenance != nil && p.Provenance.IsExternal && p.Provenance.Source == domain.SourceGeocoder {
		if bestLocScore < geocoderLocationFloor {
			bestLocScore = geocoderLocationFloor
		}
	}

	return domain.MatchResult{
		Property:        p,
		NameScore:       nameScore,
		LocationScore:   bestLocScore,
		CombinedScore:   float64(nameScore)*nameWeight + float64(bestLocScore)*locationWeight,
		MatchedLocation: bestLocMatch,
		MatchType:       matchType,
	}
}
