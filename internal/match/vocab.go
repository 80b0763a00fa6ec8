package match

import (
	"sort"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"stay_resolver/internal/domain"
)

// brandCorrectionThreshold is deliberately high: only near-certain
// misspellings of a known brand term get rewritten.
const brandCorrectionThreshold = 85

// genericTerms never count as locations and never as brands.
var genericTerms = []string{"hotel", "place", "rooms"}

// Vocabulary holds the brand/chain terms derived from the current catalog.
// It is rebuilt per query: the catalog may have grown from earlier external
// lookups, so long-term caching would go stale.
type Vocabulary struct {
	brands map[string]struct{}
	sorted []string // deterministic iteration order for correction
}

// NewVocabulary extracts candidate brand/chain terms: the first two words
// of every property name, normalized, kept when longer than 2 characters.
func NewVocabulary(catalog []domain.Property) *Vocabulary {
	v := &Vocabulary{brands: make(map[string]struct{})}
	for _, p := range catalog {
		words := strings.Fields(p.Name)
		if len(words) > 2 {
			words = words[:2]
		}
		for _, w := range words {
			clean := Normalize(w)
			if len(clean) > 2 {
				v.brands[clean] = struct{}{}
			}
		}
	}
	v.sorted = make([]string, 0, len(v.brands))
	for b := range v.brands {
		v.sorted = append(v.sorted, b)
	}
	sort.Strings(v.sorted)
	return v
}

// EnhanceQuery corrects misspelled brand terms in the query: each token is
// replaced by the best-matching brand term scoring at least 85, else kept.
func (v *Vocabulary) EnhanceQuery(query string) string {
	tokens := strings.Fields(Normalize(query))
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		best := tok
		bestScore := 0
		for _, brand := range v.sorted {
			score := fuzzy.Ratio(tok, brand)
			if score > bestScore && score >= brandCorrectionThreshold {
				bestScore = score
				best = brand
			}
		}
		out = append(out, best)
	}
	return strings.Join(out, " ")
}

func (v *Vocabulary) isHotelTerm(token string) bool {
	for _, g := range genericTerms {
		if token == g {
			return true
		}
	}
	_, ok := v.brands[token]
	return ok
}

// ExtractLocations returns candidate location terms from the query: every
// token outside the hotel vocabulary, followed by maximal contiguous runs
// of such tokens joined as phrases. Both granularities matter downstream;
// single words catch "miami", phrases catch "san francisco".
func (v *Vocabulary) ExtractLocations(query string) []string {
	tokens := strings.Fields(Normalize(query))

	var singles []string
	for _, tok := range tokens {
		if !v.isHotelTerm(tok) {
			singles = append(singles, tok)
		}
	}

	var phrases []string
	var current []string
	for _, tok := range tokens {
		if !v.isHotelTerm(tok) {
			current = append(current, tok)
			continue
		}
		if len(current) > 0 {
			phrases = append(phrases, strings.Join(current, " "))
			current = nil
		}
	}
	if len(current) > 0 {
		phrases = append(phrases, strings.Join(current, " "))
	}

	return append(singles, phrases...)
}
