package match

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"stay_resolver/internal/domain"
)

// ScoreName scores a query against a property name with four similarity
// measures blended into one 0-100 value. Token-set dominates because query
// word order is unreliable; partial-ratio is next because queries are often
// a strict substring of the full name.
func ScoreName(query, propertyName string, vocab *Vocabulary) (int, domain.MatchType) {
	q := vocab.EnhanceQuery(query)
	name := Normalize(propertyName)

	ratio := fuzzy.Ratio(q, name)
	partial := fuzzy.PartialRatio(q, name)
	tokenSort := fuzzy.TokenSortRatio(q, name)
	tokenSet := fuzzy.TokenSetRatio(q, name)

	weighted := float64(ratio)*0.1 + float64(partial)*0.3 +
		float64(tokenSort)*0.2 + float64(tokenSet)*0.4

	matchType := domain.MatchFuzzy
	switch {
	case ratio > 90:
		matchType = domain.MatchExact
	case weighted > 70:
		matchType = domain.MatchPartial
	}

	return int(weighted), matchType
}

// ScoreLocation matches one query term against a property's address
// components, returning the best score and which component produced it.
func ScoreLocation(queryTerm string, candidates []string) (int, string) {
	term := Normalize(queryTerm)
	bestScore := 0
	bestMatch := ""
	for _, cand := range candidates {
		loc := Normalize(cand)
		if loc == "" {
			continue
		}
		tokenSet := fuzzy.TokenSetRatio(term, loc)
		partial := fuzzy.PartialRatio(term, loc)
		weighted := int(float64(tokenSet)*0.7 + float64(partial)*0.3)
		if weighted > bestScore {
			bestScore = weighted
			bestMatch = loc
		}
	}
	return bestScore, bestMatch
}
