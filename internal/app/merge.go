package app

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"stay_resolver/internal/domain"
	"stay_resolver/internal/match"
)

const (
	dupNameThreshold    = 85 // name similarity alone (same city) marks a duplicate
	dupZipNameThreshold = 70 // with a zip match a looser name bar suffices
)

// isDuplicate checks a transformed property against the catalog before
// write-back: exact normalized full-address match, or name similarity above
// 85 within the same city.
func isDuplicate(candidate domain.Property, catalog []domain.Property) (bool, *domain.Property) {
	candAddr := fullAddress(candidate)
	candName := match.Normalize(candidate.Name)
	candCity := strings.ToLower(candidate.Address.City)

	for i := range catalog {
		existing := catalog[i]
		if candAddr != "" && candAddr == fullAddress(existing) {
			return true, &existing
		}
		if fuzzy.Ratio(candName, match.Normalize(existing.Name)) > dupNameThreshold {
			existingCity := strings.ToLower(existing.Address.City)
			if candCity != "" && candCity == existingCity {
				return true, &existing
			}
		}
	}
	return false, nil
}

// MergeProperties combines seed properties with external candidates, seed
// data always first and always winning on conflict. An external candidate
// is dropped when any of three checks marks it as a near-duplicate of a
// seed: exact address+city, fuzzy name in the same city, or matching zip
// with a looser name bar.
func MergeProperties(seeds, externals []domain.Property) []domain.Property {
	merged := make([]domain.Property, 0, len(seeds)+len(externals))
	merged = append(merged, seeds...)

	for _, ext := range externals {
		extName := match.Normalize(ext.Name)
		extAddr := strings.ToLower(ext.Address.Line1)
		extCity := strings.ToLower(ext.Address.City)
		extZip := strings.ToLower(ext.Address.PostalCode)

		dup := false
		for _, seed := range seeds {
			seedName := match.Normalize(seed.Name)
			seedAddr := strings.ToLower(seed.Address.Line1)
			seedCity := strings.ToLower(seed.Address.City)
			seedZip := strings.ToLower(seed.Address.PostalCode)

			if extAddr != "" && seedAddr != "" && extAddr == seedAddr && extCity == seedCity {
				dup = true
				break
			}
			similarity := fuzzy.Ratio(extName, seedName)
			if similarity > dupNameThreshold && extCity == seedCity {
				dup = true
				break
			}
			if extZip != "" && seedZip != "" && extZip == seedZip && similarity > dupZipNameThreshold {
				dup = true
				break
			}
		}
		if !dup {
			merged = append(merged, ext)
		}
	}
	return merged
}
