package app

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"

	"stay_resolver/internal/domain"
	"stay_resolver/internal/match"
)

const (
	chainIDBase    = 20000
	brandIDBase    = 30000
	externalIDBase = 50000
)

// codeFillStopwords are skipped when padding a property code from the name.
var codeFillStopwords = map[string]struct{}{
	"hotel": {}, "by": {}, "the": {}, "and": {}, "at": {},
}

var nonDigit = regexp.MustCompile(`\D`)

// formatPhone normalizes US numbers to (XXX) XXX-XXXX, passing anything it
// can't parse through unchanged. Providers that omit contact info get the
// placeholder number.
func formatPhone(raw string) string {
	if raw == "" {
		return "(000) 000-0000"
	}
	digits := nonDigit.ReplaceAllString(raw, "")
	switch {
	case len(digits) == 10:
		return fmt.Sprintf("(%s) %s-%s", digits[:3], digits[3:6], digits[6:])
	case len(digits) == 11 && digits[0] == '1':
		return fmt.Sprintf("(%s) %s-%s", digits[1:4], digits[4:7], digits[7:])
	default:
		return raw
	}
}

// stableID derives a deterministic id from a name. xxhash is stable across
// runs and platforms, so the same name always yields the same id.
func stableID(base int64, name string) int64 {
	return base + int64(xxhash.Sum64String(strings.ToLower(name))%10000)
}

// extractBrandAndChain guesses chain (first two words) and brand (first
// word) from a property name.
func extractBrandAndChain(name string) (chain, brand domain.ChainInfo) {
	words := strings.Fields(name)
	if len(words) == 0 {
		return
	}
	chainName := words[0]
	if len(words) > 1 {
		chainName = words[0] + " " + words[1]
	}
	brandName := words[0]

	chainCode := strings.ToUpper(trunc(strings.ReplaceAll(chainName, " ", ""), 4))
	brandCode := strings.ToUpper(trunc(brandName, 4))

	chain = domain.ChainInfo{Code: chainCode, ID: stableID(chainIDBase, chainName), Name: chainName}
	brand = domain.ChainInfo{Code: brandCode, ID: stableID(brandIDBase, brandName), Name: brandName}
	return
}

// trunc counts runes, not bytes, so multibyte names keep valid UTF-8.
func trunc(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}

func firstInitial(w string) string {
	r, _ := utf8.DecodeRuneInString(w)
	return strings.ToUpper(string(r))
}

// generateCode builds a 4-character property code: chain prefix plus city
// initials, padded from the property name when the city is too short.
func generateCode(name, chainCode, city string) string {
	prefix := trunc(chainCode, 2)

	cityWords := strings.Fields(city)
	if len(cityWords) > 2 {
		cityWords = cityWords[:2]
	}
	var initials []string
	for _, w := range cityWords {
		initials = append(initials, firstInitial(w))
	}

	if len(initials) < 2 {
		nameWords := strings.Fields(name)
		brandWords := map[string]struct{}{}
		for i, w := range nameWords {
			if i < 2 {
				brandWords[w] = struct{}{}
			}
		}
		for _, w := range nameWords {
			if len(initials) >= 2 {
				break
			}
			if _, skip := codeFillStopwords[strings.ToLower(w)]; skip {
				continue
			}
			if _, skip := brandWords[w]; skip {
				continue
			}
			initials = append(initials, firstInitial(w))
		}
	}

	if len(initials) > 2 {
		initials = initials[:2]
	}
	return prefix + strings.Join(initials, "")
}

// uniqueCode retries generateCode output with numeric suffixes 2..9 when it
// collides with an existing catalog code.
func uniqueCode(code string, existing map[string]struct{}) string {
	if _, taken := existing[code]; !taken {
		return code
	}
	for i := 2; i <= 9; i++ {
		candidate := fmt.Sprintf("%s%d", trunc(code, 3), i)
		if _, taken := existing[candidate]; !taken {
			return candidate
		}
	}
	return code
}

// nextExternalID keeps externally-sourced numeric ids in a range disjoint
// from seed data: max(existing ids >= 50000) + 1, starting at 50000.
func nextExternalID(catalog []domain.Property) int64 {
	next := int64(externalIDBase)
	for _, p := range catalog {
		if p.NumericID >= externalIDBase && p.NumericID+1 > next {
			next = p.NumericID + 1
		}
	}
	return next
}

// transformPlace converts a provider result into a catalog Property with a
// fresh code and numeric id. existingCodes is mutated so that codes stay
// unique across one batch.
func transformPlace(place domain.RawPlace, catalog []domain.Property, existingCodes map[string]struct{}, numericID int64) domain.Property {
	name := place.Title
	if name == "" {
		name = "Unknown Hotel"
	}

	addr := domain.Address{
		Line1:      strings.TrimSpace(strings.TrimSpace(place.Address.Number) + " " + place.Address.Street),
		City:       place.Address.Locality,
		Country:    place.Address.Country,
		PostalCode: place.Address.PostalCode,
	}

	var rawPhone string
	if len(place.Phones) > 0 {
		rawPhone = place.Phones[0]
	}

	chain, brand := extractBrandAndChain(name)
	code := uniqueCode(generateCode(name, chain.Code, addr.City), existingCodes)
	existingCodes[code] = struct{}{}

	return domain.Property{
		Code:      code,
		NumericID: numericID,
		Name:      name,
		Address:   addr,
		Phone:     formatPhone(rawPhone),
		Chain:     &chain,
		Brand:     &brand,
		Provenance: &domain.Provenance{
			IsExternal:  true,
			Source:      domain.SourceGeocoder,
			Coordinates: place.Position,
			RawPhone:    rawPhone,
		},
	}
}

// fullAddress renders the normalized one-line address used for store-level
// duplicate detection.
func fullAddress(p domain.Property) string {
	s := p.Address.Line1 + ", " + p.Address.City
	if p.Address.PostalCode != "" {
		s += ", " + p.Address.PostalCode
	}
	return match.Normalize(s)
}
