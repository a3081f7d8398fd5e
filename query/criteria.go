package query

import (
	"strconv"
	"strings"

	"hearth-home-server/models"
)

// BedroomMode tags the bedroom selector variant in effect for a query.
type BedroomMode int

const (
	// BedroomAny imposes no bedroom constraint.
	BedroomAny BedroomMode = iota
	// BedroomFourPlus matches listings with four or more bedrooms.
	BedroomFourPlus
	// BedroomExact matches listings with exactly Count bedrooms.
	BedroomExact
	// BedroomAtLeast matches listings with Count or more bedrooms.
	BedroomAtLeast
)

// BedroomSelector is the tagged bedroom filter. Count is meaningful only
// for the Exact and AtLeast modes.
type BedroomSelector struct {
	Mode  BedroomMode
	Count int
}

// SelectBedrooms resolves the three bedroom filter inputs into a single
// selector. Callers are expected to supply at most one; when several are
// present the "4+" sentinel wins, then the exact count, then the minimum
// bound. This precedence is fixed and covered by tests.
func SelectBedrooms(fourPlus bool, exact, atLeast *int) BedroomSelector {
	switch {
	case fourPlus:
		return BedroomSelector{Mode: BedroomFourPlus}
	case exact != nil:
		return BedroomSelector{Mode: BedroomExact, Count: *exact}
	case atLeast != nil:
		return BedroomSelector{Mode: BedroomAtLeast, Count: *atLeast}
	}
	return BedroomSelector{}
}

// ParseBedroomParam interprets the raw form value for the bedrooms field:
// "4+" is the four-or-more sentinel, anything parseable as a non-negative
// integer is an exact count ("0" selects bedsitters), and everything else
// is ignored.
func ParseBedroomParam(raw string) (fourPlus bool, exact *int) {
	raw = strings.TrimSpace(raw)
	if raw == "4+" {
		return true, nil
	}
	if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
		return false, &n
	}
	return false, nil
}

// ParseKind maps a raw kind value onto the listing kind enum. Unknown
// values mean "any".
func ParseKind(raw string) models.ListingKind {
	switch models.ListingKind(strings.ToLower(strings.TrimSpace(raw))) {
	case models.KindSale:
		return models.KindSale
	case models.KindRent:
		return models.KindRent
	}
	return ""
}

// FilterCriteria is a normalized set of optional search constraints. The
// zero value matches every listing. Criteria are built fresh per query,
// either from form fields or from the AI translator, and never persisted.
type FilterCriteria struct {
	City     string      // case-insensitive substring match
	MinPrice *float64    // inclusive
	MaxPrice *float64    // inclusive
	Bedrooms BedroomSelector
	Kind     models.ListingKind // empty means any
}
