package query

import (
	"strings"

	"hearth-home-server/models"
)

// Predicate decides whether a single listing is kept in a result set.
type Predicate func(*models.Listing) bool

// BuildPredicate turns criteria into one predicate: the conjunction of a
// sub-predicate per set field. Unset fields contribute no clause, so empty
// criteria accept everything. A contradictory price range (min > max) is
// not rejected; it simply matches nothing.
func BuildPredicate(c FilterCriteria) Predicate {
	var clauses []Predicate

	if city := strings.TrimSpace(c.City); city != "" {
		needle := strings.ToLower(city)
		clauses = append(clauses, func(l *models.Listing) bool {
			return strings.Contains(strings.ToLower(l.City), needle)
		})
	}
	if c.MinPrice != nil {
		min := *c.MinPrice
		clauses = append(clauses, func(l *models.Listing) bool {
			return l.Price >= min
		})
	}
	if c.MaxPrice != nil {
		max := *c.MaxPrice
		clauses = append(clauses, func(l *models.Listing) bool {
			return l.Price <= max
		})
	}
	if c.Kind != "" {
		kind := c.Kind
		clauses = append(clauses, func(l *models.Listing) bool {
			return l.Kind == kind
		})
	}
	switch c.Bedrooms.Mode {
	case BedroomFourPlus:
		clauses = append(clauses, func(l *models.Listing) bool {
			return l.Bedrooms >= 4
		})
	case BedroomExact:
		count := c.Bedrooms.Count
		clauses = append(clauses, func(l *models.Listing) bool {
			return l.Bedrooms == count
		})
	case BedroomAtLeast:
		count := c.Bedrooms.Count
		clauses = append(clauses, func(l *models.Listing) bool {
			return l.Bedrooms >= count
		})
	}

	if len(clauses) == 0 {
		return func(*models.Listing) bool { return true }
	}
	return func(l *models.Listing) bool {
		for _, keep := range clauses {
			if !keep(l) {
				return false
			}
		}
		return true
	}
}
