package types

import (
	"cmp"
	"sort"
	"strings"
)

// Order represents sorting direction.
type Order string

const (
	Ascending  Order = "asc"  // Ascending order
	Descending Order = "desc" // Descending order
)

// Criterion represents a single sorting criterion.
type Criterion struct {
	Field string `json:"field"` // Field to sort by
	Order Order  `json:"order"` // Sort direction
}

// MultiCriteria supports multi-field sorting.
type MultiCriteria struct {
	Criteria []Criterion `json:"criteria"` // List of sorting criteria
}

// ParseOrdering parses a DRF style ordering such as "-created_at,name".
// A leading "-" means descending.
func ParseOrdering(ordering string) MultiCriteria {
	var mc MultiCriteria
	for _, part := range strings.Split(ordering, ",") {
		part = strings.TrimSpace(part)
		if part == "" || part == "-" {
			continue
		}
		c := Criterion{Field: part, Order: Ascending}
		if strings.HasPrefix(part, "-") {
			c = Criterion{Field: part[1:], Order: Descending}
		}
		mc.Criteria = append(mc.Criteria, c)
	}
	return mc
}

// SortBy stably sorts items by the criteria. The getter returns the value
// of a field and false for unknown fields, which are skipped.
func SortBy[T any](items []T, criteria MultiCriteria, getter func(item T, field string) (any, bool)) {
	sort.SliceStable(items, func(i, j int) bool {
		for _, c := range criteria.Criteria {
			val1, ok1 := getter(items[i], c.Field)
			val2, ok2 := getter(items[j], c.Field)
			if !ok1 || !ok2 {
				continue
			}

			comparison := CompareValues(val1, val2)
			if c.Order == Descending {
				comparison = -comparison
			}
			if comparison != 0 {
				return comparison < 0
			}
		}
		return false
	})
}

// CompareValues compares two values and returns -1, 0, or 1.
// Supports int, int64 and string; other or mismatched types compare equal.
func CompareValues(a, b any) int {
	switch aVal := a.(type) {
	case int:
		if bVal, ok := b.(int); ok {
			return cmp.Compare(aVal, bVal)
		}
	case int64:
		if bVal, ok := b.(int64); ok {
			return cmp.Compare(aVal, bVal)
		}
	case string:
		if bVal, ok := b.(string); ok {
			return strings.Compare(aVal, bVal)
		}
	}
	return 0
}
