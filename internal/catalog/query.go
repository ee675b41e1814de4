package catalog

import (
	"sort"
	"strings"
)

// SortOrder selects the comparator applied after filtering.
type SortOrder string

const (
	SortNameAsc      SortOrder = "name-asc"
	SortNameDesc     SortOrder = "name-desc"
	SortWeightAsc    SortOrder = "weight-asc"
	SortWeightDesc   SortOrder = "weight-desc"
	SortHeightAsc    SortOrder = "height-asc"
	SortHeightDesc   SortOrder = "height-desc"
	SortLifeSpanAsc  SortOrder = "lifespan-asc"
	SortLifeSpanDesc SortOrder = "lifespan-desc"
)

// Query describes one pass of the catalog pipeline. Filters apply in a
// fixed order: name search, temperament tags, availability, then sort.
type Query struct {
	// Search keeps breeds whose name contains the term, case-insensitively.
	Search string
	// Temperaments keeps breeds whose temperament text contains every
	// selected tag. An empty selection passes everything through.
	Temperaments []string
	// AvailableOnly keeps breeds with at least one inventory dog attached.
	AvailableOnly bool
	Sort          SortOrder
}

// Apply runs the query over the augmented list and returns a new slice; the
// input is left untouched. An unknown sort order leaves the filtered order
// as-is, matching the pipeline's pass-through default.
func (q Query) Apply(breeds []AugmentedBreed) []AugmentedBreed {
	result := make([]AugmentedBreed, 0, len(breeds))
	term := strings.ToLower(strings.TrimSpace(q.Search))
	for _, b := range breeds {
		if term != "" && !strings.Contains(strings.ToLower(b.Name), term) {
			continue
		}
		if !matchesTemperaments(b.Breed, q.Temperaments) {
			continue
		}
		if q.AvailableOnly && len(b.Dogs) == 0 {
			continue
		}
		result = append(result, b)
	}
	sortBreeds(result, q.Sort)
	return result
}

func matchesTemperaments(b Breed, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	if b.Temperament == "" {
		return false
	}
	for _, tag := range selected {
		if !strings.Contains(b.Temperament, tag) {
			return false
		}
	}
	return true
}

func sortBreeds(breeds []AugmentedBreed, order SortOrder) {
	var less func(a, b AugmentedBreed) bool
	switch order {
	case SortNameAsc:
		less = func(a, b AugmentedBreed) bool { return a.Name < b.Name }
	case SortNameDesc:
		less = func(a, b AugmentedBreed) bool { return b.Name < a.Name }
	case SortWeightAsc:
		less = func(a, b AugmentedBreed) bool { return a.AverageWeight() < b.AverageWeight() }
	case SortWeightDesc:
		less = func(a, b AugmentedBreed) bool { return b.AverageWeight() < a.AverageWeight() }
	case SortHeightAsc:
		less = func(a, b AugmentedBreed) bool { return a.AverageHeight() < b.AverageHeight() }
	case SortHeightDesc:
		less = func(a, b AugmentedBreed) bool { return b.AverageHeight() < a.AverageHeight() }
	case SortLifeSpanAsc:
		less = func(a, b AugmentedBreed) bool { return a.AverageLifeSpan() < b.AverageLifeSpan() }
	case SortLifeSpanDesc:
		less = func(a, b AugmentedBreed) bool { return b.AverageLifeSpan() < a.AverageLifeSpan() }
	default:
		return
	}
	sort.SliceStable(breeds, func(i, j int) bool { return less(breeds[i], breeds[j]) })
}
