// Package catalog builds the adoptable-breed view model: it joins remote
// breed reference data with local inventory dogs and applies the catalog's
// search, filter, and sort pipeline.
package catalog

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// MeasurementRange carries the free-text ranges the breed API reports,
// e.g. {"imperial": "50 - 70", "metric": "23 - 32"}.
type MeasurementRange struct {
	Imperial string `json:"imperial"`
	Metric   string `json:"metric"`
}

// Breed is a reference record from the remote breed API. Immutable once
// fetched; the catalog never writes breeds back.
type Breed struct {
	ID               int              `json:"id"`
	Name             string           `json:"name"`
	Temperament      string           `json:"temperament,omitempty"`
	LifeSpan         string           `json:"life_span,omitempty"`
	Weight           MeasurementRange `json:"weight"`
	Height           MeasurementRange `json:"height"`
	ReferenceImageID string           `json:"reference_image_id,omitempty"`
}

// BreedDetail is the expanded record returned by the breed API's per-id
// endpoint. Detail and comparison views render these extra attributes.
type BreedDetail struct {
	Breed
	BredFor    string `json:"bred_for,omitempty"`
	BreedGroup string `json:"breed_group,omitempty"`
	Origin     string `json:"origin,omitempty"`
}

var rangeDigits = regexp.MustCompile(`\d+`)

// AverageFromRange extracts every unsigned integer from a free-text range
// such as "18 - 24" and returns their arithmetic mean. Malformed or empty
// input degrades to 0; this parser never fails.
func AverageFromRange(s string) float64 {
	matches := rangeDigits.FindAllString(s, -1)
	if len(matches) == 0 {
		return 0
	}
	sum := 0
	for _, m := range matches {
		n, err := strconv.Atoi(m)
		if err != nil {
			// Only possible on overflow; treat the token as absent.
			continue
		}
		sum += n
	}
	return float64(sum) / float64(len(matches))
}

// AverageWeight returns the mean of the imperial weight range.
func (b Breed) AverageWeight() float64 { return AverageFromRange(b.Weight.Imperial) }

// AverageHeight returns the mean of the imperial height range.
func (b Breed) AverageHeight() float64 { return AverageFromRange(b.Height.Imperial) }

// AverageLifeSpan returns the mean of the life span range.
func (b Breed) AverageLifeSpan() float64 { return AverageFromRange(b.LifeSpan) }

// Temperaments collects the distinct temperament tags across the breed
// list, trimmed and sorted. Breeds without temperament text contribute
// nothing.
func Temperaments(breeds []Breed) []string {
	seen := map[string]struct{}{}
	for _, b := range breeds {
		if b.Temperament == "" {
			continue
		}
		for _, tag := range strings.Split(b.Temperament, ",") {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}
			seen[tag] = struct{}{}
		}
	}
	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
