package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testBreeds() []AugmentedBreed {
	return Augment(
		[]Breed{
			{ID: 1, Name: "Beagle", Temperament: "Loyal, Playful, Curious", Weight: MeasurementRange{Imperial: "20 - 30"}},
			{ID: 2, Name: "Akita", Temperament: "Loyal, Dignified", Weight: MeasurementRange{Imperial: "70 - 100"}},
			{ID: 3, Name: "Corgi", Temperament: "Playful, Bold", Weight: MeasurementRange{Imperial: "25 - 30"}},
			{ID: 4, Name: "Saluki", Weight: MeasurementRange{Imperial: "40 - 60"}},
		},
		[]Dog{{ID: 1, Name: "Rex", BreedAPIID: 2}},
	)
}

func names(breeds []AugmentedBreed) []string {
	out := make([]string, 0, len(breeds))
	for _, b := range breeds {
		out = append(out, b.Name)
	}
	return out
}

func TestApplySearchIsCaseInsensitiveSubstring(t *testing.T) {
	got := Query{Search: "gi"}.Apply(testBreeds())
	require.Equal(t, []string{"Corgi"}, names(got))

	got = Query{Search: "AKITA"}.Apply(testBreeds())
	require.Equal(t, []string{"Akita"}, names(got))
}

func TestApplyTemperamentFilterRequiresEveryTag(t *testing.T) {
	got := Query{Temperaments: []string{"Loyal", "Playful"}}.Apply(testBreeds())
	require.Equal(t, []string{"Beagle"}, names(got))
}

func TestApplyEmptyTemperamentSelectionPassesThrough(t *testing.T) {
	input := testBreeds()
	got := Query{}.Apply(input)
	require.Equal(t, names(input), names(got))
}

func TestApplyMissingTemperamentNeverMatches(t *testing.T) {
	got := Query{Temperaments: []string{"Loyal"}}.Apply(testBreeds())
	require.NotContains(t, names(got), "Saluki")
}

func TestApplyAvailableOnly(t *testing.T) {
	got := Query{AvailableOnly: true}.Apply(testBreeds())
	require.Equal(t, []string{"Akita"}, names(got))
}

func TestApplySortByNameDesc(t *testing.T) {
	input := Augment([]Breed{
		{ID: 1, Name: "Beagle"},
		{ID: 2, Name: "Akita"},
		{ID: 3, Name: "Corgi"},
	}, nil)
	got := Query{Sort: SortNameDesc}.Apply(input)
	require.Equal(t, []string{"Corgi", "Beagle", "Akita"}, names(got))
}

func TestApplySortByAverageWeight(t *testing.T) {
	got := Query{Sort: SortWeightAsc}.Apply(testBreeds())
	require.Equal(t, []string{"Beagle", "Corgi", "Saluki", "Akita"}, names(got))

	got = Query{Sort: SortWeightDesc}.Apply(testBreeds())
	require.Equal(t, []string{"Akita", "Saluki", "Corgi", "Beagle"}, names(got))
}

func TestApplyFilterOrderBeforeSort(t *testing.T) {
	got := Query{Search: "a", Sort: SortNameAsc}.Apply(testBreeds())
	require.Equal(t, []string{"Akita", "Beagle", "Saluki"}, names(got))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	input := testBreeds()
	_ = Query{Sort: SortNameDesc}.Apply(input)
	require.Equal(t, "Beagle", input[0].Name)
}
