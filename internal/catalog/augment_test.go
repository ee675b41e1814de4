package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAugmentJoinsByRemoteBreedID(t *testing.T) {
	breeds := []Breed{
		{ID: 1, Name: "Akita"},
		{ID: 2, Name: "Beagle"},
		{ID: 3, Name: "Corgi"},
	}
	dogs := []Dog{
		{ID: 10, Name: "Rex", BreedAPIID: 1},
		{ID: 11, Name: "Fido", BreedAPIID: 2},
		{ID: 12, Name: "Buddy", BreedAPIID: 1},
		{ID: 13, Name: "Stray", BreedAPIID: 99},
	}

	augmented := Augment(breeds, dogs)

	require.Len(t, augmented, 3)
	require.Equal(t, []int64{10, 12}, dogIDs(augmented[0].Dogs))
	require.Equal(t, []int64{11}, dogIDs(augmented[1].Dogs))
	require.NotNil(t, augmented[2].Dogs)
	require.Empty(t, augmented[2].Dogs)
}

func TestAugmentLeavesInputsUntouched(t *testing.T) {
	breeds := []Breed{{ID: 1, Name: "Akita"}}
	dogs := []Dog{{ID: 10, BreedAPIID: 1}}

	_ = Augment(breeds, dogs)

	require.Equal(t, "Akita", breeds[0].Name)
	require.Equal(t, int64(10), dogs[0].ID)
}

func TestAugmentEmptyInventory(t *testing.T) {
	augmented := Augment([]Breed{{ID: 1}}, nil)
	require.Len(t, augmented, 1)
	require.Empty(t, augmented[0].Dogs)
}

func dogIDs(dogs []Dog) []int64 {
	ids := make([]int64, 0, len(dogs))
	for _, d := range dogs {
		ids = append(ids, d.ID)
	}
	return ids
}
