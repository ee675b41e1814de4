package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	invmemory "github.com/pawhaven/pawhaven/internal/domains/inventory/adapters/memory"
	invtypes "github.com/pawhaven/pawhaven/internal/domains/inventory/application/types"
	"github.com/pawhaven/pawhaven/internal/domains/inventory/domain"
	"github.com/pawhaven/pawhaven/internal/domains/inventory/ports"
)

func seedBreed(t *testing.T, repo ports.Repository, name string, apiID int) *domain.Breed {
	t.Helper()
	breed, err := domain.NewBreed(0, name, apiID)
	require.NoError(t, err)
	saved, err := repo.SaveBreed(context.Background(), breed)
	require.NoError(t, err)
	return saved
}

func TestAddDog_AssignsIDAndDefaults(t *testing.T) {
	repo := invmemory.NewRepository()
	svc := NewService(repo)

	name := "Daisy"
	proj, err := svc.AddDog(context.Background(), invtypes.AddDogInput{
		DogMutationInput: invtypes.DogMutationInput{Name: &name},
	})

	require.NoError(t, err)
	require.NotNil(t, proj)
	require.NotZero(t, proj.Dog.ID)
	require.Equal(t, "Daisy", proj.Dog.Name)
	require.Equal(t, domain.DefaultStatus, proj.Dog.Status)
	require.False(t, proj.Metadata.CreatedAt.IsZero())
}

func TestAddDog_MissingName(t *testing.T) {
	repo := invmemory.NewRepository()
	svc := NewService(repo)

	_, err := svc.AddDog(context.Background(), invtypes.AddDogInput{})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestAddDog_NegativeAge(t *testing.T) {
	repo := invmemory.NewRepository()
	svc := NewService(repo)

	name := "Daisy"
	age := -1
	_, err := svc.AddDog(context.Background(), invtypes.AddDogInput{
		DogMutationInput: invtypes.DogMutationInput{Name: &name, Age: &age},
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestAddDog_UnknownBreedLink(t *testing.T) {
	repo := invmemory.NewRepository()
	svc := NewService(repo)

	name := "Daisy"
	breedID := int64(99)
	_, err := svc.AddDog(context.Background(), invtypes.AddDogInput{
		DogMutationInput: invtypes.DogMutationInput{Name: &name, BreedID: &breedID},
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateDog_PartialMutation(t *testing.T) {
	repo := invmemory.NewRepository()
	svc := NewService(repo)
	breed := seedBreed(t, repo, "Beagle", 161)

	name := "Daisy"
	age := 2
	proj, err := svc.AddDog(context.Background(), invtypes.AddDogInput{
		DogMutationInput: invtypes.DogMutationInput{Name: &name, Age: &age, BreedID: &breed.ID},
	})
	require.NoError(t, err)

	status := "Pending"
	updated, err := svc.UpdateDog(context.Background(), invtypes.UpdateDogInput{
		ID:               proj.Dog.ID,
		DogMutationInput: invtypes.DogMutationInput{Status: &status},
	})
	require.NoError(t, err)
	require.Equal(t, "Pending", updated.Dog.Status)
	require.Equal(t, "Daisy", updated.Dog.Name)
	require.Equal(t, 2, *updated.Dog.Age)
	require.NotNil(t, updated.Breed)
	require.Equal(t, 161, updated.Breed.APIID)
	require.Equal(t, proj.Metadata.CreatedAt, updated.Metadata.CreatedAt)
}

func TestDeleteDog_Missing(t *testing.T) {
	repo := invmemory.NewRepository()
	svc := NewService(repo)

	err := svc.DeleteDog(context.Background(), invtypes.DogIdentifier{ID: 12})
	require.ErrorIs(t, err, ports.ErrDogNotFound)
}

func TestListDogsByBreedAPIID(t *testing.T) {
	repo := invmemory.NewRepository()
	svc := NewService(repo)
	beagle := seedBreed(t, repo, "Beagle", 161)
	seedBreed(t, repo, "Akita", 12)

	name := "Daisy"
	_, err := svc.AddDog(context.Background(), invtypes.AddDogInput{
		DogMutationInput: invtypes.DogMutationInput{Name: &name, BreedID: &beagle.ID},
	})
	require.NoError(t, err)
	stray := "Stray"
	_, err = svc.AddDog(context.Background(), invtypes.AddDogInput{
		DogMutationInput: invtypes.DogMutationInput{Name: &stray},
	})
	require.NoError(t, err)

	matched, err := svc.ListDogsByBreedAPIID(context.Background(), invtypes.BreedAPIIdentifier{APIID: 161})
	require.NoError(t, err)
	require.Len(t, matched, 1)
	require.Equal(t, "Daisy", matched[0].Dog.Name)

	none, err := svc.ListDogsByBreedAPIID(context.Background(), invtypes.BreedAPIIdentifier{APIID: 12})
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestTagDog_ReplacesTags(t *testing.T) {
	repo := invmemory.NewRepository()
	svc := NewService(repo)

	name := "Daisy"
	proj, err := svc.AddDog(context.Background(), invtypes.AddDogInput{
		DogMutationInput: invtypes.DogMutationInput{Name: &name},
	})
	require.NoError(t, err)

	tagged, err := svc.TagDog(context.Background(), invtypes.TagDogInput{
		ID:   proj.Dog.ID,
		Tags: []string{"Loyal", " Gentle ", ""},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"Loyal", "Gentle"}, tagged.Dog.TemperamentTags)
}
