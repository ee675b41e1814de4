// Package mapper converts between transport payloads and inventory domain types.
package mapper

import (
	accdomain "github.com/pawhaven/pawhaven/internal/domains/accounts/domain"
	invtypes "github.com/pawhaven/pawhaven/internal/domains/inventory/application/types"
	invdomain "github.com/pawhaven/pawhaven/internal/domains/inventory/domain"
)

// Breed is the HTTP representation of a local breed record.
type Breed struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	APIID int    `json:"api_id"`
}

// Dog is the HTTP representation of an inventory dog.
type Dog struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Age             *int     `json:"age,omitempty"`
	Status          string   `json:"status"`
	ImageURL        string   `json:"image_url,omitempty"`
	TemperamentTags []string `json:"temperament_tags,omitempty"`
	Breed           *Breed   `json:"breed,omitempty"`
}

// MutationDog captures inbound payloads for create/update flows while preserving field presence.
type MutationDog struct {
	Name            *string   `json:"name,omitempty"`
	Age             *int      `json:"age,omitempty"`
	Status          *string   `json:"status,omitempty"`
	ImageURL        *string   `json:"image_url,omitempty"`
	BreedID         *int64    `json:"breed_id,omitempty"`
	TemperamentTags *[]string `json:"temperament_tags,omitempty"`
}

// User is the HTTP representation of an admin account.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Credentials is the login payload.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ToMutationInput converts the wire payload into the application command.
func (m MutationDog) ToMutationInput() invtypes.DogMutationInput {
	return invtypes.DogMutationInput{
		Name:            m.Name,
		Age:             m.Age,
		Status:          m.Status,
		ImageURL:        m.ImageURL,
		BreedID:         m.BreedID,
		TemperamentTags: m.TemperamentTags,
	}
}

// FromProjection renders a projection as the wire dog.
func FromProjection(proj *invtypes.DogProjection) Dog {
	if proj == nil || proj.Dog == nil {
		return Dog{}
	}
	dog := Dog{
		ID:              proj.Dog.ID,
		Name:            proj.Dog.Name,
		Status:          proj.Dog.Status,
		ImageURL:        proj.Dog.ImageURL,
		TemperamentTags: proj.Dog.TemperamentTags,
	}
	if proj.Dog.Age != nil {
		age := *proj.Dog.Age
		dog.Age = &age
	}
	if proj.Breed != nil {
		dog.Breed = &Breed{ID: proj.Breed.ID, Name: proj.Breed.Name, APIID: proj.Breed.APIID}
	}
	return dog
}

// FromProjectionList renders a projection slice as wire dogs.
func FromProjectionList(projs []*invtypes.DogProjection) []Dog {
	dogs := make([]Dog, 0, len(projs))
	for _, proj := range projs {
		dogs = append(dogs, FromProjection(proj))
	}
	return dogs
}

// FromBreed renders a domain breed as the wire breed.
func FromBreed(breed *invdomain.Breed) Breed {
	if breed == nil {
		return Breed{}
	}
	return Breed{ID: breed.ID, Name: breed.Name, APIID: breed.APIID}
}

// FromBreedList renders domain breeds as wire breeds.
func FromBreedList(breeds []*invdomain.Breed) []Breed {
	out := make([]Breed, 0, len(breeds))
	for _, breed := range breeds {
		out = append(out, FromBreed(breed))
	}
	return out
}

// FromUser renders an account as the wire user.
func FromUser(user *accdomain.User) User {
	if user == nil {
		return User{}
	}
	return User{ID: user.ID, Username: user.Username}
}
