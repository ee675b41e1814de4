package catalog

// Dog is the slice of an inventory record the catalog view needs: enough to
// render a card and to link back to the owning remote breed.
type Dog struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Age        *int   `json:"age,omitempty"`
	Status     string `json:"status"`
	ImageURL   string `json:"image_url,omitempty"`
	BreedName  string `json:"breed_name,omitempty"`
	BreedAPIID int    `json:"breed_api_id"`
}

// AugmentedBreed is a Breed decorated with the inventory dogs whose local
// breed points back at it. Rebuilt from scratch on every catalog load.
type AugmentedBreed struct {
	Breed
	Dogs []Dog `json:"dogs"`
}

// Augment joins breeds and dogs on the remote breed identifier. Every breed
// appears in the result exactly once, carrying a possibly empty dog list;
// dogs referencing unknown breeds are dropped. Neither input is mutated.
func Augment(breeds []Breed, dogs []Dog) []AugmentedBreed {
	byBreed := make(map[int][]Dog)
	for _, d := range dogs {
		byBreed[d.BreedAPIID] = append(byBreed[d.BreedAPIID], d)
	}
	augmented := make([]AugmentedBreed, 0, len(breeds))
	for _, b := range breeds {
		matched := byBreed[b.ID]
		if matched == nil {
			matched = []Dog{}
		}
		augmented = append(augmented, AugmentedBreed{Breed: b, Dogs: matched})
	}
	return augmented
}
