package domain

import (
	"errors"
	"strings"
)

// DefaultStatus is applied when a dog is created without an explicit status.
// Status is free text so shelters can record states like "Fostered".
const DefaultStatus = "Available"

// Dog represents an adoptable animal owned by the inventory bounded context.
type Dog struct {
	ID              int64
	Name            string
	Age             *int
	Status          string
	ImageURL        string
	BreedID         *int64
	TemperamentTags []string
}

var (
	ErrEmptyName   = errors.New("dog name is required")
	ErrNegativeAge = errors.New("dog age must be greater or equal to zero")
)

// NewDog validates the invariants and builds a new Dog aggregate.
func NewDog(id int64, name string) (*Dog, error) {
	d := &Dog{ID: id, Status: DefaultStatus}
	if err := d.Rename(name); err != nil {
		return nil, err
	}
	return d, nil
}

// Rename mutates the dog name ensuring the invariant.
func (d *Dog) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	d.Name = name
	return nil
}

// SetAge stores the age in years; nil clears an unknown age.
func (d *Dog) SetAge(age *int) error {
	if age == nil {
		d.Age = nil
		return nil
	}
	if *age < 0 {
		return ErrNegativeAge
	}
	value := *age
	d.Age = &value
	return nil
}

// UpdateStatus keeps the adoption state; empty input restores the default.
func (d *Dog) UpdateStatus(status string) {
	status = strings.TrimSpace(status)
	if status == "" {
		status = DefaultStatus
	}
	d.Status = status
}

// UpdateImageURL stores the latest portrait location.
func (d *Dog) UpdateImageURL(url string) {
	d.ImageURL = strings.TrimSpace(url)
}

// AssignBreed links the dog to a local breed record; nil unlinks it.
func (d *Dog) AssignBreed(breedID *int64) {
	if breedID == nil {
		d.BreedID = nil
		return
	}
	value := *breedID
	d.BreedID = &value
}

// ReplaceTemperamentTags swaps the enrichment tag set.
func (d *Dog) ReplaceTemperamentTags(tags []string) {
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			cleaned = append(cleaned, tag)
		}
	}
	d.TemperamentTags = cleaned
}
