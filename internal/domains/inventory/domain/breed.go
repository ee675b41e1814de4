package domain

import (
	"errors"
	"strings"
)

// Breed is the local breed record linking inventory dogs to the remote
// directory through APIID.
type Breed struct {
	ID    int64
	Name  string
	APIID int
}

var (
	ErrEmptyBreedName = errors.New("breed name is required")
	ErrInvalidAPIID   = errors.New("breed api id must be positive")
)

// NewBreed validates and builds a breed record.
func NewBreed(id int64, name string, apiID int) (*Breed, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyBreedName
	}
	if apiID <= 0 {
		return nil, ErrInvalidAPIID
	}
	return &Breed{ID: id, Name: name, APIID: apiID}, nil
}
