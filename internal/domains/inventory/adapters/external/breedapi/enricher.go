// Package breedapi adapts the remote breed directory into the inventory
// enrichment port.
package breedapi

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pawhaven/pawhaven/internal/clients/dogapi"
	"github.com/pawhaven/pawhaven/internal/domains/inventory/ports"
)

var _ ports.BreedEnricher = (*Enricher)(nil)

// Enricher fetches temperament tags from the remote breed directory.
type Enricher struct {
	client *dogapi.Client
}

// NewEnricher wires the breed directory client.
func NewEnricher(client *dogapi.Client) *Enricher {
	return &Enricher{client: client}
}

// TemperamentTags splits the breed's temperament text into trimmed tags.
func (e *Enricher) TemperamentTags(ctx context.Context, breedAPIID int) ([]string, error) {
	if e == nil || e.client == nil {
		return nil, errors.New("breed enricher not configured")
	}
	detail, err := e.client.GetBreed(ctx, breedAPIID)
	if err != nil {
		return nil, fmt.Errorf("load breed %d: %w", breedAPIID, err)
	}
	raw := strings.Split(detail.Temperament, ",")
	tags := make([]string, 0, len(raw))
	for _, tag := range raw {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags, nil
}
