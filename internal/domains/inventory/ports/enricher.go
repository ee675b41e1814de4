package ports

import "context"

// BreedEnricher defines outbound integration for fetching temperament tags
// from the remote breed directory.
type BreedEnricher interface {
	TemperamentTags(ctx context.Context, breedAPIID int) ([]string, error)
}
