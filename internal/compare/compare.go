// Package compare renders side-by-side breed comparison tables.
package compare

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/pawhaven/pawhaven/internal/catalog"
	"github.com/pawhaven/pawhaven/internal/details"
)

const imageCDNBase = "https://cdn2.thedogapi.com/images/"

// Feature labels, in the order they appear in the table.
var featureLabels = []string{
	"Image",
	"Temperament",
	"Life Span",
	"Weight",
	"Height",
	"Bred For",
	"Origin",
	"Breed Group",
}

// Table is a comparison of up to three breeds. Columns appear in the
// order the ids were requested; every row has one cell per column.
type Table struct {
	Columns []Column `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Column heads one breed in the table.
type Column struct {
	BreedID int    `json:"breed_id"`
	Name    string `json:"name"`
}

// Row is one feature across all compared breeds.
type Row struct {
	Label string   `json:"label"`
	Cells []string `json:"cells"`
}

// Build fetches details for the given ids in parallel and assembles the
// table. Any fetch failure fails the whole build. An empty id list yields
// an empty table.
func Build(ctx context.Context, fetch details.Fetcher, ids []int) (*Table, error) {
	if len(ids) == 0 {
		return &Table{Columns: []Column{}, Rows: []Row{}}, nil
	}

	fetched := make([]*catalog.BreedDetail, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			d, err := fetch(gctx, id)
			if err != nil {
				return fmt.Errorf("fetching breed %d: %w", id, err)
			}
			fetched[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	table := &Table{Rows: make([]Row, 0, len(featureLabels))}
	for _, d := range fetched {
		table.Columns = append(table.Columns, Column{BreedID: d.ID, Name: d.Name})
	}
	for _, label := range featureLabels {
		row := Row{Label: label, Cells: make([]string, 0, len(fetched))}
		for _, d := range fetched {
			row.Cells = append(row.Cells, cell(label, d))
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

func cell(label string, d *catalog.BreedDetail) string {
	switch label {
	case "Image":
		return ImageURL(d.ReferenceImageID)
	case "Temperament":
		return d.Temperament
	case "Life Span":
		return d.LifeSpan
	case "Weight":
		return suffixed(d.Weight.Imperial, " lbs")
	case "Height":
		return suffixed(d.Height.Imperial, " in")
	case "Bred For":
		return d.BredFor
	case "Origin":
		return orNA(d.Origin)
	case "Breed Group":
		return orNA(d.BreedGroup)
	}
	return ""
}

// ImageURL resolves a reference image id to its CDN location. Empty ids
// yield an empty URL so callers can show a placeholder.
func ImageURL(referenceImageID string) string {
	if referenceImageID == "" {
		return ""
	}
	return imageCDNBase + referenceImageID + ".jpg"
}

func suffixed(v, unit string) string {
	if strings.TrimSpace(v) == "" {
		return "N/A"
	}
	return v + unit
}

func orNA(v string) string {
	if strings.TrimSpace(v) == "" {
		return "N/A"
	}
	return v
}
