package stopfinder

import (
	"errors"
	"fmt"

	"github.com/lagosnav/lagosnav/pkg/ctdf"
	"github.com/lagosnav/lagosnav/pkg/util"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

const (
	DefaultSearchLimit = 5

	// A stop must score strictly above this to appear in search results
	InclusionThreshold = 30.0
)

var ErrDuplicateStopNames = errors.New("duplicate stop names")

type DuplicateName struct {
	Name     string
	StopID   int
	Existing int
}

func (d DuplicateName) String() string {
	return fmt.Sprintf("%q on stop %d already used by stop %d", d.Name, d.StopID, d.Existing)
}

type CatalogOptions struct {
	// StrictNames rejects a catalog where two stops share a canonical name or alias
	StrictNames bool
}

// Catalog is the immutable set of stops, safe for concurrent use once built
type Catalog struct {
	stops      []*ctdf.Stop
	nameIndex  map[string]*ctdf.Stop
	duplicates []DuplicateName
}

func NewCatalog(stops []*ctdf.Stop, options CatalogOptions) (*Catalog, error) {
	catalog := &Catalog{
		stops:     stops,
		nameIndex: map[string]*ctdf.Stop{},
	}

	for _, stop := range stops {
		for _, name := range stop.Names() {
			normalised := util.NormaliseName(name)

			if existing, exists := catalog.nameIndex[normalised]; exists {
				if existing != stop {
					catalog.duplicates = append(catalog.duplicates, DuplicateName{
						Name:     name,
						StopID:   stop.ID,
						Existing: existing.ID,
					})
				}
				continue
			}

			catalog.nameIndex[normalised] = stop
		}
	}

	if len(catalog.duplicates) > 0 {
		if options.StrictNames {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateStopNames, catalog.duplicates)
		}

		for _, duplicate := range catalog.duplicates {
			log.Warn().Str("name", duplicate.Name).Int("stop", duplicate.StopID).Int("existing", duplicate.Existing).Msg("Duplicate stop name, keeping first")
		}
	}

	log.Debug().Int("stops", len(stops)).Int("names", len(catalog.nameIndex)).Msg("Built stop catalog")

	return catalog, nil
}

func (c *Catalog) Duplicates() []DuplicateName {
	return c.duplicates
}

// All returns every stop in load order
func (c *Catalog) All() []*ctdf.Stop {
	return c.stops
}

func (c *Catalog) Len() int {
	return len(c.stops)
}

// FindByName resolves a canonical name or alias, ignoring case and surrounding whitespace
func (c *Catalog) FindByName(name string) (*ctdf.Stop, bool) {
	stop, exists := c.nameIndex[util.NormaliseName(name)]

	return stop, exists
}

type scoredStop struct {
	stop  *ctdf.Stop
	score float64
}

// Search returns up to limit stops ranked by their best name similarity to query
func (c *Catalog) Search(query string, limit int) *ctdf.StopSearchResults {
	results := &ctdf.StopSearchResults{
		Stops: []*ctdf.Stop{},
		Query: query,
	}

	if util.NormaliseName(query) == "" {
		return results
	}

	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	var matches []scoredStop

	for _, stop := range c.stops {
		bestScore := 0.0

		for _, name := range stop.Names() {
			bestScore = max(bestScore, Similarity(query, name))
		}

		if bestScore > InclusionThreshold {
			matches = append(matches, scoredStop{stop: stop, score: bestScore})
		}
	}

	slices.SortStableFunc(matches, func(a, b scoredStop) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		default:
			return 0
		}
	})

	for _, match := range matches {
		if len(results.Stops) >= limit {
			break
		}
		results.Stops = append(results.Stops, match.stop)
	}

	return results
}
