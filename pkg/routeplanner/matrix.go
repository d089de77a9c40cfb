package routeplanner

import (
	"context"

	"github.com/lagosnav/lagosnav/pkg/ctdf"
	"github.com/sourcegraph/conc/pool"
)

type MatrixPair struct {
	Origin      string
	Destination string
}

type MatrixResult struct {
	Origin      string
	Destination string

	Result *ctdf.RouteResult
	Err    error
}

// PairsBetween returns every ordered pair of distinct names
func PairsBetween(names []string) []MatrixPair {
	var pairs []MatrixPair

	for _, origin := range names {
		for _, destination := range names {
			if origin != destination {
				pairs = append(pairs, MatrixPair{Origin: origin, Destination: destination})
			}
		}
	}

	return pairs
}

// PlanMatrix plans every pair with at most concurrency plans in flight, results keep the order of pairs
func (p *Planner) PlanMatrix(ctx context.Context, pairs []MatrixPair, preferences Preferences, concurrency int) []MatrixResult {
	results := make([]MatrixResult, len(pairs))

	if concurrency < 1 {
		concurrency = 1
	}

	workers := pool.New().WithMaxGoroutines(concurrency)

	for i, pair := range pairs {
		workers.Go(func() {
			result, err := p.Plan(ctx, pair.Origin, pair.Destination, preferences)

			results[i] = MatrixResult{
				Origin:      pair.Origin,
				Destination: pair.Destination,
				Result:      result,
				Err:         err,
			}
		})
	}

	workers.Wait()

	return results
}
