package routeplanner

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/lagosnav/lagosnav/pkg/ctdf"
	"github.com/lagosnav/lagosnav/pkg/stopfinder"
	"github.com/stretchr/testify/require"
)

type fixedTraffic struct {
	sample ctdf.TrafficSample
	calls  atomic.Int32
}

func (f *fixedTraffic) GetTrafficData(ctx context.Context, origin string, destination string) ctdf.TrafficSample {
	f.calls.Add(1)
	return f.sample
}

func leg(from string, to string, fare float64, time int, line string, category ctdf.VehicleCategory) *ctdf.Leg {
	return &ctdf.Leg{From: from, To: to, Fare: fare, Time: time, Line: line, Category: category}
}

// A/B/C network: A->B->C is cheaper, A->C is faster and has fewer legs
func abcLegs() []*ctdf.Leg {
	return []*ctdf.Leg{
		leg("A", "B", 100, 10, "L1", ctdf.VehicleCategoryDanfo),
		leg("B", "C", 50, 15, "L2", ctdf.VehicleCategoryBRT),
		leg("A", "C", 200, 20, "L3", ctdf.VehicleCategoryMolue),
	}
}

func abcCatalog(t *testing.T) *stopfinder.Catalog {
	t.Helper()

	catalog, err := stopfinder.NewCatalog([]*ctdf.Stop{
		{ID: 1, Name: "A", Aliases: []string{"Alpha"}},
		{ID: 2, Name: "B"},
		{ID: 3, Name: "C"},
		{ID: 4, Name: "D"},
	}, stopfinder.CatalogOptions{StrictNames: true})
	require.NoError(t, err)

	return catalog
}

func newTestPlanner(t *testing.T, mode EnumerationMode, legs []*ctdf.Leg) (*Planner, *fixedTraffic) {
	t.Helper()

	traffic := &fixedTraffic{sample: ctdf.TrafficSample{Level: ctdf.TrafficLevelMedium, Delay: 7}}

	return NewPlanner(abcCatalog(t), legs, traffic, mode, nil), traffic
}

func stopsOf(c *Candidate) []string {
	if len(c.Steps) == 0 {
		return nil
	}

	stops := []string{c.Steps[0].From}
	for _, step := range c.Steps {
		stops = append(stops, step.To)
	}

	return stops
}
