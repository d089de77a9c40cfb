package routeplanner

import (
	"context"
	"errors"
	"fmt"

	"github.com/lagosnav/lagosnav/pkg/ctdf"
	"github.com/lagosnav/lagosnav/pkg/stopfinder"
	"github.com/rs/zerolog/log"
)

var (
	ErrStopNotFound = errors.New("stop not found")
	ErrNoRoute      = errors.New("no route found")
)

// StopNotFoundError names the input that matched no stop, it unwraps to ErrStopNotFound
type StopNotFoundError struct {
	Name string
}

func (e StopNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrStopNotFound, e.Name)
}

func (e StopNotFoundError) Unwrap() error {
	return ErrStopNotFound
}

// TrafficProvider must always return a sample, falling back to an estimate internally
type TrafficProvider interface {
	GetTrafficData(ctx context.Context, origin string, destination string) ctdf.TrafficSample
}

type Planner struct {
	Catalog  *stopfinder.Catalog
	Legs     []*ctdf.Leg
	Traffic  TrafficProvider
	Mode     EnumerationMode
	Selector *Selector
}

func NewPlanner(catalog *stopfinder.Catalog, legs []*ctdf.Leg, traffic TrafficProvider, mode EnumerationMode, selector *Selector) *Planner {
	if selector == nil {
		selector = &Selector{}
	}

	return &Planner{
		Catalog:  catalog,
		Legs:     legs,
		Traffic:  traffic,
		Mode:     mode,
		Selector: selector,
	}
}

// Plan resolves both stop names and returns the best route between them.
// Unknown names give ErrStopNotFound, unconnected stops give ErrNoRoute.
func (p *Planner) Plan(ctx context.Context, origin string, destination string, preferences Preferences) (*ctdf.RouteResult, error) {
	originStop, exists := p.Catalog.FindByName(origin)
	if !exists {
		return nil, StopNotFoundError{Name: origin}
	}

	destinationStop, exists := p.Catalog.FindByName(destination)
	if !exists {
		return nil, StopNotFoundError{Name: destination}
	}

	if originStop.ID == destinationStop.ID {
		return trivialResult(), nil
	}

	policy := p.Selector.Policy(preferences)

	graph := BuildGraph(p.Legs)
	candidates, err := Enumerate(graph, originStop.Name, destinationStop.Name, p.Mode, p.Selector.PruningObjective(policy))
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("origin", originStop.Name).
		Str("destination", destinationStop.Name).
		Str("policy", policy.String()).
		Str("mode", string(p.Mode)).
		Int("candidates", len(candidates)).
		Msg("Enumerated route candidates")

	best := p.Selector.Select(candidates, policy)
	if best == nil {
		return nil, fmt.Errorf("%w: %s to %s", ErrNoRoute, originStop.Name, destinationStop.Name)
	}

	trafficSample := p.Traffic.GetTrafficData(ctx, originStop.Name, destinationStop.Name)

	return &ctdf.RouteResult{
		Steps:         best.Steps,
		TotalTime:     best.Time + trafficSample.Delay,
		TotalFare:     best.Fare,
		TotalDistance: best.Distance,
		Traffic:       trafficSample.Level,
	}, nil
}
