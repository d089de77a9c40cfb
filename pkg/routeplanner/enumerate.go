package routeplanner

import (
	"fmt"

	"github.com/lagosnav/lagosnav/pkg/ctdf"
	"golang.org/x/exp/slices"
)

type EnumerationMode string

const (
	// EnumerationPruned expands every stop at most once across the whole search.
	// Later arrivals at an already expanded stop are dropped even if they are cheaper or faster.
	EnumerationPruned EnumerationMode = "pruned"

	// EnumerationRelaxed keeps the best cost seen per stop under the active objective
	// and only drops branches that are strictly worse than it.
	EnumerationRelaxed EnumerationMode = "relaxed"
)

func ParseEnumerationMode(mode string) (EnumerationMode, error) {
	switch EnumerationMode(mode) {
	case EnumerationPruned:
		return EnumerationPruned, nil
	case EnumerationRelaxed, "":
		return EnumerationRelaxed, nil
	default:
		return "", fmt.Errorf("unknown enumeration mode %q", mode)
	}
}

type branch struct {
	stop      string
	stops     []string
	candidate *Candidate
}

// Enumerate walks the graph breadth first from origin and returns every candidate reaching destination,
// in discovery order. objective is only consulted in EnumerationRelaxed mode, a nil objective there
// disables the per-stop best cost check and keeps every simple path.
func Enumerate(graph Graph, origin string, destination string, mode EnumerationMode, objective Objective) ([]*Candidate, error) {
	var candidates []*Candidate

	start := &branch{
		stop:      origin,
		stops:     []string{origin},
		candidate: &Candidate{},
	}
	queue := []*branch{start}

	expanded := map[string]bool{}
	bestCost := map[string]float64{}
	compareCost := mode != EnumerationPruned && objective != nil
	if compareCost {
		bestCost[origin] = objective(start.candidate)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue[0] = nil
		queue = queue[1:]

		if current.stop == destination {
			candidates = append(candidates, current.candidate)
			continue
		}

		switch mode {
		case EnumerationPruned:
			if expanded[current.stop] {
				continue
			}
			expanded[current.stop] = true
		default:
			// A better branch reached this stop after this one was queued
			if compareCost && objective(current.candidate) > bestCost[current.stop] {
				continue
			}
		}

		for _, leg := range graph[current.stop] {
			if slices.Contains(current.stops, leg.To) {
				continue
			}

			next, err := current.candidate.extend(leg)
			if err != nil {
				return nil, err
			}

			if compareCost {
				cost := objective(next)
				if known, seen := bestCost[leg.To]; seen && cost > known {
					continue
				} else if !seen || cost < known {
					bestCost[leg.To] = cost
				}
			}

			queue = append(queue, &branch{
				stop:      leg.To,
				stops:     append(slices.Clip(current.stops), leg.To),
				candidate: next,
			})
		}
	}

	return candidates, nil
}

func trivialResult() *ctdf.RouteResult {
	return &ctdf.RouteResult{
		Steps:   []ctdf.RouteStep{},
		Traffic: ctdf.TrafficLevelLight,
	}
}
