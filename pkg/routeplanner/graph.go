package routeplanner

import "github.com/lagosnav/lagosnav/pkg/ctdf"

// Graph maps a stop name to the legs departing from it, in dataset order
type Graph map[string][]*ctdf.Leg

func BuildGraph(legs []*ctdf.Leg) Graph {
	graph := Graph{}

	for _, leg := range legs {
		graph[leg.From] = append(graph[leg.From], leg)
	}

	return graph
}
