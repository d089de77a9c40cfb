package journeyplanner

import (
	"context"
	"reflect"

	"github.com/lagosnav/lagosnav/pkg/ctdf"
	"github.com/lagosnav/lagosnav/pkg/dataaggregator/query"
	"github.com/lagosnav/lagosnav/pkg/dataaggregator/source"
	"github.com/lagosnav/lagosnav/pkg/routeplanner"
)

type Source struct {
	Planner           *routeplanner.Planner
	MatrixConcurrency int
}

func (s Source) GetName() string {
	return "Journey Planner"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf(ctdf.RouteResult{}),
		reflect.TypeOf([]routeplanner.MatrixResult{}),
	}
}

func (s Source) Lookup(ctx context.Context, q any) (interface{}, error) {
	switch q := q.(type) {
	case query.RoutePlan:
		return s.Planner.Plan(ctx, q.Origin, q.Destination, q.Preferences)
	case query.RouteMatrix:
		pairs := routeplanner.PairsBetween(q.Stops)
		return s.Planner.PlanMatrix(ctx, pairs, q.Preferences, s.MatrixConcurrency), nil
	default:
		return nil, source.UnsupportedSourceError
	}
}
