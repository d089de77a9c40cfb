package stopfinder

import (
	"context"
	"reflect"

	"github.com/lagosnav/lagosnav/pkg/ctdf"
	"github.com/lagosnav/lagosnav/pkg/dataaggregator/query"
	"github.com/lagosnav/lagosnav/pkg/dataaggregator/source"
	"github.com/lagosnav/lagosnav/pkg/routeplanner"
	"github.com/lagosnav/lagosnav/pkg/stopfinder"
)

type Source struct {
	Catalog     *stopfinder.Catalog
	SearchLimit int
}

func (s Source) GetName() string {
	return "Stop Finder"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf(ctdf.Stop{}),
		reflect.TypeOf(ctdf.StopSearchResults{}),
		reflect.TypeOf([]*ctdf.Stop{}),
	}
}

func (s Source) Lookup(ctx context.Context, q any) (interface{}, error) {
	switch q := q.(type) {
	case query.Stop:
		stop, exists := s.Catalog.FindByName(q.Name)
		if !exists {
			return nil, routeplanner.StopNotFoundError{Name: q.Name}
		}

		return stop, nil
	case query.StopSearch:
		limit := q.Limit
		if limit <= 0 {
			limit = s.SearchLimit
		}

		return s.Catalog.Search(q.Query, limit), nil
	case query.AllStops:
		return s.Catalog.All(), nil
	default:
		return nil, source.UnsupportedSourceError
	}
}
