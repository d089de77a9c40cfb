package traffic

import (
	"context"
	"reflect"

	"github.com/lagosnav/lagosnav/pkg/ctdf"
	"github.com/lagosnav/lagosnav/pkg/dataaggregator/query"
	"github.com/lagosnav/lagosnav/pkg/dataaggregator/source"
	"github.com/lagosnav/lagosnav/pkg/traffic"
)

type Source struct {
	Provider traffic.Provider
}

func (s Source) GetName() string {
	return "Traffic"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf(ctdf.TrafficSample{}),
	}
}

func (s Source) Lookup(ctx context.Context, q any) (interface{}, error) {
	switch q := q.(type) {
	case query.Traffic:
		sample := s.Provider.GetTrafficData(ctx, q.From, q.To)
		return &sample, nil
	default:
		return nil, source.UnsupportedSourceError
	}
}
