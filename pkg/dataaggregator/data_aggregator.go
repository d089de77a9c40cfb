package dataaggregator

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/lagosnav/lagosnav/pkg/dataaggregator/source"
	"github.com/rs/zerolog/log"
)

type Aggregator struct {
	Sources []DataSource
}

var GlobalAggregator Aggregator

func (a *Aggregator) RegisterSource(source DataSource) {
	a.Sources = append(a.Sources, source)

	log.Debug().Str("name", source.GetName()).Msg("Registering new Data Source")
}

// Lookup answers a query with the first global source that supports T
func Lookup[T any](ctx context.Context, query any) (T, error) {
	return LookupWith[T](ctx, &GlobalAggregator, query)
}

func LookupWith[T any](ctx context.Context, aggregator *Aggregator, query any) (T, error) {
	var empty T

	lookupType := reflect.TypeOf(*new(T))
	if lookupType.Kind() == reflect.Pointer {
		lookupType = lookupType.Elem()
	}

	for _, dataSource := range aggregator.Sources {
		matches := false

		for _, supportedType := range dataSource.Supports() {
			if lookupType == supportedType {
				matches = true
				break
			}
		}

		if !matches {
			continue
		}

		returnValue, err := dataSource.Lookup(ctx, query)
		if errors.Is(err, source.UnsupportedSourceError) {
			continue
		}

		if returnValue == nil {
			return empty, err
		}

		typedValue, ok := returnValue.(T)
		if !ok {
			return empty, fmt.Errorf("data source %s returned %T", dataSource.GetName(), returnValue)
		}

		return typedValue, err
	}

	return empty, source.UnsupportedSourceError
}
