package query

import "github.com/lagosnav/lagosnav/pkg/routeplanner"

type RoutePlan struct {
	Origin      string
	Destination string
	Preferences routeplanner.Preferences
}

type RouteMatrix struct {
	Stops       []string
	Preferences routeplanner.Preferences
}
