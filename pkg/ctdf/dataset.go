package ctdf

import (
	"errors"
	"fmt"
)

// Dataset is the full transit network as loaded at startup
type Dataset struct {
	Stops []*Stop
	Legs  []*Leg
}

// Stated leg distances may undercut the great-circle distance by this factor
const shortLegTolerance = 0.9

// Validate checks the invariants every leg must hold
func (d *Dataset) Validate() error {
	var errs []error

	for i, leg := range d.Legs {
		if leg.From == "" || leg.To == "" {
			errs = append(errs, fmt.Errorf("leg %d: missing endpoint", i))
		}
		if leg.Fare < 0 {
			errs = append(errs, fmt.Errorf("leg %d (%s -> %s): negative fare %v", i, leg.From, leg.To, leg.Fare))
		}
		if leg.Time < 0 {
			errs = append(errs, fmt.Errorf("leg %d (%s -> %s): negative time %d", i, leg.From, leg.To, leg.Time))
		}
		if leg.Distance < 0 {
			errs = append(errs, fmt.Errorf("leg %d (%s -> %s): negative distance %v", i, leg.From, leg.To, leg.Distance))
		}
		if !leg.Category.Valid() {
			errs = append(errs, fmt.Errorf("leg %d (%s -> %s): unknown bus type %q", i, leg.From, leg.To, leg.Category))
		}
	}

	return errors.Join(errs...)
}

// UnknownLegStops lists leg endpoints that are not a canonical stop name
func (d *Dataset) UnknownLegStops() []string {
	known := map[string]bool{}
	for _, stop := range d.Stops {
		known[stop.Name] = true
	}

	seen := map[string]bool{}
	var unknown []string

	for _, leg := range d.Legs {
		for _, name := range []string{leg.From, leg.To} {
			if !known[name] && !seen[name] {
				seen[name] = true
				unknown = append(unknown, name)
			}
		}
	}

	return unknown
}

// ShortLegs lists legs whose stated distance is below the straight line between their stops
func (d *Dataset) ShortLegs() []*Leg {
	stops := map[string]*Stop{}
	for _, stop := range d.Stops {
		stops[stop.Name] = stop
	}

	var short []*Leg
	for _, leg := range d.Legs {
		from, to := stops[leg.From], stops[leg.To]
		if leg.Distance == 0 || from == nil || to == nil {
			continue
		}

		if leg.Distance < from.Location().Distance(to.Location())*shortLegTolerance {
			short = append(short, leg)
		}
	}

	return short
}
