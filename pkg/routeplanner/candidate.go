package routeplanner

import (
	"github.com/jinzhu/copier"
	"github.com/lagosnav/lagosnav/pkg/ctdf"
	"golang.org/x/exp/slices"
)

// Candidate is one complete or partial walk through the graph with its running totals
type Candidate struct {
	Steps []ctdf.RouteStep

	Distance float64
	Time     int
	Fare     float64
}

func (c *Candidate) Legs() int {
	return len(c.Steps)
}

func (c *Candidate) extend(leg *ctdf.Leg) (*Candidate, error) {
	var step ctdf.RouteStep
	if err := copier.Copy(&step, leg); err != nil {
		return nil, err
	}
	step.GenerateInstructions()

	return &Candidate{
		Steps:    append(slices.Clip(c.Steps), step),
		Distance: c.Distance + leg.Distance,
		Time:     c.Time + leg.Time,
		Fare:     c.Fare + leg.Fare,
	}, nil
}
