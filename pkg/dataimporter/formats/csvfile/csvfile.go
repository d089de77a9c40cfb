package csvfile

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/lagosnav/lagosnav/pkg/ctdf"
	"github.com/lagosnav/lagosnav/pkg/util"
)

const AliasSeparator = "|"

type Stop struct {
	ID      int     `csv:"id"`
	Name    string  `csv:"name"`
	Lat     float64 `csv:"lat"`
	Lng     float64 `csv:"lng"`
	Aliases string  `csv:"aliases"`
}

type Leg struct {
	From      string  `csv:"from"`
	To        string  `csv:"to"`
	Fare      float64 `csv:"fare"`
	Time      int     `csv:"time"`
	BusNumber string  `csv:"bus_number"`
	BusType   string  `csv:"bus_type"`
	Distance  float64 `csv:"distance"`
}

// CSVFile reads stops.csv and legs.csv, aliases are pipe separated
type CSVFile struct {
	Stops []Stop
	Legs  []Leg
}

func init() {
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.FieldsPerRecord = -1
		r.TrimLeadingSpace = true
		return r
	})
}

func (c *CSVFile) ParseStops(reader io.Reader) error {
	if err := gocsv.Unmarshal(reader, &c.Stops); err != nil {
		return fmt.Errorf("parse stops: %w", err)
	}

	return nil
}

func (c *CSVFile) ParseLegs(reader io.Reader) error {
	if err := gocsv.Unmarshal(reader, &c.Legs); err != nil {
		return fmt.Errorf("parse legs: %w", err)
	}

	return nil
}

func (c *CSVFile) ToCTDF() *ctdf.Dataset {
	dataset := &ctdf.Dataset{
		Stops: make([]*ctdf.Stop, 0, len(c.Stops)),
		Legs:  make([]*ctdf.Leg, 0, len(c.Legs)),
	}

	for _, stop := range c.Stops {
		dataset.Stops = append(dataset.Stops, &ctdf.Stop{
			ID:      stop.ID,
			Name:    stop.Name,
			Lat:     stop.Lat,
			Lng:     stop.Lng,
			Aliases: util.UniqueNames(util.SplitList(stop.Aliases, AliasSeparator), stop.Name),
		})
	}

	for _, leg := range c.Legs {
		dataset.Legs = append(dataset.Legs, &ctdf.Leg{
			From:     leg.From,
			To:       leg.To,
			Fare:     leg.Fare,
			Time:     leg.Time,
			Line:     leg.BusNumber,
			Category: ctdf.VehicleCategory(leg.BusType),
			Distance: leg.Distance,
		})
	}

	return dataset
}
