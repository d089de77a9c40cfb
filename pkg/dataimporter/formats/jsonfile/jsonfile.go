package jsonfile

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lagosnav/lagosnav/pkg/ctdf"
)

// JSONFile reads the bus-stops.json and routes.json arrays
type JSONFile struct {
	Stops []*ctdf.Stop
	Legs  []*ctdf.Leg
}

func (j *JSONFile) ParseStops(reader io.Reader) error {
	if err := json.NewDecoder(reader).Decode(&j.Stops); err != nil {
		return fmt.Errorf("parse stops: %w", err)
	}

	return nil
}

func (j *JSONFile) ParseLegs(reader io.Reader) error {
	if err := json.NewDecoder(reader).Decode(&j.Legs); err != nil {
		return fmt.Errorf("parse legs: %w", err)
	}

	return nil
}

func (j *JSONFile) ToCTDF() *ctdf.Dataset {
	return &ctdf.Dataset{
		Stops: j.Stops,
		Legs:  j.Legs,
	}
}
