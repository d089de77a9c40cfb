package ctdf

type Stop struct {
	ID   int    `json:"id" bson:"id" groups:"basic"`
	Name string `json:"name" bson:"name" groups:"basic"`

	Lat float64 `json:"lat" bson:"lat" groups:"detailed"`
	Lng float64 `json:"lng" bson:"lng" groups:"detailed"`

	Aliases []string `json:"aliases,omitempty" bson:"aliases,omitempty" groups:"detailed"`
}

// Names returns the canonical name followed by every alias
func (stop *Stop) Names() []string {
	names := make([]string, 0, len(stop.Aliases)+1)
	names = append(names, stop.Name)
	names = append(names, stop.Aliases...)

	return names
}

func (stop *Stop) Location() *Location {
	return &Location{
		Type:        "Point",
		Coordinates: []float64{stop.Lng, stop.Lat},
	}
}

type StopSearchResults struct {
	Stops []*Stop `json:"stops"`
	Query string  `json:"query"`
}
