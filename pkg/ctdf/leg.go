package ctdf

// Leg is a single directed bus connection between two stops, referenced by canonical name
type Leg struct {
	From string `json:"from" bson:"from"`
	To   string `json:"to" bson:"to"`

	Fare float64 `json:"fare" bson:"fare"`
	Time int     `json:"time" bson:"time"`

	Line     string          `json:"busNumber" bson:"busnumber"`
	Category VehicleCategory `json:"busType" bson:"bustype"`

	Distance float64 `json:"distance,omitempty" bson:"distance,omitempty"`
}
