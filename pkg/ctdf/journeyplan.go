package ctdf

import "fmt"

type RouteStep struct {
	Line     string          `json:"bus"`
	Category VehicleCategory `json:"busType"`

	From string `json:"from"`
	To   string `json:"to"`

	Fare     float64 `json:"fare"`
	Time     int     `json:"time"`
	Distance float64 `json:"distance,omitempty"`

	Instructions string `json:"instructions"`
}

func (step *RouteStep) GenerateInstructions() {
	step.Instructions = fmt.Sprintf("Take %s (%s) from %s to %s", step.Line, step.Category, step.From, step.To)
}

type RouteResult struct {
	Steps []RouteStep `json:"steps"`

	TotalTime     int     `json:"total_time"`
	TotalFare     float64 `json:"total_fare"`
	TotalDistance float64 `json:"total_distance"`

	Traffic TrafficLevel `json:"traffic"`
}
