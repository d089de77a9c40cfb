package ctdf

import "time"

type TrafficLevel string

const (
	TrafficLevelLight  TrafficLevel = "Light"
	TrafficLevelMedium TrafficLevel = "Medium"
	TrafficLevelHeavy  TrafficLevel = "Heavy"
)

// Rank orders the levels from Light (0) to Heavy (2), unknown levels rank -1
func (t TrafficLevel) Rank() int {
	switch t {
	case TrafficLevelLight:
		return 0
	case TrafficLevelMedium:
		return 1
	case TrafficLevelHeavy:
		return 2
	default:
		return -1
	}
}

// TrafficLevelForDelay buckets a delay in minutes
func TrafficLevelForDelay(delay int) TrafficLevel {
	switch {
	case delay < 5:
		return TrafficLevelLight
	case delay < 15:
		return TrafficLevelMedium
	default:
		return TrafficLevelHeavy
	}
}

type TrafficSample struct {
	Level TrafficLevel `json:"level"`
	Delay int          `json:"delay"`

	LastUpdated time.Time `json:"lastUpdated"`
	Estimated   bool      `json:"estimated"`
}
