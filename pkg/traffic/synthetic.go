package traffic

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/lagosnav/lagosnav/pkg/ctdf"
	"github.com/rs/zerolog/log"
)

// Synthetic estimates congestion from the local hour of day
type Synthetic struct {
	Now      func() time.Time
	Location *time.Location

	mutex  sync.Mutex
	random *rand.Rand
}

// NewSynthetic seeds the estimator, a zero seed draws from the clock
func NewSynthetic(seed int64) *Synthetic {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	location, err := time.LoadLocation("Africa/Lagos")
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load Africa/Lagos timezone, using fixed WAT offset")
		location = time.FixedZone("WAT", 60*60)
	}

	return &Synthetic{
		Now:      time.Now,
		Location: location,
		random:   rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1)),
	}
}

func (s *Synthetic) GetTrafficData(ctx context.Context, origin string, destination string) ctdf.TrafficSample {
	now := s.Now().In(s.Location)
	hour := now.Hour()

	switch {
	// Rush hours
	case (hour >= 7 && hour <= 10) || (hour >= 16 && hour <= 20):
		return estimatedAt(now, ctdf.TrafficLevelHeavy, 10+s.intN(20))
	case hour >= 11 && hour <= 15:
		return estimatedAt(now, ctdf.TrafficLevelMedium, 3+s.intN(10))
	default:
		return estimatedAt(now, ctdf.TrafficLevelLight, s.intN(5))
	}
}

func (s *Synthetic) intN(n int) int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.random.IntN(n)
}
