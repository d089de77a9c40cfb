package traffic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/lagosnav/lagosnav/pkg/ctdf"
	"github.com/rs/zerolog/log"
)

const (
	DefaultDirectionsURL = "https://maps.googleapis.com/maps/api/directions/json"
	DefaultRegionSuffix  = ", Lagos, Nigeria"
)

// Live asks the Google Directions API for the driving delay between two stops
type Live struct {
	APIKey        string
	DirectionsURL string
	RegionSuffix  string

	Client     *http.Client
	Fallback   Provider
	MaxRetries uint64
	NewBackOff func() backoff.BackOff

	Now func() time.Time
}

func NewLive(apiKey string, timeout time.Duration, fallback Provider) *Live {
	return &Live{
		APIKey:        apiKey,
		DirectionsURL: DefaultDirectionsURL,
		RegionSuffix:  DefaultRegionSuffix,
		Client:        &http.Client{Timeout: timeout},
		Fallback:      fallback,
		MaxRetries:    2,
		NewBackOff: func() backoff.BackOff {
			retryBackoff := backoff.NewExponentialBackOff()
			retryBackoff.InitialInterval = 200 * time.Millisecond
			return retryBackoff
		},
		Now: time.Now,
	}
}

type directionsValue struct {
	Value int `json:"value"`
}

type directionsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Routes       []struct {
		Legs []struct {
			Duration          directionsValue  `json:"duration"`
			DurationInTraffic *directionsValue `json:"duration_in_traffic"`
		} `json:"legs"`
	} `json:"routes"`
}

func (l *Live) GetTrafficData(ctx context.Context, origin string, destination string) ctdf.TrafficSample {
	sample, err := l.fetch(ctx, origin, destination)
	if err != nil {
		log.Warn().Err(err).Str("origin", origin).Str("destination", destination).Msg("Live traffic lookup failed, using estimate")
		return l.Fallback.GetTrafficData(ctx, origin, destination)
	}

	return sample
}

func (l *Live) fetch(ctx context.Context, origin string, destination string) (ctdf.TrafficSample, error) {
	query := url.Values{}
	query.Set("origin", origin+l.RegionSuffix)
	query.Set("destination", destination+l.RegionSuffix)
	query.Set("mode", "driving")
	query.Set("departure_time", "now")
	query.Set("traffic_model", "best_guess")
	query.Set("key", l.APIKey)

	requestURL := fmt.Sprintf("%s?%s", l.DirectionsURL, query.Encode())

	var directions directionsResponse

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := l.Client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("directions api returned %s", resp.Status)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("directions api returned %s", resp.Status))
		}

		if err := json.NewDecoder(resp.Body).Decode(&directions); err != nil {
			return backoff.Permanent(fmt.Errorf("decode directions: %w", err))
		}

		return nil
	}

	retryPolicy := backoff.WithContext(backoff.WithMaxRetries(l.NewBackOff(), l.MaxRetries), ctx)
	if err := backoff.Retry(operation, retryPolicy); err != nil {
		return ctdf.TrafficSample{}, err
	}

	if directions.Status != "OK" {
		return ctdf.TrafficSample{}, fmt.Errorf("directions status %s: %s", directions.Status, directions.ErrorMessage)
	}
	if len(directions.Routes) == 0 || len(directions.Routes[0].Legs) == 0 {
		return ctdf.TrafficSample{}, errors.New("directions returned no routes")
	}

	leg := directions.Routes[0].Legs[0]
	normalDuration := leg.Duration.Value
	trafficDuration := normalDuration
	if leg.DurationInTraffic != nil {
		trafficDuration = leg.DurationInTraffic.Value
	}

	delay := int(math.Round(float64(trafficDuration-normalDuration) / 60))
	if delay < 0 {
		delay = 0
	}

	return ctdf.TrafficSample{
		Level:       ctdf.TrafficLevelForDelay(delay),
		Delay:       delay,
		LastUpdated: l.Now(),
	}, nil
}
