package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lagosnav/lagosnav/pkg/config"
	"github.com/lagosnav/lagosnav/pkg/ctdf"
	"github.com/lagosnav/lagosnav/pkg/dataaggregator/global"
	"github.com/lagosnav/lagosnav/pkg/routeplanner"
	"github.com/lagosnav/lagosnav/pkg/stopfinder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedTraffic struct{}

func (fixedTraffic) GetTrafficData(ctx context.Context, origin string, destination string) ctdf.TrafficSample {
	return ctdf.TrafficSample{Level: ctdf.TrafficLevelHeavy, Delay: 12}
}

func setupTestAPI(t *testing.T) {
	t.Helper()

	catalog, err := stopfinder.NewCatalog([]*ctdf.Stop{
		{ID: 1, Name: "A", Lat: 6.5, Lng: 3.3, Aliases: []string{"Alpha"}},
		{ID: 2, Name: "B", Lat: 6.6, Lng: 3.4},
		{ID: 3, Name: "C", Lat: 6.7, Lng: 3.5},
		{ID: 4, Name: "Lekki Phase 1", Lat: 6.44, Lng: 3.47},
	}, stopfinder.CatalogOptions{})
	require.NoError(t, err)

	legs := []*ctdf.Leg{
		{From: "A", To: "B", Fare: 100, Time: 10, Line: "L1", Category: ctdf.VehicleCategoryDanfo},
		{From: "B", To: "C", Fare: 50, Time: 15, Line: "L2", Category: ctdf.VehicleCategoryBRT},
		{From: "A", To: "C", Fare: 200, Time: 20, Line: "L3", Category: ctdf.VehicleCategoryMolue},
	}

	planner := routeplanner.NewPlanner(catalog, legs, fixedTraffic{}, routeplanner.EnumerationRelaxed, nil)
	global.Register(config.Default(), planner)
}

func doRequest(t *testing.T, req *http.Request) (int, map[string]any) {
	t.Helper()

	resp, err := NewApp().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded), string(body))

	return resp.StatusCode, decoded
}

func get(t *testing.T, target string) (int, map[string]any) {
	return doRequest(t, httptest.NewRequest(http.MethodGet, target, nil))
}

func postJSON(t *testing.T, target string, body string) (int, map[string]any) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	return doRequest(t, req)
}

func TestVersionAndHealth(t *testing.T) {
	setupTestAPI(t)

	status, body := get(t, "/core/version")
	assert.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, body["version"])

	status, body = get(t, "/core/health")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestUnknownRoute(t *testing.T) {
	setupTestAPI(t)

	status, body := get(t, "/core/nothing-here")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Not found", body["error"])
}

func TestSearchStops(t *testing.T) {
	setupTestAPI(t)

	status, body := get(t, "/core/stops?q=lekki")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "lekki", body["query"])

	stops := body["stops"].([]any)
	require.Len(t, stops, 1)
	assert.Equal(t, "Lekki Phase 1", stops[0].(map[string]any)["name"])

	status, _ = get(t, "/core/stops")
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = get(t, "/core/stops?q=a&limit=many")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Parameter limit should be an integer", body["error"])
}

func TestListAllStops(t *testing.T) {
	setupTestAPI(t)

	status, body := get(t, "/core/stops/all")
	assert.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 4, body["count"])

	first := body["stops"].([]any)[0].(map[string]any)
	assert.Equal(t, "A", first["name"])
	assert.Contains(t, first, "lat")
	assert.Contains(t, first, "aliases")

	status, body = get(t, "/core/stops/all?detailed=false")
	assert.Equal(t, http.StatusOK, status)

	first = body["stops"].([]any)[0].(map[string]any)
	assert.Equal(t, map[string]any{"id": float64(1), "name": "A"}, first)
}

func TestGetStop(t *testing.T) {
	setupTestAPI(t)

	status, body := get(t, "/core/stops/alpha")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "A", body["name"])

	status, body = get(t, "/core/stops/Lekki%20Phase%201")
	assert.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 4, body["id"])

	status, _ = get(t, "/core/stops/Nowhere")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestGetStopNamedAll(t *testing.T) {
	catalog, err := stopfinder.NewCatalog([]*ctdf.Stop{
		{ID: 1, Name: "Allen", Aliases: []string{"All"}},
	}, stopfinder.CatalogOptions{})
	require.NoError(t, err)

	planner := routeplanner.NewPlanner(catalog, nil, fixedTraffic{}, routeplanner.EnumerationRelaxed, nil)
	global.Register(config.Default(), planner)

	status, body := get(t, "/core/stops?name=all")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Allen", body["name"])

	status, body = get(t, "/core/stops/all")
	assert.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, body["count"])

	status, _ = get(t, "/core/stops?name=Nowhere")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestPostRoute(t *testing.T) {
	setupTestAPI(t)

	status, body := postJSON(t, "/core/planner/route", `{"origin": "A", "destination": "C"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["steps"], 1)
	assert.EqualValues(t, 32, body["total_time"])
	assert.EqualValues(t, 200, body["total_fare"])
	assert.Equal(t, "Heavy", body["traffic"])

	step := body["steps"].([]any)[0].(map[string]any)
	assert.Equal(t, "L3", step["bus"])
	assert.Equal(t, "Molue", step["busType"])
	assert.Equal(t, "Take L3 (Molue) from A to C", step["instructions"])

	status, body = postJSON(t, "/core/planner/route", `{"origin": "alpha", "destination": "C", "preferences": {"cheapest": true}}`)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["steps"], 2)
	assert.EqualValues(t, 150, body["total_fare"])
}

func TestPostRouteErrors(t *testing.T) {
	setupTestAPI(t)

	status, body := postJSON(t, "/core/planner/route", `{"origin": "A"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Missing required fields", body["error"])

	status, body = postJSON(t, "/core/planner/route", `{"origin": 12, "destination": "C"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid input", body["error"])

	status, body = postJSON(t, "/core/planner/route", `{"origin": "A", "destination": "Nowhere"}`)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Stop not found", body["error"])
	assert.Equal(t, `Could not resolve "Nowhere". Please check the bus stop names and try again.`, body["message"])

	status, body = postJSON(t, "/core/planner/route", `{"origin": "C", "destination": "A"}`)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "No route found", body["error"])
}

func TestGetPlanBetweenStops(t *testing.T) {
	setupTestAPI(t)

	status, body := get(t, "/core/planner/A/C?cheapest=true")
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 150, body["total_fare"])

	status, body = get(t, "/core/planner/A/A")
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["steps"])
	assert.Equal(t, "Light", body["traffic"])
	assert.EqualValues(t, 0, body["total_time"])
}

func TestGetTraffic(t *testing.T) {
	setupTestAPI(t)

	status, body := get(t, "/core/traffic?from=A&to=C")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Heavy", body["level"])
	assert.EqualValues(t, 12, body["delay"])

	status, _ = get(t, "/core/traffic?from=A")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestLevelForStatus(t *testing.T) {
	assert.Equal(t, "info", levelForStatus(200).String())
	assert.Equal(t, "warn", levelForStatus(404).String())
	assert.Equal(t, "error", levelForStatus(500).String())
}
