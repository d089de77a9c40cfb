package dataimporter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lagosnav/lagosnav/pkg/config"
	"github.com/lagosnav/lagosnav/pkg/ctdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir string, name string, contents string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	return path
}

const jsonStops = `[
	{"id": 1, "name": "Ikeja", "lat": 6.6018, "lng": 3.3515, "aliases": ["Ikeja Along"]},
	{"id": 2, "name": "Yaba", "lat": 6.5095, "lng": 3.3711}
]`

const jsonLegs = `[
	{"from": "Ikeja", "to": "Yaba", "fare": 300, "time": 35, "busNumber": "D12", "busType": "Danfo", "distance": 12.4}
]`

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()

	dataset, err := Load(context.Background(), config.DatasetConfig{
		Format:    DatasetFormatJSON,
		StopsPath: writeFile(t, dir, "bus-stops.json", jsonStops),
		LegsPath:  writeFile(t, dir, "routes.json", jsonLegs),
	})
	require.NoError(t, err)

	require.Len(t, dataset.Stops, 2)
	assert.Equal(t, "Ikeja", dataset.Stops[0].Name)
	assert.Equal(t, []string{"Ikeja Along"}, dataset.Stops[0].Aliases)
	assert.Nil(t, dataset.Stops[1].Aliases)

	require.Len(t, dataset.Legs, 1)
	assert.Equal(t, &ctdf.Leg{
		From: "Ikeja", To: "Yaba", Fare: 300, Time: 35,
		Line: "D12", Category: ctdf.VehicleCategoryDanfo, Distance: 12.4,
	}, dataset.Legs[0])
}

func TestLoadCSV(t *testing.T) {
	dir := t.TempDir()

	stops := "id,name,lat,lng,aliases\n" +
		"1,Ikeja,6.6018,3.3515,Ikeja Along| Ikeja Bus Stop\n" +
		"2,Yaba,6.5095,3.3711,\n"
	legs := "from,to,fare,time,bus_number,bus_type,distance\n" +
		"Ikeja,Yaba,300,35,D12,Danfo,12.4\n" +
		"Yaba,Ikeja,350,40,B1,BRT,\n"

	dataset, err := Load(context.Background(), config.DatasetConfig{
		Format:    DatasetFormatCSV,
		StopsPath: writeFile(t, dir, "stops.csv", stops),
		LegsPath:  writeFile(t, dir, "legs.csv", legs),
	})
	require.NoError(t, err)

	require.Len(t, dataset.Stops, 2)
	assert.Equal(t, []string{"Ikeja Along", "Ikeja Bus Stop"}, dataset.Stops[0].Aliases)
	assert.Empty(t, dataset.Stops[1].Aliases)
	assert.InDelta(t, 3.3711, dataset.Stops[1].Lng, 0.00001)

	require.Len(t, dataset.Legs, 2)
	assert.Equal(t, "D12", dataset.Legs[0].Line)
	assert.Equal(t, ctdf.VehicleCategoryBRT, dataset.Legs[1].Category)
	assert.Zero(t, dataset.Legs[1].Distance)
}

func TestLoadRejectsInvalidLegs(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(context.Background(), config.DatasetConfig{
		Format:    DatasetFormatJSON,
		StopsPath: writeFile(t, dir, "bus-stops.json", jsonStops),
		LegsPath:  writeFile(t, dir, "routes.json", `[{"from": "Ikeja", "to": "Yaba", "fare": -5, "time": 10, "busNumber": "X", "busType": "Okada"}]`),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative fare")
	assert.Contains(t, err.Error(), "unknown bus type")
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	stopsPath := writeFile(t, dir, "bus-stops.json", jsonStops)

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(context.Background(), config.DatasetConfig{
			Format:    DatasetFormatJSON,
			StopsPath: stopsPath,
			LegsPath:  filepath.Join(dir, "missing.json"),
		})
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed file", func(t *testing.T) {
		_, err := Load(context.Background(), config.DatasetConfig{
			Format:    DatasetFormatJSON,
			StopsPath: stopsPath,
			LegsPath:  writeFile(t, dir, "broken.json", `{"from": `),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "broken.json")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := Load(context.Background(), config.DatasetConfig{Format: "xml"})
		assert.ErrorAs(t, err, &UnsupportedFormatError{})
	})
}

func TestLoadSampleData(t *testing.T) {
	dataset, err := Load(context.Background(), config.DatasetConfig{
		Format:    DatasetFormatJSON,
		StopsPath: "../../data/bus-stops.json",
		LegsPath:  "../../data/routes.json",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, dataset.Stops)
	assert.NotEmpty(t, dataset.Legs)
	assert.Empty(t, dataset.UnknownLegStops())
}

func TestLoadCSVDropsRepeatedAliases(t *testing.T) {
	dir := t.TempDir()

	dataset, err := Load(context.Background(), config.DatasetConfig{
		Format:    DatasetFormatCSV,
		StopsPath: writeFile(t, dir, "stops.csv", "id,name,lat,lng,aliases\n7,CMS,6.45,3.39,Marina|cms|marina|CMS Terminal\n"),
		LegsPath:  writeFile(t, dir, "legs.csv", "from,to,fare,time,bus_number,bus_type,distance\nCMS,CMS,0,0,,Danfo,\n"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Marina", "CMS Terminal"}, dataset.Stops[0].Aliases)
}
