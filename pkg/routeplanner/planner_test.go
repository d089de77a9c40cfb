package routeplanner

import (
	"context"
	"testing"

	"github.com/lagosnav/lagosnav/pkg/ctdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allModes = []EnumerationMode{EnumerationRelaxed, EnumerationPruned}

func TestPlanDefaultPicksDirectLeg(t *testing.T) {
	for _, mode := range allModes {
		planner, traffic := newTestPlanner(t, mode, abcLegs())

		result, err := planner.Plan(context.Background(), "A", "C", Preferences{})
		require.NoError(t, err, mode)

		require.Len(t, result.Steps, 1, mode)
		assert.Equal(t, "Take L3 (Molue) from A to C", result.Steps[0].Instructions)
		assert.Equal(t, 200.0, result.TotalFare)
		assert.Equal(t, 20+7, result.TotalTime)
		assert.Equal(t, ctdf.TrafficLevelMedium, result.Traffic)
		assert.EqualValues(t, 1, traffic.calls.Load())
	}
}

func TestPlanCheapestPicksTwoLegs(t *testing.T) {
	for _, mode := range allModes {
		planner, _ := newTestPlanner(t, mode, abcLegs())

		result, err := planner.Plan(context.Background(), "A", "C", Preferences{Cheapest: true})
		require.NoError(t, err, mode)

		require.Len(t, result.Steps, 2, mode)
		assert.Equal(t, "A", result.Steps[0].From)
		assert.Equal(t, "B", result.Steps[0].To)
		assert.Equal(t, "C", result.Steps[1].To)
		assert.Equal(t, 150.0, result.TotalFare)
		assert.Equal(t, 25+7, result.TotalTime)
	}
}

func TestPlanFastest(t *testing.T) {
	planner, _ := newTestPlanner(t, EnumerationRelaxed, abcLegs())

	result, err := planner.Plan(context.Background(), "A", "C", Preferences{Fastest: true, Cheapest: true})
	require.NoError(t, err)

	require.Len(t, result.Steps, 1)
	assert.Equal(t, 27, result.TotalTime)
}

func TestPlanResolvesAliasesAndCase(t *testing.T) {
	planner, _ := newTestPlanner(t, EnumerationRelaxed, abcLegs())

	result, err := planner.Plan(context.Background(), "  alpha ", "c", Preferences{})
	require.NoError(t, err)
	assert.Equal(t, "A", result.Steps[0].From)
}

func TestPlanSameStopIsTrivial(t *testing.T) {
	planner, traffic := newTestPlanner(t, EnumerationRelaxed, abcLegs())

	for _, pair := range [][2]string{{"A", "A"}, {"Alpha", "a"}, {"D", "D"}} {
		result, err := planner.Plan(context.Background(), pair[0], pair[1], Preferences{Cheapest: true})
		require.NoError(t, err)

		assert.Empty(t, result.Steps)
		assert.NotNil(t, result.Steps)
		assert.Zero(t, result.TotalTime)
		assert.Zero(t, result.TotalFare)
		assert.Zero(t, result.TotalDistance)
		assert.Equal(t, ctdf.TrafficLevelLight, result.Traffic)
	}

	assert.EqualValues(t, 0, traffic.calls.Load())
}

func TestPlanNoRoute(t *testing.T) {
	planner, traffic := newTestPlanner(t, EnumerationRelaxed, abcLegs())

	result, err := planner.Plan(context.Background(), "A", "D", Preferences{})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrNoRoute)
	assert.NotErrorIs(t, err, ErrStopNotFound)

	assert.EqualValues(t, 0, traffic.calls.Load())
}

func TestPlanStopNotFound(t *testing.T) {
	planner, _ := newTestPlanner(t, EnumerationRelaxed, abcLegs())

	_, err := planner.Plan(context.Background(), "Nowhere", "C", Preferences{})
	assert.ErrorIs(t, err, ErrStopNotFound)
	assert.NotErrorIs(t, err, ErrNoRoute)
	assert.Contains(t, err.Error(), "Nowhere")

	_, err = planner.Plan(context.Background(), "A", "Elsewhere", Preferences{})
	assert.ErrorIs(t, err, ErrStopNotFound)
	assert.Contains(t, err.Error(), "Elsewhere")

	var notFound StopNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Elsewhere", notFound.Name)
	assert.Equal(t, "stop not found: Elsewhere", err.Error())
}

func TestPlanWithScoreExpression(t *testing.T) {
	selector, err := NewSelector("fare")
	require.NoError(t, err)

	planner, _ := newTestPlanner(t, EnumerationRelaxed, abcLegs())
	planner.Selector = selector

	result, err := planner.Plan(context.Background(), "A", "C", Preferences{})
	require.NoError(t, err)
	assert.Equal(t, 150.0, result.TotalFare)
}
