package summary_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/2beens/fitprogress/internal/config"
	"github.com/2beens/fitprogress/internal/datafile"
	"github.com/2beens/fitprogress/internal/summary"
	"github.com/2beens/fitprogress/internal/workouts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	testCases := []struct {
		name          string
		goalMinutes   int
		totalMinutes  int
		wantProgress  int
		wantRemaining int
		wantReached   bool
	}{
		{name: "goal exceeded", goalMinutes: 150, totalMinutes: 330, wantProgress: 220, wantRemaining: 0, wantReached: true},
		{name: "goal missed", goalMinutes: 400, totalMinutes: 330, wantProgress: 83, wantRemaining: 70, wantReached: false},
		{name: "goal met exactly", goalMinutes: 330, totalMinutes: 330, wantProgress: 100, wantRemaining: 0, wantReached: true},
		{name: "nothing done", goalMinutes: 150, totalMinutes: 0, wantProgress: 0, wantRemaining: 150, wantReached: false},
		{name: "rounds down", goalMinutes: 300, totalMinutes: 1, wantProgress: 0, wantRemaining: 299, wantReached: false},
		{name: "rounds half up", goalMinutes: 200, totalMinutes: 1, wantProgress: 1, wantRemaining: 199, wantReached: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := summary.Compute(
				config.Goal{UserName: "Serj", WeeklyGoalMinutes: tc.goalMinutes},
				8,
				workouts.AggregateResult{TotalWorkouts: 10, TotalMinutes: tc.totalMinutes},
			)
			assert.Equal(t, "Serj", s.UserName)
			assert.Equal(t, 8, s.HealthEntries)
			assert.Equal(t, 10, s.TotalWorkouts)
			assert.Equal(t, tc.totalMinutes, s.TotalMinutes)
			assert.Equal(t, tc.wantProgress, s.ProgressPercent)
			assert.Equal(t, tc.wantRemaining, s.MinutesRemaining)
			assert.Equal(t, tc.wantReached, s.GoalReached)
		})
	}
}

func TestCompute_NonPositiveGoal(t *testing.T) {
	s := summary.Compute(config.Goal{WeeklyGoalMinutes: 0}, 0, workouts.AggregateResult{TotalWorkouts: 1, TotalMinutes: 30})
	assert.Equal(t, 0, s.ProgressPercent)
	assert.Equal(t, 0, s.MinutesRemaining)
	assert.True(t, s.GoalReached)
}

func TestSummary_Text_GoalReached(t *testing.T) {
	s := summary.Compute(
		config.Goal{UserName: "Serj", WeeklyGoalMinutes: 150},
		8,
		workouts.AggregateResult{TotalWorkouts: 10, TotalMinutes: 330},
	)

	expected := `=== Weekly Progress Report ===
User: Serj
Weekly Workout Goal: 150 minutes

--- Health Metrics ---
Total health entries: 8

--- Workout Data ---
Total workouts: 10
Total minutes: 330

--- Weekly Summary ---
Progress towards goal: 220%
Minutes remaining: 0 minutes
Congratulations, Serj! You reached your weekly goal of 150 minutes.
`
	assert.Equal(t, expected, s.Text())
}

func TestSummary_Text_GoalMissed(t *testing.T) {
	s := summary.Compute(
		config.Goal{UserName: "Serj", WeeklyGoalMinutes: 400},
		8,
		workouts.AggregateResult{TotalWorkouts: 10, TotalMinutes: 330},
	)

	text := s.Text()
	assert.Contains(t, text, "Progress towards goal: 83%\n")
	assert.Contains(t, text, "Minutes remaining: 70 minutes\n")
	assert.Contains(t, text, "Keep going, Serj! 70 minutes remaining to reach your weekly goal.\n")
	assert.NotContains(t, text, "Congratulations")
}

func TestSummary_Render(t *testing.T) {
	s := summary.Compute(
		config.Goal{UserName: "Serj", WeeklyGoalMinutes: 400},
		0,
		workouts.AggregateResult{TotalWorkouts: 10, TotalMinutes: 330},
	)
	s.HealthStatus = datafile.FailureNotFound

	buf := &bytes.Buffer{}
	require.NoError(t, s.Render(buf, summary.FormatText))
	assert.Equal(t, s.Text(), buf.String())

	buf.Reset()
	require.NoError(t, s.Render(buf, summary.FormatJSON))
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Serj", decoded["userName"])
	assert.Equal(t, float64(83), decoded["progressPercent"])
	assert.Equal(t, float64(70), decoded["minutesRemaining"])
	assert.Equal(t, false, decoded["goalReached"])
	assert.Equal(t, "not_found", decoded["healthStatus"])
	assert.Equal(t, "none", decoded["workoutsStatus"])

	require.Error(t, s.Render(buf, summary.Format("xml")))
}

func TestSummary_Degraded(t *testing.T) {
	s := summary.Summary{}
	assert.False(t, s.Degraded())

	s.WorkoutsStatus = datafile.FailurePermission
	assert.True(t, s.Degraded())
}

func TestParseFormat(t *testing.T) {
	f, err := summary.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, summary.FormatText, f)

	f, err = summary.ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, summary.FormatJSON, f)

	_, err = summary.ParseFormat("yaml")
	require.EqualError(t, err, "unknown report format: yaml")
}
