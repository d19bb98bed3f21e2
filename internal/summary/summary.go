package summary

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/2beens/fitprogress/internal/config"
	"github.com/2beens/fitprogress/internal/datafile"
	"github.com/2beens/fitprogress/internal/workouts"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown report format: %s", s)
	}
}

// Summary is the weekly progress report of a single run.
type Summary struct {
	UserName          string `json:"userName"`
	WeeklyGoalMinutes int    `json:"weeklyGoalMinutes"`
	HealthEntries     int    `json:"healthEntries"`
	TotalWorkouts     int    `json:"totalWorkouts"`
	TotalMinutes      int    `json:"totalMinutes"`
	ProgressPercent   int    `json:"progressPercent"`
	MinutesRemaining  int    `json:"minutesRemaining"`
	GoalReached       bool   `json:"goalReached"`

	HealthStatus   datafile.Failure `json:"healthStatus"`
	WorkoutsStatus datafile.Failure `json:"workoutsStatus"`
}

// Compute combines reader results with the goal.
// Progress is rounded half away from zero, remaining minutes never go below 0.
func Compute(goal config.Goal, healthEntries int, workoutsResult workouts.AggregateResult) Summary {
	s := Summary{
		UserName:          goal.UserName,
		WeeklyGoalMinutes: goal.WeeklyGoalMinutes,
		HealthEntries:     healthEntries,
		TotalWorkouts:     workoutsResult.TotalWorkouts,
		TotalMinutes:      workoutsResult.TotalMinutes,
		MinutesRemaining:  max(0, goal.WeeklyGoalMinutes-workoutsResult.TotalMinutes),
		GoalReached:       workoutsResult.TotalMinutes >= goal.WeeklyGoalMinutes,
	}
	if goal.WeeklyGoalMinutes > 0 {
		progress := float64(workoutsResult.TotalMinutes) * 100 / float64(goal.WeeklyGoalMinutes)
		s.ProgressPercent = int(math.Round(progress))
	}
	return s
}

// Degraded tells whether any input fell back to its zero value.
func (s Summary) Degraded() bool {
	return s.HealthStatus != datafile.FailureNone || s.WorkoutsStatus != datafile.FailureNone
}

func (s Summary) Render(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encode summary: %w", err)
		}
		return nil
	case FormatText, "":
		if _, err := io.WriteString(w, s.Text()); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown report format: %s", format)
	}
}

func (s Summary) Text() string {
	var sb strings.Builder
	sb.WriteString("=== Weekly Progress Report ===\n")
	fmt.Fprintf(&sb, "User: %s\n", s.UserName)
	fmt.Fprintf(&sb, "Weekly Workout Goal: %d minutes\n", s.WeeklyGoalMinutes)

	sb.WriteString("\n--- Health Metrics ---\n")
	fmt.Fprintf(&sb, "Total health entries: %d\n", s.HealthEntries)

	sb.WriteString("\n--- Workout Data ---\n")
	fmt.Fprintf(&sb, "Total workouts: %d\n", s.TotalWorkouts)
	fmt.Fprintf(&sb, "Total minutes: %d\n", s.TotalMinutes)

	sb.WriteString("\n--- Weekly Summary ---\n")
	fmt.Fprintf(&sb, "Progress towards goal: %d%%\n", s.ProgressPercent)
	fmt.Fprintf(&sb, "Minutes remaining: %d minutes\n", s.MinutesRemaining)
	if s.GoalReached {
		fmt.Fprintf(&sb, "Congratulations, %s! You reached your weekly goal of %d minutes.\n", s.UserName, s.WeeklyGoalMinutes)
	} else {
		fmt.Fprintf(&sb, "Keep going, %s! %d minutes remaining to reach your weekly goal.\n", s.UserName, s.MinutesRemaining)
	}

	return sb.String()
}
