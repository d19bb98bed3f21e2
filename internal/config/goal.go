package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

var ErrInvalidGoal = errors.New("invalid goal config")

// Goal is read once at startup and passed around by value.
type Goal struct {
	UserName          string `env:"USER_NAME, default=athlete"`
	WeeklyGoalMinutes int    `env:"WEEKLY_GOAL, required"`
}

// LoadGoal reads the goal from the process environment.
func LoadGoal(ctx context.Context) (Goal, error) {
	return LoadGoalWith(ctx, envconfig.OsLookuper())
}

// LoadGoalWith reads the goal using the given lookuper.
// WEEKLY_GOAL must be present and a positive integer.
func LoadGoalWith(ctx context.Context, lookuper envconfig.Lookuper) (Goal, error) {
	var goal Goal
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &goal,
		Lookuper: lookuper,
	}); err != nil {
		return Goal{}, fmt.Errorf("%w: %w", ErrInvalidGoal, err)
	}

	if goal.WeeklyGoalMinutes <= 0 {
		return Goal{}, fmt.Errorf("%w: WEEKLY_GOAL must be a positive number of minutes, got %d", ErrInvalidGoal, goal.WeeklyGoalMinutes)
	}

	return goal, nil
}

// LoadDotEnv loads variables from a .env file into the process environment.
// Variables already set are kept. A missing file is ignored.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
