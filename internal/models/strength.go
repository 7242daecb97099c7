// ABOUTME: Strength-training models: workout sets, lifts, e1RM points, Sex.
// ABOUTME: Feed the Epley and DOTS calculators in the derive package.
package models

import (
	"fmt"
	"strings"
	"time"
)

// Sex selects the DOTS coefficient set. There is no default; callers supply
// it per invocation.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// ParseSex validates a sex string. Anything outside {male, female} is a
// configuration error and fails fast.
func ParseSex(s string) (Sex, error) {
	switch Sex(strings.ToLower(s)) {
	case SexMale:
		return SexMale, nil
	case SexFemale:
		return SexFemale, nil
	default:
		return "", fmt.Errorf("sex must be %q or %q, got %q", SexMale, SexFemale, s)
	}
}

// Lift identifies one of the three powerlifting competition lifts.
type Lift string

const (
	LiftSquat    Lift = "squat"
	LiftBench    Lift = "bench"
	LiftDeadlift Lift = "deadlift"
)

// WorkoutSet is a single logged set from a workout export.
type WorkoutSet struct {
	Date     time.Time
	Exercise string // exact exercise name as exported, e.g. "Bench Press (Barbell)"
	WeightKg float64
	Reps     int
}

// E1RMPoint is the running-best estimated 1RM state as of one workout date.
// A lift is nil until it has been observed at least once; once set, a best
// persists until beaten. EstimatedTotal is nil until all three lifts have a
// value.
type E1RMPoint struct {
	Date           time.Time
	Squat          *float64
	Bench          *float64
	Deadlift       *float64
	EstimatedTotal *float64
}
