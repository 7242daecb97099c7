// ABOUTME: Pipeline configuration: goals, athlete, source column maps, lifts.
// ABOUTME: One explicit config object passed into the pipeline, no globals.
package config

import (
	"fmt"

	"github.com/namtonthat/healthsum/internal/models"
	"github.com/namtonthat/healthsum/internal/normalize"
)

// Source kinds. The kind decides which side of the daily join a source's
// records land on: health sources anchor the summary, sleep sources only
// override the sleep fields.
const (
	KindHealth = "health"
	KindSleep  = "sleep"
)

// Goals are the daily targets shown next to summaries. Display-only; no
// derivation depends on them.
type Goals struct {
	ProteinG   float64 `koanf:"protein_g"`
	CarbsG     float64 `koanf:"carbs_g"`
	FatG       float64 `koanf:"fat_g"`
	SleepHours float64 `koanf:"sleep_hours"`
	Steps      float64 `koanf:"steps"`
}

// Athlete supplies the DOTS inputs. There is no built-in default for sex:
// leaving it unset disables DOTS until a caller provides one.
type Athlete struct {
	Sex          string  `koanf:"sex"`
	BodyweightKg float64 `koanf:"bodyweight_kg"`
}

// Column mirrors normalize.Column for YAML loading.
type Column struct {
	Name  string `koanf:"name"`
	Type  string `koanf:"type"`
	Units string `koanf:"units"`
}

// Source describes one export provider: its kind and its raw-to-canonical
// column map.
type Source struct {
	Kind    string            `koanf:"kind"`
	Columns map[string]Column `koanf:"columns"`
}

// Config is the explicit configuration object for a pipeline run.
type Config struct {
	Goals   Goals             `koanf:"goals"`
	Athlete Athlete           `koanf:"athlete"`
	Sources map[string]Source `koanf:"sources"`
	// Lifts maps squat/bench/deadlift to the exact exercise names used by
	// the workout export.
	Lifts map[string]string `koanf:"lifts"`
}

// Default returns the configuration matching the stock Auto Health Export
// and AutoSleep CSV layouts.
func Default() *Config {
	return &Config{
		Goals: Goals{
			ProteinG:   170,
			CarbsG:     300,
			FatG:       60,
			SleepHours: 7,
			Steps:      10000,
		},
		Sources: map[string]Source{
			"HealthAutoExport": {
				Kind: KindHealth,
				Columns: map[string]Column{
					"Date":                         {Name: normalize.DateColumn},
					"Carbohydrates (g)":            {Name: models.MetricCarbs, Units: "g"},
					"Protein (g)":                  {Name: models.MetricProtein, Units: "g"},
					"Total Fat (g)":                {Name: models.MetricFat, Units: "g"},
					"Fiber (g)":                    {Name: models.MetricFiber, Units: "g"},
					"Active Energy (kJ)":           {Name: models.MetricActiveEnergy, Units: "kJ"},
					"Sleep Analysis [Asleep] (hr)": {Name: models.MetricSleepAsleep, Units: "hr"},
					"Sleep Analysis [In Bed] (hr)": {Name: models.MetricSleepInBed, Units: "hr"},
					"Steps (count)":                {Name: models.MetricSteps, Units: "count"},
					"Weight & Body Mass (kg)":      {Name: models.MetricWeight, Units: "kg"},
					"Apple Exercise Time (min)":    {Name: models.MetricExerciseMins, Units: "min"},
					"Mindful Minutes (min)":        {Name: models.MetricMindfulMins, Units: "min"},
				},
			},
			"AutoSleep": {
				Kind: KindSleep,
				Columns: map[string]Column{
					"ISO8601":  {Name: normalize.DateColumn},
					"asleep":   {Name: models.MetricSleepAsleep, Type: normalize.TypeDuration, Units: "hr"},
					"inBed":    {Name: models.MetricSleepInBed, Type: normalize.TypeDuration, Units: "hr"},
					"deep":     {Name: models.MetricSleepDeep, Type: normalize.TypeDuration, Units: "hr"},
					"bedtime":  {Name: models.MetricBedtime, Type: normalize.TypeClock},
					"waketime": {Name: models.MetricWaketime, Type: normalize.TypeClock},
				},
			},
		},
		Lifts: map[string]string{
			string(models.LiftSquat):    "Squat (Barbell)",
			string(models.LiftBench):    "Bench Press (Barbell)",
			string(models.LiftDeadlift): "Sumo Deadlift",
		},
	}
}

// ColumnMap returns the normalizer column map for a source.
func (c *Config) ColumnMap(source string) (normalize.ColumnMap, error) {
	s, ok := c.Sources[source]
	if !ok {
		return nil, fmt.Errorf("unknown source: %q", source)
	}
	cm := make(normalize.ColumnMap, len(s.Columns))
	for raw, col := range s.Columns {
		cm[raw] = normalize.Column{Name: col.Name, Type: col.Type, Units: col.Units}
	}
	return cm, nil
}

// SourceKind returns which side of the join a source belongs to.
func (c *Config) SourceKind(source string) (string, error) {
	s, ok := c.Sources[source]
	if !ok {
		return "", fmt.Errorf("unknown source: %q", source)
	}
	switch s.Kind {
	case KindHealth, KindSleep:
		return s.Kind, nil
	default:
		return "", fmt.Errorf("source %q has unknown kind %q", source, s.Kind)
	}
}

// LiftNames inverts the lift config into the exercise-name lookup the
// rolling-total calculator wants.
func (c *Config) LiftNames() map[string]models.Lift {
	names := make(map[string]models.Lift, len(c.Lifts))
	for lift, exercise := range c.Lifts {
		names[exercise] = models.Lift(lift)
	}
	return names
}

// Sex parses the configured athlete sex, failing fast on anything outside
// {male, female}.
func (c *Config) Sex() (models.Sex, error) {
	return models.ParseSex(c.Athlete.Sex)
}
