package models

import (
	"weeklog/internal/constants"
	"weeklog/internal/weekkey"
)

// MasterExercise is one entry in the user's exercise catalog. It is created
// and deleted only by explicit user action and never expires.
type MasterExercise struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DefaultDuration int    `json:"defaultDurationMinutes"`
}

// ExerciseEntry schedules one master exercise on one day of a week.
// ExerciseID may reference a catalog entry that has since been deleted;
// such orphans are skipped by renderers and aggregators, never treated as
// an error.
type ExerciseEntry struct {
	ExerciseID string `json:"exerciseId"`
	Completed  bool   `json:"completed"`
	Duration   int    `json:"durationMinutes"`
}

// DayRecord holds the exercises scheduled for a single day.
type DayRecord struct {
	Exercises []ExerciseEntry `json:"exercises"`
}

// WeekExercises is the 7-day schedule of one week, Monday first.
type WeekExercises struct {
	Days []DayRecord `json:"days"`
}

// NewWeekExercises returns an empty 7-day schedule.
func NewWeekExercises() *WeekExercises {
	return &WeekExercises{Days: make([]DayRecord, 7)}
}

// Clone returns a deep copy with every completion flag reset, preserving
// exercise references and durations. Used by copy-from-last-week.
func (w *WeekExercises) Clone() *WeekExercises {
	out := NewWeekExercises()
	for i, day := range w.Days {
		if i >= 7 {
			break
		}
		entries := make([]ExerciseEntry, len(day.Exercises))
		for j, e := range day.Exercises {
			entries[j] = ExerciseEntry{
				ExerciseID: e.ExerciseID,
				Completed:  false,
				Duration:   e.Duration,
			}
		}
		out.Days[i].Exercises = entries
	}
	return out
}

// HasAnyExercises reports whether any day of the week has at least one entry.
func (w *WeekExercises) HasAnyExercises() bool {
	for _, day := range w.Days {
		if len(day.Exercises) > 0 {
			return true
		}
	}
	return false
}

// HealthRecord holds the body metrics recorded for one week. Weight is nil
// until the user records one.
type HealthRecord struct {
	Weight        *float64           `json:"weight"`
	CustomMetrics map[string]float64 `json:"customMetrics"`
}

// NewHealthRecord returns an empty health record.
func NewHealthRecord() *HealthRecord {
	return &HealthRecord{CustomMetrics: make(map[string]float64)}
}

// Meal is one recorded meal. Date is a plain YYYY-MM-DD string; the record is
// filed under the week containing that date, which may differ from the week
// being viewed when it was added.
type Meal struct {
	ID            string `json:"id"`
	Date          string `json:"date"`
	MealType      string `json:"mealType"`
	Food          string `json:"food"`
	Photo         string `json:"photo,omitempty"`
	Calories      int    `json:"calories"`
	AutoEstimated bool   `json:"autoEstimated"`
}

// Document is the full persisted state for one user: the master catalogs plus
// every per-week slice, serialized as a single JSON blob. The storage layer is
// its sole durable owner; managers work on private in-memory copies.
type Document struct {
	Version           string                           `json:"version"`
	MasterExercises   []MasterExercise                 `json:"masterExercises"`
	WeeklyExercises   map[weekkey.Key]*WeekExercises   `json:"weeklyExercises"`
	HealthByWeek      map[weekkey.Key]*HealthRecord    `json:"healthByWeek"`
	MetricDefinitions []string                         `json:"metricDefinitions"`
	MealsByWeek       map[weekkey.Key][]Meal           `json:"mealsByWeek"`
}

// Default returns a structurally empty document.
func Default() *Document {
	return &Document{
		Version:           constants.DocumentVersion,
		MasterExercises:   []MasterExercise{},
		WeeklyExercises:   make(map[weekkey.Key]*WeekExercises),
		HealthByWeek:      make(map[weekkey.Key]*HealthRecord),
		MetricDefinitions: []string{},
		MealsByWeek:       make(map[weekkey.Key][]Meal),
	}
}

// Valid reports whether the document carries the required top-level fields.
// A blob failing this check is treated as corrupt by the storage layer.
func (d *Document) Valid() bool {
	return d.Version != "" && d.MasterExercises != nil
}

// Normalize repairs holes left by unmarshalling older or partial blobs:
// nil maps, nil slices, and week schedules with fewer than 7 days.
func (d *Document) Normalize() {
	if d.MasterExercises == nil {
		d.MasterExercises = []MasterExercise{}
	}
	if d.WeeklyExercises == nil {
		d.WeeklyExercises = make(map[weekkey.Key]*WeekExercises)
	}
	if d.HealthByWeek == nil {
		d.HealthByWeek = make(map[weekkey.Key]*HealthRecord)
	}
	if d.MetricDefinitions == nil {
		d.MetricDefinitions = []string{}
	}
	if d.MealsByWeek == nil {
		d.MealsByWeek = make(map[weekkey.Key][]Meal)
	}
	for _, week := range d.WeeklyExercises {
		for len(week.Days) < 7 {
			week.Days = append(week.Days, DayRecord{})
		}
	}
	for _, rec := range d.HealthByWeek {
		if rec.CustomMetrics == nil {
			rec.CustomMetrics = make(map[string]float64)
		}
	}
}

// MasterExercise looks up a catalog entry by id.
func (d *Document) MasterExercise(id string) (MasterExercise, bool) {
	for _, ex := range d.MasterExercises {
		if ex.ID == id {
			return ex, true
		}
	}
	return MasterExercise{}, false
}

// HasMetricDefinition reports whether name is a defined custom metric.
// Matching is case-sensitive and exact.
func (d *Document) HasMetricDefinition(name string) bool {
	for _, def := range d.MetricDefinitions {
		if def == name {
			return true
		}
	}
	return false
}
