// Package report aggregates one week of the document into summary stats.
// Generation is a pure function of the document and the week key; nothing
// here reads storage or mutates state.
package report

import (
	"math"

	"weeklog/internal/models"
	"weeklog/internal/weekkey"
)

// ExerciseStats summarizes the week's scheduled exercise entries. Entries
// whose master exercise has been deleted are excluded from every figure.
type ExerciseStats struct {
	TotalCount     int
	CompletedCount int
	CompletionRate int
	TotalMinutes   int
}

// NutritionStats summarizes the week's meals.
type NutritionStats struct {
	TotalCalories    int
	AvgDailyCalories int
	MealCount        int
}

// HealthStats carries the week's weight movement and custom metrics.
// WeightChange is nil when either endpoint weight is missing.
type HealthStats struct {
	StartWeight   *float64
	EndWeight     *float64
	WeightChange  *float64
	CustomMetrics map[string]float64
}

// Report is the full weekly summary.
type Report struct {
	Week      weekkey.Key
	Exercise  ExerciseStats
	Nutrition NutritionStats
	Health    HealthStats
}

// HasData reports whether the week recorded anything worth rendering.
func (r Report) HasData() bool {
	return r.Exercise.TotalCount > 0 || r.Nutrition.MealCount > 0 || r.Health.StartWeight != nil
}

// Generate computes the weekly report for key from doc.
func Generate(doc *models.Document, key weekkey.Key) Report {
	return Report{
		Week:      key,
		Exercise:  exerciseStats(doc, key),
		Nutrition: nutritionStats(doc, key),
		Health:    healthStats(doc, key),
	}
}

func exerciseStats(doc *models.Document, key weekkey.Key) ExerciseStats {
	var stats ExerciseStats

	week := doc.WeeklyExercises[key]
	if week == nil {
		return stats
	}

	for _, day := range week.Days {
		for _, entry := range day.Exercises {
			if _, ok := doc.MasterExercise(entry.ExerciseID); !ok {
				continue // orphaned reference, master was deleted
			}
			stats.TotalCount++
			if entry.Completed {
				stats.CompletedCount++
				stats.TotalMinutes += entry.Duration
			}
		}
	}

	if stats.TotalCount > 0 {
		stats.CompletionRate = int(math.Round(100 * float64(stats.CompletedCount) / float64(stats.TotalCount)))
	}
	return stats
}

func nutritionStats(doc *models.Document, key weekkey.Key) NutritionStats {
	var stats NutritionStats

	for _, meal := range doc.MealsByWeek[key] {
		stats.TotalCalories += meal.Calories
		stats.MealCount++
	}
	// Averaged over the full week, not just days that logged meals.
	stats.AvgDailyCalories = int(math.Round(float64(stats.TotalCalories) / 7))
	return stats
}

func healthStats(doc *models.Document, key weekkey.Key) HealthStats {
	stats := HealthStats{}

	if rec := doc.HealthByWeek[key]; rec != nil {
		stats.StartWeight = rec.Weight
		if len(rec.CustomMetrics) > 0 {
			stats.CustomMetrics = make(map[string]float64, len(rec.CustomMetrics))
			for name, v := range rec.CustomMetrics {
				stats.CustomMetrics[name] = v
			}
		}
	}

	_, end := key.Range()
	if rec := doc.HealthByWeek[weekkey.ForDate(end)]; rec != nil && rec.Weight != nil {
		stats.EndWeight = rec.Weight
	} else {
		stats.EndWeight = stats.StartWeight
	}

	if stats.StartWeight != nil && stats.EndWeight != nil {
		change := math.Round((*stats.EndWeight-*stats.StartWeight)*10) / 10
		stats.WeightChange = &change
	}
	return stats
}
