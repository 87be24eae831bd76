// Package tracker holds the three domain managers (exercise, health, meal).
// Each manager owns a private in-memory copy of the document and a current
// week key. Every mutation follows the same discipline: reload the document
// from storage, validate, mutate, save. Reading a week that has no record yet
// materializes an empty shell in memory only; nothing is persisted until the
// first real mutation.
package tracker

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"weeklog/internal/logger"
	"weeklog/internal/models"
	"weeklog/internal/storage"
	"weeklog/internal/validation"
	"weeklog/internal/weekkey"
)

var (
	// ErrAlreadyScheduled reports that an exercise is already on the day.
	ErrAlreadyScheduled = errors.New("exercise is already scheduled for this day")
	// ErrNothingToCopy reports that the previous week has no exercise data.
	ErrNothingToCopy = errors.New("no exercise data recorded for last week")
	// ErrCopyDeclined reports that the user declined the overwrite.
	ErrCopyDeclined = errors.New("copy cancelled")
)

// ExerciseManager owns the exercise catalog and the per-week schedules.
type ExerciseManager struct {
	store       storage.Provider
	doc         *models.Document
	currentWeek weekkey.Key
}

func NewExerciseManager(store storage.Provider, week weekkey.Key) *ExerciseManager {
	return &ExerciseManager{
		store:       store,
		doc:         store.Load(),
		currentWeek: week,
	}
}

// LoadWeekData switches the manager to the given week and reloads its
// document copy in full, picking up mutations made by sibling managers.
func (m *ExerciseManager) LoadWeekData(key weekkey.Key) {
	m.currentWeek = key
	m.doc = m.store.Load()
}

func (m *ExerciseManager) CurrentWeek() weekkey.Key {
	return m.currentWeek
}

// Exercises returns the master catalog.
func (m *ExerciseManager) Exercises() []models.MasterExercise {
	return m.doc.MasterExercises
}

// Week returns the current week's schedule. A week with no stored record
// yields an empty shell that is not written back.
func (m *ExerciseManager) Week() *models.WeekExercises {
	if w := m.doc.WeeklyExercises[m.currentWeek]; w != nil {
		return w
	}
	return models.NewWeekExercises()
}

// Day returns the entries scheduled for day i (0=Monday .. 6=Sunday).
func (m *ExerciseManager) Day(i int) []models.ExerciseEntry {
	if i < 0 || i > 6 {
		return nil
	}
	return m.Week().Days[i].Exercises
}

// AddExercise appends a new entry to the master catalog.
func (m *ExerciseManager) AddExercise(name string, defaultDuration int) (models.MasterExercise, error) {
	name, err := validation.ExerciseName(name)
	if err != nil {
		return models.MasterExercise{}, err
	}
	if err := validation.Duration(defaultDuration); err != nil {
		return models.MasterExercise{}, err
	}

	m.doc = m.store.Load()
	ex := models.MasterExercise{
		ID:              uuid.New().String(),
		Name:            name,
		DefaultDuration: defaultDuration,
	}
	m.doc.MasterExercises = append(m.doc.MasterExercises, ex)

	if err := m.save(); err != nil {
		return models.MasterExercise{}, err
	}
	return ex, nil
}

// RemoveExercise deletes a catalog entry. Weekly entries that reference it
// become orphans and are skipped by listings and reports rather than removed.
func (m *ExerciseManager) RemoveExercise(id string) error {
	m.doc = m.store.Load()
	if _, ok := m.doc.MasterExercise(id); !ok {
		return fmt.Errorf("exercise not found: %s", id)
	}

	kept := m.doc.MasterExercises[:0]
	for _, ex := range m.doc.MasterExercises {
		if ex.ID != id {
			kept = append(kept, ex)
		}
	}
	m.doc.MasterExercises = kept

	return m.save()
}

// AddToDay schedules a catalog exercise on day i of the current week with its
// default duration. Scheduling the same exercise twice on one day is rejected
// with ErrAlreadyScheduled.
func (m *ExerciseManager) AddToDay(i int, exerciseID string) error {
	if err := checkDayIndex(i); err != nil {
		return err
	}

	m.doc = m.store.Load()
	ex, ok := m.doc.MasterExercise(exerciseID)
	if !ok {
		return fmt.Errorf("exercise not found: %s", exerciseID)
	}

	week := m.ensureWeek()
	for _, entry := range week.Days[i].Exercises {
		if entry.ExerciseID == exerciseID {
			logger.Debug("Exercise already scheduled", "day", i, "exercise", ex.Name)
			return ErrAlreadyScheduled
		}
	}

	week.Days[i].Exercises = append(week.Days[i].Exercises, models.ExerciseEntry{
		ExerciseID: exerciseID,
		Completed:  false,
		Duration:   ex.DefaultDuration,
	})

	return m.save()
}

// AddAllToDay schedules every catalog exercise on day i, skipping ones that
// are already present. It returns how many were added.
func (m *ExerciseManager) AddAllToDay(i int) (int, error) {
	if err := checkDayIndex(i); err != nil {
		return 0, err
	}

	m.doc = m.store.Load()
	if len(m.doc.MasterExercises) == 0 {
		return 0, fmt.Errorf("the exercise catalog is empty")
	}

	week := m.ensureWeek()
	present := make(map[string]bool, len(week.Days[i].Exercises))
	for _, entry := range week.Days[i].Exercises {
		present[entry.ExerciseID] = true
	}

	added := 0
	for _, ex := range m.doc.MasterExercises {
		if present[ex.ID] {
			continue
		}
		week.Days[i].Exercises = append(week.Days[i].Exercises, models.ExerciseEntry{
			ExerciseID: ex.ID,
			Duration:   ex.DefaultDuration,
		})
		added++
	}

	if added == 0 {
		return 0, nil
	}
	if err := m.save(); err != nil {
		return 0, err
	}
	return added, nil
}

// ToggleComplete flips the completion flag of the matching entry on day i.
func (m *ExerciseManager) ToggleComplete(i int, exerciseID string) error {
	return m.updateEntry(i, exerciseID, func(e *models.ExerciseEntry) error {
		e.Completed = !e.Completed
		return nil
	})
}

// UpdateDuration sets the duration of the matching entry on day i.
func (m *ExerciseManager) UpdateDuration(i int, exerciseID string, minutes int) error {
	if err := validation.Duration(minutes); err != nil {
		return err
	}
	return m.updateEntry(i, exerciseID, func(e *models.ExerciseEntry) error {
		e.Duration = minutes
		return nil
	})
}

// RemoveFromDay unschedules the matching entry from day i.
func (m *ExerciseManager) RemoveFromDay(i int, exerciseID string) error {
	if err := checkDayIndex(i); err != nil {
		return err
	}

	m.doc = m.store.Load()
	week := m.doc.WeeklyExercises[m.currentWeek]
	if week == nil {
		return fmt.Errorf("exercise %s is not scheduled on %s", exerciseID, dayName(i))
	}

	entries := week.Days[i].Exercises
	for j, entry := range entries {
		if entry.ExerciseID == exerciseID {
			week.Days[i].Exercises = append(entries[:j], entries[j+1:]...)
			return m.save()
		}
	}
	return fmt.Errorf("exercise %s is not scheduled on %s", exerciseID, dayName(i))
}

// CopyFromLastWeek replaces the current week's schedule with a deep clone of
// the previous week's, resetting every completion flag. When the current week
// already has entries, confirm decides whether to overwrite.
func (m *ExerciseManager) CopyFromLastWeek(confirm func() bool) error {
	m.doc = m.store.Load()

	lastWeek := m.currentWeek.Previous()
	src := m.doc.WeeklyExercises[lastWeek]
	if src == nil || !src.HasAnyExercises() {
		return ErrNothingToCopy
	}

	if cur := m.doc.WeeklyExercises[m.currentWeek]; cur != nil && cur.HasAnyExercises() {
		if confirm == nil || !confirm() {
			return ErrCopyDeclined
		}
	}

	m.doc.WeeklyExercises[m.currentWeek] = src.Clone()
	return m.save()
}

func (m *ExerciseManager) updateEntry(i int, exerciseID string, apply func(*models.ExerciseEntry) error) error {
	if err := checkDayIndex(i); err != nil {
		return err
	}

	m.doc = m.store.Load()
	week := m.doc.WeeklyExercises[m.currentWeek]
	if week == nil {
		return fmt.Errorf("exercise %s is not scheduled on %s", exerciseID, dayName(i))
	}

	for j := range week.Days[i].Exercises {
		if week.Days[i].Exercises[j].ExerciseID == exerciseID {
			if err := apply(&week.Days[i].Exercises[j]); err != nil {
				return err
			}
			return m.save()
		}
	}
	return fmt.Errorf("exercise %s is not scheduled on %s", exerciseID, dayName(i))
}

// ensureWeek materializes the current week's schedule inside the document.
// Callers only use it on mutation paths, so the shell is persisted together
// with the first real change.
func (m *ExerciseManager) ensureWeek() *models.WeekExercises {
	week := m.doc.WeeklyExercises[m.currentWeek]
	if week == nil {
		week = models.NewWeekExercises()
		m.doc.WeeklyExercises[m.currentWeek] = week
	}
	return week
}

func (m *ExerciseManager) save() error {
	if err := m.store.Save(m.doc); err != nil {
		return fmt.Errorf("failed to save exercises: %w", err)
	}
	return nil
}
