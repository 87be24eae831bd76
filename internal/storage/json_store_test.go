package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"weeklog/internal/constants"
	"weeklog/internal/models"
	"weeklog/internal/weekkey"
)

func newTestStore(t *testing.T) *JSONStore {
	t.Helper()
	s, err := NewJSONStore(filepath.Join(t.TempDir(), "weeklog.json"))
	if err != nil {
		t.Fatalf("NewJSONStore: %v", err)
	}
	return s
}

func sampleDocument() *models.Document {
	doc := models.Default()
	doc.MasterExercises = append(doc.MasterExercises, models.MasterExercise{
		ID: "ex-1", Name: "running", DefaultDuration: 30,
	})
	week := models.NewWeekExercises()
	week.Days[0].Exercises = append(week.Days[0].Exercises, models.ExerciseEntry{
		ExerciseID: "ex-1", Completed: true, Duration: 30,
	})
	doc.WeeklyExercises["2025-10-06"] = week
	weight := 65.5
	doc.HealthByWeek["2025-10-06"] = &models.HealthRecord{
		Weight:        &weight,
		CustomMetrics: map[string]float64{"muscleMass": 30.2},
	}
	doc.MetricDefinitions = append(doc.MetricDefinitions, "muscleMass")
	doc.MealsByWeek["2025-10-06"] = []models.Meal{
		{ID: "meal-1", Date: "2025-10-07", MealType: "lunch", Food: "salad", Calories: 150},
	}
	return doc
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	s := newTestStore(t)
	doc := s.Load()
	if !doc.Valid() {
		t.Fatal("default document should be valid")
	}
	if len(doc.MasterExercises) != 0 || len(doc.WeeklyExercises) != 0 {
		t.Error("default document should be empty")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	want := sampleDocument()

	if err := s.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got := s.Load()

	if !reflect.DeepEqual(got, want) {
		t.Errorf("round-trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestCorruptDocumentBackedUpAndReset(t *testing.T) {
	s := newTestStore(t)
	corrupt := []byte(`{"version": "1.0", "masterExercises": [truncated`)
	if err := os.WriteFile(s.Path(), corrupt, 0600); err != nil {
		t.Fatal(err)
	}

	doc := s.Load()
	if !doc.Valid() || len(doc.MasterExercises) != 0 {
		t.Error("corrupt load should return the default document")
	}

	backup, err := os.ReadFile(s.Path() + constants.BackupSuffix)
	if err != nil {
		t.Fatalf("expected backup file: %v", err)
	}
	if string(backup) != string(corrupt) {
		t.Error("backup should preserve the raw corrupt bytes")
	}
}

func TestMissingRequiredFieldsTreatedAsCorrupt(t *testing.T) {
	s := newTestStore(t)
	// Parses fine but has no version and no masterExercises.
	if err := os.WriteFile(s.Path(), []byte(`{"mealsByWeek": {}}`), 0600); err != nil {
		t.Fatal(err)
	}

	doc := s.Load()
	if doc.Version != constants.DocumentVersion {
		t.Errorf("expected default version, got %q", doc.Version)
	}
	if _, err := os.Stat(s.Path() + constants.BackupSuffix); err != nil {
		t.Errorf("expected backup of the invalid blob: %v", err)
	}
}

func TestNormalizeRepairsShortWeeks(t *testing.T) {
	s := newTestStore(t)
	blob := `{"version":"1.0","masterExercises":[],"weeklyExercises":{"2025-10-06":{"days":[{"exercises":[]}]}}}`
	if err := os.WriteFile(s.Path(), []byte(blob), 0600); err != nil {
		t.Fatal(err)
	}

	doc := s.Load()
	week := doc.WeeklyExercises[weekkey.Key("2025-10-06")]
	if week == nil || len(week.Days) != 7 {
		t.Fatalf("expected 7 days after normalization, got %+v", week)
	}
}

func TestClear(t *testing.T) {
	s := newTestStore(t)
	if err := s.Save(sampleDocument()); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if len(s.Load().MasterExercises) != 0 {
		t.Error("document should be empty after Clear")
	}
	// Clearing twice is not an error.
	if err := s.Clear(); err != nil {
		t.Errorf("second Clear: %v", err)
	}
}

func TestOpenFallsBackToMemory(t *testing.T) {
	dir := t.TempDir()
	// A regular file where a directory is needed makes the probe fail on
	// every platform and for every user.
	notADir := filepath.Join(dir, "not-a-dir")
	if err := os.WriteFile(notADir, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}

	p := Open(filepath.Join(notADir, "sub", "weeklog.json"))
	if _, ok := p.(*MemoryStore); !ok {
		t.Fatalf("expected memory fallback, got %T", p)
	}

	// The fallback still satisfies the full contract.
	if err := p.Save(sampleDocument()); err != nil {
		t.Fatalf("Save on fallback: %v", err)
	}
	if len(p.Load().MasterExercises) != 1 {
		t.Error("fallback store should round-trip the document")
	}
}

func TestMemoryStoreIsolatesCopies(t *testing.T) {
	s := NewMemoryStore()
	if err := s.Save(sampleDocument()); err != nil {
		t.Fatal(err)
	}

	first := s.Load()
	first.MasterExercises[0].Name = "mutated"

	second := s.Load()
	if second.MasterExercises[0].Name != "running" {
		t.Error("Load should hand out independent copies")
	}
}
