package tracker

import (
	"testing"

	"weeklog/internal/storage"
)

func newHealthManager(t *testing.T) (*HealthManager, storage.Provider) {
	t.Helper()
	store := storage.NewMemoryStore()
	return NewHealthManager(store, week), store
}

func TestSetWeight(t *testing.T) {
	m, _ := newHealthManager(t)

	if err := m.SetWeight(65.5); err != nil {
		t.Fatalf("SetWeight: %v", err)
	}
	rec := m.Record()
	if rec.Weight == nil || *rec.Weight != 65.5 {
		t.Errorf("weight = %v, want 65.5", rec.Weight)
	}

	for _, v := range []float64{0, -3} {
		if err := m.SetWeight(v); err == nil {
			t.Errorf("SetWeight(%g) should fail", v)
		}
	}
}

func TestReadDoesNotPersistEmptyRecord(t *testing.T) {
	m, store := newHealthManager(t)

	rec := m.Record()
	if rec.Weight != nil || len(rec.CustomMetrics) != 0 {
		t.Fatal("expected an empty record")
	}
	if n := len(store.Load().HealthByWeek); n != 0 {
		t.Errorf("read access persisted %d records, want 0", n)
	}
}

func TestCustomMetricDefinitions(t *testing.T) {
	m, _ := newHealthManager(t)

	if err := m.AddCustomMetric("muscleMass"); err != nil {
		t.Fatalf("AddCustomMetric: %v", err)
	}
	// The same name a second time is rejected.
	if err := m.AddCustomMetric("muscleMass"); err == nil {
		t.Error("duplicate metric name should be rejected")
	}
	// Matching is case-sensitive, so a different casing is a new metric.
	if err := m.AddCustomMetric("MuscleMass"); err != nil {
		t.Errorf("case-different name rejected: %v", err)
	}
	if err := m.AddCustomMetric("   "); err == nil {
		t.Error("blank metric name should be rejected")
	}
}

func TestSetMetricRequiresDefinition(t *testing.T) {
	m, _ := newHealthManager(t)

	if err := m.SetMetric("bodyFat", 15.2); err == nil {
		t.Error("setting an undefined metric should fail")
	}

	if err := m.AddCustomMetric("bodyFat"); err != nil {
		t.Fatal(err)
	}
	if err := m.SetMetric("bodyFat", 15.2); err != nil {
		t.Fatalf("SetMetric: %v", err)
	}
	if got := m.Record().CustomMetrics["bodyFat"]; got != 15.2 {
		t.Errorf("bodyFat = %g, want 15.2", got)
	}

	if err := m.SetMetric("bodyFat", 0); err == nil {
		t.Error("non-positive metric value should be rejected")
	}
}

func TestRemoveCustomMetricSweepsEveryWeek(t *testing.T) {
	m, store := newHealthManager(t)

	if err := m.AddCustomMetric("bodyFat"); err != nil {
		t.Fatal(err)
	}
	if err := m.SetMetric("bodyFat", 15.0); err != nil {
		t.Fatal(err)
	}
	m.LoadWeekData(lastWeek)
	if err := m.SetMetric("bodyFat", 16.0); err != nil {
		t.Fatal(err)
	}

	if err := m.RemoveCustomMetric("bodyFat"); err != nil {
		t.Fatalf("RemoveCustomMetric: %v", err)
	}

	doc := store.Load()
	for key, rec := range doc.HealthByWeek {
		if _, ok := rec.CustomMetrics["bodyFat"]; ok {
			t.Errorf("week %s still has a bodyFat value after removal", key)
		}
	}
	if doc.HasMetricDefinition("bodyFat") {
		t.Error("definition should be gone")
	}

	if err := m.RemoveCustomMetric("bodyFat"); err == nil {
		t.Error("removing an undefined metric should fail")
	}
}

func TestWeightIsPerWeek(t *testing.T) {
	store := storage.NewMemoryStore()
	m := NewHealthManager(store, week)

	if err := m.SetWeight(65.0); err != nil {
		t.Fatal(err)
	}
	m.LoadWeekData(week.Next())
	if m.Record().Weight != nil {
		t.Error("the next week must not inherit the previous week's weight")
	}
	if err := m.SetWeight(64.2); err != nil {
		t.Fatal(err)
	}

	doc := store.Load()
	if *doc.HealthByWeek[week].Weight != 65.0 {
		t.Error("original week's weight changed")
	}
}
