package tracker

import (
	"fmt"

	"weeklog/internal/models"
	"weeklog/internal/storage"
	"weeklog/internal/validation"
	"weeklog/internal/weekkey"
)

// HealthManager owns the per-week body metrics and the custom metric
// definitions. Weight and each custom metric are stored independently per
// week; definitions are global.
type HealthManager struct {
	store       storage.Provider
	doc         *models.Document
	currentWeek weekkey.Key
}

func NewHealthManager(store storage.Provider, week weekkey.Key) *HealthManager {
	return &HealthManager{
		store:       store,
		doc:         store.Load(),
		currentWeek: week,
	}
}

// LoadWeekData switches the manager to the given week and reloads its
// document copy in full.
func (m *HealthManager) LoadWeekData(key weekkey.Key) {
	m.currentWeek = key
	m.doc = m.store.Load()
}

func (m *HealthManager) CurrentWeek() weekkey.Key {
	return m.currentWeek
}

// Record returns the current week's health record. A week without one yields
// an empty record that is not written back.
func (m *HealthManager) Record() *models.HealthRecord {
	if rec := m.doc.HealthByWeek[m.currentWeek]; rec != nil {
		return rec
	}
	return models.NewHealthRecord()
}

// MetricDefinitions returns the user-defined custom metric names.
func (m *HealthManager) MetricDefinitions() []string {
	return m.doc.MetricDefinitions
}

// SetWeight records the weight for the current week, lazily creating the
// week's record.
func (m *HealthManager) SetWeight(v float64) error {
	if err := validation.Weight(v); err != nil {
		return err
	}

	m.doc = m.store.Load()
	rec := m.ensureRecord()
	rec.Weight = &v
	return m.save()
}

// SetMetric records a custom metric value for the current week. The metric
// must have been defined first.
func (m *HealthManager) SetMetric(name string, v float64) error {
	name, err := validation.MetricName(name)
	if err != nil {
		return err
	}
	if err := validation.MetricValue(v); err != nil {
		return err
	}

	m.doc = m.store.Load()
	if !m.doc.HasMetricDefinition(name) {
		return fmt.Errorf("metric %q is not defined; add it first", name)
	}

	rec := m.ensureRecord()
	rec.CustomMetrics[name] = v
	return m.save()
}

// AddCustomMetric defines a new custom metric name. Duplicate names are
// rejected with a case-sensitive exact match.
func (m *HealthManager) AddCustomMetric(name string) error {
	name, err := validation.MetricName(name)
	if err != nil {
		return err
	}

	m.doc = m.store.Load()
	if m.doc.HasMetricDefinition(name) {
		return fmt.Errorf("metric %q already exists", name)
	}

	m.doc.MetricDefinitions = append(m.doc.MetricDefinitions, name)
	return m.save()
}

// RemoveCustomMetric removes the definition and sweeps the metric's value out
// of every week that recorded one.
func (m *HealthManager) RemoveCustomMetric(name string) error {
	m.doc = m.store.Load()
	if !m.doc.HasMetricDefinition(name) {
		return fmt.Errorf("metric %q is not defined", name)
	}

	kept := m.doc.MetricDefinitions[:0]
	for _, def := range m.doc.MetricDefinitions {
		if def != name {
			kept = append(kept, def)
		}
	}
	m.doc.MetricDefinitions = kept

	for _, rec := range m.doc.HealthByWeek {
		delete(rec.CustomMetrics, name)
	}

	return m.save()
}

func (m *HealthManager) ensureRecord() *models.HealthRecord {
	rec := m.doc.HealthByWeek[m.currentWeek]
	if rec == nil {
		rec = models.NewHealthRecord()
		m.doc.HealthByWeek[m.currentWeek] = rec
	}
	return rec
}

func (m *HealthManager) save() error {
	if err := m.store.Save(m.doc); err != nil {
		return fmt.Errorf("failed to save health data: %w", err)
	}
	return nil
}
