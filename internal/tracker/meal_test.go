package tracker

import (
	"os"
	"path/filepath"
	"testing"

	"weeklog/internal/storage"
	"weeklog/internal/weekkey"
)

func newMealManager(t *testing.T) (*MealManager, storage.Provider) {
	t.Helper()
	store := storage.NewMemoryStore()
	return NewMealManager(store, week), store
}

func TestEstimateCalories(t *testing.T) {
	tests := []struct {
		name string
		food string
		aux  string
		want int
	}{
		{name: "two keywords average", food: "치킨과 밥", want: 550},
		{name: "single keyword", food: "샐러드", want: 150},
		{name: "no match", food: "xyz", want: 0},
		{name: "empty input", food: "", want: 0},
		{name: "aux text participates", food: "", aux: "치킨.jpg", want: 800},
		{name: "overlapping keywords average", food: "매운 김치찌개 한그릇", want: 143},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateCalories(tt.food, tt.aux); got != tt.want {
				t.Errorf("EstimateCalories(%q, %q) = %d, want %d", tt.food, tt.aux, got, tt.want)
			}
		})
	}
}

func TestAddMealFiledUnderDateWeek(t *testing.T) {
	m, store := newMealManager(t)

	// A date in a different week than the one being viewed.
	meal, err := m.AddMeal("2025-09-30", "lunch", "샐러드", "", 150)
	if err != nil {
		t.Fatalf("AddMeal: %v", err)
	}
	if meal.AutoEstimated != true {
		t.Error("positive calories should mark the record auto-estimated")
	}

	doc := store.Load()
	if got := len(doc.MealsByWeek[lastWeek]); got != 1 {
		t.Errorf("meals under %s = %d, want 1", lastWeek, got)
	}
	if got := len(doc.MealsByWeek[week]); got != 0 {
		t.Errorf("meals under viewed week = %d, want 0", got)
	}
}

func TestAddMealValidation(t *testing.T) {
	m, store := newMealManager(t)

	tests := []struct {
		name     string
		date     string
		mealType string
		food     string
		calories int
	}{
		{name: "bad date", date: "tomorrow", mealType: "lunch", food: "rice"},
		{name: "bad meal type", date: "2025-10-07", mealType: "brunch", food: "rice"},
		{name: "empty food", date: "2025-10-07", mealType: "lunch", food: "  "},
		{name: "negative calories", date: "2025-10-07", mealType: "lunch", food: "rice", calories: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.AddMeal(tt.date, tt.mealType, tt.food, "", tt.calories); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	if n := len(store.Load().MealsByWeek); n != 0 {
		t.Errorf("rejected adds persisted %d weeks of meals, want 0", n)
	}
}

func TestAddMealPhotoValidation(t *testing.T) {
	m, store := newMealManager(t)
	dir := t.TempDir()

	big := filepath.Join(dir, "big.jpg")
	if err := os.WriteFile(big, make([]byte, 5*1024*1024+1), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := m.AddMeal("2025-10-07", "lunch", "rice", big, 0); err == nil {
		t.Error("oversized photo should be rejected")
	}
	if n := len(store.Load().MealsByWeek); n != 0 {
		t.Error("rejected photo must not leave a partial record")
	}

	ok := filepath.Join(dir, "ok.png")
	pngHeader := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	if err := os.WriteFile(ok, pngHeader, 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := m.AddMeal("2025-10-07", "lunch", "rice", ok, 0); err != nil {
		t.Errorf("valid photo rejected: %v", err)
	}
}

func TestRemoveMealSearchesAllWeeks(t *testing.T) {
	m, _ := newMealManager(t)

	// Filed under a past week, removed while viewing the current one.
	meal, err := m.AddMeal("2025-09-30", "dinner", "pasta", "", 450)
	if err != nil {
		t.Fatal(err)
	}

	if err := m.RemoveMeal(meal.ID); err != nil {
		t.Fatalf("RemoveMeal: %v", err)
	}
	if err := m.RemoveMeal(meal.ID); err == nil {
		t.Error("removing a missing meal should fail")
	}
}

func TestUpdateCaloriesClearsAutoEstimated(t *testing.T) {
	m, _ := newMealManager(t)

	meal, err := m.AddMeal("2025-09-30", "lunch", "치킨", "", EstimateCalories("치킨", ""))
	if err != nil {
		t.Fatal(err)
	}
	if !meal.AutoEstimated {
		t.Fatal("estimated meal should start auto-estimated")
	}

	if err := m.UpdateCalories(meal.ID, 650); err != nil {
		t.Fatalf("UpdateCalories: %v", err)
	}

	m.LoadWeekData(lastWeek)
	meals := m.Meals()
	if len(meals) != 1 {
		t.Fatalf("meals = %d, want 1", len(meals))
	}
	if meals[0].Calories != 650 || meals[0].AutoEstimated {
		t.Errorf("meal = %+v, want calories=650 autoEstimated=false", meals[0])
	}

	if err := m.UpdateCalories("missing", 100); err == nil {
		t.Error("updating a missing meal should fail")
	}
}

func TestMealsSortedByDateThenType(t *testing.T) {
	m, _ := newMealManager(t)

	add := func(date, mealType string) {
		t.Helper()
		if _, err := m.AddMeal(date, mealType, "food", "", 100); err != nil {
			t.Fatal(err)
		}
	}
	add("2025-10-08", "breakfast")
	add("2025-10-07", "snack")
	add("2025-10-07", "lunch")
	add("2025-10-07", "breakfast")

	meals := m.MealsForWeek(week)
	want := []struct{ date, mealType string }{
		{"2025-10-07", "breakfast"},
		{"2025-10-07", "lunch"},
		{"2025-10-07", "snack"},
		{"2025-10-08", "breakfast"},
	}
	if len(meals) != len(want) {
		t.Fatalf("meals = %d, want %d", len(meals), len(want))
	}
	for i, w := range want {
		if meals[i].Date != w.date || meals[i].MealType != w.mealType {
			t.Errorf("meals[%d] = %s/%s, want %s/%s", i, meals[i].Date, meals[i].MealType, w.date, w.mealType)
		}
	}
}

func TestMealWeekIsolation(t *testing.T) {
	store := storage.NewMemoryStore()
	m := NewMealManager(store, week)

	if _, err := m.AddMeal("2025-10-07", "lunch", "rice", "", 300); err != nil {
		t.Fatal(err)
	}
	if got := len(m.MealsForWeek(weekkey.Key("2025-10-13"))); got != 0 {
		t.Errorf("adjacent week has %d meals, want 0", got)
	}
}
