package tracker

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"

	"weeklog/internal/constants"
	"weeklog/internal/models"
	"weeklog/internal/storage"
	"weeklog/internal/validation"
	"weeklog/internal/weekkey"
)

// calorieKeywords is the fixed lookup table behind EstimateCalories. Values
// are typical per-serving calories for common Korean dishes and staples.
var calorieKeywords = map[string]int{
	"밥":     300,
	"쌀밥":    300,
	"현미밥":   280,
	"라면":    500,
	"샐러드":   150,
	"치킨":    800,
	"피자":    700,
	"김치찌개":  200,
	"된장찌개":  180,
	"계란":    80,
	"달걀":    80,
	"빵":     250,
	"식빵":    200,
	"우유":    130,
	"커피":    5,
	"아메리카노": 5,
	"라떼":    150,
	"과일":    100,
	"사과":    95,
	"바나나":   105,
	"고기":    400,
	"삼겹살":   500,
	"소고기":   450,
	"닭고기":   350,
	"생선":    200,
	"두부":    150,
	"김치":    30,
	"나물":    50,
	"국":     100,
	"찌개":    200,
	"탕":     250,
	"면":     400,
	"파스타":   450,
	"햄버거":   600,
	"샌드위치":  350,
	"김밥":    400,
	"떡볶이":   450,
	"순대":    350,
	"튀김":    300,
	"과자":    200,
	"초콜릿":   250,
	"아이스크림": 200,
	"케이크":   350,
	"요거트":   100,
	"치즈":    100,
}

// EstimateCalories returns the rounded mean of every table value whose
// keyword appears as a substring of the lowercased food and aux text, or 0
// when nothing matches. There is no partial-match scoring and no keyword
// priority.
func EstimateCalories(food, aux string) int {
	text := strings.ToLower(food + " " + aux)

	total, matches := 0, 0
	for keyword, cal := range calorieKeywords {
		if strings.Contains(text, keyword) {
			total += cal
			matches++
		}
	}

	if matches == 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(matches)))
}

// MealManager owns the per-week meal records. Meals are filed under the week
// containing their date, which may differ from the week being viewed; ids are
// therefore global, and removal and calorie updates search every week.
type MealManager struct {
	store       storage.Provider
	doc         *models.Document
	currentWeek weekkey.Key
}

func NewMealManager(store storage.Provider, week weekkey.Key) *MealManager {
	return &MealManager{
		store:       store,
		doc:         store.Load(),
		currentWeek: week,
	}
}

// LoadWeekData switches the manager to the given week and reloads its
// document copy in full.
func (m *MealManager) LoadWeekData(key weekkey.Key) {
	m.currentWeek = key
	m.doc = m.store.Load()
}

func (m *MealManager) CurrentWeek() weekkey.Key {
	return m.currentWeek
}

// AddMeal records a meal on the given date. Calories may come from the user
// or from a prior EstimateCalories call; a positive value marks the record as
// auto-estimated. The photo, if any, is validated before any mutation.
func (m *MealManager) AddMeal(date, mealType, food, photoPath string, calories int) (models.Meal, error) {
	if _, err := weekkey.ParseDate(date); err != nil {
		return models.Meal{}, err
	}
	mealType, err := validation.MealType(mealType)
	if err != nil {
		return models.Meal{}, err
	}
	food, err = validation.Food(food)
	if err != nil {
		return models.Meal{}, err
	}
	if err := validation.Calories(calories); err != nil {
		return models.Meal{}, err
	}
	if err := validation.Photo(photoPath); err != nil {
		return models.Meal{}, err
	}

	m.doc = m.store.Load()
	meal := models.Meal{
		ID:            uuid.New().String(),
		Date:          date,
		MealType:      mealType,
		Food:          food,
		Photo:         photoPath,
		Calories:      calories,
		AutoEstimated: calories > 0,
	}

	key, _ := weekkey.Parse(date)
	m.doc.MealsByWeek[key] = append(m.doc.MealsByWeek[key], meal)

	if err := m.save(); err != nil {
		return models.Meal{}, err
	}
	return meal, nil
}

// RemoveMeal deletes the meal with the given id, wherever it is filed.
func (m *MealManager) RemoveMeal(id string) error {
	m.doc = m.store.Load()

	for key, meals := range m.doc.MealsByWeek {
		for i, meal := range meals {
			if meal.ID == id {
				m.doc.MealsByWeek[key] = append(meals[:i], meals[i+1:]...)
				if len(m.doc.MealsByWeek[key]) == 0 {
					delete(m.doc.MealsByWeek, key)
				}
				return m.save()
			}
		}
	}
	return fmt.Errorf("meal not found: %s", id)
}

// UpdateCalories overrides a meal's calories with a user-supplied value,
// clearing the auto-estimated flag.
func (m *MealManager) UpdateCalories(id string, calories int) error {
	if err := validation.Calories(calories); err != nil {
		return err
	}

	m.doc = m.store.Load()
	for _, meals := range m.doc.MealsByWeek {
		for i := range meals {
			if meals[i].ID == id {
				meals[i].Calories = calories
				meals[i].AutoEstimated = false
				return m.save()
			}
		}
	}
	return fmt.Errorf("meal not found: %s", id)
}

// MealsForWeek returns the week's meals ordered by date, then by meal type
// (breakfast, lunch, dinner, snack). The stored order is left untouched.
func (m *MealManager) MealsForWeek(key weekkey.Key) []models.Meal {
	meals := m.doc.MealsByWeek[key]
	out := make([]models.Meal, len(meals))
	copy(out, meals)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return constants.MealTypeOrder[out[i].MealType] < constants.MealTypeOrder[out[j].MealType]
	})
	return out
}

// Meals returns the current week's meals in display order.
func (m *MealManager) Meals() []models.Meal {
	return m.MealsForWeek(m.currentWeek)
}

func (m *MealManager) save() error {
	if err := m.store.Save(m.doc); err != nil {
		return fmt.Errorf("failed to save meals: %w", err)
	}
	return nil
}
