package tracker

import (
	"fmt"

	"weeklog/internal/constants"
)

func checkDayIndex(i int) error {
	if i < 0 || i > 6 {
		return fmt.Errorf("day index must be 0 (Monday) through 6 (Sunday), got %d", i)
	}
	return nil
}

func dayName(i int) string {
	if i < 0 || i > 6 {
		return fmt.Sprintf("day %d", i)
	}
	return constants.DayNames[i]
}
