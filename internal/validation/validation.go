// Package validation holds the pre-mutation checks shared by the managers and
// the CLI. Every check runs before any state change or network call; a failed
// check means the operation is a no-op.
package validation

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"weeklog/internal/constants"
)

// ExerciseName trims and validates an exercise name.
func ExerciseName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("exercise name cannot be empty")
	}
	return name, nil
}

// Duration validates an exercise duration in minutes. The pickers offer
// 10..180 in steps of 10, but any positive value is accepted by the model.
func Duration(minutes int) error {
	if minutes <= 0 {
		return fmt.Errorf("duration must be a positive number of minutes, got %d", minutes)
	}
	return nil
}

// Weight validates a body weight in kilograms.
func Weight(v float64) error {
	if v <= 0 {
		return fmt.Errorf("weight must be positive, got %g", v)
	}
	return nil
}

// MetricName trims and validates a custom metric name.
func MetricName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("metric name cannot be empty")
	}
	return name, nil
}

// MetricValue validates a custom metric measurement.
func MetricValue(v float64) error {
	if v <= 0 {
		return fmt.Errorf("metric value must be positive, got %g", v)
	}
	return nil
}

// Calories validates a calorie count.
func Calories(v int) error {
	if v < 0 {
		return fmt.Errorf("calories cannot be negative, got %d", v)
	}
	return nil
}

// MealType validates and canonicalizes a meal type.
func MealType(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if _, ok := constants.MealTypeOrder[s]; !ok {
		return "", fmt.Errorf("invalid meal type %q: expected breakfast, lunch, dinner, or snack", s)
	}
	return s, nil
}

// Food trims and validates a meal description.
func Food(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("food description cannot be empty")
	}
	return s, nil
}

// MemoText trims and validates memo text.
func MemoText(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("memo text cannot be empty")
	}
	return s, nil
}

var allowedPhotoExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".heic": true,
}

// photoMIMEByExt maps each extension to the content type the file must sniff
// as. HEIC has no entry: Go's sniffer does not know the format, so it is
// accepted on extension alone.
var photoMIMEByExt = map[string]string{
	".jpeg": "image/jpeg",
	".jpg":  "image/jpeg",
	".png":  "image/png",
}

// Photo validates a meal photo attachment: the file must exist, be at most
// 5 MiB, carry a jpeg/jpg/png/heic extension (case-insensitive), and its
// leading bytes must sniff as the image type the extension claims. An empty
// path means no photo and is valid.
func Photo(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("photo not readable: %w", err)
	}
	if info.Size() > constants.MaxPhotoBytes {
		return fmt.Errorf("photo exceeds the 5 MiB limit (%d bytes)", info.Size())
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !allowedPhotoExts[ext] {
		return fmt.Errorf("unsupported photo type %q: only JPG, PNG, and HEIC are accepted", ext)
	}

	want, ok := photoMIMEByExt[ext]
	if !ok {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("photo not readable: %w", err)
	}
	defer f.Close()
	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return fmt.Errorf("photo not readable: %w", err)
	}
	if got := http.DetectContentType(buf[:n]); got != want {
		return fmt.Errorf("photo content is %s, not %s", got, want)
	}
	return nil
}
