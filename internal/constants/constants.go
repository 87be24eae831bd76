package constants

const (
	AppName = "weeklog"

	// DateFormat is the canonical calendar-date layout used everywhere:
	// week keys, meal dates, memo dates, API query parameters.
	DateFormat = "2006-01-02"

	// DefaultConfigPath is expanded by kong at parse time.
	DefaultConfigPath = "~/.config/weeklog/weeklog.json"

	// DocumentVersion is written into every new document and checked on load.
	DocumentVersion = "1.0"

	// BackupSuffix is appended to the storage path when a corrupt document
	// is preserved before being replaced with defaults.
	BackupSuffix = ".backup"

	// Duration bounds offered by the CLI/TUI pickers. The data model itself
	// accepts any positive number of minutes.
	MinDurationMinutes  = 10
	MaxDurationMinutes  = 180
	DurationStepMinutes = 10

	// MaxPhotoBytes caps meal photo attachments at 5 MiB.
	MaxPhotoBytes = 5 * 1024 * 1024

	// KeyringSessionUser is the account name under which the memo API
	// session token is stored in the OS keyring.
	KeyringSessionUser = "session-token"

	// DefaultAPIBaseURL is where the memo/document API is expected unless
	// overridden with --api.
	DefaultAPIBaseURL = "http://localhost:3000"
)

// Meal types accepted by the meal manager, in display/sort order.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// MealTypeOrder ranks meal types for listing within a day.
var MealTypeOrder = map[string]int{
	MealBreakfast: 1,
	MealLunch:     2,
	MealDinner:    3,
	MealSnack:     4,
}

// DayNames are Monday-first short labels matching day indexes 0..6.
var DayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
