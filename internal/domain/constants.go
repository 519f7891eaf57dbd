package domain

// Default interview configuration values
const (
	DefaultInterviewDurationMinutes = 90
	DefaultWorkingHoursFrom         = "08:00"
	DefaultWorkingHoursTo           = "22:00"
	DefaultMaxSubjectLength         = 255
	DefaultMaxDescriptionLength     = 4000
)

// Business validation constants
const (
	// SlotStepMinutes шаг округления границ слотов (минуты должны быть :00 или :30)
	SlotStepMinutes = 30

	// AdjacencyBufferMinutes буфер между слотами интервьюера при обновлении
	AdjacencyBufferMinutes = 30

	// WeeksPerYear количество недель, после которого нумерация заворачивается на 1
	WeeksPerYear = 52
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// NextWeekOf returns the week number following weekNum, wrapping 52 to 1
func NextWeekOf(weekNum int) int {
	return weekNum%WeeksPerYear + 1
}
