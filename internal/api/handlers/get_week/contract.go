package get_week

type WeekClock interface {
	CurrentWeekNumber() int
	NextWeekNumber() int
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
