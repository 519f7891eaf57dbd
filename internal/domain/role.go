package domain

// Role of the user acting on a slot or booking
type Role string

const (
	RoleCandidate   Role = "CANDIDATE"
	RoleInterviewer Role = "INTERVIEWER"
	RoleCoordinator Role = "COORDINATOR"
)

// AllowedWeeks returns the set of week numbers the role may modify
// interviewer slots in: interviewers only touch next week, coordinators
// touch the current and the next one
func AllowedWeeks(role Role, currentWeek, nextWeek int) []int {
	switch role {
	case RoleInterviewer:
		return []int{nextWeek}
	case RoleCoordinator:
		return []int{currentWeek, nextWeek}
	default:
		return nil
	}
}

// WeekAllowed reports whether weekNum is in the set AllowedWeeks yields for role
func WeekAllowed(role Role, weekNum, currentWeek, nextWeek int) bool {
	for _, week := range AllowedWeeks(role, currentWeek, nextWeek) {
		if week == weekNum {
			return true
		}
	}
	return false
}
