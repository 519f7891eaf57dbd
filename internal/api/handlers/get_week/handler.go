package get_week

import (
	"net/http"

	"github.com/m04kA/SMC-InterviewPlanning/internal/api/handlers"
)

// WeekResponse HTTP response model
type WeekResponse struct {
	WeekNum int `json:"weekNum"`
}

type Handler struct {
	weekClock WeekClock
	logger    Logger
}

func NewHandler(weekClock WeekClock, logger Logger) *Handler {
	return &Handler{
		weekClock: weekClock,
		logger:    logger,
	}
}

// HandleCurrent GET /api/v1/weeks/current
func (h *Handler) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, WeekResponse{WeekNum: h.weekClock.CurrentWeekNumber()})
}

// HandleNext GET /api/v1/weeks/next
func (h *Handler) HandleNext(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, WeekResponse{WeekNum: h.weekClock.NextWeekNumber()})
}
