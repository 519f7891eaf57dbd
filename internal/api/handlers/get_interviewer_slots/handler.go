package get_interviewer_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-InterviewPlanning/internal/api/handlers"
	"github.com/m04kA/SMC-InterviewPlanning/internal/api/middleware"
	"github.com/m04kA/SMC-InterviewPlanning/internal/domain"
	"github.com/m04kA/SMC-InterviewPlanning/internal/service/interviewerslots"
)

const (
	msgInterviewerOnly = "операция доступна только интервьюеру"
	msgInvalidWeek     = "некорректный номер недели, доступны текущая и следующая"
)

type Handler struct {
	service   InterviewerSlotsService
	weekClock WeekClock
	logger    Logger
}

func NewHandler(service InterviewerSlotsService, weekClock WeekClock, logger Logger) *Handler {
	return &Handler{
		service:   service,
		weekClock: weekClock,
		logger:    logger,
	}
}

// Handle GET /api/v1/interviewers/current/slots?week=N
// Без параметра week возвращаются слоты текущей недели
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email := middleware.GetUserEmail(r.Context())
	if middleware.GetRole(r.Context()) != domain.RoleInterviewer {
		h.logger.Warn("GET /interviewers/current/slots - Forbidden for user=%s", email)
		handlers.RespondForbidden(w, msgInterviewerOnly)
		return
	}

	weekNum := h.weekClock.CurrentWeekNumber()
	if raw := r.URL.Query().Get("week"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /interviewers/current/slots - Invalid week parameter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWeek)
			return
		}
		weekNum = parsed
	}

	result, err := h.service.List(r.Context(), email, weekNum)
	if err != nil {
		switch {
		case errors.Is(err, interviewerslots.ErrWeekNumberNotAllowed):
			h.logger.Warn("GET /interviewers/current/slots - Week not allowed: user=%s, week=%d", email, weekNum)
			handlers.RespondBadRequest(w, msgInvalidWeek)

		default:
			h.logger.Error("GET /interviewers/current/slots - Failed to list slots: user=%s, error=%v", email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
