package create_interviewer_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-InterviewPlanning/internal/api/handlers"
	"github.com/m04kA/SMC-InterviewPlanning/internal/api/middleware"
	"github.com/m04kA/SMC-InterviewPlanning/internal/domain"
	"github.com/m04kA/SMC-InterviewPlanning/internal/service/interviewerslots"
	"github.com/m04kA/SMC-InterviewPlanning/internal/service/timeslot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDayOrTime   = "некорректный день недели или формат времени"
	msgInterviewerOnly    = "операция доступна только интервьюеру"
	msgWeekNotAllowed     = "слоты можно создавать только на следующую неделю"
	msgInvalidBoundaries  = "некорректные границы слота"
	msgSlotOverlapping    = "слот пересекается с существующим"
)

type Handler struct {
	service InterviewerSlotsService
	logger  Logger
}

func NewHandler(service InterviewerSlotsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/interviewers/current/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email := middleware.GetUserEmail(r.Context())
	if middleware.GetRole(r.Context()) != domain.RoleInterviewer {
		h.logger.Warn("POST /interviewers/current/slots - Forbidden for user=%s", email)
		handlers.RespondForbidden(w, msgInterviewerOnly)
		return
	}

	var req CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /interviewers/current/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(email)
	if err != nil {
		h.logger.Warn("POST /interviewers/current/slots - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDayOrTime)
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, interviewerslots.ErrWeekNumberNotAllowed):
			h.logger.Warn("POST /interviewers/current/slots - Week not allowed: user=%s, week=%d", email, req.WeekNum)
			handlers.RespondBadRequest(w, msgWeekNotAllowed)

		case errors.Is(err, timeslot.ErrInvalidBoundaries):
			h.logger.Warn("POST /interviewers/current/slots - Invalid boundaries: user=%s, error=%v", email, err)
			handlers.RespondBadRequest(w, msgInvalidBoundaries)

		case errors.Is(err, timeslot.ErrSlotOverlapping):
			h.logger.Warn("POST /interviewers/current/slots - Slot overlapping: user=%s", email)
			handlers.RespondConflict(w, msgSlotOverlapping)

		case errors.Is(err, interviewerslots.ErrInvalidInput):
			h.logger.Warn("POST /interviewers/current/slots - Invalid input: user=%s, error=%v", email, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /interviewers/current/slots - Failed to create slot: user=%s, error=%v", email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}
