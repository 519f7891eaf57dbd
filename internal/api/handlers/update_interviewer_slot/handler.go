package update_interviewer_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-InterviewPlanning/internal/api/handlers"
	"github.com/m04kA/SMC-InterviewPlanning/internal/api/middleware"
	"github.com/m04kA/SMC-InterviewPlanning/internal/domain"
	"github.com/m04kA/SMC-InterviewPlanning/internal/service/interviewerslots"
	"github.com/m04kA/SMC-InterviewPlanning/internal/service/timeslot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlotID      = "некорректный идентификатор слота"
	msgInvalidDayOrTime   = "некорректный день недели или формат времени"
	msgRoleNotAllowed     = "операция доступна интервьюеру и координатору"
	msgSlotNotFound       = "слот не найден"
	msgWeekNotAllowed     = "номер недели недоступен для вашей роли"
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

// Handle POST /api/v1/interviewers/current/slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email := middleware.GetUserEmail(r.Context())
	role := middleware.GetRole(r.Context())
	if role != domain.RoleInterviewer && role != domain.RoleCoordinator {
		h.logger.Warn("POST /interviewers/current/slots/{slotId} - Forbidden for user=%s, role=%s", email, role)
		handlers.RespondForbidden(w, msgRoleNotAllowed)
		return
	}

	slotID, err := strconv.ParseInt(mux.Vars(r)["slotId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /interviewers/current/slots/{slotId} - Invalid slot id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	var req UpdateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /interviewers/current/slots/{slotId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(email, role)
	if err != nil {
		h.logger.Warn("POST /interviewers/current/slots/{slotId} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDayOrTime)
		return
	}

	result, err := h.service.Update(r.Context(), slotID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, interviewerslots.ErrSlotNotFound):
			h.logger.Warn("POST /interviewers/current/slots/{slotId} - Slot not found: id=%d, user=%s", slotID, email)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, interviewerslots.ErrWeekNumberNotAllowed):
			h.logger.Warn("POST /interviewers/current/slots/{slotId} - Week not allowed: id=%d, role=%s, week=%d",
				slotID, role, req.WeekNum)
			handlers.RespondBadRequest(w, msgWeekNotAllowed)

		case errors.Is(err, timeslot.ErrInvalidBoundaries):
			h.logger.Warn("POST /interviewers/current/slots/{slotId} - Invalid boundaries: id=%d, error=%v", slotID, err)
			handlers.RespondBadRequest(w, msgInvalidBoundaries)

		case errors.Is(err, timeslot.ErrSlotOverlapping):
			h.logger.Warn("POST /interviewers/current/slots/{slotId} - Slot overlapping: id=%d, user=%s", slotID, email)
			handlers.RespondConflict(w, msgSlotOverlapping)

		case errors.Is(err, interviewerslots.ErrInvalidInput):
			h.logger.Warn("POST /interviewers/current/slots/{slotId} - Invalid input: id=%d, error=%v", slotID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /interviewers/current/slots/{slotId} - Failed to update slot: id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
