package update_candidate_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-InterviewPlanning/internal/api/handlers"
	"github.com/m04kA/SMC-InterviewPlanning/internal/api/middleware"
	"github.com/m04kA/SMC-InterviewPlanning/internal/domain"
	"github.com/m04kA/SMC-InterviewPlanning/internal/service/candidateslots"
	"github.com/m04kA/SMC-InterviewPlanning/internal/service/timeslot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlotID      = "некорректный идентификатор слота"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgCandidateOnly      = "операция доступна только кандидату"
	msgSlotNotFound       = "слот не найден"
	msgInvalidDayOfWeek   = "дата должна быть рабочим днем и не в прошлом"
	msgInvalidBoundaries  = "некорректные границы слота"
	msgSlotOverlapping    = "слот пересекается с существующим"
)

type Handler struct {
	service CandidateSlotsService
	logger  Logger
}

func NewHandler(service CandidateSlotsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/candidates/current/slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email := middleware.GetUserEmail(r.Context())
	if middleware.GetRole(r.Context()) != domain.RoleCandidate {
		h.logger.Warn("POST /candidates/current/slots/{slotId} - Forbidden for user=%s", email)
		handlers.RespondForbidden(w, msgCandidateOnly)
		return
	}

	slotID, err := strconv.ParseInt(mux.Vars(r)["slotId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /candidates/current/slots/{slotId} - Invalid slot id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	var req UpdateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /candidates/current/slots/{slotId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(email)
	if err != nil {
		h.logger.Warn("POST /candidates/current/slots/{slotId} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.service.Update(r.Context(), slotID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, candidateslots.ErrSlotNotFound):
			h.logger.Warn("POST /candidates/current/slots/{slotId} - Slot not found: id=%d, user=%s", slotID, email)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, candidateslots.ErrInvalidDayOfWeek):
			h.logger.Warn("POST /candidates/current/slots/{slotId} - Invalid day of week: id=%d, user=%s", slotID, email)
			handlers.RespondBadRequest(w, msgInvalidDayOfWeek)

		case errors.Is(err, timeslot.ErrInvalidBoundaries):
			h.logger.Warn("POST /candidates/current/slots/{slotId} - Invalid boundaries: id=%d, error=%v", slotID, err)
			handlers.RespondBadRequest(w, msgInvalidBoundaries)

		case errors.Is(err, timeslot.ErrSlotOverlapping):
			h.logger.Warn("POST /candidates/current/slots/{slotId} - Slot overlapping: id=%d, user=%s", slotID, email)
			handlers.RespondConflict(w, msgSlotOverlapping)

		case errors.Is(err, candidateslots.ErrInvalidInput):
			h.logger.Warn("POST /candidates/current/slots/{slotId} - Invalid input: id=%d, error=%v", slotID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /candidates/current/slots/{slotId} - Failed to update slot: id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
