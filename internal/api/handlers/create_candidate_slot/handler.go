package create_candidate_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-InterviewPlanning/internal/api/handlers"
	"github.com/m04kA/SMC-InterviewPlanning/internal/api/middleware"
	"github.com/m04kA/SMC-InterviewPlanning/internal/domain"
	"github.com/m04kA/SMC-InterviewPlanning/internal/service/candidateslots"
	"github.com/m04kA/SMC-InterviewPlanning/internal/service/timeslot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgCandidateOnly      = "операция доступна только кандидату"
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

// Handle POST /api/v1/candidates/current/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email := middleware.GetUserEmail(r.Context())
	if middleware.GetRole(r.Context()) != domain.RoleCandidate {
		h.logger.Warn("POST /candidates/current/slots - Forbidden for user=%s", email)
		handlers.RespondForbidden(w, msgCandidateOnly)
		return
	}

	var req CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /candidates/current/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(email)
	if err != nil {
		h.logger.Warn("POST /candidates/current/slots - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, candidateslots.ErrInvalidDayOfWeek):
			h.logger.Warn("POST /candidates/current/slots - Invalid day of week: user=%s", email)
			handlers.RespondBadRequest(w, msgInvalidDayOfWeek)

		case errors.Is(err, timeslot.ErrInvalidBoundaries):
			h.logger.Warn("POST /candidates/current/slots - Invalid boundaries: user=%s, error=%v", email, err)
			handlers.RespondBadRequest(w, msgInvalidBoundaries)

		case errors.Is(err, timeslot.ErrSlotOverlapping):
			h.logger.Warn("POST /candidates/current/slots - Slot overlapping: user=%s", email)
			handlers.RespondConflict(w, msgSlotOverlapping)

		case errors.Is(err, candidateslots.ErrInvalidInput):
			h.logger.Warn("POST /candidates/current/slots - Invalid input: user=%s, error=%v", email, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /candidates/current/slots - Failed to create slot: user=%s, error=%v", email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}
