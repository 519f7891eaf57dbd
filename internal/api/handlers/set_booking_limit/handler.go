package set_booking_limit

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-InterviewPlanning/internal/api/handlers"
	"github.com/m04kA/SMC-InterviewPlanning/internal/api/middleware"
	"github.com/m04kA/SMC-InterviewPlanning/internal/domain"
	"github.com/m04kA/SMC-InterviewPlanning/internal/service/interviewerslots"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInterviewerOnly    = "операция доступна только интервьюеру"
	msgInvalidLimit       = "лимит бронирований не может быть отрицательным"
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

// Handle POST /api/v1/interviewers/current/booking-limit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email := middleware.GetUserEmail(r.Context())
	if middleware.GetRole(r.Context()) != domain.RoleInterviewer {
		h.logger.Warn("POST /interviewers/current/booking-limit - Forbidden for user=%s", email)
		handlers.RespondForbidden(w, msgInterviewerOnly)
		return
	}

	var req SetLimitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /interviewers/current/booking-limit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetLimit(r.Context(), req.ToServiceRequest(email))
	if err != nil {
		switch {
		case errors.Is(err, interviewerslots.ErrInvalidLimit):
			h.logger.Warn("POST /interviewers/current/booking-limit - Invalid limit: user=%s, limit=%d",
				email, req.MaxBookings)
			handlers.RespondBadRequest(w, msgInvalidLimit)

		case errors.Is(err, interviewerslots.ErrInvalidInput):
			h.logger.Warn("POST /interviewers/current/booking-limit - Invalid input: user=%s, error=%v", email, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /interviewers/current/booking-limit - Failed to set limit: user=%s, error=%v", email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
