package get_candidate_slots

import (
	"net/http"

	"github.com/m04kA/SMC-InterviewPlanning/internal/api/handlers"
	"github.com/m04kA/SMC-InterviewPlanning/internal/api/middleware"
	"github.com/m04kA/SMC-InterviewPlanning/internal/domain"
)

const msgCandidateOnly = "операция доступна только кандидату"

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

// Handle GET /api/v1/candidates/current/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email := middleware.GetUserEmail(r.Context())
	if middleware.GetRole(r.Context()) != domain.RoleCandidate {
		h.logger.Warn("GET /candidates/current/slots - Forbidden for user=%s", email)
		handlers.RespondForbidden(w, msgCandidateOnly)
		return
	}

	result, err := h.service.List(r.Context(), email)
	if err != nil {
		h.logger.Error("GET /candidates/current/slots - Failed to list slots: user=%s, error=%v", email, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
