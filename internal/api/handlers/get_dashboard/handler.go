package get_dashboard

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-InterviewPlanning/internal/api/handlers"
	"github.com/m04kA/SMC-InterviewPlanning/internal/api/middleware"
	"github.com/m04kA/SMC-InterviewPlanning/internal/domain"
	"github.com/m04kA/SMC-InterviewPlanning/internal/service/dashboard"
)

const (
	msgCoordinatorOnly = "операция доступна только координатору"
	msgInvalidWeek     = "некорректный номер недели, доступны текущая и следующая"
)

type Handler struct {
	service DashboardService
	logger  Logger
}

func NewHandler(service DashboardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/weeks/{weekNum}/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email := middleware.GetUserEmail(r.Context())
	if middleware.GetRole(r.Context()) != domain.RoleCoordinator {
		h.logger.Warn("GET /weeks/{weekNum}/dashboard - Forbidden for user=%s", email)
		handlers.RespondForbidden(w, msgCoordinatorOnly)
		return
	}

	weekNum, err := strconv.Atoi(mux.Vars(r)["weekNum"])
	if err != nil {
		h.logger.Warn("GET /weeks/{weekNum}/dashboard - Invalid week number: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWeek)
		return
	}

	result, err := h.service.GetWeek(r.Context(), weekNum)
	if err != nil {
		switch {
		case errors.Is(err, dashboard.ErrWeekNumberNotAllowed):
			h.logger.Warn("GET /weeks/{weekNum}/dashboard - Week not allowed: week=%d", weekNum)
			handlers.RespondBadRequest(w, msgInvalidWeek)

		default:
			h.logger.Error("GET /weeks/{weekNum}/dashboard - Failed to build dashboard: week=%d, error=%v", weekNum, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
