package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-InterviewPlanning/internal/api/handlers"
	"github.com/m04kA/SMC-InterviewPlanning/internal/api/middleware"
	"github.com/m04kA/SMC-InterviewPlanning/internal/domain"
	"github.com/m04kA/SMC-InterviewPlanning/internal/service/timeslot"
	createBooking "github.com/m04kA/SMC-InterviewPlanning/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody     = "некорректное тело запроса"
	msgInvalidTime            = "некорректный формат времени, ожидается HH:MM"
	msgCoordinatorOnly        = "операция доступна только координатору"
	msgInterviewerSlotMissing = "слот интервьюера не найден"
	msgCandidateSlotMissing   = "слот кандидата не найден"
	msgLimitExceeded          = "недельный лимит бронирований интервьюера исчерпан"
	msgBookingExists          = "бронирование с таким интервалом уже существует"
	msgInvalidBoundaries      = "некорректные границы бронирования"
	msgOutOfSlotRange         = "интервал бронирования выходит за границы слота"
	msgValidationFailed       = "тема или описание слишком длинные"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email := middleware.GetUserEmail(r.Context())
	if middleware.GetRole(r.Context()) != domain.RoleCoordinator {
		h.logger.Warn("POST /bookings - Forbidden for user=%s", email)
		handlers.RespondForbidden(w, msgCoordinatorOnly)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInterviewerSlotNotFound):
			h.logger.Warn("POST /bookings - Interviewer slot not found: id=%d", req.InterviewerSlotID)
			handlers.RespondNotFound(w, msgInterviewerSlotMissing)

		case errors.Is(err, createBooking.ErrCandidateSlotNotFound):
			h.logger.Warn("POST /bookings - Candidate slot not found: id=%d", req.CandidateSlotID)
			handlers.RespondNotFound(w, msgCandidateSlotMissing)

		case errors.Is(err, createBooking.ErrBookingLimitExceeded):
			h.logger.Warn("POST /bookings - Booking limit exceeded: interviewerSlot=%d", req.InterviewerSlotID)
			handlers.RespondConflict(w, msgLimitExceeded)

		case errors.Is(err, createBooking.ErrBookingAlreadyExists):
			h.logger.Warn("POST /bookings - Booking already exists: interviewerSlot=%d, candidateSlot=%d",
				req.InterviewerSlotID, req.CandidateSlotID)
			handlers.RespondConflict(w, msgBookingExists)

		case errors.Is(err, timeslot.ErrInvalidBoundaries):
			h.logger.Warn("POST /bookings - Invalid boundaries: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBoundaries)

		case errors.Is(err, createBooking.ErrOutOfSlotRange):
			h.logger.Warn("POST /bookings - Out of slot range: %v", err)
			handlers.RespondBadRequest(w, msgOutOfSlotRange)

		case errors.Is(err, createBooking.ErrValidationFailed):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgValidationFailed)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: interviewerSlot=%d, candidateSlot=%d, error=%v",
				req.InterviewerSlotID, req.CandidateSlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
