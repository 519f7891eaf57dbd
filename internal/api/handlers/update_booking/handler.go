package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-InterviewPlanning/internal/api/handlers"
	"github.com/m04kA/SMC-InterviewPlanning/internal/api/middleware"
	"github.com/m04kA/SMC-InterviewPlanning/internal/domain"
	"github.com/m04kA/SMC-InterviewPlanning/internal/service/timeslot"
	updateBooking "github.com/m04kA/SMC-InterviewPlanning/internal/usecase/update_booking"
)

const (
	msgInvalidRequestBody     = "некорректное тело запроса"
	msgInvalidBookingID       = "некорректный идентификатор бронирования"
	msgInvalidTime            = "некорректный формат времени, ожидается HH:MM"
	msgCoordinatorOnly        = "операция доступна только координатору"
	msgBookingNotFound        = "бронирование не найдено"
	msgInterviewerSlotMissing = "слот интервьюера не найден"
	msgCandidateSlotMissing   = "слот кандидата не найден"
	msgLimitExceeded          = "недельный лимит бронирований интервьюера исчерпан"
	msgBookingExists          = "бронирование с таким интервалом уже существует"
	msgInvalidBoundaries      = "некорректные границы бронирования"
	msgOutOfSlotRange         = "интервал бронирования выходит за границы слота"
	msgValidationFailed       = "тема или описание слишком длинные"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email := middleware.GetUserEmail(r.Context())
	if middleware.GetRole(r.Context()) != domain.RoleCoordinator {
		h.logger.Warn("POST /bookings/{bookingId} - Forbidden for user=%s", email)
		handlers.RespondForbidden(w, msgCoordinatorOnly)
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{bookingId} - Invalid booking id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{bookingId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings/{bookingId} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), bookingID, useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{bookingId} - Booking not found: id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, updateBooking.ErrInterviewerSlotNotFound):
			h.logger.Warn("POST /bookings/{bookingId} - Interviewer slot not found: id=%d", req.InterviewerSlotID)
			handlers.RespondNotFound(w, msgInterviewerSlotMissing)

		case errors.Is(err, updateBooking.ErrCandidateSlotNotFound):
			h.logger.Warn("POST /bookings/{bookingId} - Candidate slot not found: id=%d", req.CandidateSlotID)
			handlers.RespondNotFound(w, msgCandidateSlotMissing)

		case errors.Is(err, updateBooking.ErrBookingLimitExceeded):
			h.logger.Warn("POST /bookings/{bookingId} - Booking limit exceeded: id=%d", bookingID)
			handlers.RespondConflict(w, msgLimitExceeded)

		case errors.Is(err, updateBooking.ErrBookingAlreadyExists):
			h.logger.Warn("POST /bookings/{bookingId} - Booking already exists: id=%d", bookingID)
			handlers.RespondConflict(w, msgBookingExists)

		case errors.Is(err, timeslot.ErrInvalidBoundaries):
			h.logger.Warn("POST /bookings/{bookingId} - Invalid boundaries: id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidBoundaries)

		case errors.Is(err, updateBooking.ErrOutOfSlotRange):
			h.logger.Warn("POST /bookings/{bookingId} - Out of slot range: id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgOutOfSlotRange)

		case errors.Is(err, updateBooking.ErrValidationFailed):
			h.logger.Warn("POST /bookings/{bookingId} - Validation failed: id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgValidationFailed)

		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{bookingId} - Invalid input: id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings/{bookingId} - Failed to update booking: id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
