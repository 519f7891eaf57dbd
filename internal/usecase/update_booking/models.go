package update_booking

import (
	"time"

	"github.com/m04kA/SMC-InterviewPlanning/internal/domain"
	"github.com/m04kA/SMC-InterviewPlanning/pkg/types"
)

// Request модель запроса на обновление бронирования
// Слоты можно переназначить, интервал и тексты задаются целиком
type Request struct {
	InterviewerSlotID int64            // ID слота интервьюера
	CandidateSlotID   int64            // ID слота кандидата
	StartTime         types.TimeString // Начало интервью
	EndTime           types.TimeString // Конец интервью
	Subject           string           // Тема интервью
	Description       string           // Описание
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID                int64            // ID бронирования
	InterviewerSlotID int64            // ID слота интервьюера
	CandidateSlotID   int64            // ID слота кандидата
	StartTime         types.TimeString // Начало интервью
	EndTime           types.TimeString // Конец интервью
	Subject           string           // Тема интервью
	Description       string           // Описание

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:                b.ID,
		InterviewerSlotID: b.InterviewerSlotID,
		CandidateSlotID:   b.CandidateSlotID,
		StartTime:         b.StartTime,
		EndTime:           b.EndTime,
		Subject:           b.Subject,
		Description:       b.Description,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}
