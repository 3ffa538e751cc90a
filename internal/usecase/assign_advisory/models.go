package assign_advisory

import (
	"time"

	"github.com/uteq-platform/AdvisoryService/internal/domain"
	"github.com/uteq-platform/AdvisoryService/pkg/types"
)

// Request модель запроса на назначение консультации профессором.
// Вместо конкретного слота передаются дата и время; подходящий слот
// ищется среди доступных.
type Request struct {
	ProfessorID int64            // ID профессора
	StudentID   int64            // ID студента
	Date        time.Time        // Желаемая дата (без времени)
	Time        types.TimeString // Желаемое время (например, "10:30")
	Subject     string           // Тема консультации
	Notes       *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с назначенной консультацией
type Response struct {
	ID               int64            // ID созданной консультации
	ProfessorID      int64            // ID профессора
	StudentID        int64            // ID студента
	SlotID           *int64           // ID занятого слота
	Date             time.Time        // Дата консультации (из запроса)
	Time             types.TimeString // Время консультации (из запроса)
	Subject          string           // Тема
	Notes            *string          // Заметки
	Status           string           // Статус консультации
	RegistrationDate time.Time        // Дата регистрации

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

// fromDomain конвертирует доменную модель в response
func fromDomain(adv *domain.Advisory) *Response {
	return &Response{
		ID:               adv.ID,
		ProfessorID:      adv.ProfessorID,
		StudentID:        adv.StudentID,
		SlotID:           adv.SlotID,
		Date:             adv.Date,
		Time:             adv.Time,
		Subject:          adv.Subject,
		Notes:            adv.Notes,
		Status:           string(adv.Status),
		RegistrationDate: adv.RegistrationDate,
		CreatedAt:        adv.CreatedAt,
		UpdatedAt:        adv.UpdatedAt,
	}
}
