package create_advisory

import (
	"time"

	"github.com/uteq-platform/AdvisoryService/internal/domain"
	createAdvisory "github.com/uteq-platform/AdvisoryService/internal/usecase/create_advisory"
)

// CreateAdvisoryRequest HTTP request model
type CreateAdvisoryRequest struct {
	ProfessorID int64   `json:"professorId"`
	StudentID   int64   `json:"studentId"`
	SlotID      int64   `json:"slotId"`
	Subject     string  `json:"subject"`
	Notes       *string `json:"notes,omitempty"`
}

// AdvisoryResponse HTTP response model
type AdvisoryResponse struct {
	ID               int64   `json:"id"`
	ProfessorID      int64   `json:"professorId"`
	StudentID        int64   `json:"studentId"`
	SlotID           *int64  `json:"slotId,omitempty"`
	Date             string  `json:"date"`
	Time             string  `json:"time"`
	Subject          string  `json:"subject"`
	Notes            *string `json:"notes,omitempty"`
	Status           string  `json:"status"`
	RegistrationDate string  `json:"registrationDate"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAdvisoryRequest) ToUseCaseRequest() *createAdvisory.Request {
	return &createAdvisory.Request{
		ProfessorID: r.ProfessorID,
		StudentID:   r.StudentID,
		SlotID:      r.SlotID,
		Subject:     r.Subject,
		Notes:       r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAdvisory.Response) *AdvisoryResponse {
	return &AdvisoryResponse{
		ID:               resp.ID,
		ProfessorID:      resp.ProfessorID,
		StudentID:        resp.StudentID,
		SlotID:           resp.SlotID,
		Date:             resp.Date.Format(domain.DateFormat),
		Time:             resp.Time.String(),
		Subject:          resp.Subject,
		Notes:            resp.Notes,
		Status:           resp.Status,
		RegistrationDate: resp.RegistrationDate.Format(domain.DateFormat),
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}
}
