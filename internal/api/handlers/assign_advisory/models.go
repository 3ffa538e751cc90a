package assign_advisory

import (
	"time"

	"github.com/uteq-platform/AdvisoryService/internal/domain"
	assignAdvisory "github.com/uteq-platform/AdvisoryService/internal/usecase/assign_advisory"
	"github.com/uteq-platform/AdvisoryService/pkg/types"
)

// AssignAdvisoryRequest HTTP request model
type AssignAdvisoryRequest struct {
	ProfessorID int64   `json:"professorId"`
	StudentID   int64   `json:"studentId"`
	Date        string  `json:"date"` // "2025-11-20"
	Time        string  `json:"time"` // "10:30"
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
// (с парсингом даты и времени)
func (r *AssignAdvisoryRequest) ToUseCaseRequest() (*assignAdvisory.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	t, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &assignAdvisory.Request{
		ProfessorID: r.ProfessorID,
		StudentID:   r.StudentID,
		Date:        date,
		Time:        t,
		Subject:     r.Subject,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *assignAdvisory.Response) *AdvisoryResponse {
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
