package models

import (
	"errors"
	"time"

	"github.com/uteq-platform/AdvisoryService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid advisory status")
)

// Request модели

// ListAdvisoriesRequest запрос на получение консультаций с фильтрацией
type ListAdvisoriesRequest struct {
	ProfessorID *int64     `json:"professorId,omitempty"`
	StudentID   *int64     `json:"studentId,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Status      *string    `json:"status,omitempty"`
}

// UpdateAdvisoryRequest запрос на обновление темы и заметок
type UpdateAdvisoryRequest struct {
	Subject string  `json:"subject"`
	Notes   *string `json:"notes,omitempty"`
}

// Response модели

// AdvisoryResponse консультация в ответе сервиса
type AdvisoryResponse struct {
	ID               int64     `json:"id"`
	ProfessorID      int64     `json:"professorId"`
	StudentID        int64     `json:"studentId"`
	SlotID           *int64    `json:"slotId,omitempty"`
	Date             time.Time `json:"date"`
	Time             string    `json:"time"`
	Subject          string    `json:"subject"`
	Notes            *string   `json:"notes,omitempty"`
	Status           string    `json:"status"`
	RegistrationDate time.Time `json:"registrationDate"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// AdvisoryListResponse список консультаций
type AdvisoryListResponse struct {
	Advisories []*AdvisoryResponse `json:"advisories"`
	Total      int                 `json:"total"`
}

// ToDomainFilter конвертирует запрос списка в доменный фильтр
func (r *ListAdvisoriesRequest) ToDomainFilter() (domain.AdvisoryFilter, error) {
	filter := domain.AdvisoryFilter{
		ProfessorID: r.ProfessorID,
		StudentID:   r.StudentID,
		Date:        r.Date,
	}

	if r.Status != nil {
		status, err := ToDomainAdvisoryStatus(*r.Status)
		if err != nil {
			return domain.AdvisoryFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// ToDomainAdvisoryStatus конвертирует строку статуса в доменный тип
func ToDomainAdvisoryStatus(s string) (domain.AdvisoryStatus, error) {
	status, ok := domain.ParseAdvisoryStatus(s)
	if !ok {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// FromDomainAdvisory конвертирует доменную модель в response
func FromDomainAdvisory(adv *domain.Advisory) *AdvisoryResponse {
	return &AdvisoryResponse{
		ID:               adv.ID,
		ProfessorID:      adv.ProfessorID,
		StudentID:        adv.StudentID,
		SlotID:           adv.SlotID,
		Date:             adv.Date,
		Time:             adv.Time.String(),
		Subject:          adv.Subject,
		Notes:            adv.Notes,
		Status:           string(adv.Status),
		RegistrationDate: adv.RegistrationDate,
		CreatedAt:        adv.CreatedAt,
		UpdatedAt:        adv.UpdatedAt,
	}
}

// FromDomainAdvisoryList конвертирует список доменных моделей в response
func FromDomainAdvisoryList(advisories []*domain.Advisory) *AdvisoryListResponse {
	items := make([]*AdvisoryResponse, 0, len(advisories))
	for _, adv := range advisories {
		items = append(items, FromDomainAdvisory(adv))
	}
	return &AdvisoryListResponse{
		Advisories: items,
		Total:      len(items),
	}
}
