package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxSubjectLength = 200
	MaxNotesLength   = 500
)

// LiveStatuses статусы, при которых консультация удерживает свой слот.
// Используется при проверке инварианта "слот занят ровно одной живой записью".
var LiveStatuses = []AdvisoryStatus{
	StatusCreated,
	StatusAssigned,
	StatusConfirmed,
	StatusCompleted,
}
