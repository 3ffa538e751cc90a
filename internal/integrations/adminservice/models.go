package adminservice

// Role роль персоны в административном сервисе
type Role string

const (
	RoleStudent   Role = "student"
	RoleProfessor Role = "professor"
)

// ProgramAffiliation принадлежность персоны к учебной программе.
// Значение только читается при бронировании и нигде не сохраняется.
type ProgramAffiliation struct {
	PersonID  int64 `json:"personId"`
	ProgramID int64 `json:"programId"`
}

// ErrorResponse модель ошибки от AdminService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
