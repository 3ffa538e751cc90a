package advisory

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/uteq-platform/AdvisoryService/internal/domain"
	"github.com/uteq-platform/AdvisoryService/pkg/dbmetrics"
	"github.com/uteq-platform/AdvisoryService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с консультациями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория консультаций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var advisoryColumns = []string{
	"id",
	"professor_id",
	"student_id",
	"slot_id",
	"date",
	"time",
	"subject",
	"notes",
	"status",
	"registration_date",
	"created_at",
	"updated_at",
}

// Create создает новую консультацию.
// Если в контексте передана активная транзакция (через context.Value),
// использует её.
func (r *Repository) Create(ctx context.Context, adv *domain.Advisory) (*domain.Advisory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("advisories").
		Columns(
			"professor_id",
			"student_id",
			"slot_id",
			"date",
			"time",
			"subject",
			"notes",
			"status",
			"registration_date",
		).
		Values(
			adv.ProfessorID,
			adv.StudentID,
			adv.SlotID,
			adv.Date,
			adv.Time,
			adv.Subject,
			adv.Notes,
			adv.Status,
			adv.RegistrationDate,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&adv.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	adv.CreatedAt = createdAt.Time
	adv.UpdatedAt = updatedAt.Time

	return adv, nil
}

// GetByID получает консультацию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Advisory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(advisoryColumns...).
		From("advisories").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	adv, err := r.scanAdvisory(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAdvisoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan advisory: %v", ErrScanRow, err)
	}

	return adv, nil
}

// List получает консультации по фильтру.
// Все поля фильтра опциональны; пустой фильтр возвращает всё.
func (r *Repository) List(ctx context.Context, filter domain.AdvisoryFilter) ([]*domain.Advisory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(advisoryColumns...).
		From("advisories").
		OrderBy("date DESC, time DESC")

	if filter.ProfessorID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"professor_id": *filter.ProfessorID})
	}
	if filter.StudentID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"student_id": *filter.StudentID})
	}
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"date": *filter.Date})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	advisories := make([]*domain.Advisory, 0)
	for rows.Next() {
		adv, err := r.scanAdvisory(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		advisories = append(advisories, adv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return advisories, nil
}

// UpdateStatus обновляет статус консультации.
// Валидность перехода проверяется уровнем выше, по таблице переходов.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AdvisoryStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("advisories").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAdvisoryNotFound
	}

	return nil
}

// UpdateDetails обновляет тему и заметки консультации (статус не трогаем)
func (r *Repository) UpdateDetails(ctx context.Context, id int64, subject string, notes *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("advisories").
		Set("subject", subject).
		Set("notes", notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateDetails - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateDetails - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateDetails - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAdvisoryNotFound
	}

	return nil
}

// Delete удаляет консультацию (физическое удаление).
// Освобождение слота — ответственность сервисного слоя, не репозитория.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("advisories").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAdvisoryNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanAdvisory сканирует одну строку в доменную модель
func (r *Repository) scanAdvisory(row rowScanner) (*domain.Advisory, error) {
	var adv domain.Advisory
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&adv.ID,
		&adv.ProfessorID,
		&adv.StudentID,
		&adv.SlotID,
		&adv.Date,
		&adv.Time,
		&adv.Subject,
		&adv.Notes,
		&adv.Status,
		&adv.RegistrationDate,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	adv.CreatedAt = createdAt.Time
	adv.UpdatedAt = updatedAt.Time

	return &adv, nil
}
