package slot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/uteq-platform/AdvisoryService/internal/domain"
	"github.com/uteq-platform/AdvisoryService/pkg/dbmetrics"
	"github.com/uteq-platform/AdvisoryService/pkg/psqlbuilder"
	"github.com/uteq-platform/AdvisoryService/pkg/types"
)

// Repository репозиторий для работы со слотами расписания.
// Сами слоты публикует внешний сервис профессоров; здесь только чтение
// и атомарные claim/release над флагом доступности.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var slotColumns = []string{
	"id",
	"professor_id",
	"date",
	"start_time",
	"end_time",
	"available",
	"created_at",
	"updated_at",
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := r.scanSlot(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return s, nil
}

// FindActiveSlot ищет доступный слот профессора, интервал которого
// включает указанное время (границы включительно). Если подходит
// несколько слотов, детерминированно берём самый ранний по start_time.
// Чистый запрос, ничего не мутирует.
func (r *Repository) FindActiveSlot(ctx context.Context, professorID int64, date time.Time, t types.TimeString) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{
			"professor_id": professorID,
			"date":         date,
			"available":    true,
		}).
		Where(squirrel.LtOrEq{"start_time": t}).
		Where(squirrel.GtOrEq{"end_time": t}).
		OrderBy("start_time ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveSlot - build select query: %v", ErrBuildQuery, err)
	}

	s, err := r.scanSlot(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveSlot - scan slot: %v", ErrScanRow, err)
	}

	return s, nil
}

// ListAvailableByProfessor получает доступные слоты профессора,
// опционально на конкретную дату
func (r *Repository) ListAvailableByProfessor(ctx context.Context, professorID int64, date *time.Time) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{
			"professor_id": professorID,
			"available":    true,
		}).
		OrderBy("date ASC, start_time ASC")

	if date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"date": *date})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailableByProfessor - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailableByProfessor - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.Slot, 0)
	for rows.Next() {
		s, err := r.scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListAvailableByProfessor - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAvailableByProfessor - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// Claim атомарно занимает слот: available true -> false одним условным
// UPDATE. Возвращает true, если переход применился. Это единственная
// точка сериализации конкурентных бронирований — проверка доступности
// отдельным SELECT с последующей записью здесь недостаточна.
func (r *Repository) Claim(ctx context.Context, id int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("available", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "available": true}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Claim - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: Claim - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: Claim - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected == 1, nil
}

// Release атомарно освобождает слот: available false -> true.
// Идемпотентен: повторный вызов вернёт false (изменений не было) без ошибки.
func (r *Repository) Release(ctx context.Context, id int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("available", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "available": false}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Release - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: Release - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: Release - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected == 1, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanSlot сканирует одну строку в доменную модель
func (r *Repository) scanSlot(row rowScanner) (*domain.Slot, error) {
	var s domain.Slot
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.ProfessorID,
		&s.Date,
		&s.StartTime,
		&s.EndTime,
		&s.Available,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}
