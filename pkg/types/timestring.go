package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// TimeFormat формат времени HH:MM, используется во всём сервисе
const TimeFormat = "15:04"

// TimeString строковое представление времени в формате HH:MM ("09:30").
// Используется вместо time.Time для колонок TIME, чтобы не тащить дату и
// таймзону туда, где их нет.
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает дату и секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// NewTimeStringFromString парсит строку HH:MM и возвращает TimeString
func NewTimeStringFromString(s string) (TimeString, error) {
	if _, err := time.Parse(TimeFormat, s); err != nil {
		return "", fmt.Errorf("invalid time string format: %w", err)
	}
	return TimeString(s), nil
}

// String возвращает строку HH:MM
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет, что значение соответствует формату HH:MM
func (t TimeString) Validate() error {
	if _, err := time.Parse(TimeFormat, string(t)); err != nil {
		return fmt.Errorf("invalid time string format: %w", err)
	}
	return nil
}

// parse возвращает time.Time с нулевой датой для арифметики и сравнений
func (t TimeString) parse() (time.Time, error) {
	parsed, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time string format: %w", err)
	}
	return parsed, nil
}

// AddMinutes возвращает новый TimeString, сдвинутый на minutes вперёд.
// Переход через полночь не поддерживается осознанно: слоты не пересекают сутки.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := t.parse()
	if err != nil {
		return "", err
	}
	return NewTimeString(parsed.Add(time.Duration(minutes) * time.Minute)), nil
}

// IsBefore возвращает true, если t строго раньше other.
// Для некорректных значений результат не определён — валидация делается раньше.
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.parse()
	b, errB := other.parse()
	if errA != nil || errB != nil {
		return false
	}
	return a.Before(b)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := t.parse()
	b, errB := other.parse()
	if errA != nil || errB != nil {
		return false
	}
	return a.After(b)
}

// Value реализует driver.Valuer для записи в колонку TIME
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из колонки TIME.
// Postgres может вернуть time.Time, []byte или string в зависимости от драйвера.
func (t *TimeString) Scan(src interface{}) error {
	if src == nil {
		*t = ""
		return nil
	}

	switch v := src.(type) {
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
}

func (t *TimeString) scanString(s string) error {
	// Колонка TIME приходит как "15:04:05" — обрезаем секунды
	if len(s) > 5 {
		s = s[:5]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
