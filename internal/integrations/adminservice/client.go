package adminservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с AdminService (профили и учебные программы).
// Таймаут запросов задаётся при создании и ограничивает каждый вызов.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента AdminService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetProgramAffiliation получает принадлежность персоны к учебной программе.
// role определяет, в каком реестре искать профиль (студенты и профессора
// живут в разных таблицах AdminService).
func (c *Client) GetProgramAffiliation(ctx context.Context, personID int64, role Role) (*ProgramAffiliation, error) {
	url := fmt.Sprintf("%s/api/admin/profiles/%s/%d", c.baseURL, role, personID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Таймауты и сетевые ошибки — отдельный sentinel, чтобы usecase
		// мог применить fail-closed политику
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: request timed out: %v", ErrUnavailable, err)
		}
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid person ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrProfileNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var affiliation ProgramAffiliation
	if err := json.NewDecoder(resp.Body).Decode(&affiliation); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &affiliation, nil
}
