package list_advisories

import (
	"net/url"
	"time"

	"github.com/uteq-platform/AdvisoryService/internal/domain"
	"github.com/uteq-platform/AdvisoryService/internal/service/advisories/models"
)

// parseQuery разбирает опциональные query-параметры списка.
// Поддерживаются status и date (YYYY-MM-DD).
func parseQuery(query url.Values) (*models.ListAdvisoriesRequest, error) {
	req := &models.ListAdvisoriesRequest{}

	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}

	if raw := query.Get("date"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	return req, nil
}
