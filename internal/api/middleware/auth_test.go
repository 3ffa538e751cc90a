package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantCode   int
		wantCalled bool
	}{
		{"valid user id", "42", http.StatusOK, true},
		{"missing header", "", http.StatusUnauthorized, false},
		{"non-numeric header", "abc", http.StatusUnauthorized, false},
		{"float is rejected", "4.2", http.StatusUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			})

			req := httptest.NewRequest(http.MethodGet, "/advisories", nil)
			if tt.header != "" {
				req.Header.Set(HeaderUserID, tt.header)
			}
			rec := httptest.NewRecorder()

			Auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantCalled, called)
		})
	}
}
