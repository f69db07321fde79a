package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testRoutes = []Route{
	{Method: http.MethodDelete, Pattern: "/v1/departments/{id}", Permission: manageDepts},
	{Method: http.MethodPut, Pattern: "/v1/departments/{id}/manager", Permission: manageDepts},
}

func TestHTTPMiddleware(t *testing.T) {
	var seen Actor
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = ActorFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	handler := HTTPMiddleware(next, testSecret, testRoutes)

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		wantStatus int
	}{
		{"open route", http.MethodGet, "/v1/departments/42", "", http.StatusNoContent},
		{"missing token", http.MethodDelete, "/v1/departments/42", "", http.StatusUnauthorized},
		{"bad token", http.MethodDelete, "/v1/departments/42", "garbage", http.StatusUnauthorized},
		{"missing permission", http.MethodDelete, "/v1/departments/42", testToken(t, testSecret, []string{viewOwnProfile}, time.Hour), http.StatusForbidden},
		{"allowed", http.MethodPut, "/v1/departments/42/manager", testToken(t, testSecret, []string{manageDepts}, time.Hour), http.StatusNoContent},
		{"longer path is not protected", http.MethodDelete, "/v1/departments/42/other", "", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = Actor{}
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.name == "allowed" {
				assert.Equal(t, testUserID, seen.ID)
			}
		})
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := extractTokenFromHeader(req)
	assert.Error(t, err)

	req.Header.Set("Authorization", "Token abc")
	_, err = extractTokenFromHeader(req)
	assert.Error(t, err)

	req.Header.Set("Authorization", "Bearer abc")
	token, err := extractTokenFromHeader(req)
	assert.NoError(t, err)
	assert.Equal(t, "abc", token)
}
