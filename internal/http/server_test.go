package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fittrack-backend-go/internal/config"
	"fittrack-backend-go/internal/services"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func newTestServer(t *testing.T) (*Server, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = mockDB.Close() })
	cfg := config.Config{
		JWTSecret:             "test-secret",
		TokenTTLSeconds:       604800,
		RequestTimeoutSeconds: 5,
	}
	server := NewServer(sqlx.NewDb(mockDB, "sqlmock"), cfg, services.NewMetricsHub())
	return server, mock
}

func bearerFor(t *testing.T, s *Server, userID string) string {
	t.Helper()
	token, err := s.Tokens.Issue(userID)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	return "Bearer " + token
}

func doRequest(s *Server, req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	s.Router().ServeHTTP(recorder, req)
	return recorder
}

func userColumns() []string {
	return []string{
		"id", "email", "password_hash", "name", "age", "height_cm",
		"curr_weight_kg", "goal_weight_kg", "fitness_level", "role",
		"created_at", "updated_at", "last_login_at",
	}
}

func userRow(id, email, role string, name *string) *sqlmock.Rows {
	now := time.Now().UTC()
	var nameValue interface{}
	if name != nil {
		nameValue = *name
	}
	return sqlmock.NewRows(userColumns()).
		AddRow(id, email, "hash", nameValue, nil, nil, nil, nil, nil, role, now, now, nil)
}
