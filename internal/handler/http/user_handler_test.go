package http_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/PetSymptomTracker/internal/domain/apperror"
	handler "github.com/mikiasgoitom/PetSymptomTracker/internal/handler/http"
	dto "github.com/mikiasgoitom/PetSymptomTracker/internal/handler/http/dto"
	mocks "github.com/mikiasgoitom/PetSymptomTracker/internal/handler/http/mocks"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type testConfig struct{}

func (testConfig) GetAppEnv() string               { return "test" }
func (testConfig) GetPort() string                 { return "0" }
func (testConfig) GetJWTSecret() string            { return "secret" }
func (testConfig) GetTokenTTL() time.Duration      { return time.Hour }
func (testConfig) GetBcryptCost() int              { return 4 }
func (testConfig) GetStoreDriver() string          { return "postgres" }
func (testConfig) GetDatabaseURL() string          { return "" }
func (testConfig) GetMongoURI() string             { return "" }
func (testConfig) GetMongoDBName() string          { return "" }
func (testConfig) GetRedisURL() string             { return "" }
func (testConfig) GetRateLimitRPS() float64        { return 1000 }
func (testConfig) GetSeedUsers() bool              { return false }
func (testConfig) GetCORSAllowedOrigins() []string { return []string{"*"} }

func setupRouter(t *testing.T, uc *mocks.MockUserUsecase) *gin.Engine {
	t.Helper()
	rt, err := handler.NewRouter(uc, testConfig{}, nil, prometheus.NewRegistry())
	require.NoError(t, err)
	r := gin.New()
	rt.SetupRoutes(r)
	return r
}

func doRequest(r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func strPtr(s string) *string { return &s }

func TestRegister(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupRouter(t, mockUsecase)
	payload := dto.CreateUserRequest{
		Username:  "newuser",
		Email:     "new@example.com",
		Password:  "Password123!",
		FirstName: strPtr("New"),
	}

	w := doRequest(r, http.MethodPost, "/api/v1/auth/register", payload, "")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"newuser"`)
	assert.NotContains(t, w.Body.String(), "password")
	assert.Equal(t, "New", *mockUsecase.LastRegisterInput.FirstName)
	assert.Nil(t, mockUsecase.LastRegisterInput.LastName)
}

func TestRegister_BindingError(t *testing.T) {
	r := setupRouter(t, mocks.NewMockUserUsecase())
	payload := dto.CreateUserRequest{
		Username: "testuser",
		Email:    "test@example.com",
		// Password omitted intentionally
	}

	w := doRequest(r, http.MethodPost, "/api/v1/auth/register", payload, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Field validation for 'Password' failed on the 'required' tag")
}

func TestRegister_PasswordOverBcryptLimit(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupRouter(t, mockUsecase)
	payload := dto.CreateUserRequest{
		Username: "newuser",
		Email:    "new@example.com",
		Password: "Aa1!" + strings.Repeat("x", 69),
	}

	w := doRequest(r, http.MethodPost, "/api/v1/auth/register", payload, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "'max' tag")
	assert.Empty(t, mockUsecase.LastRegisterInput.Username)
}

func TestRegister_Failures(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"duplicate username", apperror.ErrDuplicateUsername, http.StatusConflict, "Username already exists."},
		{"duplicate email", apperror.ErrDuplicateEmail, http.StatusConflict, "User with this email has already been registered"},
		{"weak password", apperror.New(apperror.KindWeakPassword, "password must be at least 8 characters"), http.StatusBadRequest, "at least 8 characters"},
		{"invalid email", apperror.ErrInvalidEmail, http.StatusBadRequest, "Invalid email"},
		{"blank name", apperror.New(apperror.KindBlankField, "firstname may be omitted, but can not be blank"), http.StatusBadRequest, "can not be blank"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsecase := mocks.NewMockUserUsecase()
			mockUsecase.ShouldFailRegister = true
			mockUsecase.Err = tt.err
			r := setupRouter(t, mockUsecase)
			payload := dto.CreateUserRequest{Username: "u", Email: "e@example.com", Password: "p"}

			w := doRequest(r, http.MethodPost, "/api/v1/auth/register", payload, "")

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
		})
	}
}

func TestLogin(t *testing.T) {
	r := setupRouter(t, mocks.NewMockUserUsecase())
	payload := dto.LoginRequest{
		Username: "test@example.com",
		Password: "Password123!",
	}

	w := doRequest(r, http.MethodPost, "/api/v1/auth/login", payload, "")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "mock_access_token", resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, "mock-user-id", resp.User.ID)
}

func TestLogin_Fail(t *testing.T) {
	tests := []struct {
		name string
		err  error
		body string
	}{
		{"invalid credentials", apperror.ErrInvalidCredentials, "does not exist"},
		{"disabled", apperror.ErrAccountDisabled, "account is disabled"},
		{"locked", apperror.ErrAccountLocked, "account is locked"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsecase := mocks.NewMockUserUsecase()
			mockUsecase.ShouldFailLogin = true
			mockUsecase.Err = tt.err
			r := setupRouter(t, mockUsecase)

			w := doRequest(r, http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Username: "x", Password: "y"}, "")

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
		})
	}
}

func TestLogout(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupRouter(t, mockUsecase)

	w := doRequest(r, http.MethodPost, "/api/v1/auth/logout", nil, "mock_access_token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "mock_access_token", mockUsecase.LoggedOutToken)

	w = doRequest(r, http.MethodPost, "/api/v1/auth/logout", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	r := setupRouter(t, mocks.NewMockUserUsecase())

	w := doRequest(r, http.MethodGet, "/api/v1/users/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(r, http.MethodGet, "/api/v1/users/me", nil, "forged")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutes_DisabledCaller(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.ShouldFailAuthenticate = true
	r := setupRouter(t, mockUsecase)

	w := doRequest(r, http.MethodGet, "/api/v1/users/me", nil, "mock_access_token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "account is disabled")
}

func TestGetCurrentUser(t *testing.T) {
	r := setupRouter(t, mocks.NewMockUserUsecase())

	w := doRequest(r, http.MethodGet, "/api/v1/users/me", nil, "mock_access_token")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mock-user-id")
}

func TestGetUser(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupRouter(t, mockUsecase)

	w := doRequest(r, http.MethodGet, "/api/v1/users/abc-123", nil, "mock_access_token")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "abc-123")
	assert.Equal(t, "abc-123", mockUsecase.LastTargetID)
}

func TestGetUser_Fail(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", apperror.ErrNotFound, http.StatusNotFound},
		{"forbidden", apperror.ErrForbidden, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsecase := mocks.NewMockUserUsecase()
			mockUsecase.ShouldFailGetByID = true
			mockUsecase.Err = tt.err
			r := setupRouter(t, mockUsecase)

			w := doRequest(r, http.MethodGet, "/api/v1/users/abc-123", nil, "mock_access_token")

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestUnexpectedErrorsDoNotLeak(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.ShouldFailGetByID = true
	mockUsecase.Err = errors.New("dial tcp 10.0.0.5:5432: connection refused")
	r := setupRouter(t, mockUsecase)

	w := doRequest(r, http.MethodGet, "/api/v1/users/abc-123", nil, "mock_access_token")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
}

func TestListUsers(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupRouter(t, mockUsecase)

	w := doRequest(r, http.MethodGet, "/api/v1/users", nil, "mock_access_token")
	assert.Equal(t, http.StatusOK, w.Code)
	var users []dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	assert.Len(t, users, 1)

	mockUsecase.ShouldFailListAll = true
	w = doRequest(r, http.MethodGet, "/api/v1/users", nil, "mock_access_token")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteUser(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupRouter(t, mockUsecase)

	w := doRequest(r, http.MethodDelete, "/api/v1/users/abc-123", nil, "mock_access_token")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "abc-123", mockUsecase.LastTargetID)

	mockUsecase.ShouldFailDelete = true
	w = doRequest(r, http.MethodDelete, "/api/v1/users/missing", nil, "mock_access_token")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetUserStatus(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupRouter(t, mockUsecase)

	w := doRequest(r, http.MethodPatch, "/api/v1/users/abc-123/status?action=DISABLE", nil, "mock_access_token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "DISABLE", mockUsecase.LastAction)
	assert.Contains(t, w.Body.String(), `"enabled":false`)

	mockUsecase.ShouldFailSetEnabled = true
	w = doRequest(r, http.MethodPatch, "/api/v1/users/abc-123/status?action=SUSPEND", nil, "mock_access_token")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid action.")
}

func TestUpdateUser(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupRouter(t, mockUsecase)

	w := doRequest(r, http.MethodPatch, "/api/v1/users/abc-123", dto.UpdateUserRequest{LastName: strPtr("Smith")}, "mock_access_token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"lastname":"Smith"`)
	assert.Nil(t, mockUsecase.LastPatch.FirstName)

	mockUsecase.ShouldFailUpdate = true
	w = doRequest(r, http.MethodPatch, "/api/v1/users/abc-123", dto.UpdateUserRequest{}, "mock_access_token")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHealthzAndMetrics(t *testing.T) {
	r := setupRouter(t, mocks.NewMockUserUsecase())

	w := doRequest(r, http.MethodGet, "/healthz", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	_ = doRequest(r, http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{Username: "x", Password: "y"}, "")
	w = doRequest(r, http.MethodGet, "/metrics", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pets_http_requests_total")
	assert.Contains(t, w.Body.String(), `pets_auth_logins_total{outcome="success"} 1`)
}
