package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workout-tracker/backend/internal/account/domain"
	"github.com/workout-tracker/backend/internal/account/service"
	"github.com/workout-tracker/backend/internal/common/logger"
)

type stubAccounts struct {
	registerFn func(ctx context.Context, input service.RegisterInput) (domain.ID, error)
	loginFn    func(ctx context.Context, input service.LoginInput) (domain.Profile, error)
	getByIDFn  func(ctx context.Context, rawID string) (domain.Profile, error)
}

func (s *stubAccounts) Register(ctx context.Context, input service.RegisterInput) (domain.ID, error) {
	if s.registerFn != nil {
		return s.registerFn(ctx, input)
	}
	return "", service.ErrStoreUnavailable
}

func (s *stubAccounts) Login(ctx context.Context, input service.LoginInput) (domain.Profile, error) {
	if s.loginFn != nil {
		return s.loginFn(ctx, input)
	}
	return domain.Profile{}, service.ErrInvalidCredentials
}

func (s *stubAccounts) GetByID(ctx context.Context, rawID string) (domain.Profile, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, rawID)
	}
	return domain.Profile{}, service.ErrAccountNotFound
}

func newTestHandler(t *testing.T, accounts AccountService) http.Handler {
	t.Helper()
	log, err := logger.New("", "test", "error")
	require.NoError(t, err)
	return NewHandler(accounts, 5*time.Second, log)
}

func doJSON(t *testing.T, handler http.Handler, method, url, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, url, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestRegisterEndpoint_Success(t *testing.T) {
	handler := newTestHandler(t, &stubAccounts{
		registerFn: func(ctx context.Context, input service.RegisterInput) (domain.ID, error) {
			assert.Equal(t, "pinco", input.Username)
			assert.Equal(t, "pinco@example.com", input.Email)
			assert.Equal(t, "12345", input.Password)
			return "3f0e9f6a-2c1e-4f7a-9b2d-5a8c61e0d9a4", nil
		},
	})

	w := doJSON(t, handler, http.MethodPost, "/register",
		`{"username":"pinco","email":"pinco@example.com","password":"12345"}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "3f0e9f6a-2c1e-4f7a-9b2d-5a8c61e0d9a4", resp["userId"])
	assert.NotEmpty(t, resp["message"])
}

func TestRegisterEndpoint_Duplicate(t *testing.T) {
	handler := newTestHandler(t, &stubAccounts{
		registerFn: func(ctx context.Context, input service.RegisterInput) (domain.ID, error) {
			return "", service.ErrDuplicateAccount
		},
	})

	w := doJSON(t, handler, http.MethodPost, "/register",
		`{"username":"pinco","email":"pinco@example.com","password":"12345"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Username o email già registrati", resp["error"])
}

func TestRegisterEndpoint_MissingFields(t *testing.T) {
	called := false
	handler := newTestHandler(t, &stubAccounts{
		registerFn: func(ctx context.Context, input service.RegisterInput) (domain.ID, error) {
			called = true
			return "x", nil
		},
	})

	w := doJSON(t, handler, http.MethodPost, "/register", `{"username":"pinco"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, called, "invalid payloads must not reach the service")
}

func TestRegisterEndpoint_InvalidJSON(t *testing.T) {
	handler := newTestHandler(t, &stubAccounts{})

	w := doJSON(t, handler, http.MethodPost, "/register", `{"username":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginEndpoint_Success(t *testing.T) {
	workouts := json.RawMessage(`[{"nome":"stacco","serie":5}]`)
	handler := newTestHandler(t, &stubAccounts{
		loginFn: func(ctx context.Context, input service.LoginInput) (domain.Profile, error) {
			return domain.Profile{
				ID:            "3f0e9f6a-2c1e-4f7a-9b2d-5a8c61e0d9a4",
				Username:      "pinco",
				Email:         "pinco@example.com",
				SavedWorkouts: workouts,
			}, nil
		},
	})

	w := doJSON(t, handler, http.MethodPost, "/login",
		`{"email":"pinco@example.com","password":"12345"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		User    struct {
			ID            string          `json:"id"`
			Username      string          `json:"username"`
			Email         string          `json:"email"`
			SavedWorkouts json.RawMessage `json:"allenamenti_salvati"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "3f0e9f6a-2c1e-4f7a-9b2d-5a8c61e0d9a4", resp.User.ID)
	assert.Equal(t, "pinco", resp.User.Username)
	assert.JSONEq(t, string(workouts), string(resp.User.SavedWorkouts))
	assert.NotContains(t, w.Body.String(), "password")
}

func TestLoginEndpoint_InvalidCredentials(t *testing.T) {
	handler := newTestHandler(t, &stubAccounts{})

	w := doJSON(t, handler, http.MethodPost, "/login",
		`{"email":"pinco@example.com","password":"wrong"}`)

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)
}

func TestLoginEndpoint_StoreFault(t *testing.T) {
	handler := newTestHandler(t, &stubAccounts{
		loginFn: func(ctx context.Context, input service.LoginInput) (domain.Profile, error) {
			return domain.Profile{}, service.ErrStoreUnavailable
		},
	})

	w := doJSON(t, handler, http.MethodPost, "/login",
		`{"email":"pinco@example.com","password":"12345"}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.NotContains(t, w.Body.String(), "connection")
}

func TestGetUserEndpoint_Success(t *testing.T) {
	created := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	handler := newTestHandler(t, &stubAccounts{
		getByIDFn: func(ctx context.Context, rawID string) (domain.Profile, error) {
			return domain.Profile{
				ID:            domain.ID(rawID),
				Username:      "pinco",
				Email:         "pinco@example.com",
				SavedWorkouts: json.RawMessage(`[]`),
				CreatedAt:     created,
			}, nil
		},
	})

	w := doJSON(t, handler, http.MethodGet, "/user/3f0e9f6a-2c1e-4f7a-9b2d-5a8c61e0d9a4", "")

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pinco", resp["username"])
	assert.NotContains(t, resp, "password")
	assert.NotContains(t, resp, "password_hash")
}

func TestGetUserEndpoint_NotFound(t *testing.T) {
	handler := newTestHandler(t, &stubAccounts{})

	w := doJSON(t, handler, http.MethodGet, "/user/3f0e9f6a-2c1e-4f7a-9b2d-5a8c61e0d9a4", "")

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestGetUserEndpoint_MalformedID(t *testing.T) {
	handler := newTestHandler(t, &stubAccounts{
		getByIDFn: func(ctx context.Context, rawID string) (domain.Profile, error) {
			return domain.Profile{}, service.ErrInvalidIdentifier
		},
	})

	w := doJSON(t, handler, http.MethodGet, "/user/not-a-uuid", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	handler := newTestHandler(t, &stubAccounts{})

	for _, url := range []string{"/register", "/login"} {
		w := doJSON(t, handler, http.MethodGet, url, "")
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, url)
	}

	w := doJSON(t, handler, http.MethodPost, "/user/3f0e9f6a-2c1e-4f7a-9b2d-5a8c61e0d9a4", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
