package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/feature/auth/usecase"
	jwtmw "auth_backend/internal/platform/jwt"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	RegisterFunc    func(ctx context.Context, name, email, password string) (string, error)
	LoginFunc       func(ctx context.Context, email, password string) (string, error)
	CurrentUserFunc func(ctx context.Context, id uint) (*entity.User, error)

	calls int
}

// Register is the mock implementation of the Register method.
func (m *mockAuthUsecase) Register(ctx context.Context, name, email, password string) (string, error) {
	m.calls++
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, name, email, password)
	}
	return "mock-jwt-token", nil
}

// Login is the mock implementation of the Login method.
func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	m.calls++
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return "", usecase.ErrInvalidCredentials // Default: failure
}

// CurrentUser is the mock implementation of the CurrentUser method.
func (m *mockAuthUsecase) CurrentUser(ctx context.Context, id uint) (*entity.User, error) {
	m.calls++
	if m.CurrentUserFunc != nil {
		return m.CurrentUserFunc(ctx, id)
	}
	return nil, usecase.ErrUserNotFound
}

func postJSON(r *gin.Engine, path string, body gin.H) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorMsgs(t *testing.T, w *httptest.ResponseRecorder) []string {
	t.Helper()
	var body struct {
		Errors []struct {
			Msg string `json:"msg"`
		} `json:"errors"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	msgs := make([]string, 0, len(body.Errors))
	for _, e := range body.Errors {
		msgs = append(msgs, e.Msg)
	}
	return msgs
}

func TestAuthHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name             string
		requestBody      gin.H
		mockRegisterFunc func(ctx context.Context, name, email, password string) (string, error)
		expectedStatus   int
		expectedToken    string
		expectedMsgs     []string
		usecaseCalled    bool
	}{
		{
			name:        "success: user registration returns a token",
			requestBody: gin.H{"name": "Ann", "email": "ann@x.com", "password": "secret1"},
			mockRegisterFunc: func(ctx context.Context, name, email, password string) (string, error) {
				return "mock-jwt-token", nil
			},
			expectedStatus: http.StatusCreated,
			expectedToken:  "mock-jwt-token",
			usecaseCalled:  true,
		},
		{
			name:           "failure: empty name",
			requestBody:    gin.H{"name": "", "email": "ann@x.com", "password": "secret1"},
			expectedStatus: http.StatusBadRequest,
			expectedMsgs:   []string{"Name is required"},
		},
		{
			name:           "failure: invalid email address",
			requestBody:    gin.H{"name": "Ann", "email": "not-an-email", "password": "secret1"},
			expectedStatus: http.StatusBadRequest,
			expectedMsgs:   []string{"Please use a valid email address"},
		},
		{
			name:           "failure: short password",
			requestBody:    gin.H{"name": "Ann", "email": "ann@x.com", "password": "12345"},
			expectedStatus: http.StatusBadRequest,
			expectedMsgs:   []string{"Password must be at least 6 characters in length"},
		},
		{
			name:           "failure: all fields invalid lists every message",
			requestBody:    gin.H{"name": "", "email": "not-an-email", "password": "123"},
			expectedStatus: http.StatusBadRequest,
			expectedMsgs: []string{
				"Name is required",
				"Please use a valid email address",
				"Password must be at least 6 characters in length",
			},
		},
		{
			name:        "failure: duplicate email",
			requestBody: gin.H{"name": "Ann", "email": "existing@x.com", "password": "secret1"},
			mockRegisterFunc: func(ctx context.Context, name, email, password string) (string, error) {
				return "", usecase.ErrEmailAlreadyExists
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsgs:   []string{"User already exists"},
			usecaseCalled:  true,
		},
		{
			name:        "failure: store unavailable",
			requestBody: gin.H{"name": "Ann", "email": "ann@x.com", "password": "secret1"},
			mockRegisterFunc: func(ctx context.Context, name, email, password string) (string, error) {
				return "", errors.New("dial tcp: connection refused")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsgs:   []string{"Server error"},
			usecaseCalled:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{RegisterFunc: tt.mockRegisterFunc}
			h := NewAuthHandler(mockUC)

			router := gin.New()
			router.POST("/auth/register", h.Register)

			w := postJSON(router, "/auth/register", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedToken != "" {
				var body map[string]string
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedToken, body["token"])
			}
			if tt.expectedMsgs != nil {
				assert.Equal(t, tt.expectedMsgs, errorMsgs(t, w))
			}
			if !tt.usecaseCalled {
				assert.Zero(t, mockUC.calls, "usecase must not run for invalid input")
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    gin.H
		mockLoginFunc  func(ctx context.Context, email, password string) (string, error)
		expectedStatus int
		expectedToken  string
		expectedMsgs   []string
		usecaseCalled  bool
	}{
		{
			name:        "success: user login",
			requestBody: gin.H{"email": "ann@x.com", "password": "secret1"},
			mockLoginFunc: func(ctx context.Context, email, password string) (string, error) {
				return "mock-jwt-token", nil
			},
			expectedStatus: http.StatusOK,
			expectedToken:  "mock-jwt-token",
			usecaseCalled:  true,
		},
		{
			name:           "failure: invalid email address",
			requestBody:    gin.H{"email": "not-an-email", "password": "secret1"},
			expectedStatus: http.StatusBadRequest,
			expectedMsgs:   []string{"Please enter a valid email address"},
		},
		{
			name:           "failure: missing password",
			requestBody:    gin.H{"email": "ann@x.com"},
			expectedStatus: http.StatusBadRequest,
			expectedMsgs:   []string{"Password is required"},
		},
		{
			name:        "failure: wrong credentials",
			requestBody: gin.H{"email": "ann@x.com", "password": "wrong1"},
			mockLoginFunc: func(ctx context.Context, email, password string) (string, error) {
				return "", usecase.ErrInvalidCredentials
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsgs:   []string{"Invalid credentials"},
			usecaseCalled:  true,
		},
		{
			name:        "failure: store unavailable",
			requestBody: gin.H{"email": "ann@x.com", "password": "secret1"},
			mockLoginFunc: func(ctx context.Context, email, password string) (string, error) {
				return "", errors.New("dial tcp: connection refused")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsgs:   []string{"Server error"},
			usecaseCalled:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{LoginFunc: tt.mockLoginFunc}
			h := NewAuthHandler(mockUC)

			router := gin.New()
			router.POST("/auth/login", h.Login)

			w := postJSON(router, "/auth/login", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedToken != "" {
				var body map[string]string
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedToken, body["token"])
			}
			if tt.expectedMsgs != nil {
				assert.Equal(t, tt.expectedMsgs, errorMsgs(t, w))
			}
			if !tt.usecaseCalled {
				assert.Zero(t, mockUC.calls, "usecase must not run for invalid input")
			}
		})
	}
}

func TestAuthHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	// setUserID simulates the JWT middleware having authenticated the request.
	setUserID := func(id uint) gin.HandlerFunc {
		return func(c *gin.Context) {
			if id != 0 {
				c.Set(jwtmw.ContextUserID, id)
			}
			c.Next()
		}
	}

	t.Run("success: returns the user without the password hash", func(t *testing.T) {
		mockUC := &mockAuthUsecase{
			CurrentUserFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				assert.Equal(t, uint(7), id)
				return &entity.User{
					ID:        7,
					Name:      "Ann",
					Email:     "ann@x.com",
					Avatar:    "https://www.gravatar.com/avatar/x",
					CreatedAt: created,
				}, nil
			},
		}
		h := NewAuthHandler(mockUC)

		router := gin.New()
		router.GET("/auth/me", setUserID(7), h.Me)

		req, _ := http.NewRequest(http.MethodGet, "/auth/me", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, float64(7), body["id"])
		assert.Equal(t, "Ann", body["name"])
		assert.Equal(t, "ann@x.com", body["email"])
		assert.NotContains(t, body, "password", "password must never appear on the wire")
	})

	t.Run("failure: no authenticated user in context", func(t *testing.T) {
		mockUC := &mockAuthUsecase{}
		h := NewAuthHandler(mockUC)

		router := gin.New()
		router.GET("/auth/me", setUserID(0), h.Me)

		req, _ := http.NewRequest(http.MethodGet, "/auth/me", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Zero(t, mockUC.calls)
	})

	t.Run("failure: token resolves to a missing user", func(t *testing.T) {
		mockUC := &mockAuthUsecase{
			CurrentUserFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return nil, usecase.ErrUserNotFound
			},
		}
		h := NewAuthHandler(mockUC)

		router := gin.New()
		router.GET("/auth/me", setUserID(7), h.Me)

		req, _ := http.NewRequest(http.MethodGet, "/auth/me", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("failure: store unavailable", func(t *testing.T) {
		mockUC := &mockAuthUsecase{
			CurrentUserFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return nil, errors.New("dial tcp: connection refused")
			},
		}
		h := NewAuthHandler(mockUC)

		router := gin.New()
		router.GET("/auth/me", setUserID(7), h.Me)

		req, _ := http.NewRequest(http.MethodGet, "/auth/me", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, []string{"Server error"}, errorMsgs(t, w))
	})
}
