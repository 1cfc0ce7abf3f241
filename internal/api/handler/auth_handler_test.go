package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/workboard/workspace/internal/core/domain"
)

type stubAuthService struct {
	loginUser    *domain.User
	loginErr     error
	registerUser *domain.User
	registerErr  error
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (*domain.User, error) {
	return s.loginUser, s.loginErr
}

func (s *stubAuthService) Register(_ context.Context, _, _, _, _ string) (*domain.User, error) {
	return s.registerUser, s.registerErr
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v (%s)", err, rec.Body.String())
	}
	return out
}

func TestAuthHandler_Login_Success(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginUser: &domain.User{ID: 1, Username: "alice", Name: "Alice"},
	})
	c, rec := newTestContext(t, http.MethodPost, "/api/auth/login", `{"username":"alice","password":"pw"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := decodeEnvelope(t, rec)
	if body["success"] != true {
		t.Fatalf("expected success envelope, got %v", body)
	}
	data := body["data"].(map[string]any)
	if data["username"] != "alice" {
		t.Fatalf("unexpected data: %v", data)
	}
	if _, leaked := data["passwordHash"]; leaked {
		t.Fatalf("password hash must never be serialized")
	}
}

func TestAuthHandler_Login_InvalidCredentialsPropagates(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials})
	c, _ := newTestContext(t, http.MethodPost, "/api/auth/login", `{"username":"alice","password":"bad"}`)

	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandler_Login_MissingFieldsRejected(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, _ := newTestContext(t, http.MethodPost, "/api/auth/login", `{"username":"alice"}`)

	err := h.Login(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Register_Created(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		registerUser: &domain.User{ID: 2, Username: "bob", Name: "Bob"},
	})
	c, rec := newTestContext(t, http.MethodPost, "/api/auth/register", `{"username":"bob","password":"pw","name":"Bob"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	if body["message"] != "Registration successful" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}

func TestAuthHandler_Register_DuplicatePropagates(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{registerErr: domain.ErrUserExists})
	c, _ := newTestContext(t, http.MethodPost, "/api/auth/register", `{"username":"bob","password":"pw","name":"Bob"}`)

	if err := h.Register(c); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists to propagate, got %v", err)
	}
}

func TestAuthHandler_Register_BadEmailRejected(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	c, _ := newTestContext(t, http.MethodPost, "/api/auth/register", `{"username":"bob","password":"pw","name":"Bob","email":"not-an-email"}`)

	err := h.Register(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}
