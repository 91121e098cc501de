package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/taskboard-api/internal/api/middleware"
	"github.com/taskboard/taskboard-api/internal/core/domain"
	"github.com/taskboard/taskboard-api/internal/core/ports"
)

type stubAuthService struct {
	signupFn  func(ctx context.Context, in ports.SignupInput) (*domain.User, error)
	loginFn   func(ctx context.Context, email, password string) (string, *domain.User, error)
	refreshFn func(ctx context.Context, userID string) (string, *domain.User, error)
	logoutFn  func(ctx context.Context, meta ports.TokenMetadata) error
}

func (s *stubAuthService) Signup(ctx context.Context, in ports.SignupInput) (*domain.User, error) {
	return s.signupFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Refresh(ctx context.Context, userID string) (string, *domain.User, error) {
	return s.refreshFn(ctx, userID)
}

func (s *stubAuthService) Logout(ctx context.Context, meta ports.TokenMetadata) error {
	return s.logoutFn(ctx, meta)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func jsonRequest(e *echo.Echo, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, in ports.SignupInput) (*domain.User, error) {
			if in.FirstName != "Alice" || in.Email != "alice@example.com" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{
				ID:        "user_1",
				Email:     in.Email,
				Name:      "Alice Doe",
				FirstName: in.FirstName,
				LastName:  in.LastName,
				Role:      domain.RoleStandard,
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := jsonRequest(e, http.MethodPost, "/v1/auth/signup",
		`{"first_name":"Alice","last_name":"Doe","email":"alice@example.com","password":"longenough"}`)

	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, hasToken := resp["token"]; hasToken {
		t.Fatalf("signup must not issue a token")
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["email"] != "alice@example.com" || user["role"] != "standard" {
		t.Fatalf("unexpected user payload: %+v", resp)
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Fatalf("password hash must never be serialized")
	}
}

func TestAuthHandler_Signup_InvalidPayload(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, in ports.SignupInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, _ := jsonRequest(e, http.MethodPost, "/v1/auth/signup", "not-json")

	err := h.Signup(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Signup_ShortPassword(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, in ports.SignupInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, _ := jsonRequest(e, http.MethodPost, "/v1/auth/signup",
		`{"first_name":"Alice","email":"alice@example.com","password":"short"}`)

	err := h.Signup(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Signup_DuplicateEmail(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, in ports.SignupInput) (*domain.User, error) {
			return nil, domain.ErrEmailTaken
		},
	}
	h := NewAuthHandler(stub)

	c, _ := jsonRequest(e, http.MethodPost, "/v1/auth/signup",
		`{"first_name":"Bob","email":"bob@example.com","password":"longenough"}`)

	if err := h.Signup(c); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken to propagate, got %v", err)
	}
}

func TestAuthHandler_Signin_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			if email != "alice@example.com" || password != "longenough" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", &domain.User{ID: "user_1", Email: email, Role: domain.RoleStandard}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := jsonRequest(e, http.MethodPost, "/v1/auth/signin",
		`{"email":"alice@example.com","password":"longenough"}`)

	if err := h.Signin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
}

func TestAuthHandler_Signin_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, _ := jsonRequest(e, http.MethodPost, "/v1/auth/signin",
		`{"email":"alice@example.com","password":"wrong"}`)

	if err := h.Signin(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandler_Refresh_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		refreshFn: func(ctx context.Context, userID string) (string, *domain.User, error) {
			if userID != "user_1" {
				t.Fatalf("unexpected user id: %s", userID)
			}
			return "fresh-token", &domain.User{ID: userID}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := jsonRequest(e, http.MethodPost, "/v1/auth/refresh", "")
	c.Set(middleware.ClaimsKey, domain.Claims{UserID: "user_1", Role: domain.RoleStandard})

	if err := h.Refresh(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "fresh-token" {
		t.Fatalf("expected fresh token, got %v", resp["token"])
	}
}

func TestAuthHandler_Refresh_MissingClaims(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		refreshFn: func(ctx context.Context, userID string) (string, *domain.User, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, _ := jsonRequest(e, http.MethodPost, "/v1/auth/refresh", "")

	err := h.Refresh(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Logout_Success(t *testing.T) {
	e := newTestEcho()
	var revoked ports.TokenMetadata
	stub := &stubAuthService{
		logoutFn: func(ctx context.Context, meta ports.TokenMetadata) error {
			revoked = meta
			return nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := jsonRequest(e, http.MethodPost, "/v1/auth/logout", "")
	c.Set(middleware.ClaimsKey, domain.Claims{UserID: "user_1", Role: domain.RoleStandard})
	c.Set(middleware.TokenMetaKey, ports.TokenMetadata{ID: "tok_1", ExpiresAt: time.Now().UTC().Add(time.Hour)})

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if revoked.ID != "tok_1" {
		t.Fatalf("logout should pass the token metadata, got %+v", revoked)
	}
}
