package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/esportscoach/coaching-platform/internal/core/domain"
	"github.com/esportscoach/coaching-platform/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error)
	loginFn    func(ctx context.Context, email, password string) (*ports.AuthResult, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) CurrentCaller(ctx context.Context) *domain.Principal {
	p, _ := domain.PrincipalFromContext(ctx)
	return p
}

func aliceResult() *ports.AuthResult {
	return &ports.AuthResult{
		Token: "signed-token",
		User:  domain.UserSummary{ID: "u1", Username: "alice", Email: "alice@x.com", Role: domain.RoleUser},
	}
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func httpErrorCode(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	return he.Code
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
			if in.Username != "alice" || in.Email != "alice@x.com" || in.Password != "secret1" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return aliceResult(), nil
		},
	}
	c, rec := newJSONContext(http.MethodPost, "/api/auth/register",
		`{"username":"alice","email":"alice@x.com","password":"secret1"}`)

	if err := NewAuthHandler(stub).Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "signed-token" || resp["type"] != "Bearer" || resp["role"] != "USER" {
		t.Fatalf("unexpected response: %v", resp)
	}
	if _, leaked := resp["password_hash"]; leaked {
		t.Fatalf("password hash must not be returned")
	}
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	bodies := map[string]string{
		"short username": `{"username":"al","email":"alice@x.com","password":"secret1"}`,
		"long username":  `{"username":"aaaaaaaaaaaaaaaaaaaaa","email":"alice@x.com","password":"secret1"}`,
		"bad email":      `{"username":"alice","email":"not-an-email","password":"secret1"}`,
		"short password": `{"username":"alice","email":"alice@x.com","password":"12345"}`,
		"blank username": `{"username":"     ","email":"alice@x.com","password":"secret1"}`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			stub := &stubAuthService{
				registerFn: func(context.Context, ports.RegisterInput) (*ports.AuthResult, error) {
					t.Fatalf("service must not be called")
					return nil, nil
				},
			}
			c, _ := newJSONContext(http.MethodPost, "/api/auth/register", body)
			err := NewAuthHandler(stub).Register(c)
			if code := httpErrorCode(t, err); code != http.StatusUnprocessableEntity {
				t.Fatalf("expected 422, got %d", code)
			}
		})
	}
}

func TestAuthHandler_Register_InvalidJSON(t *testing.T) {
	c, _ := newJSONContext(http.MethodPost, "/api/auth/register", `{"username":`)
	err := NewAuthHandler(&stubAuthService{}).Register(c)
	if code := httpErrorCode(t, err); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestAuthHandler_Register_ConflictPassesThrough(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*ports.AuthResult, error) {
			return nil, domain.ErrUsernameTaken
		},
	}
	c, _ := newJSONContext(http.MethodPost, "/api/auth/register",
		`{"username":"alice","email":"alice@x.com","password":"secret1"}`)

	err := NewAuthHandler(stub).Register(c)
	if !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (*ports.AuthResult, error) {
			if email != "alice@x.com" || password != "secret1" {
				t.Fatalf("unexpected credentials")
			}
			return aliceResult(), nil
		},
	}
	c, rec := newJSONContext(http.MethodPost, "/api/auth/login", `{"email":"alice@x.com","password":"secret1"}`)

	if err := NewAuthHandler(stub).Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ID != "u1" || resp.Username != "alice" || resp.Email != "alice@x.com" {
		t.Fatalf("unexpected identity: %+v", resp)
	}
}

func TestAuthHandler_Login_BlankFields(t *testing.T) {
	c, _ := newJSONContext(http.MethodPost, "/api/auth/login", `{"email":"  ","password":""}`)
	err := NewAuthHandler(&stubAuthService{}).Login(c)
	if code := httpErrorCode(t, err); code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (*ports.AuthResult, error) {
			return nil, domain.ErrBadCredentials
		},
	}
	c, _ := newJSONContext(http.MethodPost, "/api/auth/login", `{"email":"alice@x.com","password":"wrong"}`)

	if err := NewAuthHandler(stub).Login(c); !errors.Is(err, domain.ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newJSONContext(http.MethodGet, "/api/auth/me", "")
	if err := h.Me(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}

	c, rec := newJSONContext(http.MethodGet, "/api/auth/me", "")
	p := &domain.Principal{ID: "u1", Username: "alice", Role: domain.RoleUser, Authority: "ROLE_USER"}
	c.SetRequest(c.Request().WithContext(domain.ContextWithPrincipal(c.Request().Context(), p)))
	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"authority":"ROLE_USER"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
