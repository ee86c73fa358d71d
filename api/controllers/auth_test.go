package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/angelmondragon/healthtrack-backend/api/middleware"
	"github.com/angelmondragon/healthtrack-backend/internal/auth"
	"github.com/angelmondragon/healthtrack-backend/internal/users"
	pkgerrors "github.com/angelmondragon/healthtrack-backend/pkg/errors"
)

type stubAuthService struct {
	signup     *auth.SignupResponse
	login      *auth.LoginResponse
	profile    *auth.ProfileResponse
	valid      bool
	err        error
	loggedOut  uint
	deleted    uint
	checkedTok string
}

func (s *stubAuthService) Signup(ctx context.Context, req auth.SignupRequest) (*auth.SignupResponse, error) {
	return s.signup, s.err
}

func (s *stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
	return s.login, s.err
}

func (s *stubAuthService) Logout(ctx context.Context, userID uint) error {
	s.loggedOut = userID
	return s.err
}

func (s *stubAuthService) TokenCheck(ctx context.Context, token string) (bool, error) {
	s.checkedTok = token
	return s.valid, s.err
}

func (s *stubAuthService) Authenticate(ctx context.Context, token string) (*auth.Identity, error) {
	return nil, s.err
}

func (s *stubAuthService) Profile(ctx context.Context, identity auth.Identity) (*auth.ProfileResponse, error) {
	return s.profile, s.err
}

func (s *stubAuthService) DeleteAccount(ctx context.Context, userID uint) error {
	s.deleted = userID
	return s.err
}

func TestAuthSignupSuccess(t *testing.T) {
	svc := &stubAuthService{signup: &auth.SignupResponse{
		Message: "User registered successfully",
		Token:   "tok",
		User:    &users.UserDTO{ID: 1, UserName: "alice", PhoneNo: "555"},
	}}
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(`{"username":"alice","phoneno":"555","password":"pw"}`))
	resp := httptest.NewRecorder()
	AuthSignup(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"token":"tok"`) {
		t.Fatalf("expected token in body, got %s", resp.Body.String())
	}
}

func TestAuthSignupRejectsInvalidBody(t *testing.T) {
	svc := &stubAuthService{}
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(`{"username":"alice"}`))
	resp := httptest.NewRecorder()
	AuthSignup(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAuthLoginMapsServiceErrors(t *testing.T) {
	svc := &stubAuthService{err: pkgerrors.New(pkgerrors.CodeInvalidCredentials, "invalid password")}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"mobile":"555","password":"bad"}`))
	resp := httptest.NewRecorder()
	AuthLogin(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "INVALID_CREDENTIALS") {
		t.Fatalf("unexpected body %s", resp.Body.String())
	}
}

func TestAuthLegacyRejectionsReportBadRequest(t *testing.T) {
	svc := &stubAuthService{err: pkgerrors.New(pkgerrors.CodeConflict, "user with this phone number already exists")}
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(`{"username":"alice","phoneno":"555","password":"pw"}`))
	resp := httptest.NewRecorder()
	AuthSignup(svc, nil).ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest || !strings.Contains(resp.Body.String(), `"code":"CONFLICT"`) {
		t.Fatalf("signup conflict: got %d %s", resp.Code, resp.Body.String())
	}

	svc.err = pkgerrors.New(pkgerrors.CodeNotFound, "user with this phone number does not exist")
	req = httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"mobile":"555","password":"pw"}`))
	resp = httptest.NewRecorder()
	AuthLogin(svc, nil).ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest || !strings.Contains(resp.Body.String(), `"code":"NOT_FOUND"`) {
		t.Fatalf("login unknown phone: got %d %s", resp.Code, resp.Body.String())
	}

	svc.err = pkgerrors.Wrap(pkgerrors.CodeDependency, errors.New("timeout"), "find user timed out")
	resp = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"mobile":"555","password":"pw"}`))
	AuthLogin(svc, nil).ServeHTTP(resp, req)
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", resp.Code)
	}
}

func TestAuthNilServiceIsInternal(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{}`))
	resp := httptest.NewRecorder()
	AuthLogin(nil, nil).ServeHTTP(resp, req)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.Code)
	}
}

func TestAuthTokenIsValid(t *testing.T) {
	svc := &stubAuthService{valid: true}

	req := httptest.NewRequest(http.MethodPost, "/tokenIsValid", nil)
	resp := httptest.NewRecorder()
	AuthTokenIsValid(svc, nil).ServeHTTP(resp, req)
	if resp.Code != http.StatusOK || strings.TrimSpace(resp.Body.String()) != `false` {
		t.Fatalf("missing header: got %d %s", resp.Code, resp.Body.String())
	}
	if svc.checkedTok != "" {
		t.Fatalf("service must not be called without a token")
	}

	req = httptest.NewRequest(http.MethodPost, "/tokenIsValid", nil)
	req.Header.Set(TokenHeader, "abc")
	resp = httptest.NewRecorder()
	AuthTokenIsValid(svc, nil).ServeHTTP(resp, req)
	if strings.TrimSpace(resp.Body.String()) != `true` {
		t.Fatalf("unexpected body %s", resp.Body.String())
	}
	if svc.checkedTok != "abc" {
		t.Fatalf("expected token abc, got %q", svc.checkedTok)
	}

	svc.err = pkgerrors.Wrap(pkgerrors.CodeDependency, errors.New("timeout"), "find user timed out")
	resp = httptest.NewRecorder()
	AuthTokenIsValid(svc, nil).ServeHTTP(resp, req)
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", resp.Code)
	}
}

func TestAuthLogoutAndDeleteUseIdentity(t *testing.T) {
	svc := &stubAuthService{}
	ctx := middleware.WithIdentity(context.Background(), auth.Identity{UserID: 9, Token: "tok"})

	resp := httptest.NewRecorder()
	AuthLogout(svc, nil).ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/logout", nil).WithContext(ctx))
	if resp.Code != http.StatusOK || svc.loggedOut != 9 {
		t.Fatalf("logout: status %d user %d", resp.Code, svc.loggedOut)
	}

	resp = httptest.NewRecorder()
	AuthDeleteAccount(svc, nil).ServeHTTP(resp, httptest.NewRequest(http.MethodDelete, "/", nil).WithContext(ctx))
	if resp.Code != http.StatusOK || svc.deleted != 9 {
		t.Fatalf("delete: status %d user %d", resp.Code, svc.deleted)
	}
	if strings.TrimSpace(resp.Body.String()) != `{"data":{"deletedID":9}}` {
		t.Fatalf("unexpected body %s", resp.Body.String())
	}

	resp = httptest.NewRecorder()
	AuthLogout(svc, nil).ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/logout", nil))
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without identity, got %d", resp.Code)
	}
}
