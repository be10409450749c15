package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"superlists/internal/model"
)

type stubResolver struct {
	users map[string]*model.User
	err   error
	calls int
}

func (s *stubResolver) ResolveUserForSession(_ context.Context, email string) (*model.User, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.users[email], nil
}

func cookieRequest(t *testing.T, email, secret string) *http.Request {
	t.Helper()
	rrCookie := httptest.NewRecorder()
	if err := SetLoginCookie(rrCookie, email, secret, time.Hour); err != nil {
		t.Fatalf("SetLoginCookie: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rrCookie.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

// Тест: SetLoginCookie + WithAuth — пользователь попадает в контекст
func TestWithAuth_ValidCookieSetsUser(t *testing.T) {
	const secret = "test-secret"
	resolver := &stubResolver{users: map[string]*model.User{
		"edith@example.com": {Email: "edith@example.com"},
	}}

	var got string
	h := WithAuth(secret, resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if u, ok := GetUserFromContext(r.Context()); ok {
			got = u.Email
		}
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, cookieRequest(t, "edith@example.com", secret))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid cookie, got %d", rr.Code)
	}
	if got != "edith@example.com" {
		t.Fatalf("expected user in context, got %q", got)
	}
}

// Тест: отсутствие cookie — запрос анонимный, резолвер не вызывается
func TestWithAuth_NoCookieLeavesAnonymous(t *testing.T) {
	resolver := &stubResolver{}
	h := WithAuth("any-secret", resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserFromContext(r.Context()); ok {
			t.Fatalf("user must not be set without cookie")
		}
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if resolver.calls != 0 {
		t.Fatalf("resolver must not be called, got %d calls", resolver.calls)
	}
}

// Тест: cookie подписана другим секретом — запрос анонимный
func TestWithAuth_InvalidToken(t *testing.T) {
	resolver := &stubResolver{users: map[string]*model.User{"a@b.com": {Email: "a@b.com"}}}
	h := WithAuth("secret-B", resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserFromContext(r.Context()); ok {
			t.Fatalf("user must not be set with invalid token")
		}
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, cookieRequest(t, "a@b.com", "secret-A"))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

// Тест: пользователь из cookie удалён — запрос анонимный
func TestWithAuth_UnknownUser(t *testing.T) {
	resolver := &stubResolver{users: map[string]*model.User{}}
	h := WithAuth("s", resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserFromContext(r.Context()); ok {
			t.Fatalf("user must not be set for unknown email")
		}
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, cookieRequest(t, "gone@example.com", "s"))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

// Тест: ошибка хранилища — 500
func TestWithAuth_ResolverError(t *testing.T) {
	resolver := &stubResolver{err: errors.New("db down")}
	h := WithAuth("s", resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("next must not be called on resolver error")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, cookieRequest(t, "x@example.com", "s"))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
}

func TestClearLoginCookie(t *testing.T) {
	rr := httptest.NewRecorder()
	ClearLoginCookie(rr)

	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "auth_token" || cookies[0].MaxAge >= 0 {
		t.Fatalf("expected expired auth_token cookie, got %#v", cookies)
	}
}
