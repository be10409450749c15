package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"superlists/internal/config"
	"superlists/internal/handlers"
	"superlists/internal/repo"
	"superlists/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type sentMail struct {
	Subject string
	Body    string
	From    string
	To      []string
}

// captureSender запоминает письма вместо отправки.
type captureSender struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (s *captureSender) Send(_ context.Context, subject, body, from string, to []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, sentMail{Subject: subject, Body: body, From: from, To: to})
	return nil
}

func (s *captureSender) last(t *testing.T) sentMail {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	require.NotEmpty(t, s.sent, "no mail was sent")
	return s.sent[len(s.sent)-1]
}

type testApp struct {
	router http.Handler
	cfg    *config.Config
	db     *gorm.DB
	mail   *captureSender
	lists  *service.ListService
	auth   *service.AuthService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	db, err := repo.InitDB("file:"+uuid.NewString()+"?mode=memory&cache=shared", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close(db) })

	cfg := &config.Config{
		AuthSecret:     "test-secret",
		SessionTTL:     time.Hour,
		PublicURL:      "http://testserver",
		EmailFrom:      "noreply@superlists",
		LoginRateLimit: 1000,
	}
	logger := zap.NewNop().Sugar()
	sender := &captureSender{}

	users := repo.NewUserRepository(db)
	authSvc := service.NewAuthService(users, repo.NewTokenRepository(db), sender, cfg.EmailFrom, logger)
	listSvc := service.NewListService(repo.NewListRepository(db), users, logger)
	h := handlers.NewHandler(authSvc, listSvc, logger, cfg)

	return &testApp{router: h.Router, cfg: cfg, db: db, mail: sender, lists: listSvc, auth: authSvc}
}

// do выполняет запрос с формой (если form != nil) и cookie.
func (a *testApp) do(t *testing.T, method, target string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, req)
	return rr
}

var loginLinkRe = regexp.MustCompile(`http://testserver(/accounts/login\?token=[0-9a-f-]+)`)

// login проходит полный цикл: письмо, ссылка, cookie сессии.
func (a *testApp) login(t *testing.T, email string) *http.Cookie {
	t.Helper()
	rr := a.do(t, http.MethodPost, "/accounts/send_login_email", url.Values{"email": {email}})
	require.Equal(t, http.StatusOK, rr.Code)

	m := loginLinkRe.FindStringSubmatch(a.mail.last(t).Body)
	require.Len(t, m, 2, "login link not found in mail body")

	rr = a.do(t, http.MethodGet, m[1], nil)
	require.Equal(t, http.StatusFound, rr.Code)
	cookie := authCookie(rr)
	require.NotNil(t, cookie, "auth cookie not set")
	return cookie
}

func authCookie(rr *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == "auth_token" && c.Value != "" {
			return c
		}
	}
	return nil
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))
	return v
}
