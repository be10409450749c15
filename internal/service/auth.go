package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"superlists/internal/mail"
	"superlists/internal/metrics"
	"superlists/internal/model"
	"superlists/internal/repo"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	LoginEmailSubject = "Your login link for Superlists"
	LoginPath         = "/accounts/login"
)

// AuthService — вход без пароля по ссылке из письма.
type AuthService struct {
	users  repo.UserRepository
	tokens repo.TokenRepository
	mailer mail.Sender
	from   string
	logger *zap.SugaredLogger
}

// NewAuthService создаёт сервис. from — адрес отправителя писем со ссылкой.
func NewAuthService(users repo.UserRepository, tokens repo.TokenRepository, mailer mail.Sender, from string, logger *zap.SugaredLogger) *AuthService {
	return &AuthService{users: users, tokens: tokens, mailer: mailer, from: from, logger: logger}
}

// Authenticate обменивает идентификатор токена на пользователя.
// Неизвестный токен — не ошибка: возвращается (nil, nil) и ничего не создаётся.
// Для известного токена пользователь находится или создаётся; вызывающему это неразличимо.
func (s *AuthService) Authenticate(ctx context.Context, tokenID string) (*model.User, error) {
	tok, err := s.tokens.GetToken(ctx, tokenID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		metrics.Logins.WithLabelValues("invalid_token").Inc()
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find token: %w", err)
	}

	user, created, err := s.users.GetOrCreateUser(ctx, tok.Email)
	if err != nil {
		return nil, fmt.Errorf("get or create user: %w", err)
	}
	if created {
		s.logger.Infow("User created on first login", "email", user.Email)
		metrics.Logins.WithLabelValues("new_user").Inc()
	} else {
		metrics.Logins.WithLabelValues("ok").Inc()
	}
	return user, nil
}

// ResolveUserForSession восстанавливает пользователя по email из сессии.
// Отсутствие пользователя — (nil, nil), т.е. анонимный посетитель.
func (s *AuthService) ResolveUserForSession(ctx context.Context, email string) (*model.User, error) {
	if email == "" {
		return nil, nil
	}
	user, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve session user: %w", err)
	}
	return user, nil
}

// RequestLogin выдаёт новый токен и отправляет ссылку для входа на email.
// Снаружи результат всегда одинаков, зарегистрирован адрес или нет.
// Ошибку возвращает только сбой хранилища или почты.
func (s *AuthService) RequestLogin(ctx context.Context, email, baseURL string) error {
	email = strings.TrimSpace(email)
	if !ValidEmail(email) {
		// письмо всё равно некуда доставить
		s.logger.Warnw("Login email skipped: malformed address", "email", email)
		metrics.LoginEmails.WithLabelValues("skipped").Inc()
		return nil
	}

	tok, err := s.tokens.CreateToken(ctx, email)
	if err != nil {
		return fmt.Errorf("create token: %w", err)
	}

	body := "Use this link to log in:\n\n" + LoginURL(baseURL, tok.ID)
	if err := s.mailer.Send(ctx, LoginEmailSubject, body, s.from, []string{email}); err != nil {
		metrics.LoginEmails.WithLabelValues("failed").Inc()
		return fmt.Errorf("send login email: %w", err)
	}
	metrics.LoginEmails.WithLabelValues("sent").Inc()
	return nil
}

// CreateUser — административное создание пользователя.
func (s *AuthService) CreateUser(ctx context.Context, email string) (*model.User, error) {
	email = strings.TrimSpace(email)
	if !ValidEmail(email) {
		return nil, fmt.Errorf("invalid email %q", email)
	}
	return s.users.CreateUser(ctx, &model.User{Email: email})
}

// EnsureUser находит или создаёт пользователя (для заранее аутентифицированных сессий).
func (s *AuthService) EnsureUser(ctx context.Context, email string) (*model.User, error) {
	email = strings.TrimSpace(email)
	if !ValidEmail(email) {
		return nil, fmt.Errorf("invalid email %q", email)
	}
	user, _, err := s.users.GetOrCreateUser(ctx, email)
	return user, err
}

// LoginURL строит ссылку вида {base}/accounts/login?token={id}.
func LoginURL(baseURL, tokenID string) string {
	return strings.TrimRight(baseURL, "/") + LoginPath + "?" + url.Values{"token": {tokenID}}.Encode()
}
