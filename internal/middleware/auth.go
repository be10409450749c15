package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"superlists/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

const authCookieName = "auth_token"

type contextKey string

const userContextKey contextKey = "user"

// SessionResolver восстанавливает пользователя по email из cookie.
type SessionResolver interface {
	ResolveUserForSession(ctx context.Context, email string) (*model.User, error)
}

// sessionClaims — email пользователя хранится в sub.
type sessionClaims struct {
	jwt.RegisteredClaims
}

// SetLoginCookie выставляет подписанную cookie сессии с email пользователя.
func SetLoginCookie(w http.ResponseWriter, email, secret string, ttl time.Duration) error {
	token, err := NewSessionToken(email, secret, ttl)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// NewSessionToken подписывает JWT для email; используется и для заранее созданных сессий.
func NewSessionToken(email, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := sessionClaims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ClearLoginCookie завершает сессию.
func ClearLoginCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// WithAuth читает cookie сессии и кладёт пользователя в контекст.
// Нет cookie, подпись неверна или пользователя больше нет — запрос идёт дальше анонимным.
func WithAuth(secret string, resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, ok := emailFromCookie(r, secret)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			user, err := resolver.ResolveUserForSession(r.Context(), email)
			if err != nil {
				logger.Errorw("WithAuth: resolve session user", "email", email, "error", err)
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			if user == nil {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

func emailFromCookie(r *http.Request, secret string) (string, bool) {
	c, err := r.Cookie(authCookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(c.Value, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", false
	}
	return claims.Subject, true
}

// WithUser кладёт пользователя в контекст.
func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// GetUserFromContext возвращает аутентифицированного пользователя запроса.
func GetUserFromContext(ctx context.Context) (*model.User, bool) {
	u, ok := ctx.Value(userContextKey).(*model.User)
	return u, ok && u != nil
}
