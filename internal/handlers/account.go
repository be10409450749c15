package handlers

import (
	"net/http"

	"superlists/internal/config"
	"superlists/internal/middleware"
	"superlists/internal/service"

	"go.uber.org/zap"
)

// LoginEmailSentMessage показывается после запроса ссылки, независимо от адреса.
const LoginEmailSentMessage = "Check your email, we've sent you a link you can use to log in."

// AccountHandler — вход по ссылке из письма и выход.
type AccountHandler struct {
	AuthService *service.AuthService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

func NewAccountHandler(authService *service.AuthService, logger *zap.SugaredLogger, cfg *config.Config) *AccountHandler {
	return &AccountHandler{AuthService: authService, Logger: logger, Config: cfg}
}

// SendLoginEmail выдаёт токен и отправляет ссылку для входа.
func (h *AccountHandler) SendLoginEmail(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")

	if err := h.AuthService.RequestLogin(r.Context(), email, h.Config.PublicURL); err != nil {
		h.Logger.Errorw("SendLoginEmail: service error", "email", email, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, MessageView{Message: LoginEmailSentMessage})
}

// Login обменивает токен из ссылки на сессию. Неверный токен молча оставляет
// посетителя анонимным; в обоих случаях редирект на главную.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")

	user, err := h.AuthService.Authenticate(r.Context(), token)
	if err != nil {
		h.Logger.Errorw("Login: service error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if user == nil {
		h.Logger.Warnw("Login: invalid token")
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	if err := middleware.SetLoginCookie(w, user.Email, h.Config.AuthSecret, h.Config.SessionTTL); err != nil {
		h.Logger.Errorw("Login: failed to set session cookie", "email", user.Email, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.Logger.Infow("User logged in", "email", user.Email)
	http.Redirect(w, r, "/", http.StatusFound)
}

// Logout завершает сессию.
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearLoginCookie(w)
	http.Redirect(w, r, "/", http.StatusFound)
}
