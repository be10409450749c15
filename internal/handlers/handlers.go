package handlers

import (
	"net/http"
	"time"

	"superlists/internal/config"
	"superlists/internal/middleware"
	"superlists/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	authService *service.AuthService,
	listService *service.ListService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithMetrics)
	r.Use(middleware.WithRouteSpanName)
	r.Use(middleware.WithGzip)
	if len(config.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   config.AllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}
	r.Use(middleware.WithAuth(config.AuthSecret, authService))

	// Handlers
	listHandler := NewListHandler(listService, logger)
	accountHandler := NewAccountHandler(authService, logger, config)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	// ответ сжимает WithGzip, собственное сжатие promhttp отключено
	r.Handle("/metrics", promhttp.InstrumentMetricHandler(
		prometheus.DefaultRegisterer,
		promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{DisableCompression: true}),
	))

	// Lists
	r.Get("/", listHandler.Home)
	r.Post("/lists/new", listHandler.NewList)
	r.Get("/lists/users/{email}/", listHandler.MyLists)
	r.Get("/lists/{id}/", listHandler.ViewList)
	r.Post("/lists/{id}/", listHandler.AddItem)
	r.Post("/lists/{id}/share", listHandler.Share)

	// Accounts
	r.With(httprate.LimitByIP(config.LoginRateLimit, time.Minute)).
		Post("/accounts/send_login_email", accountHandler.SendLoginEmail)
	r.Get("/accounts/login", accountHandler.Login)
	r.Post("/accounts/logout", accountHandler.Logout)

	return &Handler{Router: r}
}
