package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/pontoflow/ponto-backend-go/internal/handler/http/middleware"
	"github.com/pontoflow/ponto-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	punchHandler PunchHandler,
	summaryHandler SummaryHandler,
	policyHandler PolicyHandler,
	allowedOrigins []string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ponto-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/punches", func(r chi.Router) {
				r.Post("/", punchHandler.Record)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", punchHandler.List)
					r.Delete("/{id}", punchHandler.Invalidate)
				})
			})

			r.Route("/summaries", func(r chi.Router) {
				r.Get("/daily", summaryHandler.ListDailyRange)
				r.Get("/daily/{date}", summaryHandler.GetDaily)
				r.Get("/monthly/{month}", summaryHandler.GetMonthly)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/company/today", summaryHandler.ListCompanyToday)
					r.Post("/recalculate/daily", summaryHandler.RecalculateDaily)
					r.Post("/recalculate/monthly", summaryHandler.RecalculateMonthly)
				})
			})

			// Admin only
			r.Route("/policy", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", policyHandler.Get)
				r.Put("/", policyHandler.Update)
				r.Get("/schedule-overrides/{employeeID}", policyHandler.GetScheduleOverride)
				r.Put("/schedule-overrides/{employeeID}", policyHandler.UpdateScheduleOverride)
			})
		})
	})
	return r
}
