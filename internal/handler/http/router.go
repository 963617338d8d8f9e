package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/h496242/hrm-backend-go/internal/config"
	"github.com/h496242/hrm-backend-go/internal/handler/http/middleware"
	"github.com/h496242/hrm-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
	leaveHandler LeaveHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrm-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
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

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("pong\n"))
		})

		r.Post("/auth/login", authHandler.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Route("/users", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)
				r.Get("/{id}", employeeHandler.Get)
				r.Put("/{id}", employeeHandler.Update)
				r.Delete("/{id}", employeeHandler.Deactivate)
			})

			r.Get("/departments", employeeHandler.ListDepartments)
			r.Get("/dashboard/stats", dashboardHandler.Stats)

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", attendanceHandler.GetByDate)
				r.Post("/", attendanceHandler.Mark)
				r.Get("/employee/{employeeId}", attendanceHandler.GetEmployeeAttendance)
			})

			r.Route("/salary", func(r chi.Router) {
				r.Get("/", payrollHandler.List)

				// Reviewer roles only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireReviewer)
					r.Post("/", payrollHandler.Generate)
					r.Post("/{id}/approve", payrollHandler.Approve)
					r.Post("/{id}/pay", payrollHandler.MarkPaid)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Post("/apply", leaveHandler.Apply)
				r.Get("/employee/{employeeId}", leaveHandler.ListEmployee)

				// Reviewer roles only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireReviewer)
					r.Get("/company", leaveHandler.ListCompany)
					r.Put("/{id}/status", leaveHandler.Review)
				})
			})
		})
	})

	return r
}
