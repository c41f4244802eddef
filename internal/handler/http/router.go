package http

import (
	"log/slog"

	"github.com/cmlabs-hris/overtime-backend-go/internal/config"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	logger *slog.Logger,
	corsConfig config.CORSConfig,
	departmentHandler DepartmentHandler,
	employeeHandler EmployeeHandler,
	overtimeHandler OvertimeHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsConfig.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/departments", func(r chi.Router) {
			r.Get("/", departmentHandler.ListDepartments)
			r.Get("/options", departmentHandler.ListDepartmentOptions)
			r.Get("/{id}", departmentHandler.GetDepartment)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.ListEmployees)
			r.Post("/", employeeHandler.CreateEmployee)
			r.Get("/options", employeeHandler.ListEmployeeOptions)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", employeeHandler.GetEmployee)
				r.Put("/", employeeHandler.UpdateEmployee)
				r.Delete("/", employeeHandler.DeleteEmployee)
			})
		})

		r.Route("/overtimes", func(r chi.Router) {
			r.Get("/", overtimeHandler.ListOvertimes)
			r.Post("/", overtimeHandler.CreateOvertime)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", overtimeHandler.GetOvertime)
				r.Put("/", overtimeHandler.UpdateOvertime)
				r.Delete("/", overtimeHandler.DeleteOvertime)
			})
		})
	})

	return r
}
