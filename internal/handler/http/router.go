package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterConfig struct {
	AppName        string
	AppVersion     string
	Env            string
	AllowedOrigins []string
}

func NewRouter(
	cfg RouterConfig,
	reportHandler ReportHandler,
	punchHandler PunchHandler,
	employeeHandler EmployeeHandler,
	lookupHandler LookupHandler,
	deviceHandler DeviceHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.AppName),
		slog.String("version", cfg.AppVersion),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
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

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/reports", func(r chi.Router) {
			r.Get("/daily-summary", reportHandler.GetDailySummary)
			r.Get("/range", reportHandler.GetRangeReport)
			r.Get("/attendance", reportHandler.GetAttendanceRows)
			r.Get("/employee-day", reportHandler.GetEmployeeDay)
		})

		r.Route("/punches", func(r chi.Router) {
			r.Get("/", punchHandler.List)
			r.Post("/mark-synced", punchHandler.MarkSynced)
			r.Post("/mark-processed", punchHandler.MarkProcessed)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			r.Post("/", employeeHandler.Create)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", employeeHandler.Get)
				r.Put("/", employeeHandler.Update)
				r.Delete("/", employeeHandler.Deactivate)

				r.Get("/shift", employeeHandler.GetShiftForDate)
				r.Route("/shift-assignments", func(r chi.Router) {
					r.Get("/", employeeHandler.ListShiftAssignments)
					r.Post("/", employeeHandler.AssignShift)
				})
			})
		})

		r.Route("/lookups", func(r chi.Router) {
			r.Get("/branches", lookupHandler.Branches)
			r.Get("/departments", lookupHandler.Departments)
			r.Get("/devices", lookupHandler.Devices)
			r.Get("/shifts", lookupHandler.Shifts)
			r.Get("/employees", lookupHandler.Employees)
		})

		r.Get("/devices/health", deviceHandler.Health)
	})

	return r
}
