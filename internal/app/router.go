package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/workdesk/workdesk/internal/auth"
	"github.com/workdesk/workdesk/internal/records/departments"
	"github.com/workdesk/workdesk/internal/records/employees"
	"github.com/workdesk/workdesk/internal/records/events"
	"github.com/workdesk/workdesk/internal/records/projects"
	"github.com/workdesk/workdesk/jobs"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger *slog.Logger
	Config *Config

	AuthHandler        *auth.Handler
	DepartmentsHandler *departments.Handler
	EmployeesHandler   *employees.Handler
	EventsHandler      *events.Handler
	ProjectsHandler    *projects.Handler
	JobHandler         *jobs.Handler
}

// NewRouter constructs the chi.Router. Routes mount at the root because
// the API predates any versioned prefix and the frontend depends on the
// flat paths.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	params.AuthHandler.MountRoutes(r)
	if params.DepartmentsHandler != nil {
		params.DepartmentsHandler.MountRoutes(r)
	}
	if params.EmployeesHandler != nil {
		params.EmployeesHandler.MountRoutes(r)
	}
	if params.EventsHandler != nil {
		params.EventsHandler.MountRoutes(r)
	}
	if params.ProjectsHandler != nil {
		params.ProjectsHandler.MountRoutes(r)
	}
	if params.JobHandler != nil {
		r.Route("/jobs", params.JobHandler.MountRoutes)
	}

	return r
}
