package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-logr/logr"

	"github.com/taskapi/taskapi/internal/api/handler"
	"github.com/taskapi/taskapi/internal/api/middleware"
	"github.com/taskapi/taskapi/internal/service"
	"github.com/taskapi/taskapi/internal/store"
)

// Options configures the router.
type Options struct {
	// CORSOrigins lists the browser origins allowed to call the API.
	// CORS handling is disabled when empty.
	CORSOrigins []string
	Logger      logr.Logger
}

// NewRouter creates and configures the HTTP router.
func NewRouter(s *store.Store, opts Options) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware chain
	r.Use(middleware.Recovery(opts.Logger))
	r.Use(middleware.Logging(opts.Logger))
	r.Use(chimiddleware.RealIP)
	if len(opts.CORSOrigins) > 0 {
		r.Use(middleware.CORS(opts.CORSOrigins))
	}

	svc := service.NewTaskService(store.NewTaskRepository(s))

	systemHandler := handler.NewSystemHandler(s)
	taskHandler := handler.NewTaskHandler(svc)

	r.Get("/healthz", systemHandler.Health)

	r.Route("/api/tasks", func(r chi.Router) {
		r.Get("/", taskHandler.ListTasks)
		r.Post("/", taskHandler.CreateTask)
		r.Get("/{id}", taskHandler.GetTask)
		r.Patch("/{id}", taskHandler.ToggleTask)
		r.Delete("/{id}", taskHandler.DeleteTask)
	})

	return r
}
