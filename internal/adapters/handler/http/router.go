package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/kxng0109/taskflow/internal/core/ports"
)

// PublicPrefixes is the allow-list of paths reachable without a token:
// registration, login and the health endpoint. Everything else goes through
// the Authenticator.
var PublicPrefixes = []string{"/api/auth/", "/healthz"}

func NewHandler(
	tokens ports.TokenService,
	users ports.UserRepository,
	authHandler *AuthHandler,
	userHandler *UserHandler,
	projectHandler *ProjectHandler,
	taskHandler *TaskHandler,
	log *logrus.Logger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(Authenticator(tokens, users, PublicPrefixes, log))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		r.Get("/me", userHandler.GetMe)

		r.Route("/projects", func(r chi.Router) {
			r.Post("/", projectHandler.CreateProject)
			r.Get("/", projectHandler.ListProjects)

			r.Route("/{projectID}", func(r chi.Router) {
				r.Get("/", projectHandler.GetProject)
				r.Put("/", projectHandler.UpdateProject)
				r.Delete("/", projectHandler.DeleteProject)
				r.Post("/members", projectHandler.AddMember)

				r.Route("/tasks", func(r chi.Router) {
					r.Post("/", taskHandler.CreateTask)
					r.Get("/", taskHandler.ListTasks)
					r.Get("/{taskID}", taskHandler.GetTask)
					r.Put("/{taskID}", taskHandler.UpdateTask)
					r.Delete("/{taskID}", taskHandler.DeleteTask)
				})
			})
		})
	})

	return r
}
