// Package router wires handlers and middleware into the HTTP route table.
package router

import (
	"net/http"

	"github.com/dtroode/taskhub-server/internal/api/http/handler"
	"github.com/dtroode/taskhub-server/internal/api/http/middleware"
	"github.com/dtroode/taskhub-server/internal/logger"
)

// Router builds the HTTP handler for taskhub operations.
type Router struct {
	userService handler.UserService
	taskService handler.TaskService
	pinger      handler.Pinger
	logger      *logger.Logger
}

// New creates new Router instance.
func New(
	userService handler.UserService,
	taskService handler.TaskService,
	pinger handler.Pinger,
	logger *logger.Logger,
) *Router {
	return &Router{
		userService: userService,
		taskService: taskService,
		pinger:      pinger,
		logger:      logger,
	}
}

// Handler registers all routes and middleware and returns the root handler.
func (r *Router) Handler() http.Handler {
	users := handler.NewUser(r.userService, r.logger)
	tasks := handler.NewTask(r.taskService, r.logger)
	health := handler.NewHealth(r.pinger, r.logger)

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/users", users.Create)
	mux.HandleFunc("GET /api/users/{id}", users.Get)
	mux.HandleFunc("GET /api/users/username/{username}", users.GetByUsername)
	mux.HandleFunc("POST /api/auth/login", users.Login)

	mux.HandleFunc("POST /api/tasks", tasks.Create)
	mux.HandleFunc("GET /api/tasks/{id}", tasks.Get)
	mux.HandleFunc("GET /api/users/{userId}/tasks", tasks.ListByUser)
	mux.HandleFunc("PUT /api/tasks/{id}", tasks.Update)
	mux.HandleFunc("DELETE /api/tasks/{id}", tasks.Delete)

	mux.HandleFunc("GET /health", health.Check)

	logging := middleware.NewLogging(r.logger)
	return logging.Handle(mux)
}
