package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dtroode/contactbook-server/internal/api/http/handler"
	"github.com/dtroode/contactbook-server/internal/api/http/middleware"
	"github.com/dtroode/contactbook-server/internal/logger"
	"github.com/dtroode/contactbook-server/internal/model"
)

// AuthService is everything the router needs from authentication: the
// handler operations plus bearer token resolution.
type AuthService interface {
	handler.AuthService
	middleware.TokenService
}

// Router wires handlers and middleware into an http.Handler.
type Router struct {
	authService    AuthService
	contactService handler.ContactService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates new HTTP Router instance.
func New(
	authService AuthService,
	contactService handler.ContactService,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		contactService: contactService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register builds the route table. Every route is logged; contact routes
// also require a bearer token.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.authService, r.contextManager, r.logger)

	m := mux.NewRouter()
	m.Use(logging.Handler)
	m.HandleFunc("/", handler.Health).Methods(http.MethodGet)

	api := m.PathPrefix("/api").Subrouter()
	r.registerAuthRoutes(api.PathPrefix("/auth").Subrouter())

	contacts := api.PathPrefix("/contacts").Subrouter()
	contacts.Use(authenticate.Handler)
	r.registerContactRoutes(contacts)

	return m
}

func (r *Router) registerAuthRoutes(s *mux.Router) {
	authHandler := handler.NewAuth(r.authService, r.logger)

	s.HandleFunc("/signup", authHandler.Signup).Methods(http.MethodPost)
	s.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	s.HandleFunc("/forgot-password", authHandler.ForgotPassword).Methods(http.MethodPost)
	s.HandleFunc("/reset-password/{token}", authHandler.ResetPassword).Methods(http.MethodPost)
}

func (r *Router) registerContactRoutes(s *mux.Router) {
	contactHandler := handler.NewContact(r.contactService, r.contextManager, r.logger)

	for _, path := range []string{"", "/"} {
		s.HandleFunc(path, contactHandler.List).Methods(http.MethodGet)
		s.HandleFunc(path, contactHandler.Create).Methods(http.MethodPost)
	}
	s.HandleFunc("/{id}", contactHandler.Update).Methods(http.MethodPut)
	s.HandleFunc("/{id}", contactHandler.Delete).Methods(http.MethodDelete)
}
