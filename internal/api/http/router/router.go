package router

import (
	"net/http"

	"github.com/dtroode/bookreview-server/internal/api/http/handler"
	"github.com/dtroode/bookreview-server/internal/api/http/middleware"
	"github.com/dtroode/bookreview-server/internal/logger"
	"github.com/dtroode/bookreview-server/internal/model"
)

// Router wires handlers and middleware into the HTTP mux.
type Router struct {
	authService    handler.AuthService
	reviewService  handler.ReviewService
	tokens         middleware.TokenParser
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	authService handler.AuthService,
	reviewService handler.ReviewService,
	tokens middleware.TokenParser,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		reviewService:  reviewService,
		tokens:         tokens,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register builds the route table. Register, Login and Refresh are the
// only routes that bypass the auth guard; everything else fails closed.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokens, r.contextManager, r.logger)

	authHandler := handler.NewAuth(r.authService, r.contextManager, r.logger)
	reviewHandler := handler.NewReview(r.reviewService, r.logger)

	mux := http.NewServeMux()

	mux.HandleFunc("POST /Authentication/Register", authHandler.Register)
	mux.HandleFunc("POST /Authentication/Login", authHandler.Login)
	mux.HandleFunc("POST /Authentication/Refresh", authHandler.Refresh)
	mux.Handle("DELETE /Authentication/Revoke", authenticate.Handle(http.HandlerFunc(authHandler.Revoke)))

	mux.Handle("GET /BookReviews", authenticate.Handle(http.HandlerFunc(reviewHandler.List)))
	mux.Handle("GET /BookReviews/summary", authenticate.Handle(http.HandlerFunc(reviewHandler.Summary)))
	mux.Handle("GET /BookReviews/{id}", authenticate.Handle(http.HandlerFunc(reviewHandler.Get)))
	mux.Handle("POST /BookReviews", authenticate.Handle(http.HandlerFunc(reviewHandler.Create)))
	mux.Handle("PUT /BookReviews/{id}", authenticate.Handle(http.HandlerFunc(reviewHandler.Update)))
	mux.Handle("DELETE /BookReviews/{id}", authenticate.Handle(http.HandlerFunc(reviewHandler.Delete)))

	return logging.Handle(mux)
}
