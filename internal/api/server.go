// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/shelfwise/internal/core/author"
	"github.com/taibuivan/shelfwise/internal/core/book"
	"github.com/taibuivan/shelfwise/internal/core/bookgenre"
	"github.com/taibuivan/shelfwise/internal/core/bookshelf"
	"github.com/taibuivan/shelfwise/internal/core/genre"
	"github.com/taibuivan/shelfwise/internal/core/image"
	"github.com/taibuivan/shelfwise/internal/core/progress"
	"github.com/taibuivan/shelfwise/internal/core/review"
	"github.com/taibuivan/shelfwise/internal/core/shelfbook"
	"github.com/taibuivan/shelfwise/internal/platform/config"
	"github.com/taibuivan/shelfwise/internal/platform/constants"
	"github.com/taibuivan/shelfwise/internal/platform/middleware"
	"github.com/taibuivan/shelfwise/internal/users/account"
	"github.com/taibuivan/shelfwise/internal/users/profile"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler, always 200 while the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler, 200 when Postgres and Redis answer.
	Readiness http.HandlerFunc

	Users          *account.Handler
	Profiles       *profile.Handler
	Authors        *author.Handler
	Genres         *genre.Handler
	Books          *book.Handler
	Reviews        *review.Handler
	BooksByUser    *progress.Handler
	BookGenres     *bookgenre.Handler
	Bookshelves    *bookshelf.Handler
	BookshelfBooks *shelfbook.Handler
	Images         *image.Handler
}

// Auth groups what the Authenticate middleware needs.
type Auth struct {
	Verifier middleware.TokenVerifier
	Sessions middleware.SessionChecker
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, auth Auth, h Handlers) *Server {
	r := NewRouter(context, cfg, log, auth, h)

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// NewRouter builds the routing tree on its own so it can be served by httptest.
func NewRouter(context context.Context, cfg *config.Config, log *slog.Logger, auth Auth, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.RateLimit(context, constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.Authenticate(auth.Verifier, auth.Sessions))

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	r.Route("/api", func(api chi.Router) {
		api.Route("/users", h.Users.RegisterRoutes)
		api.Route("/profiles", h.Profiles.RegisterRoutes)
		api.Route("/authors", h.Authors.RegisterRoutes)
		api.Route("/genres", h.Genres.RegisterRoutes)
		api.Route("/books", h.Books.RegisterRoutes)
		api.Route("/reviews", h.Reviews.RegisterRoutes)
		api.Route("/bookByUser", h.BooksByUser.RegisterRoutes)
		api.Route("/bookGenres", h.BookGenres.RegisterRoutes)
		api.Route("/bookshelf", h.Bookshelves.RegisterRoutes)
		api.Route("/bookshelfBooks", h.BookshelfBooks.RegisterRoutes)
		api.Route("/images", h.Images.RegisterRoutes)
	})

	return r
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
