package graphql

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
	"github.com/readshelf/readshelf/internal/logging"
	"github.com/readshelf/readshelf/internal/server/services"
)

// Server hosts the GraphQL endpoint over HTTP.
type Server struct {
	address   string
	logger    logging.Logger
	schema    graphql.Schema
	jwtSecret []byte
}

// NewServer wires the resolver into a schema and prepares the HTTP server.
func NewServer(address string, l logging.Logger, us *services.UserService, bs *services.BookService, secretKey string) (*Server, error) {
	resolver := NewResolver(us, bs, l)
	schema, err := NewSchema(resolver)
	if err != nil {
		return nil, err
	}

	return &Server{
		address:   address,
		logger:    l.With("module", "graphql_server"),
		schema:    schema,
		jwtSecret: []byte(secretKey),
	}, nil
}

// Router assembles the chi router: CORS, panic recovery, the auth-context
// middleware, and the /graphql handler (with GraphiQL on GET).
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(s.authContext)

	h := handler.New(&handler.Config{
		Schema:   &s.schema,
		Pretty:   true,
		GraphiQL: true,
	})
	r.Handle("/graphql", h)

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
