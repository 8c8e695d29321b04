// Package httpapi exposes the menu service as an HTTP resource collection.
// It authenticates requests, maps wire payloads to domain inputs, and maps
// domain errors to response codes.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/tastehub/menuapi/internal/logging"
	"github.com/tastehub/menuapi/internal/server/menus"
	"github.com/tastehub/menuapi/internal/server/models"
)

type menuService interface {
	List(ctx context.Context, userID string) ([]*models.Menu, error)
	Get(ctx context.Context, userID string, id int64) (*models.Menu, error)
	Create(ctx context.Context, userID string, input menus.MenuInput) (*models.Menu, error)
	Update(ctx context.Context, userID string, id int64, input menus.MenuInput, partial bool) (*models.Menu, error)
	Delete(ctx context.Context, userID string, id int64) error
	AttachImage(ctx context.Context, userID string, id int64) (string, string, error)
	ImageURL(ctx context.Context, userID string, id int64) (string, error)
}

type userService interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}

type Server struct {
	address   string
	menus     menuService
	users     userService
	logger    logging.Logger
	jwtSecret []byte
}

func NewServer(a string, l logging.Logger, us userService, ms menuService, secretKey string) *Server {
	return &Server{
		address:   a,
		logger:    l.With("module", "http_server"),
		users:     us,
		menus:     ms,
		jwtSecret: []byte(secretKey),
	}
}

// Handler returns the mux with all routes. Menu routes require a valid
// bearer token; user routes are public.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/users/register", s.registerUser)
	mux.HandleFunc("POST /api/users/login", s.loginUser)

	mux.Handle("GET /api/menus", s.requireAuth(s.listMenus))
	mux.Handle("POST /api/menus", s.requireAuth(s.createMenu))
	mux.Handle("GET /api/menus/{id}", s.requireAuth(s.getMenu))
	mux.Handle("PUT /api/menus/{id}", s.requireAuth(s.putMenu))
	mux.Handle("PATCH /api/menus/{id}", s.requireAuth(s.patchMenu))
	mux.Handle("DELETE /api/menus/{id}", s.requireAuth(s.deleteMenu))
	mux.Handle("POST /api/menus/{id}/image", s.requireAuth(s.attachMenuImage))
	mux.Handle("GET /api/menus/{id}/image", s.requireAuth(s.getMenuImage))

	return mux
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
