package server

import (
	"context"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/doodlesbykumbi/artrights/pkg/config"
	"github.com/doodlesbykumbi/artrights/pkg/server/middleware"
	"github.com/doodlesbykumbi/artrights/pkg/service"
	"github.com/doodlesbykumbi/artrights/pkg/storage"
)

type Server struct {
	Router   *mux.Router
	Services *service.Services
	Config   *config.Config

	// Images is nil when no object store is configured.
	Images storage.ImageStore

	srv *http.Server
}

func NewServer(
	services *service.Services,
	cfg *config.Config,
	images storage.ImageStore,
	host string,
	port string,
) *Server {

	router := mux.NewRouter().UseEncodedPath()
	router.Use(middleware.Actor)

	var handler http.Handler = router
	handler = handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(handler)
	if len(cfg.CORSAllowedOrigins) > 0 {
		handler = handlers.CORS(
			handlers.AllowedOrigins(cfg.CORSAllowedOrigins),
			handlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
			handlers.AllowedHeaders([]string{"Content-Type", middleware.UserHeader}),
		)(handler)
	}

	srv := &http.Server{
		Handler:      handlers.LoggingHandler(os.Stdout, handler),
		Addr:         host + ":" + port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Router:   router,
		Services: services,
		Config:   cfg,
		Images:   images,
		srv:      srv,
	}
}

// Handler returns the router wrapped in the server middleware.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

// StartWithListener serves on an existing listener.
func (s *Server) StartWithListener(l net.Listener) error {
	return s.srv.Serve(l)
}

// Shutdown stops accepting requests and waits for active ones until ctx ends.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
