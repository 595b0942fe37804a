package web

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/rs/cors"

	"github.com/avstrong/tripplan/internal/logger"
	"github.com/avstrong/tripplan/internal/search"
	"github.com/avstrong/tripplan/internal/trip"
)

type Server struct {
	srv    *http.Server
	router *http.ServeMux
	l      *logger.Logger
	conf   Conf
	trips  *trip.Manager
	search *search.Client
}

type Conf struct {
	L                 *logger.Logger
	ServerLogger      *log.Logger
	Host              string
	Port              string
	ReadHeaderTimeout time.Duration
	LivenessEndpoint  string
	AllowedOrigins    []string
}

func New(ctx context.Context, conf Conf, trips *trip.Manager, searchClient *search.Client) (*Server, error) {
	mux := http.NewServeMux()

	// The original consumer is a browser app, so CORS sits in front of
	// everything.
	corsHandler := cors.New(cors.Options{ //nolint:exhaustruct
		AllowedOrigins: conf.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete,
		},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(mux)

	//nolint:exhaustruct
	srv := &http.Server{
		Addr:              net.JoinHostPort(conf.Host, conf.Port),
		ReadHeaderTimeout: conf.ReadHeaderTimeout,
		ErrorLog:          conf.ServerLogger,
		Handler:           corsHandler,
		BaseContext: func(listener net.Listener) context.Context {
			return ctx
		},
	}

	server := &Server{
		srv:    srv,
		router: mux,
		l:      conf.L,
		conf:   conf,
		trips:  trips,
		search: searchClient,
	}

	server.addRoutes(mux)

	return server, nil
}

func (s *Server) Srv() *http.Server {
	return s.srv
}
