package http

import (
	"context"
	"log/slog"
	nethttp "net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tourline/merch-forecast/internal/predict"
)

// Server is the prediction service HTTP surface.
type Server struct {
	echo *echo.Echo
	svc  *predict.Service
	log  *slog.Logger
}

// New wires the routes. Readiness is a property of the prediction
// service, not of the HTTP layer; the server always starts and reports
// degraded status until artifacts are loaded.
func New(svc *predict.Service, log *slog.Logger, exposeMetrics bool) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{echo: e, svc: svc, log: log}

	e.GET("/health", s.handleHealth)
	e.GET("/model-info", s.handleModelInfo)
	e.POST("/predict", s.handlePredict)
	if exposeMetrics {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	return s
}

func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Handler exposes the route tree for tests and embedding.
func (s *Server) Handler() nethttp.Handler { return s.echo }

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
