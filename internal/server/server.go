// Package server exposes the calculation engine over HTTP for frontends and
// scripting. It is stateless; every request carries its own scenario.
package server

import (
	"log/slog"

	"github.com/valyala/fasthttp"

	"github.com/fiplan/fiplan/internal/calculation"
)

type Server struct {
	engine *calculation.Engine
	logger *slog.Logger
}

func NewServer(engine *calculation.Engine, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{engine: engine, logger: logger}
}

// Handler routes requests. fasthttp reuses RequestCtx, so handlers must not
// retain references past return.
func (s *Server) Handler() fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		path := string(ctx.Path())
		method := string(ctx.Method())

		s.logger.Debug("request", "method", method, "path", path)

		switch {
		case path == "/healthz" && method == fasthttp.MethodGet:
			s.handleHealth(ctx)
		case path == "/v1/project" && method == fasthttp.MethodPost:
			s.handleProject(ctx)
		case path == "/v1/tax" && method == fasthttp.MethodPost:
			s.handleTax(ctx)
		case path == "/v1/milestones" && method == fasthttp.MethodGet:
			s.handleMilestoneCatalog(ctx)
		default:
			writeError(ctx, fasthttp.StatusNotFound, "not found")
		}
	}
}

// ListenAndServe blocks serving on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("http server listening", "addr", addr)
	return fasthttp.ListenAndServe(addr, s.Handler())
}
