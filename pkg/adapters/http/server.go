// Package http exposes the engine over a JSON API, for development
// servers and for rendering backends that consume trees remotely.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/latticeui/lattice/pkg/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Engine defines the interface for the Lattice resolution core.
type Engine interface {
	ResolvePage(ctx context.Context, path, locale string) (*domain.RenderTree, error)
	ResolveBlock(ctx context.Context, name string, vars map[string]any, locale string) (*domain.RenderNode, error)
	Pages() []domain.Page
	Blocks() []string
	Languages() domain.Languages
}

// Server routes API requests to the engine.
type Server struct {
	Engine  Engine
	Version string
}

// NewHandler creates the HTTP handler for the engine. The /metrics
// endpoint serves the default Prometheus registry.
func NewHandler(engine Engine, version string) http.Handler {
	server := &Server{Engine: engine, Version: version}

	r := chi.NewRouter()
	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)
	r.Handle("/metrics", promhttp.Handler())
	r.Route("/v1", func(r chi.Router) {
		r.Get("/pages", server.ListPages)
		r.Get("/blocks", server.ListBlocks)
		r.Get("/languages", server.GetLanguages)
		r.Get("/render", server.Render)
		r.Post("/blocks/{name}/render", server.RenderBlock)
	})
	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Render handles GET /v1/render?path=/&locale=en-US.
func (s *Server) Render(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		http.Error(w, "missing 'path' query parameter", http.StatusBadRequest)
		return
	}
	locale := r.URL.Query().Get("locale")

	tree, err := s.Engine.ResolvePage(r.Context(), path, locale)
	if err != nil {
		if errors.Is(err, domain.ErrPageNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Render error: %v", err), http.StatusInternalServerError)
		slog.Error("Render failed", "path", path, "error", err)
		return
	}
	writeJSON(w, tree)
}

// renderBlockRequest is the body of POST /v1/blocks/{name}/render.
type renderBlockRequest struct {
	Vars   map[string]any `json:"vars"`
	Locale string         `json:"locale"`
}

// RenderBlock resolves a single block with caller-supplied vars.
func (s *Server) RenderBlock(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var body renderBlockRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		slog.Warn("RenderBlock: Invalid request body", "error", err)
		return
	}

	node, err := s.Engine.ResolveBlock(r.Context(), name, body.Vars, body.Locale)
	if err != nil {
		if errors.Is(err, domain.ErrBlockNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Render error: %v", err), http.StatusInternalServerError)
		slog.Error("RenderBlock failed", "block", name, "error", err)
		return
	}
	writeJSON(w, node)
}

// ListPages handles GET /v1/pages.
func (s *Server) ListPages(w http.ResponseWriter, r *http.Request) {
	type pageInfo struct {
		Path     string `json:"path"`
		Title    string `json:"title,omitempty"`
		Sections int    `json:"sections"`
	}
	pages := s.Engine.Pages()
	out := make([]pageInfo, 0, len(pages))
	for _, p := range pages {
		out = append(out, pageInfo{Path: p.Path, Title: p.Title, Sections: len(p.Sections)})
	}
	writeJSON(w, out)
}

// ListBlocks handles GET /v1/blocks.
func (s *Server) ListBlocks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Engine.Blocks())
}

// GetLanguages handles GET /v1/languages.
func (s *Server) GetLanguages(w http.ResponseWriter, r *http.Request) {
	langs := s.Engine.Languages()
	// The translation table is configuration detail, not API surface.
	langs.Translations = nil
	writeJSON(w, langs)
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"app":     "lattice-http",
		"version": s.Version,
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}
