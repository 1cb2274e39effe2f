// Package web serves the local progress page and its JSON API.
package web

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"umbrella-glide/internal/shell"
	"umbrella-glide/internal/store"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type reloader interface {
	Reload() error
}

// ProgressHandler exposes persisted progress over HTTP.
type ProgressHandler struct {
	kv  store.KV
	log *log.Logger
}

// NewProgressHandler serves progress read from kv. File-backed stores are
// re-read on every request so a running game's writes show up.
func NewProgressHandler(kv store.KV, logger *log.Logger) *ProgressHandler {
	if logger == nil {
		logger = log.Default()
	}
	return &ProgressHandler{kv: kv, log: logger}
}

func (h *ProgressHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.page)
	r.Get("/api/progress", h.api)
}

// NewRouter returns a router with the standard middleware stack and h's
// routes.
func NewRouter(h *ProgressHandler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))
	h.RegisterRoutes(r)
	return r
}

func (h *ProgressHandler) progress() shell.Progress {
	if rl, ok := h.kv.(reloader); ok {
		if err := rl.Reload(); err != nil {
			h.log.Printf("web: reload: %v", err)
		}
	}
	return shell.ReadProgress(h.kv, h.log)
}

func (h *ProgressHandler) page(w http.ResponseWriter, r *http.Request) {
	render(w, r, ProgressPage(h.progress()))
}

type progressJSON struct {
	PlayerName string `json:"playerName"`
	HighScore  int    `json:"highScore"`
	Coins      int    `json:"coins"`
}

func (h *ProgressHandler) api(w http.ResponseWriter, r *http.Request) {
	p := h.progress()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(progressJSON{PlayerName: p.PlayerName, HighScore: p.HighScore, Coins: p.Coins}); err != nil {
		h.log.Printf("web: encode progress: %v", err)
	}
}

func render(w http.ResponseWriter, r *http.Request, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(r.Context(), w); err != nil {
		http.Error(w, "failed to render", http.StatusInternalServerError)
	}
}
