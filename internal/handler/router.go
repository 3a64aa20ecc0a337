package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zhouzirui/moodbot/backend/internal/handler/chatbot"
	middlewarePkg "github.com/zhouzirui/moodbot/backend/internal/middleware"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(responder chatbot.Responder, debug bool) http.Handler {
	r := chi.NewRouter()

	r.Use(middlewarePkg.RequestID)
	r.Use(middleware.RealIP)
	if debug {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS(debug))

	chatbot.New(responder).RegisterRoutes(r)

	return r
}
