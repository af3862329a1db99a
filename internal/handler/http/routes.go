package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/health", h.health)
	router.Get("/api/info", h.getAppInfo)

	router.Route("/api/queue", func(r chi.Router) {
		r.Post("/", h.enqueue)
		r.Get("/", h.listQueue)
		r.Get("/stats", h.queueStats)
		r.Delete("/{id}", h.discard)
	})

	router.Post("/api/sync", h.syncNow)

	router.Route("/api/network", func(r chi.Router) {
		r.Get("/", h.getNetworkStatus)
		r.Post("/adapt", h.forceAdaptation)
	})

	router.Route("/api/storage", func(r chi.Router) {
		r.Get("/", h.getStorageStats)
		r.Post("/cleanup", h.forceCleanup)
		r.Post("/archive", h.forceArchive)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
