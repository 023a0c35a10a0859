package api

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the API endpoints on a fresh router. Cross-cutting
// middleware (logging, CORS, metrics) is wired by the caller.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/api/health", h.Health)
	r.Post("/api/auth/register", h.Register)
	r.Post("/api/auth/login", h.Login)
	r.Get("/api/data", h.Data)
	r.Post("/api/products/update", h.UpdateProduct)
	r.Post("/api/orders/update", h.UpdateOrder)
	r.Post("/api/inventory/update", h.UpdateInventory)

	return r
}
