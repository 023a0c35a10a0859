// Package api implements the REST endpoints the dashboard client calls.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"merchant-dashboard-api/internal/application"
	"merchant-dashboard-api/internal/domain"
)

// Handler holds the application services behind the REST endpoints.
type Handler struct {
	auth       *application.AuthService
	storefront *application.StorefrontService
	logger     zerolog.Logger
}

// NewHandler creates a new API handler.
func NewHandler(auth *application.AuthService, storefront *application.StorefrontService, logger zerolog.Logger) *Handler {
	return &Handler{
		auth:       auth,
		storefront: storefront,
		logger:     logger,
	}
}

// Health responds to liveness probes.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /api/auth/register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	if err := h.auth.Register(r.Context(), req.Email, req.Password); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			writeMessage(w, http.StatusConflict, "User already exists")
			return
		}
		h.logger.Error().Err(err).Str("email", req.Email).Msg("Register error")
		writeMessage(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	writeMessage(w, http.StatusOK, "Registered successfully")
}

// Login handles POST /api/auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	result, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.logger.Error().Err(err).Str("email", req.Email).Msg("Login error")
		writeMessage(w, http.StatusInternalServerError, "Login failed")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Data handles GET /api/data. Per-shop failures stay in the response as
// error-status entries; only user-level failures map to an error status
// code.
func (h *Handler) Data(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeMessage(w, http.StatusBadRequest, "Email is required")
		return
	}

	stores, err := h.storefront.FetchDashboard(r.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			writeMessage(w, http.StatusNotFound, "User not found. Please register first.")
		case errors.Is(err, domain.ErrNoLinkedStores):
			writeMessage(w, http.StatusForbidden, "No stores found for this user. Please link a store first.")
		default:
			h.logger.Error().Err(err).Str("email", email).Msg("Data fetch error")
			writeMessage(w, http.StatusInternalServerError, "Failed to fetch data")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"stores": stores})
}

type productUpdateRequest struct {
	Email     string `json:"email"`
	Store     string `json:"store"`
	ProductID string `json:"productId"`
	VariantID string `json:"variantId"`
	Title     string `json:"title"`
	Price     string `json:"price"`
}

// UpdateProduct handles POST /api/products/update.
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req productUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		writeMessage(w, http.StatusBadRequest, "productId is required")
		return
	}

	err := h.storefront.UpdateProduct(r.Context(), application.ProductUpdateInput{
		Email:     req.Email,
		Store:     req.Store,
		ProductID: req.ProductID,
		VariantID: req.VariantID,
		Title:     req.Title,
		Price:     req.Price,
	})
	if err != nil {
		var userErr *domain.UserError
		if errors.As(err, &userErr) {
			writeMessage(w, http.StatusBadRequest, userErr.Message)
			return
		}
		h.logger.Error().Err(err).Str("productId", req.ProductID).Msg("Product update error")
		writeMessage(w, http.StatusInternalServerError, "Failed to update product")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

type orderUpdateRequest struct {
	Email   string `json:"email"`
	Store   string `json:"store"`
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

// UpdateOrder handles POST /api/orders/update.
func (h *Handler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	var req orderUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.OrderID == "" || req.Status == "" {
		writeMessage(w, http.StatusBadRequest, "orderId and status are required")
		return
	}

	message, err := h.storefront.UpdateOrderStatus(r.Context(), req.Email, req.Store, req.OrderID, req.Status)
	if err != nil {
		var userErr *domain.UserError
		if errors.As(err, &userErr) {
			writeMessage(w, http.StatusBadRequest, userErr.Message)
			return
		}
		h.logger.Error().Err(err).Str("orderId", req.OrderID).Msg("Order update error")
		writeMessage(w, http.StatusInternalServerError, "Failed to update order")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "message": message})
}

type inventoryUpdateRequest struct {
	Email      string   `json:"email"`
	Store      string   `json:"store"`
	ItemID     string   `json:"itemId"`
	LocationID string   `json:"locationId"`
	NewQty     *flexQty `json:"newQty"`
	CurrentQty *flexQty `json:"currentQty"`
}

// UpdateInventory handles POST /api/inventory/update. The adjustment is
// delta based: newQty minus currentQty.
func (h *Handler) UpdateInventory(w http.ResponseWriter, r *http.Request) {
	var req inventoryUpdateRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.ItemID == "" || req.LocationID == "" || req.NewQty == nil || req.CurrentQty == nil {
		writeMessage(w, http.StatusBadRequest, "itemId, locationId, newQty, and currentQty are required")
		return
	}

	delta := int(*req.NewQty) - int(*req.CurrentQty)

	err = h.storefront.AdjustInventory(r.Context(), req.Email, req.Store, req.ItemID, req.LocationID, delta)
	if err != nil {
		var userErr *domain.UserError
		if errors.As(err, &userErr) {
			writeMessage(w, http.StatusBadRequest, userErr.Message)
			return
		}
		h.logger.Error().Err(err).Str("itemId", req.ItemID).Msg("Inventory update error")
		writeMessage(w, http.StatusInternalServerError, "Failed to update inventory")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
