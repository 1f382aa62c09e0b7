package transport

import (
	"fmt"
	"net/http"
	"time"

	"shopkart/internal/domain"
	"shopkart/internal/middleware"
	"shopkart/internal/repository"
	"shopkart/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UpdateRoleRequest represents the role update request payload
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=customer seller admin"`
}

// MessageResponse is a plain confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}

// UserProfile represents user data returned to admins. It never carries
// the password credential.
type UserProfile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserProfile(u *domain.User) UserProfile {
	return UserProfile{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// AdminHandler handles HTTP requests for administrative operations
type AdminHandler struct {
	adminService service.AdminService
	logger       *zap.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(adminService service.AdminService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		logger:       logger,
	}
}

// RegisterRoutes registers all admin routes. The seed endpoint is
// registered without the auth gate: that matches the platform this API
// replaces, and deployments are expected to fence it off at the edge (see
// README). When seedLimiter is non-nil it is applied to the seed endpoint.
func (h *AdminHandler) RegisterRoutes(r chi.Router, authMiddleware, seedLimiter func(http.Handler) http.Handler) {
	r.Route("/api/admin", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if seedLimiter != nil {
				r.Use(seedLimiter)
			}
			r.Post("/seed", h.SeedCatalog)
		})

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(middleware.RequireAdmin(h.logger))
			r.Get("/dashboard", h.Dashboard)
			r.Get("/users", h.ListUsers)
			r.Put("/users/{id}/role", h.UpdateUserRole)
			r.Delete("/products/{id}", h.DeleteProduct)
		})
	})
}

// Dashboard returns aggregate statistics and the most recent orders
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := h.adminService.DashboardSummary(r.Context())
	if err != nil {
		h.logger.Error("Failed to build dashboard summary", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, summary)
}

// ListUsers returns all users, newest first, without credentials
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminService.ListUsers(r.Context())
	if err != nil {
		h.logger.Error("Failed to list users", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	profiles := make([]UserProfile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, toUserProfile(u))
	}

	middleware.RespondWithJSON(w, http.StatusOK, profiles)
}

// UpdateUserRole overwrites a user's role
func (h *AdminHandler) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	var req UpdateRoleRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Role update validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.adminService.UpdateUserRole(r.Context(), userID, req.Role)
	if err != nil {
		switch err {
		case service.ErrInvalidRole:
			middleware.RespondWithError(w, http.StatusBadRequest, "invalid role")
		case repository.ErrUserNotFound:
			middleware.RespondWithError(w, http.StatusNotFound, "user not found")
		default:
			h.logger.Error("Failed to update user role", zap.Error(err))
			middleware.RespondWithError(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	h.logger.Info("User role updated",
		zap.String("user_id", user.ID.String()),
		zap.String("role", user.Role),
	)
	middleware.RespondWithJSON(w, http.StatusOK, toUserProfile(user))
}

// DeleteProduct deletes a product. Deleting a product that does not exist
// still succeeds; the operation is idempotent for the caller.
func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	if err := h.adminService.DeleteProduct(r.Context(), productID); err != nil {
		h.logger.Error("Failed to delete product", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	h.logger.Info("Product deleted", zap.String("product_id", productID.String()))
	middleware.RespondWithJSON(w, http.StatusOK, MessageResponse{Message: "Product deleted"})
}

// SeedCatalog truncates and repopulates the catalog with demo data. Unlike
// the other operations, its failure response carries the underlying error
// detail.
func (h *AdminHandler) SeedCatalog(w http.ResponseWriter, r *http.Request) {
	result, err := h.adminService.SeedCatalog(r.Context())
	if err != nil {
		h.logger.Error("Seed failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Seed error: %v", err))
		return
	}

	h.logger.Info("Catalog seeded",
		zap.Int("categories", result.Categories),
		zap.Int("products", result.Products),
		zap.Int("users", result.Users),
	)
	middleware.RespondWithJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Data seeded! %d categories, %d products, %d users", result.Categories, result.Products, result.Users),
	})
}
