package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-identity/internal/logger"
	"github.com/sbilibin2017/gw-identity/internal/middlewares"
	"github.com/sbilibin2017/gw-identity/internal/models"
	"github.com/sbilibin2017/gw-identity/internal/services"
)

// Updater defines the interface that the update service must implement.
type Updater interface {
	Update(ctx context.Context, current *models.UserDB, id int64, username, email, password string) (*models.UserPublic, error)
}

// UpdateRequest represents the JSON body for a user update
// swagger:model UpdateRequest
type UpdateRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// E-mail
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// UpdateErrorResponse represents an error response for a user update
// swagger:model UpdateErrorResponse
type UpdateErrorResponse struct {
	// Error message
	// default: Not enough permission
	Detail string `json:"detail"`
}

// NewUpdateHandler returns an HTTP handler for owner-only user updates.
// @Summary Update a user
// @Description Updates username, e-mail and password. Only the owner of the account may update it.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param updateRequest body handlers.UpdateRequest true "User update request"
// @Success 200 {object} models.UserPublic "Updated user"
// @Failure 400 {object} handlers.UpdateErrorResponse "Not enough permission / conflict"
// @Failure 401 {object} middlewares.AuthErrorResponse "Could not validate credentials"
// @Failure 404 {object} handlers.UpdateErrorResponse "User Not Found"
// @Router /users/{id} [put]
func NewUpdateHandler(svc Updater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		current := middlewares.GetUserFromContext(r.Context())
		if current == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(UpdateErrorResponse{
				Detail: "Could not validate credentials",
			})
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(UpdateErrorResponse{
				Detail: "User Not Found",
			})
			return
		}

		var req UpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateErrorResponse{
				Detail: "invalid request body",
			})
			return
		}

		user, err := svc.Update(r.Context(), current, id, req.Username, req.Email, req.Password)
		if err != nil {
			writeMutationError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}

// writeMutationError maps service errors from update/delete to responses.
func writeMutationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNotEnoughPermission):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(UpdateErrorResponse{
			Detail: "Not enough permission",
		})
	case errors.Is(err, services.ErrUserNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(UpdateErrorResponse{
			Detail: "User Not Found",
		})
	case errors.Is(err, services.ErrUsernameExists):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(UpdateErrorResponse{
			Detail: "Username already exists",
		})
	case errors.Is(err, services.ErrEmailExists):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(UpdateErrorResponse{
			Detail: "E-mail already exists",
		})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(UpdateErrorResponse{
			Detail: "Internal server error",
		})
	}
}
