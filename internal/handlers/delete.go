package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-identity/internal/middlewares"
	"github.com/sbilibin2017/gw-identity/internal/models"
)

// Deleter defines the interface that the delete service must implement.
type Deleter interface {
	Delete(ctx context.Context, current *models.UserDB, id int64) error
}

// DeleteResponse represents a successful deletion response
// swagger:model DeleteResponse
type DeleteResponse struct {
	// Confirmation message
	// default: User deleted
	Message string `json:"message"`
}

// NewDeleteHandler returns an HTTP handler for owner-only user deletion.
// @Summary Delete a user
// @Description Removes the account. Only the owner of the account may delete it.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} handlers.DeleteResponse "User deleted"
// @Failure 400 {object} handlers.UpdateErrorResponse "Not enough permission"
// @Failure 401 {object} middlewares.AuthErrorResponse "Could not validate credentials"
// @Failure 404 {object} handlers.UpdateErrorResponse "User Not Found"
// @Router /users/{id} [delete]
func NewDeleteHandler(svc Deleter) http.HandlerFunc {
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

		if err := svc.Delete(r.Context(), current, id); err != nil {
			writeMutationError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteResponse{
			Message: "User deleted",
		})
	}
}
