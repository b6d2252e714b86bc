package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-identity/internal/logger"
	"github.com/sbilibin2017/gw-identity/internal/models"
	"github.com/sbilibin2017/gw-identity/internal/services"
)

// Getter defines the interface that the get-by-id service must implement.
type Getter interface {
	Get(ctx context.Context, id int64) (*models.UserPublic, error)
}

// GetErrorResponse represents an error response for get-by-id
// swagger:model GetErrorResponse
type GetErrorResponse struct {
	// Error message
	// default: User Not Found
	Detail string `json:"detail"`
}

// NewGetHandler returns an HTTP handler fetching a single user by id.
// @Summary Get user by id
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.UserPublic "User returned"
// @Failure 404 {object} handlers.GetErrorResponse "User Not Found"
// @Router /users/{id} [get]
func NewGetHandler(svc Getter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(GetErrorResponse{
				Detail: "User Not Found",
			})
			return
		}

		user, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(GetErrorResponse{
					Detail: "User Not Found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(GetErrorResponse{
					Detail: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}
