package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/gw-identity/internal/logger"
	"github.com/sbilibin2017/gw-identity/internal/models"
)

// Pagination defaults for the user listing.
const (
	defaultOffset = 0
	defaultLimit  = 100
)

// Lister defines the interface that the listing service must implement.
type Lister interface {
	List(ctx context.Context, offset, limit int) ([]models.UserPublic, error)
}

// UserListResponse represents the user listing response
// swagger:model UserListResponse
type UserListResponse struct {
	// Users on this page
	Users []models.UserPublic `json:"users"`
}

// ListErrorResponse represents an error response for the listing
// swagger:model ListErrorResponse
type ListErrorResponse struct {
	// Error message
	// default: Internal server error
	Detail string `json:"detail"`
}

// NewListHandler returns an HTTP handler listing users ordered by id.
// @Summary List users
// @Description Returns a page of users ordered by id ascending
// @Tags users
// @Produce json
// @Param offset query int false "Page offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {object} handlers.UserListResponse "Users returned"
// @Router /users [get]
func NewListHandler(svc Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		offset := queryInt(r, "offset", defaultOffset)
		limit := queryInt(r, "limit", defaultLimit)

		users, err := svc.List(r.Context(), offset, limit)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListErrorResponse{
				Detail: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UserListResponse{
			Users: users,
		})
	}
}

// queryInt reads a non-negative integer query parameter, falling back to def.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 0 {
		return def
	}
	return val
}
