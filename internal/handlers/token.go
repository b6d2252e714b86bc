package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-identity/internal/logger"
	"github.com/sbilibin2017/gw-identity/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// TokenResponse represents a successful login response
// swagger:model TokenResponse
type TokenResponse struct {
	// Signed access token
	// default: JWT_TOKEN
	AccessToken string `json:"access_token"`

	// Token type label
	// default: Bearer
	TokenType string `json:"token_type"`
}

// TokenErrorResponse represents an error response for login
// swagger:model TokenErrorResponse
type TokenErrorResponse struct {
	// Error message
	// default: Incorrect username or password
	Detail string `json:"detail"`
}

// NewTokenHandler returns an HTTP handler for user login.
// The form field is named "username" but carries the user's e-mail.
// @Summary Issue an access token
// @Description Authenticate a user by e-mail and password and return a bearer token
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "User e-mail"
// @Param password formData string true "Password"
// @Success 200 {object} handlers.TokenResponse "Access token returned"
// @Failure 400 {object} handlers.TokenErrorResponse "Incorrect username or password"
// @Router /token [post]
func NewTokenHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TokenErrorResponse{
				Detail: "invalid request body",
			})
			return
		}

		email := r.PostFormValue("username")
		password := r.PostFormValue("password")

		token, err := svc.Login(r.Context(), email, password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(TokenErrorResponse{
					Detail: "Incorrect username or password",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(TokenErrorResponse{
					Detail: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
		})
	}
}
