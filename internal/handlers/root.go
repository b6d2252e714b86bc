package handlers

import (
	"encoding/json"
	"net/http"
)

// RootResponse represents the root greeting response
// swagger:model RootResponse
type RootResponse struct {
	// Greeting message
	// default: Olá Mundo!
	Message string `json:"message"`
}

const rootHTML = `
    <html>
      <head>
          <title> gw-identity </title>
      </head>
      <body>
          <h1> Olá Mundo! </h1>
      </body>
    </html>`

// NewRootHandler returns the JSON greeting handler.
// @Summary Greeting
// @Tags root
// @Produce json
// @Success 200 {object} handlers.RootResponse "Greeting returned"
// @Router / [get]
func NewRootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RootResponse{
			Message: "Olá Mundo!",
		})
	}
}

// NewRootHTMLHandler returns the HTML greeting handler.
// @Summary Greeting as HTML
// @Tags root
// @Produce html
// @Success 200 {string} string "HTML greeting"
// @Router /html [get]
func NewRootHTMLHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(rootHTML))
	}
}
