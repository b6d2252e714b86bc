package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-identity/internal/models"
	"github.com/sbilibin2017/gw-identity/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestGetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockGetter)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name:   "found",
			target: "/users/1",
			mockSetup: func(m *MockGetter) {
				m.EXPECT().
					Get(gomock.Any(), int64(1)).
					Return(&models.UserPublic{ID: 1, Username: "barrywhite", Email: "barry@example.com"}, nil)
			},
			expectedCode: 200,
			expectedBody: map[string]any{"id": float64(1), "username": "barrywhite", "email": "barry@example.com"},
		},
		{
			name:   "not found",
			target: "/users/99",
			mockSetup: func(m *MockGetter) {
				m.EXPECT().
					Get(gomock.Any(), int64(99)).
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode: 404,
			expectedBody: map[string]any{"detail": "User Not Found"},
		},
		{
			name:         "non-numeric id",
			target:       "/users/abc",
			expectedCode: 404,
			expectedBody: map[string]any{"detail": "User Not Found"},
		},
		{
			name:   "internal server error",
			target: "/users/1",
			mockSetup: func(m *MockGetter) {
				m.EXPECT().
					Get(gomock.Any(), int64(1)).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]any{"detail": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			r := chi.NewRouter()
			r.Get("/users/{id}", NewGetHandler(mockSvc))

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var got map[string]any
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, tt.expectedBody, got)
		})
	}
}
