package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-identity/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockLister)
		expectedCode int
		expectedUsers []models.UserPublic
	}{
		{
			name:   "defaults",
			target: "/users",
			mockSetup: func(m *MockLister) {
				m.EXPECT().
					List(gomock.Any(), 0, 100).
					Return([]models.UserPublic{
						{ID: 1, Username: "barrywhite", Email: "barry@example.com"},
					}, nil)
			},
			expectedCode:  200,
			expectedUsers: []models.UserPublic{{ID: 1, Username: "barrywhite", Email: "barry@example.com"}},
		},
		{
			name:   "explicit pagination",
			target: "/users?offset=2&limit=2",
			mockSetup: func(m *MockLister) {
				m.EXPECT().
					List(gomock.Any(), 2, 2).
					Return([]models.UserPublic{
						{ID: 3, Username: "carol", Email: "carol@example.com"},
					}, nil)
			},
			expectedCode:  200,
			expectedUsers: []models.UserPublic{{ID: 3, Username: "carol", Email: "carol@example.com"}},
		},
		{
			name:   "bad query values fall back to defaults",
			target: "/users?offset=abc&limit=-5",
			mockSetup: func(m *MockLister) {
				m.EXPECT().
					List(gomock.Any(), 0, 100).
					Return([]models.UserPublic{}, nil)
			},
			expectedCode:  200,
			expectedUsers: []models.UserPublic{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLister(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewListHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var got UserListResponse
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, tt.expectedUsers, got.Users)
		})
	}
}

func TestListHandler_InternalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLister(ctrl)
	mockSvc.EXPECT().
		List(gomock.Any(), 0, 100).
		Return(nil, errors.New("database failure"))

	handler := NewListHandler(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var got map[string]string
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "Internal server error", got["detail"])
}
