package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-event-checkin/internal/models"
	"github.com/sbilibin2017/gw-event-checkin/internal/services"
)

func TestSignupHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAuthenticator(ctrl)
	mockSvc.EXPECT().Register(gomock.Any(), models.UserInput{Username: "john", Password: "secret123"}).
		Return(&models.UserDB{UserID: uuid.New(), Username: "john"}, nil)

	rr := httptest.NewRecorder()
	NewSignupHandler(mockSvc)(rr, newJSONRequest(t, http.MethodPost, "/auth/users/", UserRequest{Username: "john", Password: "secret123"}))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "john", decodeBody(t, rr)["username"])
}

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         any
		mockSetup    func(m *MockAuthenticator)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name: "success",
			body: LoginRequest{Username: "john", Password: "secret"},
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().Login(gomock.Any(), "john", "secret").Return(&models.TokenPair{Access: "a", Refresh: "r"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]any{"access": "a", "refresh": "r"},
		},
		{
			name: "invalid credentials",
			body: LoginRequest{Username: "john", Password: "wrong"},
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().Login(gomock.Any(), "john", "wrong").Return(nil, services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: map[string]any{"error": "No active account found with the given credentials"},
		},
		{
			name:         "invalid json",
			body:         "{invalid json}",
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"error": "Invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockAuthenticator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := httptest.NewRecorder()
			NewLoginHandler(mockSvc)(rr, newJSONRequest(t, http.MethodPost, "/auth/jwt/create/", tt.body))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedBody, decodeBody(t, rr))
		})
	}
}

func TestRefreshAndLogoutHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAuthenticator(ctrl)
	mockSvc.EXPECT().Refresh(gomock.Any(), "good").Return("access", nil)
	mockSvc.EXPECT().Refresh(gomock.Any(), "revoked").Return("", services.ErrInvalidRefreshToken)
	mockSvc.EXPECT().Logout(gomock.Any(), "good").Return(nil)

	rr := httptest.NewRecorder()
	NewRefreshHandler(mockSvc)(rr, newJSONRequest(t, http.MethodPost, "/auth/jwt/refresh/", RefreshRequest{Refresh: "good"}))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "access", decodeBody(t, rr)["access"])

	rr = httptest.NewRecorder()
	NewRefreshHandler(mockSvc)(rr, newJSONRequest(t, http.MethodPost, "/auth/jwt/refresh/", RefreshRequest{Refresh: "revoked"}))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = httptest.NewRecorder()
	NewLogoutHandler(mockSvc)(rr, newJSONRequest(t, http.MethodPost, "/auth/logout/", RefreshRequest{Refresh: "good"}))
	assert.Equal(t, http.StatusResetContent, rr.Code)
}
