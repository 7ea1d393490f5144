package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/taskboard-api/internal/mocks"
	"github.com/phrazzld/taskboard-api/internal/service/auth"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLogin(t *testing.T) {
	t.Parallel()

	bundle := &auth.TokenBundle{
		IDToken:      "id-token",
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresIn:    3600,
	}

	// Test cases
	tests := []struct {
		name          string
		payload       map[string]interface{}
		authErr       error
		wantStatus    int
		wantToken     bool
		wantMessage   string
		wantErrorCode string
	}{
		{
			name: "valid login",
			payload: map[string]interface{}{
				"email":    "test@example.com",
				"password": "password123",
			},
			wantStatus: http.StatusOK,
			wantToken:  true,
		},
		{
			name: "invalid credentials",
			payload: map[string]interface{}{
				"email":    "test@example.com",
				"password": "wrong",
			},
			authErr:     auth.ErrInvalidCredentials,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid email or password. Please check your credentials.",
		},
		{
			name: "account not confirmed",
			payload: map[string]interface{}{
				"email":    "test@example.com",
				"password": "password123",
			},
			authErr:     auth.ErrAccountNotConfirmed,
			wantStatus:  http.StatusForbidden,
			wantMessage: "User account is not confirmed. Please verify your email address.",
		},
		{
			name: "password change required",
			payload: map[string]interface{}{
				"email":    "test@example.com",
				"password": "temporary",
			},
			authErr:     auth.ErrPasswordChangeRequired,
			wantStatus:  http.StatusForbidden,
			wantMessage: "Temporary password detected. Please change your password first.",
		},
		{
			name: "user not found",
			payload: map[string]interface{}{
				"email":    "unknown@example.com",
				"password": "password123",
			},
			authErr:     auth.ErrUserNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "User not found. Please check your email address or contact administrator.",
		},
		{
			name: "provider error keeps vendor code",
			payload: map[string]interface{}{
				"email":    "test@example.com",
				"password": "password123",
			},
			authErr: &auth.ProviderError{
				Code:    "TooManyRequestsException",
				Message: "Rate exceeded",
			},
			wantStatus:    http.StatusUnauthorized,
			wantMessage:   "Authentication failed: Rate exceeded",
			wantErrorCode: "TooManyRequestsException",
		},
		{
			name: "unexpected failure",
			payload: map[string]interface{}{
				"email":    "test@example.com",
				"password": "password123",
			},
			authErr:     errors.New("connection refused"),
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "An unexpected error occurred during authentication.",
		},
		{
			name: "invalid email format",
			payload: map[string]interface{}{
				"email":    "not-an-email",
				"password": "password123",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing password",
			payload: map[string]interface{}{
				"email": "test@example.com",
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			authenticator := &mocks.Authenticator{
				AuthenticateFn: func(ctx context.Context, email, password string) (*auth.TokenBundle, error) {
					if tt.authErr != nil {
						return nil, tt.authErr
					}
					return bundle, nil
				},
			}
			handler := NewAuthHandler(authenticator, testLogger())

			// Create request
			payloadBytes, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBuffer(payloadBytes))
			req.Header.Set("Content-Type", "application/json")

			// Create response recorder
			recorder := httptest.NewRecorder()

			// Call handler
			handler.Login(recorder, req)

			// Check status code
			assert.Equal(t, tt.wantStatus, recorder.Code)

			// Check response body
			if tt.wantToken {
				var gotBundle auth.TokenBundle
				err = json.NewDecoder(recorder.Body).Decode(&gotBundle)
				require.NoError(t, err)
				assert.Equal(t, "id-token", gotBundle.IDToken)
				assert.Equal(t, "access-token", gotBundle.AccessToken)
				assert.Equal(t, "refresh-token", gotBundle.RefreshToken)
				assert.Equal(t, int64(3600), gotBundle.ExpiresIn)
			}

			if tt.wantMessage != "" {
				var errResp LoginErrorResponse
				err = json.NewDecoder(recorder.Body).Decode(&errResp)
				require.NoError(t, err)
				assert.Equal(t, tt.wantMessage, errResp.Message)
				assert.Equal(t, tt.wantErrorCode, errResp.ErrorCode)
			}

			// Validation failures must never reach the authenticator.
			if tt.wantStatus == http.StatusBadRequest {
				assert.Empty(t, authenticator.Calls)
			}
		})
	}
}

func TestLoginMalformedBody(t *testing.T) {
	t.Parallel()

	authenticator := &mocks.Authenticator{}
	handler := NewAuthHandler(authenticator, testLogger())

	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()

	handler.Login(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Empty(t, authenticator.Calls)
}

func TestDiagnostic(t *testing.T) {
	t.Parallel()

	handler := NewAuthHandler(&mocks.Authenticator{}, testLogger())

	req := httptest.NewRequest("GET", "/api/auth/diagnostic", nil)
	recorder := httptest.NewRecorder()

	handler.Diagnostic(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp DiagnosticResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "/api/auth/login", resp.Endpoint)
	assert.Equal(t, http.MethodPost, resp.Method)
}
