package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/taskboard-api/internal/service/auth"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	authenticator auth.Authenticator
	validator     *validator.Validate
	logger        *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(authenticator auth.Authenticator, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authenticator: authenticator,
		validator:     validator.New(),
		logger:        logger,
	}
}

// Login handles the /api/auth/login endpoint. On success it returns the
// provider's token bundle verbatim; on failure it maps the authentication
// error taxonomy onto status codes: unconfirmed accounts and required
// password changes are 403, unknown users are 404, and everything else
// (bad credentials, provider errors, unexpected failures) is 401.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	bundle, err := h.authenticator.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		h.respondLoginError(w, r, req.Email, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, bundle)
}

// respondLoginError translates an authentication failure into the login
// endpoint's status code and body. The full error is logged server-side;
// only a sanitized message (plus the vendor code, when present) crosses
// the boundary.
func (h *AuthHandler) respondLoginError(
	w http.ResponseWriter,
	r *http.Request,
	email string,
	err error,
) {
	h.logger.Error("login failed", "email", email, "error", err)

	var providerErr *auth.ProviderError

	var status int
	var body LoginErrorResponse

	switch {
	case errors.Is(err, auth.ErrAccountNotConfirmed):
		status = http.StatusForbidden
		body.Message = "User account is not confirmed. Please verify your email address."

	case errors.Is(err, auth.ErrPasswordChangeRequired):
		status = http.StatusForbidden
		body.Message = "Temporary password detected. Please change your password first."

	case errors.Is(err, auth.ErrUserNotFound):
		status = http.StatusNotFound
		body.Message = "User not found. Please check your email address or contact administrator."

	case errors.Is(err, auth.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		body.Message = "Invalid email or password. Please check your credentials."

	case errors.As(err, &providerErr):
		status = http.StatusUnauthorized
		body.Message = "Authentication failed: " + providerErr.Message
		body.ErrorCode = providerErr.Code

	default:
		status = http.StatusUnauthorized
		body.Message = "An unexpected error occurred during authentication."
	}

	RespondWithJSON(w, r, status, body)
}

// Diagnostic handles the /api/auth/diagnostic endpoint. It returns a
// static payload confirming that the authentication endpoint is wired up.
func (h *AuthHandler) Diagnostic(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, r, http.StatusOK, DiagnosticResponse{
		Status:   "ok",
		Message:  "Authentication endpoint is available",
		Endpoint: "/api/auth/login",
		Method:   http.MethodPost,
	})
}
