package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/sarisari-api/internal/api/shared"
	"github.com/phrazzld/sarisari-api/internal/platform/logger"
	"github.com/phrazzld/sarisari-api/internal/service/auth"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	credentials auth.CredentialVerifier
	jwtService  auth.JWTService
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	credentials auth.CredentialVerifier,
	jwtService auth.JWTService,
	logger *slog.Logger,
) *AuthHandler {
	if credentials == nil {
		panic("credentials cannot be nil")
	}
	if jwtService == nil {
		panic("jwtService cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &AuthHandler{
		credentials: credentials,
		jwtService:  jwtService,
		logger:      logger.With(slog.String("component", "auth_handler")),
	}
}

// Login handles the /login endpoint.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, msgInvalidRequest, err)
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithValidationErrors(w, r, validationMessages(err))
		return
	}

	subject, err := h.credentials.Verify(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, msgBadCredentials, err,
				shared.WithElevatedLogLevel())
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to authenticate user", err)
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), subject)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to generate authentication token", err)
		return
	}

	log.Info("login succeeded", slog.String("subject", subject))
	shared.Respond(w, r, http.StatusOK, LoginResponse{AccessToken: token})
}
