package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-user-directory/internal/application"
	"github.com/oksasatya/go-user-directory/internal/domain/entity"
	"github.com/oksasatya/go-user-directory/pkg/response"
)

// CredentialService is the credential store as seen by the HTTP layer.
type CredentialService interface {
	Register(ctx context.Context, username, password string) (*entity.Credential, error)
	Authenticate(ctx context.Context, username, password string) error
}

type CredentialHandler struct {
	Svc    CredentialService
	Logger *logrus.Logger
}

func NewCredentialHandler(svc CredentialService, logger *logrus.Logger) *CredentialHandler {
	return &CredentialHandler{Svc: svc, Logger: logger}
}

type credentialRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// registerResponse deliberately has no hash field.
type registerResponse struct {
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// Register POST /api/auth/register {username, password}
func (h *CredentialHandler) Register(c *gin.Context) {
	var req credentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidInput(c, "username and password are required", err)
		return
	}
	cred, err := h.Svc.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.logFailure(err, "register")
		RespondWithMappedError(c, err, credentialErrorCases, http.StatusInternalServerError, "registration failed")
		return
	}
	response.Success(c, http.StatusCreated, registerResponse{Username: cred.Username, CreatedAt: cred.CreatedAt}, "user registered successfully", nil)
}

// Login POST /api/auth/login {username, password}
// Confirms the pair only; no session or token is issued.
func (h *CredentialHandler) Login(c *gin.Context) {
	var req credentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidInput(c, "username and password are required", err)
		return
	}
	if err := h.Svc.Authenticate(c.Request.Context(), req.Username, req.Password); err != nil {
		h.logFailure(err, "login")
		RespondWithMappedError(c, err, credentialErrorCases, http.StatusInternalServerError, "authentication failed")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"authenticated": true, "username": req.Username}, "login successful", nil)
}

// storage failures are logged; expected rejections are not
func (h *CredentialHandler) logFailure(err error, action string) {
	if h.Logger == nil {
		return
	}
	switch {
	case isExpected(err):
		h.Logger.WithField("action", action).WithField("kind", errorKind(err)).Debug("credential request rejected")
	default:
		h.Logger.WithError(err).WithField("action", action).Error("credential request failed")
	}
}

func isExpected(err error) bool {
	for _, cs := range credentialErrorCases {
		if errors.Is(err, cs.Err) {
			return true
		}
	}
	return false
}

var _ CredentialService = (*application.CredentialService)(nil)
