package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-user-directory/internal/application"
	"github.com/oksasatya/go-user-directory/internal/domain/entity"
	"github.com/oksasatya/go-user-directory/pkg/response"
)

// DirectoryService is the directory store as seen by the HTTP layer.
type DirectoryService interface {
	Add(ctx context.Context, username string) (*entity.DirectoryRecord, error)
	List(ctx context.Context) ([]entity.DirectoryRecord, error)
	Get(ctx context.Context, id string) (*entity.DirectoryRecord, error)
	Update(ctx context.Context, id, username string) (*entity.DirectoryRecord, error)
	Delete(ctx context.Context, id string) error
}

type DirectoryHandler struct {
	Svc    DirectoryService
	Logger *logrus.Logger
}

func NewDirectoryHandler(svc DirectoryService, logger *logrus.Logger) *DirectoryHandler {
	return &DirectoryHandler{Svc: svc, Logger: logger}
}

// username is optional: an absent field or an empty body stores an empty name.
type directoryRecordRequest struct {
	Username string `json:"username"`
}

func bindOptionalJSON(c *gin.Context, dst any) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Add POST /api/users {username}
func (h *DirectoryHandler) Add(c *gin.Context) {
	var req directoryRecordRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondInvalidInput(c, "invalid payload", err)
		return
	}
	rec, err := h.Svc.Add(c.Request.Context(), req.Username)
	if err != nil {
		h.logFailure(err, "add username")
		RespondWithMappedError(c, err, directoryErrorCases, http.StatusInternalServerError, "failed to add username")
		return
	}
	response.Success(c, http.StatusCreated, rec, "username added successfully", nil)
}

// List GET /api/users
func (h *DirectoryHandler) List(c *gin.Context) {
	recs, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.logFailure(err, "fetch usernames")
		RespondWithMappedError(c, err, directoryErrorCases, http.StatusInternalServerError, "failed to fetch usernames")
		return
	}
	response.Success(c, http.StatusOK, recs, "usernames", map[string]any{"count": len(recs)})
}

// Get GET /api/users/:id
func (h *DirectoryHandler) Get(c *gin.Context) {
	rec, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondWithMappedError(c, err, directoryErrorCases, http.StatusInternalServerError, "failed to fetch username")
		return
	}
	response.Success(c, http.StatusOK, rec, "username", nil)
}

// Update PUT /api/users/:id {username}
func (h *DirectoryHandler) Update(c *gin.Context) {
	var req directoryRecordRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondInvalidInput(c, "invalid payload", err)
		return
	}
	rec, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req.Username)
	if err != nil {
		RespondWithMappedError(c, err, directoryErrorCases, http.StatusInternalServerError, "failed to update username")
		return
	}
	response.Success(c, http.StatusOK, rec, "username updated", nil)
}

// Delete DELETE /api/users/:id
func (h *DirectoryHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		RespondWithMappedError(c, err, directoryErrorCases, http.StatusInternalServerError, "failed to delete username")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true, "id": id}, "username deleted", nil)
}

func (h *DirectoryHandler) logFailure(err error, action string) {
	if h.Logger != nil {
		h.Logger.WithError(err).WithField("action", action).Error("directory request failed")
	}
}

var _ DirectoryService = (*application.DirectoryService)(nil)
