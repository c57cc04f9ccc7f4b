package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"salonapp/models"
	"salonapp/services/auth"
	"salonapp/utils"
)

// AuthHandler manages the remember-me display-name session. Sign-in takes a
// name only; there is no credential verification.
type AuthHandler struct {
	Store auth.SessionStore
}

func NewAuthHandler(store auth.SessionStore) *AuthHandler {
	return &AuthHandler{Store: store}
}

type loginInput struct {
	FirstName string `json:"first_name" binding:"required"`
	Remember  bool   `json:"remember"`
}

// Login signs the visitor in and, when asked to, persists the session so it
// survives restarts.
func (h *AuthHandler) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp := gin.H{"displayName": input.FirstName}
	if input.Remember {
		sessionID := uuid.New().String()
		session := models.AuthSession{DisplayName: input.FirstName}
		if err := h.Store.Save(c.Request.Context(), sessionID, session); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to persist session", err.Error())
			return
		}
		resp["sessionId"] = sessionID
	}
	c.JSON(http.StatusOK, resp)
}

// Restore returns the saved session for the given id, or 404 when it is
// missing or unreadable.
func (h *AuthHandler) Restore(c *gin.Context) {
	sessionID := c.Param("sessionID")
	session, err := h.Store.Load(c.Request.Context(), sessionID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load session", err.Error())
		return
	}
	if session == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"displayName": session.DisplayName})
}

// Logout discards the persisted session.
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Store.Clear(c.Request.Context(), sessionID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to clear session", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
