// internal/api/handlers/auth_handler.go
// UI 登入 / 登出 Handler

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"job-mailer/internal/api/middlewares"
	"job-mailer/internal/config"
	"job-mailer/internal/session"
)

// AuthHandler 登入 Handler
type AuthHandler struct {
	cfg      *config.Config
	sessions session.Store
}

// NewAuthHandler 建立 Auth Handler
func NewAuthHandler(cfg *config.Config, sessions session.Store) *AuthHandler {
	return &AuthHandler{
		cfg:      cfg,
		sessions: sessions,
	}
}

// LoginRequest 登入請求
type LoginRequest struct {
	User string `form:"user" json:"user"`
	Pass string `form:"pass" json:"pass"`
}

// Login 以固定帳密換取 session cookie
func (h *AuthHandler) Login(c *gin.Context) {
	if !h.cfg.AuthEnabled() {
		c.JSON(http.StatusOK, gin.H{"ok": true, "authEnabled": false})
		return
	}

	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	if req.User != h.cfg.UIAuthUser || req.Pass != h.cfg.UIAuthPass {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Invalid username or password."})
		return
	}

	token, err := h.sessions.Create()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Failed to create session."})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middlewares.CookieName, token, int(h.cfg.SessionTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"ok": true, "authEnabled": true})
}

// Logout 撤銷 session 並清除 cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middlewares.CookieName); err == nil && token != "" {
		h.sessions.Revoke(token)
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middlewares.CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
