// internal/api/handlers/health_handler.go
// 健康檢查 Handler

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler 健康檢查 Handler
type HealthHandler struct{}

// NewHealthHandler 建立 Health Handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Health 健康檢查
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
