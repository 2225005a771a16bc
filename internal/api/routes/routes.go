// internal/api/routes/routes.go
// Gin 路由註冊

package routes

import (
	"github.com/gin-gonic/gin"

	"job-mailer/internal/api/handlers"
	"job-mailer/internal/api/middlewares"
	"job-mailer/internal/config"
	"job-mailer/internal/dispatcher"
	"job-mailer/internal/hr"
	"job-mailer/internal/session"
)

// Dependencies 路由依賴
type Dependencies struct {
	Config      *config.Config
	Dispatcher  *dispatcher.Dispatcher
	Sessions    session.Store
	HRProviders map[string]hr.Provider
	HRResolver  *hr.DomainResolver
}

// RegisterRoutes 註冊所有路由
func RegisterRoutes(router *gin.Engine, deps *Dependencies) {
	// 初始化 Handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(deps.Config, deps.Sessions)
	mailHandler := handlers.NewMailHandler(deps.Config, deps.Dispatcher)
	hrHandler := handlers.NewHRHandler(deps.Config, deps.HRProviders, deps.HRResolver)

	// 公開路由 (health 與登入不經過認證)
	router.GET("/health", healthHandler.Health)
	router.POST("/api/login", authHandler.Login)

	// 其餘路由需登入 (認證未啟用時中介軟體直接放行)
	authed := router.Group("/")
	authed.Use(middlewares.SessionAuth(deps.Config, deps.Sessions))
	{
		authed.POST("/api/logout", authHandler.Logout)

		authed.POST("/api/send", mailHandler.Send)
		authed.POST("/api/send-bulk", mailHandler.SendBulk)
		authed.GET("/api/template.xlsx", mailHandler.TemplateXLSX)
		// 短網址別名
		authed.GET("/template.xlsx", mailHandler.TemplateXLSX)

		authed.GET("/api/hr-lookup", hrHandler.Lookup)
		authed.GET("/api/provider-status", hrHandler.ProviderStatus)
	}
}
