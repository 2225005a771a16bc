// cmd/ui/main.go
// Gin UI API Server 入口

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"job-mailer/internal/api/routes"
	"job-mailer/internal/config"
	"job-mailer/internal/dispatcher"
	"job-mailer/internal/hr"
	"job-mailer/internal/mailer"
	"job-mailer/internal/sentlog"
	"job-mailer/internal/session"
	"job-mailer/internal/template"
)

func main() {
	log.Println("Starting Job Mailer UI Server...")

	// 載入設定
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// 初始化寄送服務與調度器
	sender := mailer.NewSender(cfg)
	store := sentlog.NewStore(cfg.SentJSONPath)
	builder := template.NewBuilder(template.Profile{
		Name:      cfg.ApplicantName,
		Title:     cfg.ApplicantTitle,
		LinkedIn:  cfg.ApplicantLinkedIn,
		Portfolio: cfg.ApplicantSite,
		Email:     cfg.ApplicantEmail,
		Phone:     cfg.ApplicantPhone,
	})
	disp := dispatcher.New(cfg, sender, store, builder)
	log.Printf("Mail provider: %s", sender.Name())

	// Session 儲存
	sessions := session.NewMemoryStore(cfg.SessionTTL)
	if cfg.AuthEnabled() {
		log.Println("Auth enabled: yes")
	} else {
		log.Println("Auth enabled: no (set UI_AUTH_USER/UI_AUTH_PASS to enable)")
	}

	// HR 查詢提供者
	providers := map[string]hr.Provider{
		"hunter": hr.NewHunter(cfg.HunterAPIKey),
		"apollo": hr.NewApollo(cfg.ApolloAPIKey, cfg.ApolloBaseURL, cfg.ApolloEndpoint),
	}

	// 初始化 Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// 註冊路由
	routes.RegisterRoutes(router, &routes.Dependencies{
		Config:      cfg,
		Dispatcher:  disp,
		Sessions:    sessions,
		HRProviders: providers,
		HRResolver:  hr.NewDomainResolver(),
	})

	// 建立 HTTP Server
	srv := &http.Server{
		Addr:    cfg.UIHost + ":" + cfg.UIPort,
		Handler: router,
	}

	// 優雅關機
	go func() {
		log.Printf("UI running at http://%s:%s", cfg.UIHost, cfg.UIPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// 等待中斷信號
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down UI server...")

	// 優雅關閉
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("UI Server stopped")
}
