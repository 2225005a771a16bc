// cmd/mailer/main.go
// 常駐程序入口 - 檔案監看 + 排程寄送

package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"job-mailer/internal/config"
	"job-mailer/internal/dispatcher"
	"job-mailer/internal/mailer"
	"job-mailer/internal/scheduler"
	"job-mailer/internal/sentlog"
	"job-mailer/internal/template"
	"job-mailer/internal/watcher"
)

func main() {
	log.Println("Job Mailer starting...")

	// 載入設定
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	log.Printf("Recipients CSV: %s", cfg.RecipientsCSV)
	log.Printf("Sent log: %s", cfg.SentJSONPath)
	log.Printf("Resume path: %s", cfg.ResumePath)
	log.Printf("Schedule: %s (%s)", cfg.ScheduleCron, cfg.ScheduleTZ)
	log.Printf("DRY_RUN: %v", cfg.DryRun)

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

	// 名單檔案監看：新增收件人時立即寄送 (只會寄還沒寄過的)
	w, err := watcher.Start(cfg.RecipientsCSV, func() {
		if _, err := disp.SendPending("watch"); err != nil {
			log.Printf("[watch] dispatch failed: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Failed to start watcher: %v", err)
	}
	defer w.Stop()

	// 排程寄送：只寄尚未在寄送紀錄中的收件人
	sched, err := scheduler.Start(cfg, func() {
		if _, err := disp.SendPending("cron"); err != nil {
			log.Printf("[cron] dispatch failed: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	log.Println("Job Mailer is running. (Ctrl+C to stop)")

	// 等待中斷信號
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Job Mailer stopped")
}
