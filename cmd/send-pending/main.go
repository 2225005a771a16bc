// cmd/send-pending/main.go
// 手動觸發一次排程寄送

package main

import (
	"log"
	"os"

	"job-mailer/internal/config"
	"job-mailer/internal/dispatcher"
	"job-mailer/internal/mailer"
	"job-mailer/internal/sentlog"
	"job-mailer/internal/template"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Printf("Invalid configuration: %v", err)
		os.Exit(1)
	}

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

	if _, err := disp.SendPending("manual"); err != nil {
		log.Printf("Dispatch failed: %v", err)
		os.Exit(1)
	}
}
